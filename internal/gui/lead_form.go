//go:build !nogui

package gui

import (
	"strings"

	"orbiter/internal/errors"
	"orbiter/internal/lead"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// leadForm is the demo request form embedded in the contact section.
type leadForm struct {
	first, last, org, phone, email *widget.Entry
	country, customer, application *widget.Select
	heard                          *widget.Select
	questions                      *widget.Entry
	consent, newsletter            *widget.Check

	message *widget.Label
	form    *widget.Form
	box     *fyne.Container

	onSubmit func(lead.Form)
}

func newLeadForm(onSubmit func(lead.Form)) *leadForm {
	f := &leadForm{
		first:       widget.NewEntry(),
		last:        widget.NewEntry(),
		org:         widget.NewEntry(),
		phone:       widget.NewEntry(),
		email:       widget.NewEntry(),
		country:     widget.NewSelect(lead.Countries, nil),
		customer:    widget.NewSelect(lead.CustomerOptions, nil),
		application: widget.NewSelect(lead.Applications, nil),
		heard:       widget.NewSelect(lead.HowHeardOptions, nil),
		questions:   widget.NewMultiLineEntry(),
		consent:     widget.NewCheck("I consent to my submitted data being collected and stored.", nil),
		newsletter:  widget.NewCheck("I would like to receive the newsletter.", nil),
		message:     widget.NewLabel(""),
		onSubmit:    onSubmit,
	}
	f.email.SetPlaceHolder("jane@example.com")
	f.questions.SetPlaceHolder("Enter any questions or comments...")
	f.message.Wrapping = fyne.TextWrapWord

	f.form = &widget.Form{
		Items: []*widget.FormItem{
			widget.NewFormItem("First name *", f.first),
			widget.NewFormItem("Last name *", f.last),
			widget.NewFormItem("Organization *", f.org),
			widget.NewFormItem("Phone", f.phone),
			widget.NewFormItem("Email *", f.email),
			widget.NewFormItem("Country *", f.country),
			widget.NewFormItem("Existing customer *", f.customer),
			widget.NewFormItem("Application *", f.application),
			widget.NewFormItem("How did you hear about us *", f.heard),
			widget.NewFormItem("Questions/Comments", f.questions),
		},
		SubmitText: "REQUEST A DEMO",
		OnSubmit:   f.submit,
	}
	f.box = container.NewVBox(f.form, f.consent, f.newsletter, f.message)
	return f
}

func (f *leadForm) view() fyne.CanvasObject { return f.box }

func (f *leadForm) value() lead.Form {
	return lead.Form{
		FirstName:        f.first.Text,
		LastName:         f.last.Text,
		Organization:     f.org.Text,
		Phone:            f.phone.Text,
		Email:            f.email.Text,
		Country:          f.country.Selected,
		ExistingCustomer: f.customer.Selected,
		Application:      f.application.Selected,
		HowHeard:         f.heard.Selected,
		Questions:        f.questions.Text,
		Consent:          f.consent.Checked,
		Newsletter:       f.newsletter.Checked,
	}
}

func (f *leadForm) submit() {
	v := f.value()
	if err := v.Validate(); err != nil {
		f.showErrors(errors.FieldErrors(err))
		return
	}
	f.message.SetText("Submitting...")
	if f.onSubmit != nil {
		f.onSubmit(v)
	}
}

func (f *leadForm) showErrors(fields map[string]string) {
	var lines []string
	for _, name := range []string{
		lead.FieldFirstName, lead.FieldLastName, lead.FieldOrganization,
		lead.FieldEmail, lead.FieldCountry, lead.FieldExistingCustomer,
		lead.FieldApplication, lead.FieldHowHeard, lead.FieldConsent,
	} {
		if msg, ok := fields[name]; ok {
			lines = append(lines, msg)
		}
	}
	f.message.SetText(strings.Join(lines, "\n"))
}

// finish shows the outcome of a submission; success clears the inputs.
func (f *leadForm) finish(err error) {
	if err != nil {
		if fields := errors.FieldErrors(err); len(fields) > 0 {
			f.showErrors(fields)
			return
		}
		f.message.SetText(lead.FailureMessage)
		return
	}
	for _, e := range []*widget.Entry{f.first, f.last, f.org, f.phone, f.email, f.questions} {
		e.SetText("")
	}
	for _, s := range []*widget.Select{f.country, f.customer, f.application, f.heard} {
		s.ClearSelected()
	}
	f.consent.SetChecked(false)
	f.newsletter.SetChecked(false)
	f.message.SetText("Thank you! " + lead.SuccessMessage)
}
