package components

import (
	"fmt"
	"strings"

	"orbiter/internal/lead"
	"orbiter/internal/tui/styles"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FormStatus is the submission state shown under the form.
type FormStatus int

const (
	FormIdle FormStatus = iota
	FormSubmitting
	FormSuccess
	FormFailed
)

type fieldKind int

const (
	textField fieldKind = iota
	choiceField
	checkField
	submitButton
)

type formField struct {
	name    string
	label   string
	kind    fieldKind
	input   textinput.Model
	options []string
	choice  int
	checked bool
}

// LeadForm is the demo request form rendered inside the page.
type LeadForm struct {
	fields  []*formField
	focus   int
	focused bool
	errors  map[string]string
	status  FormStatus
	theme   *styles.Theme
}

func newText(name, label, placeholder string) *formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 120
	ti.Cursor.SetMode(cursor.CursorStatic)
	return &formField{name: name, label: label, kind: textField, input: ti}
}

func newChoice(name, label string, options []string) *formField {
	return &formField{name: name, label: label, kind: choiceField, options: options, choice: -1}
}

// NewLeadForm creates an empty form.
func NewLeadForm(th *styles.Theme) *LeadForm {
	f := &LeadForm{
		theme:  th,
		errors: map[string]string{},
		fields: []*formField{
			newText(lead.FieldFirstName, "First name *", "Jane"),
			newText(lead.FieldLastName, "Last name *", "Doe"),
			newText(lead.FieldOrganization, "Organization *", "Acme Networks"),
			newText(lead.FieldPhone, "Phone", "+1 555 0100"),
			newText(lead.FieldEmail, "Email *", "jane@example.com"),
			newChoice(lead.FieldCountry, "Country *", lead.Countries),
			newChoice(lead.FieldExistingCustomer, "Existing customer *", lead.CustomerOptions),
			newChoice(lead.FieldApplication, "Application *", lead.Applications),
			newChoice(lead.FieldHowHeard, "How did you hear about us *", lead.HowHeardOptions),
			newText(lead.FieldQuestions, "Questions/Comments", "Enter any questions or comments..."),
			{name: lead.FieldConsent, label: "I consent to my submitted data being collected and stored.", kind: checkField},
			{name: lead.FieldNewsletter, label: "I would like to receive the newsletter.", kind: checkField},
			{name: "submit", label: "REQUEST A DEMO", kind: submitButton},
		},
	}
	return f
}

func (f *LeadForm) SetTheme(th *styles.Theme) { f.theme = th }

// Focused reports whether the form receives key input.
func (f *LeadForm) Focused() bool { return f.focused }

// Focus gives the form key input, starting at the first field.
func (f *LeadForm) Focus() {
	f.focused = true
	f.setFocus(f.focus)
}

// Blur returns key input to the page.
func (f *LeadForm) Blur() {
	f.focused = false
	for _, fld := range f.fields {
		if fld.kind == textField {
			fld.input.Blur()
		}
	}
}

func (f *LeadForm) setFocus(i int) {
	n := len(f.fields)
	f.focus = ((i % n) + n) % n
	for idx, fld := range f.fields {
		if fld.kind != textField {
			continue
		}
		if idx == f.focus && f.focused {
			fld.input.Focus()
		} else {
			fld.input.Blur()
		}
	}
}

// FocusField focuses the field with name, e.g. after a click.
func (f *LeadForm) FocusField(name string) {
	for i, fld := range f.fields {
		if fld.name == name {
			f.focused = true
			f.setFocus(i)
			return
		}
	}
}

// Next moves focus forward.
func (f *LeadForm) Next() { f.setFocus(f.focus + 1) }

// Prev moves focus back.
func (f *LeadForm) Prev() { f.setFocus(f.focus - 1) }

// Status returns the submission status.
func (f *LeadForm) Status() FormStatus { return f.status }

// Value builds a lead.Form from the inputs.
func (f *LeadForm) Value() lead.Form {
	var v lead.Form
	for _, fld := range f.fields {
		text := fld.input.Value()
		if fld.kind == choiceField && fld.choice >= 0 {
			text = fld.options[fld.choice]
		}
		switch fld.name {
		case lead.FieldFirstName:
			v.FirstName = text
		case lead.FieldLastName:
			v.LastName = text
		case lead.FieldOrganization:
			v.Organization = text
		case lead.FieldPhone:
			v.Phone = text
		case lead.FieldEmail:
			v.Email = text
		case lead.FieldCountry:
			v.Country = text
		case lead.FieldExistingCustomer:
			v.ExistingCustomer = text
		case lead.FieldApplication:
			v.Application = text
		case lead.FieldHowHeard:
			v.HowHeard = text
		case lead.FieldQuestions:
			v.Questions = text
		case lead.FieldConsent:
			v.Consent = fld.checked
		case lead.FieldNewsletter:
			v.Newsletter = fld.checked
		}
	}
	return v
}

// SetErrors shows per-field validation messages.
func (f *LeadForm) SetErrors(errs map[string]string) {
	f.errors = map[string]string{}
	for k, v := range errs {
		f.errors[k] = v
	}
	if len(errs) > 0 {
		f.status = FormIdle
	}
}

// Submitting marks the form busy.
func (f *LeadForm) Submitting() {
	f.status = FormSubmitting
	f.errors = map[string]string{}
}

// Finish records the outcome. A success clears the inputs.
func (f *LeadForm) Finish(ok bool) {
	if !ok {
		f.status = FormFailed
		return
	}
	f.status = FormSuccess
	for _, fld := range f.fields {
		fld.input.SetValue("")
		fld.choice = -1
		fld.checked = false
	}
	f.Blur()
	f.focus = 0
}

// Update handles a key while focused. It reports whether the user asked to
// submit.
func (f *LeadForm) Update(msg tea.KeyMsg) (submit bool, cmd tea.Cmd) {
	fld := f.fields[f.focus]
	switch msg.String() {
	case "tab", "down":
		f.Next()
		return false, nil
	case "shift+tab", "up":
		f.Prev()
		return false, nil
	case "enter":
		if fld.kind == submitButton {
			return f.status != FormSubmitting, nil
		}
		f.Next()
		return false, nil
	}

	switch fld.kind {
	case textField:
		fld.input, cmd = fld.input.Update(msg)
		delete(f.errors, fld.name)
	case choiceField:
		switch msg.String() {
		case "right", "l", " ":
			fld.choice = (fld.choice + 1) % len(fld.options)
			delete(f.errors, fld.name)
		case "left", "h":
			if fld.choice <= 0 {
				fld.choice = len(fld.options) - 1
			} else {
				fld.choice--
			}
			delete(f.errors, fld.name)
		default:
			// Typing jumps to the first option with that prefix.
			if r := msg.Runes; len(r) == 1 {
				prefix := strings.ToLower(string(r))
				for i, o := range fld.options {
					if strings.HasPrefix(strings.ToLower(o), prefix) {
						fld.choice = i
						delete(f.errors, fld.name)
						break
					}
				}
			}
		}
	case checkField:
		if msg.String() == " " || msg.String() == "x" {
			fld.checked = !fld.checked
			delete(f.errors, fld.name)
		}
	}
	return false, cmd
}

// View renders the form.
func (f *LeadForm) View() string {
	th := f.theme
	var b strings.Builder

	switch f.status {
	case FormSuccess:
		b.WriteString(th.Success.Render("Thank you! "+lead.SuccessMessage) + "\n\n")
	case FormFailed:
		b.WriteString(th.Error.Render(lead.FailureMessage) + "\n\n")
	}

	for i, fld := range f.fields {
		active := f.focused && i == f.focus
		marker := "  "
		if active {
			marker = th.Focused.Render("> ")
		}

		switch fld.kind {
		case textField:
			b.WriteString(marker + fld.label + ": " + fld.input.View())
		case choiceField:
			value := th.EntryHint.Render("Select")
			if fld.choice >= 0 {
				value = fld.options[fld.choice]
			}
			b.WriteString(fmt.Sprintf("%s%s: ‹ %s ›", marker, fld.label, value))
		case checkField:
			box := "[ ]"
			if fld.checked {
				box = "[x]"
			}
			b.WriteString(marker + box + " " + fld.label)
		case submitButton:
			label := "[ " + fld.label + " ]"
			if f.status == FormSubmitting {
				label = "[ Submitting... ]"
			}
			if active {
				label = th.Focused.Render(label)
			}
			b.WriteString(marker + label)
		}
		if msg, ok := f.errors[fld.name]; ok && msg != "" {
			b.WriteString("  " + th.Error.Render(msg))
		}
		if i < len(f.fields)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FieldNames returns the field names in display order.
func (f *LeadForm) FieldNames() []string {
	names := make([]string, len(f.fields))
	for i, fld := range f.fields {
		names[i] = fld.name
	}
	return names
}
