// Package lead validates and submits demo requests.
package lead

import (
	"reflect"
	"strings"
	"sync"

	"orbiter/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Form is a demo request.
type Form struct {
	FirstName        string `json:"firstName" validate:"required"`
	LastName         string `json:"lastName" validate:"required"`
	Organization     string `json:"organization" validate:"required"`
	Phone            string `json:"phone"`
	Email            string `json:"email" validate:"required,email"`
	Country          string `json:"country" validate:"required,country"`
	ExistingCustomer string `json:"existingCustomer" validate:"required,customer"`
	Application      string `json:"application" validate:"required,application"`
	HowHeard         string `json:"howHeard" validate:"required,heard"`
	Questions        string `json:"questions"`
	Consent          bool   `json:"consent" validate:"required"`
	Newsletter       bool   `json:"newsletter"`
}

// Field names as reported in validation errors.
const (
	FieldFirstName        = "firstName"
	FieldLastName         = "lastName"
	FieldOrganization     = "organization"
	FieldPhone            = "phone"
	FieldEmail            = "email"
	FieldCountry          = "country"
	FieldExistingCustomer = "existingCustomer"
	FieldApplication      = "application"
	FieldHowHeard         = "howHeard"
	FieldQuestions        = "questions"
	FieldConsent          = "consent"
	FieldNewsletter       = "newsletter"
)

var requiredMessages = map[string]string{
	FieldFirstName:        "First name is required",
	FieldLastName:         "Last name is required",
	FieldOrganization:     "Organization is required",
	FieldEmail:            "Email is required",
	FieldCountry:          "Country is required",
	FieldExistingCustomer: "This field is required",
	FieldApplication:      "Application is required",
	FieldHowHeard:         "This field is required",
	FieldConsent:          "You must consent to data collection",
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		oneOf := func(list []string) validator.Func {
			return func(fl validator.FieldLevel) bool {
				return contains(list, fl.Field().String())
			}
		}
		_ = v.RegisterValidation("country", oneOf(Countries))
		_ = v.RegisterValidation("customer", oneOf(CustomerOptions))
		_ = v.RegisterValidation("application", oneOf(Applications))
		_ = v.RegisterValidation("heard", oneOf(HowHeardOptions))
		validate = v
	})
	return validate
}

// Normalized returns a copy with surrounding whitespace removed.
func (f Form) Normalized() Form {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Organization = strings.TrimSpace(f.Organization)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Email = strings.TrimSpace(f.Email)
	f.Country = strings.TrimSpace(f.Country)
	f.ExistingCustomer = strings.TrimSpace(f.ExistingCustomer)
	f.Application = strings.TrimSpace(f.Application)
	f.HowHeard = strings.TrimSpace(f.HowHeard)
	f.Questions = strings.TrimSpace(f.Questions)
	return f
}

// Validate checks the normalized form. The returned error is a
// SubmissionError of kind InvalidLead whose Fields map field names to
// user-facing messages.
func (f Form) Validate() error {
	err := formValidator().Struct(f.Normalized())
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.NewSubmissionError("invalid lead", errors.InvalidLead, nil, err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if _, seen := fields[name]; seen {
			continue
		}
		fields[name] = message(name, fe.Tag())
	}
	return errors.NewSubmissionError("invalid lead", errors.InvalidLead, fields, nil)
}

func message(field, tag string) string {
	switch tag {
	case "required":
		if msg, ok := requiredMessages[field]; ok {
			return msg
		}
		return "This field is required"
	case "email":
		return "Email is invalid"
	default:
		return "Select a valid option"
	}
}

// Reset clears the form.
func (f *Form) Reset() {
	*f = Form{}
}
