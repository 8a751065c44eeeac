package lead_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"orbiter/internal/errors"
	"orbiter/internal/lead"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm() lead.Form {
	return lead.Form{
		FirstName:        "Ada",
		LastName:         "Lovelace",
		Organization:     "Analytical Engines",
		Email:            "ada@example.com",
		Country:          "United Kingdom",
		ExistingCustomer: "No",
		Application:      "Public Safety",
		HowHeard:         "Tradeshow",
		Consent:          true,
	}
}

func TestValidateEmptyForm(t *testing.T) {
	err := lead.Form{}.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidLead(err))

	fields := errors.FieldErrors(err)
	assert.Equal(t, map[string]string{
		lead.FieldFirstName:        "First name is required",
		lead.FieldLastName:         "Last name is required",
		lead.FieldOrganization:     "Organization is required",
		lead.FieldEmail:            "Email is required",
		lead.FieldCountry:          "Country is required",
		lead.FieldExistingCustomer: "This field is required",
		lead.FieldApplication:      "Application is required",
		lead.FieldHowHeard:         "This field is required",
		lead.FieldConsent:          "You must consent to data collection",
	}, fields)
}

func TestValidateFieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*lead.Form)
		field  string
		msg    string
	}{
		{"bad email", func(f *lead.Form) { f.Email = "ada-at-example" }, lead.FieldEmail, "Email is invalid"},
		{"blank name", func(f *lead.Form) { f.FirstName = "   " }, lead.FieldFirstName, "First name is required"},
		{"unknown country", func(f *lead.Form) { f.Country = "Atlantis" }, lead.FieldCountry, "Select a valid option"},
		{"unknown application", func(f *lead.Form) { f.Application = "Gaming" }, lead.FieldApplication, "Select a valid option"},
		{"no consent", func(f *lead.Form) { f.Consent = false }, lead.FieldConsent, "You must consent to data collection"},
	}
	require.NoError(t, validForm().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			err := f.Validate()
			require.Error(t, err)
			fields := errors.FieldErrors(err)
			assert.Len(t, fields, 1)
			assert.Equal(t, tt.msg, fields[tt.field])
		})
	}
}

func TestSubmit(t *testing.T) {
	var got map[string]interface{}
	var contentType, idemKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		contentType = r.Header.Get("Content-Type")
		idemKey = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	form := validForm()
	form.FirstName = "  Ada  "
	client := lead.NewClient(srv.URL, time.Second)
	receipt, err := client.Submit(context.Background(), form)
	require.NoError(t, err)

	_, err = uuid.Parse(receipt.ID)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, receipt.StatusCode)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, receipt.ID, idemKey)
	assert.Equal(t, receipt.ID, got["submission_id"])
	assert.Equal(t, "Ada", got["firstName"])
	assert.Equal(t, "Public Safety", got["application"])
	assert.Equal(t, true, got["consent"])
	assert.Equal(t, false, got["newsletter"])
}

func TestSubmitInvalidFormSkipsRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := lead.NewClient(srv.URL, time.Second).Submit(context.Background(), lead.Form{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidLead(err))
	assert.False(t, called)
}

func TestSubmitFailures(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := lead.NewClient(srv.URL, time.Second).Submit(context.Background(), validForm())
		require.Error(t, err)
		var subErr *errors.SubmissionError
		require.True(t, errors.As(err, &subErr))
		assert.Equal(t, errors.SubmissionFailed, subErr.Kind())
		assert.Contains(t, err.Error(), "500")
		assert.False(t, errors.IsInvalidLead(err))
	})

	t.Run("cancelled context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := lead.NewClient(srv.URL, time.Second).Submit(ctx, validForm())
		require.Error(t, err)
		assert.Contains(t, err.Error(), lead.FailureMessage)
	})
}
