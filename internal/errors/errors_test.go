package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	err = Newf("formatted %s", "error")
	assert.NotNil(t, err)
	assert.Equal(t, "formatted error", err.Error())

	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, "formatted error", appErr.Error())
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.NotNil(t, wrappedErr)
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())

	unwrappedErr := Unwrap(wrappedErr)
	assert.Equal(t, origErr, unwrappedErr)

	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	// Wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())
	assert.True(t, Is(deepWrapped, origErr))
}

func TestConfigError(t *testing.T) {
	configErr := NewConfigError("invalid value", "hover_close_delay", InvalidConfig, nil)
	assert.Equal(t, "invalid value: hover_close_delay", configErr.Error())
	assert.Equal(t, "hover_close_delay", configErr.Param())
	assert.Equal(t, InvalidConfig, configErr.Kind())

	origErr := fmt.Errorf("must be positive")
	configErr = NewConfigError("invalid value", "hover_close_delay", InvalidConfig, origErr)
	assert.Equal(t, "invalid value: hover_close_delay: must be positive", configErr.Error())
	assert.Equal(t, origErr, Unwrap(configErr))

	assert.Equal(t, "invalid configuration", ErrInvalidConfig.Error())
	assert.True(t, IsInvalidConfig(configErr))
	assert.False(t, IsInvalidConfig(New("some other error")))
}

func TestContentError(t *testing.T) {
	contentErr := NewContentError("duplicate id", "products", InvalidContent, nil)
	assert.Equal(t, "duplicate id: products", contentErr.Error())
	assert.Equal(t, "products", contentErr.Source())

	assert.True(t, IsInvalidContent(contentErr))
	assert.False(t, IsInvalidContent(ErrContentNotFound))
	assert.Equal(t, ContentNotFound, ErrContentNotFound.Kind())
}

func TestSubmissionError(t *testing.T) {
	subErr := NewSubmissionError("invalid lead", InvalidLead, map[string]string{
		"lastName":  "Last name is required",
		"firstName": "First name is required",
	}, nil)
	assert.Equal(t, "invalid lead: firstName, lastName", subErr.Error())
	assert.True(t, IsInvalidLead(subErr))
	assert.Equal(t, "First name is required", FieldErrors(subErr)["firstName"])

	failed := NewSubmissionError("submission failed", SubmissionFailed, nil, fmt.Errorf("status 502"))
	assert.Equal(t, "submission failed: status 502", failed.Error())
	assert.False(t, IsInvalidLead(failed))
	assert.Nil(t, FieldErrors(failed))
}

func TestErrorChains(t *testing.T) {
	baseErr := errors.New("base error")
	contentErr := NewContentError("content error", "content.yaml", ContentNotFound, baseErr)
	configErr := NewConfigError("config error", "content_file", InvalidConfig, contentErr)

	assert.Equal(t, "config error: content_file: content error: content.yaml: base error", configErr.Error())

	assert.True(t, Is(configErr, baseErr))
	assert.True(t, Is(configErr, contentErr))

	var ce *ContentError
	assert.True(t, As(configErr, &ce))
	assert.Equal(t, "content.yaml", ce.Source())
	assert.True(t, IsInvalidConfig(configErr))
}
