package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendOTPEmailNotConfigured(t *testing.T) {
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SMTP_USER", "")
	t.Setenv("SMTP_PASSWORD", "")

	err := SendOTPEmail("a@x.com", "123456")
	assert.True(t, errors.Is(err, ErrMailerNotConfigured))
	assert.Equal(t, "Email service is not configured", err.Error())
}

func TestSendOTPEmailPartialConfig(t *testing.T) {
	// A host without credentials is still unconfigured.
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USER", "")
	t.Setenv("SMTP_PASSWORD", "")

	err := SendOTPEmail("a@x.com", "123456")
	assert.True(t, errors.Is(err, ErrMailerNotConfigured))
}
