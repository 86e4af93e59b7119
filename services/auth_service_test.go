package services

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ibrahimbusiness24525/Pharmacy-Backend/models"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.COM  "))
	assert.Equal(t, "user@example.com", NormalizeEmail("User@Example.Com"))
}

func TestValidateSignupRequest(t *testing.T) {
	valid := models.SignupOTPRequest{
		Name:            "Alex",
		Email:           "a@x.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
	require.NoError(t, ValidateSignupRequest(&valid))

	tests := []struct {
		name    string
		mutate  func(*models.SignupOTPRequest)
		message string
	}{
		{"missing name", func(r *models.SignupOTPRequest) { r.Name = "" }, "All fields are required"},
		{"missing email", func(r *models.SignupOTPRequest) { r.Email = "" }, "All fields are required"},
		{"missing password", func(r *models.SignupOTPRequest) { r.Password = "" }, "All fields are required"},
		{"missing confirmation", func(r *models.SignupOTPRequest) { r.ConfirmPassword = "" }, "All fields are required"},
		{"mismatch", func(r *models.SignupOTPRequest) { r.ConfirmPassword = "secret2" }, "Passwords do not match"},
		{"too short", func(r *models.SignupOTPRequest) { r.Password = "abc"; r.ConfirmPassword = "abc" }, "Password must be at least 6 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := ValidateSignupRequest(&req)
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.message, validationErr.Message)
		})
	}
}

func TestNewSignupChallenge(t *testing.T) {
	challenge, code, err := NewSignupChallenge(&models.SignupOTPRequest{
		Name:            "  Alex  ",
		Email:           " A@X.com ",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), code)
	assert.Equal(t, "a@x.com", challenge.Email)
	assert.Equal(t, models.OTPPurposeSignup, challenge.Purpose)
	assert.Equal(t, "Alex", challenge.Name)

	// Neither the code nor the password is stored in the clear.
	assert.NotEqual(t, code, challenge.OTPHash)
	assert.NotEqual(t, "secret1", challenge.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(challenge.OTPHash), []byte(code)))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(challenge.PasswordHash), []byte("secret1")))

	remaining := time.Until(challenge.ExpiresAt)
	assert.Greater(t, remaining, 9*time.Minute)
	assert.LessOrEqual(t, remaining, OTPValidity)
}

func testChallenge(t *testing.T, code string) *models.EmailOTP {
	t.Helper()
	otpHash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	require.NoError(t, err)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.EmailOTP{
		Email:        "a@x.com",
		Purpose:      models.OTPPurposeSignup,
		OTPHash:      string(otpHash),
		PasswordHash: string(passwordHash),
		Name:         "Alex",
		ExpiresAt:    time.Now().Add(OTPValidity),
	}
}

func TestCheckSignupChallengeSuccess(t *testing.T) {
	challenge := testChallenge(t, "123456")
	remove, err := CheckSignupChallenge(challenge, "123456", time.Now(), false)
	assert.NoError(t, err)
	assert.False(t, remove)
}

func TestCheckSignupChallengeExpired(t *testing.T) {
	challenge := testChallenge(t, "123456")
	remove, err := CheckSignupChallenge(challenge, "123456", challenge.ExpiresAt.Add(time.Second), false)
	require.Error(t, err)
	assert.True(t, remove)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "OTP expired. Please request a new OTP.", validationErr.Message)
}

func TestCheckSignupChallengeWrongCode(t *testing.T) {
	challenge := testChallenge(t, "123456")
	remove, err := CheckSignupChallenge(challenge, "654321", time.Now(), false)
	require.Error(t, err)
	// A wrong guess must not burn the challenge.
	assert.False(t, remove)

	var authErr *AuthenticationError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, "Invalid OTP", authErr.Message)
}

func TestCheckSignupChallengeEmailTaken(t *testing.T) {
	challenge := testChallenge(t, "123456")
	remove, err := CheckSignupChallenge(challenge, "123456", time.Now(), true)
	require.Error(t, err)
	assert.True(t, remove)

	var conflictErr *ConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.Equal(t, "Email already registered", conflictErr.Message)
}

func TestCheckSignupChallengeMissingPassword(t *testing.T) {
	challenge := testChallenge(t, "123456")
	challenge.PasswordHash = ""
	remove, err := CheckSignupChallenge(challenge, "123456", time.Now(), false)
	require.Error(t, err)
	assert.True(t, remove)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "Signup data missing. Please sign up again.", validationErr.Message)
}

func TestAccountFromChallenge(t *testing.T) {
	challenge := testChallenge(t, "123456")
	user := AccountFromChallenge(challenge)
	assert.Equal(t, "Alex", user.Name)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, challenge.PasswordHash, user.Password)

	challenge.Name = ""
	user = AccountFromChallenge(challenge)
	assert.Equal(t, "User", user.Name)
}

func TestCheckPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, CheckPassword(string(hash), "secret1"))
	assert.False(t, CheckPassword(string(hash), "secret2"))
	assert.False(t, CheckPassword("not-a-hash", "secret1"))
}
