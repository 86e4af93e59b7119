// services/auth_service.go
package services

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ibrahimbusiness24525/Pharmacy-Backend/models"
	"github.com/ibrahimbusiness24525/Pharmacy-Backend/utils"
)

const (
	// OTPValidity is how long a signup challenge stays verifiable.
	OTPValidity = 10 * time.Minute

	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 6
)

// NormalizeEmail lowercases and trims an email address. All account and
// challenge lookups key on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateSignupRequest checks the signup payload before any challenge is
// created.
func ValidateSignupRequest(req *models.SignupOTPRequest) error {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.ConfirmPassword == "" {
		return NewValidationError("All fields are required")
	}
	if req.Password != req.ConfirmPassword {
		return NewValidationError("Passwords do not match")
	}
	if len(req.Password) < MinPasswordLength {
		return NewValidationError("Password must be at least 6 characters long")
	}
	return nil
}

// NewSignupChallenge builds a pending OTP challenge for the request and
// returns it with the plaintext code to email. Both the code and the
// password are stored hashed only.
func NewSignupChallenge(req *models.SignupOTPRequest) (*models.EmailOTP, string, error) {
	code, err := utils.GenerateOTP()
	if err != nil {
		return nil, "", err
	}

	otpHash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	challenge := &models.EmailOTP{
		Email:        NormalizeEmail(req.Email),
		Purpose:      models.OTPPurposeSignup,
		OTPHash:      string(otpHash),
		PasswordHash: string(passwordHash),
		Name:         strings.TrimSpace(req.Name),
		ExpiresAt:    now.Add(OTPValidity),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return challenge, code, nil
}

// CheckSignupChallenge decides the verification verdict for a stored
// challenge. It reports whether the challenge must be removed from the
// store regardless of the verdict, and the typed failure if verification
// cannot proceed. A nil error with remove=false means the account may be
// created; the caller deletes the challenge after that succeeds.
func CheckSignupChallenge(challenge *models.EmailOTP, code string, now time.Time, emailTaken bool) (remove bool, err error) {
	if now.After(challenge.ExpiresAt) {
		return true, NewValidationError("OTP expired. Please request a new OTP.")
	}
	if bcrypt.CompareHashAndPassword([]byte(challenge.OTPHash), []byte(code)) != nil {
		return false, NewAuthenticationError("Invalid OTP")
	}
	if emailTaken {
		// Lost the race with a concurrent signup for the same email.
		return true, NewConflictError("Email already registered")
	}
	if challenge.PasswordHash == "" {
		return true, NewValidationError("Signup data missing. Please sign up again.")
	}
	return false, nil
}

// AccountFromChallenge materializes the account a verified challenge was
// created for.
func AccountFromChallenge(challenge *models.EmailOTP) *models.User {
	name := challenge.Name
	if name == "" {
		name = "User"
	}
	now := time.Now()
	return &models.User{
		Name:      name,
		Email:     challenge.Email,
		Password:  challenge.PasswordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CheckPassword compares a plaintext password against a stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
