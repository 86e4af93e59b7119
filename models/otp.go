// models/otp.go
package models

import (
	"time"
)

// OTP purposes. Only signup is exercised today; login is reserved.
const (
	OTPPurposeSignup = "signup"
	OTPPurposeLogin  = "login"
)

// EmailOTP represents a pending OTP challenge, keyed uniquely by
// (email, purpose). For signup challenges the prospective account's name
// and pre-hashed password ride along so the account can be created in one
// step once the code is verified.
type EmailOTP struct {
	Email        string    `bson:"email"`
	Purpose      string    `bson:"purpose"`
	OTPHash      string    `bson:"otpHash"`
	PasswordHash string    `bson:"passwordHash,omitempty"`
	Name         string    `bson:"name,omitempty"`
	ExpiresAt    time.Time `bson:"expiresAt"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}
