// models/auth.go
package models

// SignupOTPRequest starts the email OTP signup flow.
type SignupOTPRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// VerifyOTPRequest completes the signup flow with the emailed code.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required"`
	OTP   string `json:"otp" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the session token alongside the public identity.
type LoginResponse struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}
