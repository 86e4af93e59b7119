// controllers/auth_controller.go
package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ibrahimbusiness24525/Pharmacy-Backend/config"
	"github.com/ibrahimbusiness24525/Pharmacy-Backend/middleware"
	"github.com/ibrahimbusiness24525/Pharmacy-Backend/models"
	"github.com/ibrahimbusiness24525/Pharmacy-Backend/repositories"
	"github.com/ibrahimbusiness24525/Pharmacy-Backend/services"
	"github.com/ibrahimbusiness24525/Pharmacy-Backend/utils"
)

// AuthController handles the email OTP signup flow and login.
type AuthController struct {
	DB     *mongo.Client
	users  *repositories.UserRepository
	logger *log.Logger
}

// NewAuthController creates a new auth controller
func NewAuthController(db *mongo.Client) *AuthController {
	return &AuthController{
		DB:     db,
		users:  repositories.NewUserRepository(db),
		logger: log.New(os.Stdout, "[AUTH] ", log.LstdFlags),
	}
}

func (ac *AuthController) otpCollection() *mongo.Collection {
	return config.GetCollection(ac.DB, "otps")
}

// RequestSignupOTP validates the signup payload, stores a pending
// challenge for the email, and dispatches the one-time code.
func (ac *AuthController) RequestSignupOTP(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.SignupOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "All fields are required",
		})
	}
	if err := services.ValidateSignupRequest(&req); err != nil {
		return respondError(c, err, "Failed to request OTP")
	}

	email := services.NormalizeEmail(req.Email)

	if err := utils.ValidateOTPRequests(ctx, email, config.GetRedisClient()); err != nil {
		return c.JSON(http.StatusTooManyRequests, models.Response{
			Status:  http.StatusTooManyRequests,
			Message: "Too many OTP requests. Please try again later.",
		})
	}

	existing, err := ac.users.FindByEmail(ctx, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to check existing account",
		})
	}
	if existing != nil {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Email already registered",
		})
	}

	challenge, code, err := services.NewSignupChallenge(&req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate OTP",
		})
	}

	// Upsert keeps exactly one live challenge per (email, purpose);
	// repeated requests overwrite the previous code.
	_, err = ac.otpCollection().UpdateOne(
		ctx,
		bson.M{"email": challenge.Email, "purpose": challenge.Purpose},
		bson.M{
			"$set": bson.M{
				"otpHash":      challenge.OTPHash,
				"passwordHash": challenge.PasswordHash,
				"name":         challenge.Name,
				"expiresAt":    challenge.ExpiresAt,
				"updatedAt":    challenge.UpdatedAt,
			},
			"$setOnInsert": bson.M{"createdAt": challenge.CreatedAt},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to store OTP",
		})
	}

	if err := utils.SendOTPEmail(challenge.Email, code); err != nil {
		ac.logger.Printf("Signup request-otp email error: %v", err)
		if errors.Is(err, utils.ErrMailerNotConfigured) {
			return respondError(c, services.NewConfigurationError(err.Error()), "")
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to send OTP email",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "OTP sent successfully",
	})
}

// VerifySignupOTP checks the submitted code against the pending challenge
// and creates the account on success.
func (ac *AuthController) VerifySignupOTP(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Email and OTP are required",
		})
	}

	email := services.NormalizeEmail(req.Email)
	filter := bson.M{"email": email, "purpose": models.OTPPurposeSignup}

	var challenge models.EmailOTP
	err := ac.otpCollection().FindOne(ctx, filter).Decode(&challenge)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "OTP not found. Please request a new OTP.",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to look up OTP",
		})
	}

	existing, err := ac.users.FindByEmail(ctx, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to check existing account",
		})
	}

	remove, verdict := services.CheckSignupChallenge(&challenge, req.OTP, time.Now(), existing != nil)
	if remove {
		if _, err := ac.otpCollection().DeleteOne(ctx, filter); err != nil {
			ac.logger.Printf("Failed to remove OTP challenge for %s: %v", email, err)
		}
	}
	if verdict != nil {
		return respondError(c, verdict, "Failed to verify OTP")
	}

	user := services.AccountFromChallenge(&challenge)
	if err := ac.users.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// The unique email index caught a concurrent signup.
			ac.otpCollection().DeleteOne(ctx, filter)
			return c.JSON(http.StatusConflict, models.Response{
				Status:  http.StatusConflict,
				Message: "Email already registered",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create account",
		})
	}

	if _, err := ac.otpCollection().DeleteOne(ctx, filter); err != nil {
		ac.logger.Printf("Failed to remove verified OTP challenge for %s: %v", email, err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "User registered successfully",
		Data:    user.Public(),
	})
}

// Login checks credentials and issues a session token.
func (ac *AuthController) Login(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Email and password are required",
		})
	}

	user, err := ac.users.FindByEmail(ctx, services.NormalizeEmail(req.Email))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to look up account",
		})
	}
	if user == nil || !services.CheckPassword(user.Password, req.Password) {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid credentials",
		})
	}

	token, err := middleware.GenerateJWT(user.ID.Hex(), user.Email)
	if err != nil {
		ac.logger.Printf("Failed to sign session token: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create session",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Logged in successfully",
		Data: models.LoginResponse{
			User:  user.Public(),
			Token: token,
		},
	})
}
