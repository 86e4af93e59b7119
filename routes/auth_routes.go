package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ibrahimbusiness24525/Pharmacy-Backend/controllers"
)

// RegisterAuthRoutes sets up the public authentication routes
func RegisterAuthRoutes(e *echo.Echo, db *mongo.Client) {
	authController := controllers.NewAuthController(db)

	e.POST("/api/auth/signup/request-otp", authController.RequestSignupOTP)
	e.POST("/api/auth/signup/verify-otp", authController.VerifySignupOTP)
	e.POST("/api/auth/login", authController.Login)
}
