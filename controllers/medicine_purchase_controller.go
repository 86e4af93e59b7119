// controllers/medicine_purchase_controller.go
package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ibrahimbusiness24525/Pharmacy-Backend/models"
	"github.com/ibrahimbusiness24525/Pharmacy-Backend/services"
)

// MedicinePurchaseController handles the purchase CRUD endpoints.
type MedicinePurchaseController struct {
	service *services.MedicinePurchaseService
}

func NewMedicinePurchaseController(db *mongo.Client) *MedicinePurchaseController {
	return &MedicinePurchaseController{service: services.NewMedicinePurchaseService(db)}
}

// CreateMedicinePurchase records a new purchase with derived pricing.
func (pc *MedicinePurchaseController) CreateMedicinePurchase(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Authentication required",
		})
	}

	var req models.MedicinePurchaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	purchase, err := pc.service.Create(ctx, userID, &req)
	if err != nil {
		return respondError(c, err, "Failed to create medicine purchase")
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Medicine purchase created successfully",
		Data:    purchase,
	})
}

// GetAllMedicinePurchases lists the owner's active purchases, newest
// first.
func (pc *MedicinePurchaseController) GetAllMedicinePurchases(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Authentication required",
		})
	}

	purchases, err := pc.service.List(ctx, userID)
	if err != nil {
		return respondError(c, err, "Failed to retrieve medicine purchases")
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Medicine purchases retrieved successfully",
		Data:    purchases,
	})
}

// GetMedicinePurchase returns one active purchase by id.
func (pc *MedicinePurchaseController) GetMedicinePurchase(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Authentication required",
		})
	}

	purchase, err := pc.service.GetByID(ctx, userID, c.Param("id"))
	if err != nil {
		return respondError(c, err, "Failed to retrieve purchase")
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Purchase retrieved successfully",
		Data:    purchase,
	})
}

// UpdateMedicinePurchase re-validates and replaces a purchase's fields.
func (pc *MedicinePurchaseController) UpdateMedicinePurchase(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Authentication required",
		})
	}

	var req models.MedicinePurchaseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	purchase, err := pc.service.Update(ctx, userID, c.Param("id"), &req)
	if err != nil {
		return respondError(c, err, "Failed to update purchase")
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Purchase updated successfully",
		Data:    purchase,
	})
}

// SoftDeleteMedicinePurchase marks a purchase deleted without removing the
// record.
func (pc *MedicinePurchaseController) SoftDeleteMedicinePurchase(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Authentication required",
		})
	}

	if err := pc.service.SoftDelete(ctx, userID, c.Param("id")); err != nil {
		return respondError(c, err, "Failed to delete purchase")
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Purchase deleted successfully",
	})
}
