// controllers/medicine_type_controller.go
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

// MedicineTypeController handles the catalog CRUD endpoints.
type MedicineTypeController struct {
	service *services.MedicineTypeService
}

func NewMedicineTypeController(db *mongo.Client) *MedicineTypeController {
	return &MedicineTypeController{service: services.NewMedicineTypeService(db)}
}

// CreateMedicineType creates a new catalog entry.
func (mc *MedicineTypeController) CreateMedicineType(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Authentication required",
		})
	}

	var req models.MedicineTypeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	medicineType, err := mc.service.Create(ctx, userID, &req)
	if err != nil {
		return respondError(c, err, "Failed to create medicine type")
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Medicine type created successfully",
		Data:    medicineType,
	})
}

// GetAllMedicineTypes lists the owner's catalog entries, newest first.
func (mc *MedicineTypeController) GetAllMedicineTypes(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Authentication required",
		})
	}

	medicineTypes, err := mc.service.List(ctx, userID)
	if err != nil {
		return respondError(c, err, "Failed to retrieve medicine types")
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Medicine types retrieved successfully",
		Data:    medicineTypes,
	})
}

// UpdateMedicineType fully replaces a catalog entry's category fields.
func (mc *MedicineTypeController) UpdateMedicineType(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Authentication required",
		})
	}

	var req models.MedicineTypeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	medicineType, err := mc.service.Update(ctx, userID, c.Param("id"), &req)
	if err != nil {
		return respondError(c, err, "Failed to update medicine type")
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Medicine type updated successfully",
		Data:    medicineType,
	})
}

// DeleteMedicineType permanently removes a catalog entry.
func (mc *MedicineTypeController) DeleteMedicineType(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := currentUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Authentication required",
		})
	}

	if err := mc.service.Delete(ctx, userID, c.Param("id")); err != nil {
		return respondError(c, err, "Failed to delete medicine type")
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Medicine type deleted successfully",
	})
}
