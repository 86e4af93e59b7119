package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ibrahimbusiness24525/Pharmacy-Backend/controllers"
	"github.com/ibrahimbusiness24525/Pharmacy-Backend/middleware"
)

// RegisterMedicineRoutes sets up the owner-scoped catalog and purchase
// routes behind JWT authentication.
func RegisterMedicineRoutes(e *echo.Echo, db *mongo.Client) {
	medicineTypeController := controllers.NewMedicineTypeController(db)
	medicinePurchaseController := controllers.NewMedicinePurchaseController(db)

	medicineTypes := e.Group("/api/medicine-type")
	medicineTypes.Use(middleware.JWTMiddleware())
	medicineTypes.POST("", medicineTypeController.CreateMedicineType)
	medicineTypes.GET("", medicineTypeController.GetAllMedicineTypes)
	medicineTypes.PUT("/:id", medicineTypeController.UpdateMedicineType)
	medicineTypes.DELETE("/:id", medicineTypeController.DeleteMedicineType)

	medicinePurchases := e.Group("/api/medicine-purchase")
	medicinePurchases.Use(middleware.JWTMiddleware())
	medicinePurchases.POST("", medicinePurchaseController.CreateMedicinePurchase)
	medicinePurchases.GET("", medicinePurchaseController.GetAllMedicinePurchases)
	medicinePurchases.GET("/:id", medicinePurchaseController.GetMedicinePurchase)
	medicinePurchases.PUT("/:id", medicinePurchaseController.UpdateMedicinePurchase)
	medicinePurchases.DELETE("/:id", medicinePurchaseController.SoftDeleteMedicinePurchase)
}
