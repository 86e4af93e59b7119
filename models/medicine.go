// models/medicine.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Medicine type categories
const (
	MedicineTypeInjections = "injections"
	MedicineTypeTablet     = "tablet"
	MedicineTypeSyrup      = "syrup"
	MedicineTypeSkinCare   = "skin-care"
	MedicineTypeHair       = "hair"
	MedicineTypeDrip       = "drip"
)

// Payment types for purchases
const (
	PaymentTypeCredit      = "credit"
	PaymentTypeFullPayment = "full_payment"
)

// Quantity accounting modes, used only for tablet purchases
const (
	QuantityTypeBox    = "box"
	QuantityTypeStrips = "strips"
)

// Purchase status values. Records created before the status field existed
// carry no status at all and are treated as active.
const (
	PurchaseStatusActive  = "active"
	PurchaseStatusDeleted = "deleted"
)

// MedicineType is a catalog entry. Which descriptive fields are set
// depends on the category; see services.BuildMedicineType.
type MedicineType struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID        primitive.ObjectID `json:"user,omitempty" bson:"user,omitempty"`
	CompanyName   string             `json:"companyName" bson:"companyName"`
	Type          string             `json:"type" bson:"type"`
	ProductName   string             `json:"productName,omitempty" bson:"productName,omitempty"`
	Ml            string             `json:"ml,omitempty" bson:"ml,omitempty"`
	Gram          string             `json:"gram,omitempty" bson:"gram,omitempty"`
	CreamOrLotion string             `json:"creamOrLotion,omitempty" bson:"creamOrLotion,omitempty"`
	Unit          string             `json:"unit,omitempty" bson:"unit,omitempty"`
	DripDetails   string             `json:"dripDetails,omitempty" bson:"dripDetails,omitempty"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// MedicineTypeRequest is the create/update payload for catalog entries.
// sypName and tabName feed productName for their categories.
type MedicineTypeRequest struct {
	CompanyName   string `json:"companyName"`
	Type          string `json:"type"`
	SypName       string `json:"sypName"`
	TabName       string `json:"tabName"`
	ProductName   string `json:"productName"`
	Ml            string `json:"ml"`
	Gram          string `json:"gram"`
	CreamOrLotion string `json:"creamOrLotion"`
	Unit          string `json:"unit"`
	DripDetails   string `json:"dripDetails"`
}

// MedicinePurchase is a purchase transaction owned by a single user.
// Tablet purchases carry box or strips accounting with a derived per-piece
// price; every other category carries a directly supplied total quantity
// and per-piece price.
type MedicinePurchase struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID         primitive.ObjectID `json:"user" bson:"user"`
	MedicineTypeID primitive.ObjectID `json:"-" bson:"medicineType"`
	MedicineType   *MedicineType      `json:"medicineType,omitempty" bson:"-"`
	PaymentType    string             `json:"paymentType" bson:"paymentType"`
	SupplierName   string             `json:"supplierName" bson:"supplierName"`
	SupplierNumber string             `json:"supplierNumber" bson:"supplierNumber"`
	ExpiryDate     *time.Time         `json:"expiryDate" bson:"expiryDate"`

	QuantityType   string   `json:"quantityType,omitempty" bson:"quantityType,omitempty"`
	BoxQuantity    *float64 `json:"boxQuantity,omitempty" bson:"boxQuantity,omitempty"`
	PiecesPerBox   *float64 `json:"piecesPerBox,omitempty" bson:"piecesPerBox,omitempty"`
	BoxPrice       *float64 `json:"boxPrice,omitempty" bson:"boxPrice,omitempty"`
	StripsQuantity *float64 `json:"stripsQuantity,omitempty" bson:"stripsQuantity,omitempty"`
	PiecesPerStrip *float64 `json:"piecesPerStrip,omitempty" bson:"piecesPerStrip,omitempty"`
	StripPrice     *float64 `json:"stripPrice,omitempty" bson:"stripPrice,omitempty"`

	PerPiecePrice float64  `json:"perPiecePrice" bson:"perPiecePrice"`
	TotalQuantity *float64 `json:"totalQuantity,omitempty" bson:"totalQuantity,omitempty"`

	Status    string    `json:"status,omitempty" bson:"status,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// MedicinePurchaseRequest is the create/update payload for purchases.
// Numeric fields are pointers so "absent" and "zero" stay distinguishable.
type MedicinePurchaseRequest struct {
	PaymentType    string   `json:"paymentType"`
	SupplierName   string   `json:"supplierName"`
	SupplierNumber string   `json:"supplierNumber"`
	MedicineType   string   `json:"medicineType"`
	ExpiryDate     string   `json:"expiryDate"`
	QuantityType   string   `json:"quantityType"`
	BoxQuantity    *float64 `json:"boxQuantity"`
	PiecesPerBox   *float64 `json:"piecesPerBox"`
	BoxPrice       *float64 `json:"boxPrice"`
	StripsQuantity *float64 `json:"stripsQuantity"`
	PiecesPerStrip *float64 `json:"piecesPerStrip"`
	StripPrice     *float64 `json:"stripPrice"`
	TotalQuantity  *float64 `json:"totalQuantity"`
	PerPiecePrice  *float64 `json:"perPiecePrice"`
}
