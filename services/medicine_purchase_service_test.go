package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibrahimbusiness24525/Pharmacy-Backend/models"
)

func floatPtr(v float64) *float64 { return &v }

func validTabletBoxRequest() *models.MedicinePurchaseRequest {
	return &models.MedicinePurchaseRequest{
		PaymentType:  models.PaymentTypeCredit,
		MedicineType: "64f000000000000000000001",
		QuantityType: models.QuantityTypeBox,
		BoxQuantity:  floatPtr(2),
		PiecesPerBox: floatPtr(10),
		BoxPrice:     floatPtr(100),
	}
}

func TestBuildPurchaseFieldsBoxPricing(t *testing.T) {
	purchase, err := BuildPurchaseFields(validTabletBoxRequest(), true)
	require.NoError(t, err)

	assert.Equal(t, models.QuantityTypeBox, purchase.QuantityType)
	assert.Equal(t, 5.0, purchase.PerPiecePrice)
	assert.Equal(t, 2.0, *purchase.BoxQuantity)
	assert.Equal(t, 10.0, *purchase.PiecesPerBox)
	assert.Equal(t, 100.0, *purchase.BoxPrice)

	// The unused accounting mode stays unset.
	assert.Nil(t, purchase.StripsQuantity)
	assert.Nil(t, purchase.PiecesPerStrip)
	assert.Nil(t, purchase.StripPrice)
	assert.Nil(t, purchase.TotalQuantity)
}

func TestBuildPurchaseFieldsStripsPricing(t *testing.T) {
	purchase, err := BuildPurchaseFields(&models.MedicinePurchaseRequest{
		PaymentType:    models.PaymentTypeFullPayment,
		MedicineType:   "64f000000000000000000001",
		QuantityType:   models.QuantityTypeStrips,
		StripsQuantity: floatPtr(3),
		PiecesPerStrip: floatPtr(10),
		StripPrice:     floatPtr(60),
	}, true)
	require.NoError(t, err)

	assert.Equal(t, models.QuantityTypeStrips, purchase.QuantityType)
	assert.Equal(t, 2.0, purchase.PerPiecePrice)
	assert.Nil(t, purchase.BoxQuantity)
	assert.Nil(t, purchase.PiecesPerBox)
	assert.Nil(t, purchase.BoxPrice)
}

func TestBuildPurchaseFieldsNonTablet(t *testing.T) {
	purchase, err := BuildPurchaseFields(&models.MedicinePurchaseRequest{
		PaymentType:    models.PaymentTypeCredit,
		MedicineType:   "64f000000000000000000001",
		SupplierName:   "  MedSupply  ",
		SupplierNumber: " 555-0100 ",
		TotalQuantity:  floatPtr(50),
		PerPiecePrice:  floatPtr(2.5),
	}, false)
	require.NoError(t, err)

	// Values pass through exactly as supplied.
	assert.Equal(t, 50.0, *purchase.TotalQuantity)
	assert.Equal(t, 2.5, purchase.PerPiecePrice)
	assert.Equal(t, "MedSupply", purchase.SupplierName)
	assert.Equal(t, "555-0100", purchase.SupplierNumber)
	assert.Empty(t, purchase.QuantityType)
	assert.Nil(t, purchase.BoxQuantity)
	assert.Nil(t, purchase.StripsQuantity)
}

func TestBuildPurchaseFieldsNonTabletFreePrice(t *testing.T) {
	// A per-piece price of exactly zero is allowed.
	purchase, err := BuildPurchaseFields(&models.MedicinePurchaseRequest{
		PaymentType:   models.PaymentTypeCredit,
		MedicineType:  "64f000000000000000000001",
		TotalQuantity: floatPtr(10),
		PerPiecePrice: floatPtr(0),
	}, false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, purchase.PerPiecePrice)
}

func TestBuildPurchaseFieldsValidationFailures(t *testing.T) {
	tests := []struct {
		name     string
		req      *models.MedicinePurchaseRequest
		isTablet bool
		message  string
	}{
		{
			name:    "missing payment type",
			req:     &models.MedicinePurchaseRequest{MedicineType: "64f000000000000000000001"},
			message: "Payment type and medicine type are required",
		},
		{
			name:    "missing medicine type",
			req:     &models.MedicinePurchaseRequest{PaymentType: models.PaymentTypeCredit},
			message: "Payment type and medicine type are required",
		},
		{
			name:    "bad payment type",
			req:     &models.MedicinePurchaseRequest{PaymentType: "installments", MedicineType: "64f000000000000000000001"},
			message: "Payment type must be credit or full_payment",
		},
		{
			name:     "tablet without quantity type",
			req:      &models.MedicinePurchaseRequest{PaymentType: models.PaymentTypeCredit, MedicineType: "64f000000000000000000001"},
			isTablet: true,
			message:  "Quantity type (box or strips) is required when medicine type is tablet",
		},
		{
			name: "box missing price",
			req: &models.MedicinePurchaseRequest{
				PaymentType:  models.PaymentTypeCredit,
				MedicineType: "64f000000000000000000001",
				QuantityType: models.QuantityTypeBox,
				BoxQuantity:  floatPtr(2),
				PiecesPerBox: floatPtr(10),
			},
			isTablet: true,
			message:  "Box quantity, pieces per box, and box price are required when quantity type is box",
		},
		{
			name: "box zero pieces",
			req: &models.MedicinePurchaseRequest{
				PaymentType:  models.PaymentTypeCredit,
				MedicineType: "64f000000000000000000001",
				QuantityType: models.QuantityTypeBox,
				BoxQuantity:  floatPtr(0),
				PiecesPerBox: floatPtr(10),
				BoxPrice:     floatPtr(100),
			},
			isTablet: true,
			message:  "Box quantity × pieces per box must be greater than 0",
		},
		{
			name: "strips missing fields",
			req: &models.MedicinePurchaseRequest{
				PaymentType:    models.PaymentTypeCredit,
				MedicineType:   "64f000000000000000000001",
				QuantityType:   models.QuantityTypeStrips,
				StripsQuantity: floatPtr(3),
			},
			isTablet: true,
			message:  "Strips quantity, pieces per strip, and strip price are required when quantity type is strips",
		},
		{
			name: "strips zero pieces",
			req: &models.MedicinePurchaseRequest{
				PaymentType:    models.PaymentTypeCredit,
				MedicineType:   "64f000000000000000000001",
				QuantityType:   models.QuantityTypeStrips,
				StripsQuantity: floatPtr(0),
				PiecesPerStrip: floatPtr(10),
				StripPrice:     floatPtr(60),
			},
			isTablet: true,
			message:  "Strips quantity × pieces per strip must be greater than 0",
		},
		{
			name: "non-tablet missing total quantity",
			req: &models.MedicinePurchaseRequest{
				PaymentType:   models.PaymentTypeCredit,
				MedicineType:  "64f000000000000000000001",
				PerPiecePrice: floatPtr(1),
			},
			message: "Total quantity is required and must be greater than 0 for this medicine type",
		},
		{
			name: "non-tablet zero total quantity",
			req: &models.MedicinePurchaseRequest{
				PaymentType:   models.PaymentTypeCredit,
				MedicineType:  "64f000000000000000000001",
				TotalQuantity: floatPtr(0),
				PerPiecePrice: floatPtr(1),
			},
			message: "Total quantity is required and must be greater than 0 for this medicine type",
		},
		{
			name: "non-tablet negative per-piece price",
			req: &models.MedicinePurchaseRequest{
				PaymentType:   models.PaymentTypeCredit,
				MedicineType:  "64f000000000000000000001",
				TotalQuantity: floatPtr(10),
				PerPiecePrice: floatPtr(-0.5),
			},
			message: "Per-piece price is required and must be 0 or more for this medicine type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildPurchaseFields(tt.req, tt.isTablet)
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.message, validationErr.Message)
		})
	}
}

func TestBuildPurchaseFieldsExpiryDate(t *testing.T) {
	req := validTabletBoxRequest()
	req.ExpiryDate = "2026-03-15"
	purchase, err := BuildPurchaseFields(req, true)
	require.NoError(t, err)
	require.NotNil(t, purchase.ExpiryDate)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *purchase.ExpiryDate)

	req.ExpiryDate = "2026-03-15T10:30:00Z"
	purchase, err = BuildPurchaseFields(req, true)
	require.NoError(t, err)
	require.NotNil(t, purchase.ExpiryDate)

	req.ExpiryDate = ""
	purchase, err = BuildPurchaseFields(req, true)
	require.NoError(t, err)
	assert.Nil(t, purchase.ExpiryDate)

	req.ExpiryDate = "next spring"
	_, err = BuildPurchaseFields(req, true)
	require.Error(t, err)
	assert.Equal(t, "Invalid expiry date", err.Error())
}
