// services/medicine_purchase_service.go
package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ibrahimbusiness24525/Pharmacy-Backend/config"
	"github.com/ibrahimbusiness24525/Pharmacy-Backend/models"
)

// BuildPurchaseFields validates the purchase payload and derives pricing.
// For tablet purchases the per-piece price is always computed from the
// selected box/strips accounting, never taken from the request; for every
// other category the total quantity and per-piece price come straight from
// the request. Owner, medicine type reference, status, and timestamps are
// the caller's job.
func BuildPurchaseFields(req *models.MedicinePurchaseRequest, isTablet bool) (*models.MedicinePurchase, error) {
	if req.PaymentType == "" || req.MedicineType == "" {
		return nil, NewValidationError("Payment type and medicine type are required")
	}
	if req.PaymentType != models.PaymentTypeCredit && req.PaymentType != models.PaymentTypeFullPayment {
		return nil, NewValidationError("Payment type must be credit or full_payment")
	}

	expiryDate, err := parseExpiryDate(req.ExpiryDate)
	if err != nil {
		return nil, err
	}

	purchase := &models.MedicinePurchase{
		PaymentType:    req.PaymentType,
		SupplierName:   strings.TrimSpace(req.SupplierName),
		SupplierNumber: strings.TrimSpace(req.SupplierNumber),
		ExpiryDate:     expiryDate,
	}

	if isTablet {
		switch req.QuantityType {
		case models.QuantityTypeBox:
			if req.BoxQuantity == nil || req.PiecesPerBox == nil || req.BoxPrice == nil {
				return nil, NewValidationError("Box quantity, pieces per box, and box price are required when quantity type is box")
			}
			totalPieces := *req.BoxQuantity * *req.PiecesPerBox
			if totalPieces <= 0 {
				return nil, NewValidationError("Box quantity × pieces per box must be greater than 0")
			}
			purchase.QuantityType = models.QuantityTypeBox
			purchase.BoxQuantity = req.BoxQuantity
			purchase.PiecesPerBox = req.PiecesPerBox
			purchase.BoxPrice = req.BoxPrice
			purchase.PerPiecePrice = *req.BoxPrice / totalPieces
		case models.QuantityTypeStrips:
			if req.StripsQuantity == nil || req.PiecesPerStrip == nil || req.StripPrice == nil {
				return nil, NewValidationError("Strips quantity, pieces per strip, and strip price are required when quantity type is strips")
			}
			totalPieces := *req.StripsQuantity * *req.PiecesPerStrip
			if totalPieces <= 0 {
				return nil, NewValidationError("Strips quantity × pieces per strip must be greater than 0")
			}
			purchase.QuantityType = models.QuantityTypeStrips
			purchase.StripsQuantity = req.StripsQuantity
			purchase.PiecesPerStrip = req.PiecesPerStrip
			purchase.StripPrice = req.StripPrice
			purchase.PerPiecePrice = *req.StripPrice / totalPieces
		default:
			return nil, NewValidationError("Quantity type (box or strips) is required when medicine type is tablet")
		}
	} else {
		if req.TotalQuantity == nil || *req.TotalQuantity <= 0 {
			return nil, NewValidationError("Total quantity is required and must be greater than 0 for this medicine type")
		}
		if req.PerPiecePrice == nil || *req.PerPiecePrice < 0 {
			return nil, NewValidationError("Per-piece price is required and must be 0 or more for this medicine type")
		}
		purchase.TotalQuantity = req.TotalQuantity
		purchase.PerPiecePrice = *req.PerPiecePrice
	}

	return purchase, nil
}

func parseExpiryDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}
	return nil, NewValidationError("Invalid expiry date")
}

// activeOwnedFilter matches a purchase by id and owner that is either
// explicitly active or predates the status field.
func activeOwnedFilter(id, userID primitive.ObjectID) bson.M {
	filter := activePurchasesFilter(userID)
	filter["_id"] = id
	return filter
}

func activePurchasesFilter(userID primitive.ObjectID) bson.M {
	return bson.M{
		"user": userID,
		"$or": []bson.M{
			{"status": models.PurchaseStatusActive},
			{"status": bson.M{"$exists": false}},
		},
	}
}

// MedicinePurchaseService manages purchase records and their pricing.
type MedicinePurchaseService struct {
	DB    *mongo.Client
	types *MedicineTypeService
}

func NewMedicinePurchaseService(db *mongo.Client) *MedicinePurchaseService {
	return &MedicinePurchaseService{
		DB:    db,
		types: NewMedicineTypeService(db),
	}
}

func (s *MedicinePurchaseService) collection() *mongo.Collection {
	return config.GetCollection(s.DB, "medicinePurchases")
}

// Create validates the payload against the referenced medicine type and
// stores the purchase.
func (s *MedicinePurchaseService) Create(ctx context.Context, userID primitive.ObjectID, req *models.MedicinePurchaseRequest) (*models.MedicinePurchase, error) {
	if req.PaymentType == "" || req.MedicineType == "" {
		return nil, NewValidationError("Payment type and medicine type are required")
	}

	medicineType, err := s.types.FindOwned(ctx, userID, req.MedicineType)
	if err != nil {
		return nil, err
	}

	purchase, err := BuildPurchaseFields(req, medicineType.Type == models.MedicineTypeTablet)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	purchase.UserID = userID
	purchase.MedicineTypeID = medicineType.ID
	purchase.Status = models.PurchaseStatusActive
	purchase.CreatedAt = now
	purchase.UpdatedAt = now

	result, err := s.collection().InsertOne(ctx, purchase)
	if err != nil {
		return nil, err
	}
	purchase.ID = result.InsertedID.(primitive.ObjectID)
	purchase.MedicineType = medicineType
	return purchase, nil
}

// List returns the owner's active purchases, newest first, with the
// medicine type reference expanded.
func (s *MedicinePurchaseService) List(ctx context.Context, userID primitive.ObjectID) ([]*models.MedicinePurchase, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection().Find(ctx, activePurchasesFilter(userID), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	purchases := []*models.MedicinePurchase{}
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, err
	}
	if err := s.attachMedicineTypes(ctx, purchases); err != nil {
		return nil, err
	}
	return purchases, nil
}

// GetByID returns one active purchase owned by the user.
func (s *MedicinePurchaseService) GetByID(ctx context.Context, userID primitive.ObjectID, id string) (*models.MedicinePurchase, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewNotFoundError("Purchase not found")
	}

	var purchase models.MedicinePurchase
	err = s.collection().FindOne(ctx, activeOwnedFilter(objID, userID)).Decode(&purchase)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, NewNotFoundError("Purchase not found")
		}
		return nil, err
	}
	if err := s.attachMedicineTypes(ctx, []*models.MedicinePurchase{&purchase}); err != nil {
		return nil, err
	}
	return &purchase, nil
}

// Update re-validates exactly as Create against the medicine type named in
// the payload, and persists only while the record exists, is owned, and is
// active.
func (s *MedicinePurchaseService) Update(ctx context.Context, userID primitive.ObjectID, id string, req *models.MedicinePurchaseRequest) (*models.MedicinePurchase, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewNotFoundError("Purchase not found")
	}

	var existing models.MedicinePurchase
	err = s.collection().FindOne(ctx, activeOwnedFilter(objID, userID)).Decode(&existing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, NewNotFoundError("Purchase not found")
		}
		return nil, err
	}

	medicineType, err := s.types.FindOwned(ctx, userID, req.MedicineType)
	if err != nil {
		return nil, err
	}

	purchase, err := BuildPurchaseFields(req, medicineType.Type == models.MedicineTypeTablet)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"paymentType":    purchase.PaymentType,
		"supplierName":   purchase.SupplierName,
		"supplierNumber": purchase.SupplierNumber,
		"medicineType":   medicineType.ID,
		"expiryDate":     purchase.ExpiryDate,
		"perPiecePrice":  purchase.PerPiecePrice,
		"updatedAt":      time.Now(),
	}
	unset := bson.M{}
	setOrUnsetNumber := func(key string, value *float64) {
		if value != nil {
			set[key] = *value
		} else {
			unset[key] = ""
		}
	}
	if purchase.QuantityType != "" {
		set["quantityType"] = purchase.QuantityType
	} else {
		unset["quantityType"] = ""
	}
	setOrUnsetNumber("boxQuantity", purchase.BoxQuantity)
	setOrUnsetNumber("piecesPerBox", purchase.PiecesPerBox)
	setOrUnsetNumber("boxPrice", purchase.BoxPrice)
	setOrUnsetNumber("stripsQuantity", purchase.StripsQuantity)
	setOrUnsetNumber("piecesPerStrip", purchase.PiecesPerStrip)
	setOrUnsetNumber("stripPrice", purchase.StripPrice)
	setOrUnsetNumber("totalQuantity", purchase.TotalQuantity)

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var updated models.MedicinePurchase
	err = s.collection().FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	updated.MedicineType = medicineType
	return &updated, nil
}

// SoftDelete marks a purchase deleted. The filter matches owner and id
// only, so deleting an already deleted record succeeds again.
func (s *MedicinePurchaseService) SoftDelete(ctx context.Context, userID primitive.ObjectID, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return NewNotFoundError("Purchase not found")
	}

	result, err := s.collection().UpdateOne(
		ctx,
		bson.M{"_id": objID, "user": userID},
		bson.M{"$set": bson.M{"status": models.PurchaseStatusDeleted, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return NewNotFoundError("Purchase not found")
	}
	return nil
}

// attachMedicineTypes expands the medicine type references in one query.
func (s *MedicinePurchaseService) attachMedicineTypes(ctx context.Context, purchases []*models.MedicinePurchase) error {
	if len(purchases) == 0 {
		return nil
	}

	seen := map[primitive.ObjectID]bool{}
	ids := []primitive.ObjectID{}
	for _, purchase := range purchases {
		if !seen[purchase.MedicineTypeID] {
			seen[purchase.MedicineTypeID] = true
			ids = append(ids, purchase.MedicineTypeID)
		}
	}

	cursor, err := config.GetCollection(s.DB, "medicineTypes").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var medicineTypes []models.MedicineType
	if err := cursor.All(ctx, &medicineTypes); err != nil {
		return err
	}

	byID := map[primitive.ObjectID]*models.MedicineType{}
	for i := range medicineTypes {
		byID[medicineTypes[i].ID] = &medicineTypes[i]
	}
	for _, purchase := range purchases {
		purchase.MedicineType = byID[purchase.MedicineTypeID]
	}
	return nil
}
