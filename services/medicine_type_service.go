// services/medicine_type_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ibrahimbusiness24525/Pharmacy-Backend/config"
	"github.com/ibrahimbusiness24525/Pharmacy-Backend/models"
)

// typeField describes one category-specific input: where it comes from in
// the request, where it lands on the stored record, whether it may be
// omitted, and which values it accepts.
type typeField struct {
	label    string
	value    func(*models.MedicineTypeRequest) string
	assign   func(*models.MedicineType, string)
	optional bool
	allowed  []string
}

// categoryFields is the fixed category requirement table. Adding a category
// means adding a row here, not a new validation branch.
var categoryFields = map[string][]typeField{
	models.MedicineTypeSyrup: {
		{label: "syrup name", value: func(r *models.MedicineTypeRequest) string { return r.SypName }, assign: func(m *models.MedicineType, v string) { m.ProductName = v }},
		{label: "ml", value: func(r *models.MedicineTypeRequest) string { return r.Ml }, assign: func(m *models.MedicineType, v string) { m.Ml = v }},
	},
	models.MedicineTypeTablet: {
		{label: "tab name", value: func(r *models.MedicineTypeRequest) string { return r.TabName }, assign: func(m *models.MedicineType, v string) { m.ProductName = v }},
		{label: "gram", value: func(r *models.MedicineTypeRequest) string { return r.Gram }, assign: func(m *models.MedicineType, v string) { m.Gram = v }},
	},
	models.MedicineTypeSkinCare: {
		{label: "product name", value: func(r *models.MedicineTypeRequest) string { return r.ProductName }, assign: func(m *models.MedicineType, v string) { m.ProductName = v }},
		{label: "cream/lotion selection", value: func(r *models.MedicineTypeRequest) string { return r.CreamOrLotion }, assign: func(m *models.MedicineType, v string) { m.CreamOrLotion = v }, allowed: []string{"cream", "lotion"}},
		{label: "unit", value: func(r *models.MedicineTypeRequest) string { return r.Unit }, assign: func(m *models.MedicineType, v string) { m.Unit = v }, allowed: []string{"ml", "mg", "size"}},
	},
	models.MedicineTypeHair: {
		{label: "product name", value: func(r *models.MedicineTypeRequest) string { return r.ProductName }, assign: func(m *models.MedicineType, v string) { m.ProductName = v }},
		{label: "ml", value: func(r *models.MedicineTypeRequest) string { return r.Ml }, assign: func(m *models.MedicineType, v string) { m.Ml = v }},
	},
	models.MedicineTypeDrip: {
		{label: "product name", value: func(r *models.MedicineTypeRequest) string { return r.ProductName }, assign: func(m *models.MedicineType, v string) { m.ProductName = v }},
		{label: "ml", value: func(r *models.MedicineTypeRequest) string { return r.Ml }, assign: func(m *models.MedicineType, v string) { m.Ml = v }, optional: true},
		{label: "drip details", value: func(r *models.MedicineTypeRequest) string { return r.DripDetails }, assign: func(m *models.MedicineType, v string) { m.DripDetails = v }, optional: true},
	},
	models.MedicineTypeInjections: {
		{label: "product name", value: func(r *models.MedicineTypeRequest) string { return r.ProductName }, assign: func(m *models.MedicineType, v string) { m.ProductName = v }},
		{label: "ml", value: func(r *models.MedicineTypeRequest) string { return r.Ml }, assign: func(m *models.MedicineType, v string) { m.Ml = v }, optional: true},
	},
}

// BuildMedicineType validates a catalog payload against the category
// requirement table and returns the normalized record.
func BuildMedicineType(req *models.MedicineTypeRequest) (*models.MedicineType, error) {
	companyName := strings.TrimSpace(req.CompanyName)
	category := strings.TrimSpace(req.Type)
	if companyName == "" || category == "" {
		return nil, NewValidationError("Company name and type are required")
	}

	fields, ok := categoryFields[category]
	if !ok {
		return nil, NewValidationError("Invalid medicine type")
	}

	medicineType := &models.MedicineType{
		CompanyName: companyName,
		Type:        category,
	}

	var missing []string
	for _, field := range fields {
		value := strings.TrimSpace(field.value(req))
		if value == "" {
			if !field.optional {
				missing = append(missing, field.label)
			}
			continue
		}
		if len(field.allowed) > 0 && !containsString(field.allowed, value) {
			return nil, NewValidationError(fmt.Sprintf(
				"%s must be one of: %s", capitalize(field.label), strings.Join(field.allowed, ", ")))
		}
		field.assign(medicineType, value)
	}
	if len(missing) > 0 {
		return nil, NewValidationError(requiredFieldsMessage(missing, category))
	}

	return medicineType, nil
}

// requiredFieldsMessage names the missing fields, e.g.
// "Syrup name and ml are required for syrup type".
func requiredFieldsMessage(missing []string, category string) string {
	verb := "are"
	if len(missing) == 1 {
		verb = "is"
	}
	var list string
	switch len(missing) {
	case 1:
		list = missing[0]
	case 2:
		list = missing[0] + " and " + missing[1]
	default:
		list = strings.Join(missing[:len(missing)-1], ", ") + ", and " + missing[len(missing)-1]
	}
	return fmt.Sprintf("%s %s required for %s type", capitalize(list), verb, category)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// MedicineTypeService manages the medicine type catalog.
type MedicineTypeService struct {
	DB *mongo.Client
}

func NewMedicineTypeService(db *mongo.Client) *MedicineTypeService {
	return &MedicineTypeService{DB: db}
}

func (s *MedicineTypeService) collection() *mongo.Collection {
	return config.GetCollection(s.DB, "medicineTypes")
}

// Create validates and stores a new catalog entry for the given owner.
func (s *MedicineTypeService) Create(ctx context.Context, userID primitive.ObjectID, req *models.MedicineTypeRequest) (*models.MedicineType, error) {
	medicineType, err := BuildMedicineType(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	medicineType.UserID = userID
	medicineType.CreatedAt = now
	medicineType.UpdatedAt = now

	result, err := s.collection().InsertOne(ctx, medicineType)
	if err != nil {
		return nil, err
	}
	medicineType.ID = result.InsertedID.(primitive.ObjectID)
	return medicineType, nil
}

// List returns the owner's catalog entries, newest first.
func (s *MedicineTypeService) List(ctx context.Context, userID primitive.ObjectID) ([]models.MedicineType, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection().Find(ctx, bson.M{"user": userID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	medicineTypes := []models.MedicineType{}
	if err := cursor.All(ctx, &medicineTypes); err != nil {
		return nil, err
	}
	return medicineTypes, nil
}

// Update re-validates the payload against the category table and fully
// replaces the category-specific fields; values no longer applicable to the
// new category are unset.
func (s *MedicineTypeService) Update(ctx context.Context, userID primitive.ObjectID, id string, req *models.MedicineTypeRequest) (*models.MedicineType, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewNotFoundError("Medicine type not found")
	}

	medicineType, err := BuildMedicineType(req)
	if err != nil {
		return nil, err
	}

	set := bson.M{
		"companyName": medicineType.CompanyName,
		"type":        medicineType.Type,
		"updatedAt":   time.Now(),
	}
	unset := bson.M{}
	for key, value := range map[string]string{
		"productName":   medicineType.ProductName,
		"ml":            medicineType.Ml,
		"gram":          medicineType.Gram,
		"creamOrLotion": medicineType.CreamOrLotion,
		"unit":          medicineType.Unit,
		"dripDetails":   medicineType.DripDetails,
	} {
		if value != "" {
			set[key] = value
		} else {
			unset[key] = ""
		}
	}
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}

	var updated models.MedicineType
	err = s.collection().FindOneAndUpdate(
		ctx,
		bson.M{"_id": objID, "user": userID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, NewNotFoundError("Medicine type not found")
		}
		return nil, err
	}
	return &updated, nil
}

// Delete permanently removes a catalog entry.
func (s *MedicineTypeService) Delete(ctx context.Context, userID primitive.ObjectID, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return NewNotFoundError("Medicine type not found")
	}

	result, err := s.collection().DeleteOne(ctx, bson.M{"_id": objID, "user": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return NewNotFoundError("Medicine type not found")
	}
	return nil
}

// FindOwned resolves a medicine type reference for the given owner.
func (s *MedicineTypeService) FindOwned(ctx context.Context, userID primitive.ObjectID, id string) (*models.MedicineType, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewNotFoundError("Medicine type not found")
	}

	var medicineType models.MedicineType
	err = s.collection().FindOne(ctx, bson.M{"_id": objID, "user": userID}).Decode(&medicineType)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, NewNotFoundError("Medicine type not found")
		}
		return nil, err
	}
	return &medicineType, nil
}
