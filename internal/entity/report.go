package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report is a document in the "reports" collection.
type Report struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Type             string             `bson:"type"`
	Title            string             `bson:"title"`
	Description      string             `bson:"description"`
	ReporterID       primitive.ObjectID `bson:"reporter"`
	PersonDetails    *PersonDetails     `bson:"personDetails,omitempty"`
	ItemDetails      *ItemDetails       `bson:"itemDetails,omitempty"`
	LastSeenLocation Location           `bson:"lastSeenLocation"`
	Status           string             `bson:"status"`
	ImageURLs        []string           `bson:"imageUrls"`
	AIAnalysis       bson.M             `bson:"aiAnalysis,omitempty"`
	ContactPhone     string             `bson:"contactPhone,omitempty"`
	ContactEmail     string             `bson:"contactEmail,omitempty"`
	RewardAmount     *float64           `bson:"rewardAmount,omitempty"`
	IsPublic         bool               `bson:"isPublic"`
	CreatedAt        time.Time          `bson:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"`
	IncidentDateTime *time.Time         `bson:"incidentDateTime,omitempty"`
}

type PersonDetails struct {
	FullName              string   `bson:"fullName,omitempty"`
	Age                   *int     `bson:"age,omitempty"`
	Gender                string   `bson:"gender,omitempty"`
	HeightCm              *float64 `bson:"heightCm,omitempty"`
	WeightKg              *float64 `bson:"weightKg,omitempty"`
	HairColor             string   `bson:"hairColor,omitempty"`
	EyeColor              string   `bson:"eyeColor,omitempty"`
	Complexion            string   `bson:"complexion,omitempty"`
	ClothingDescription   string   `bson:"clothingDescription,omitempty"`
	DistinguishingMarks   string   `bson:"distinguishingMarks,omitempty"`
	MedicalConditions     []string `bson:"medicalConditions,omitempty"`
	EmergencyContactName  string   `bson:"emergencyContactName,omitempty"`
	EmergencyContactPhone string   `bson:"emergencyContactPhone,omitempty"`
}

type ItemDetails struct {
	ItemName       string   `bson:"itemName,omitempty"`
	Category       string   `bson:"category,omitempty"`
	Brand          string   `bson:"brand,omitempty"`
	Model          string   `bson:"model,omitempty"`
	Color          string   `bson:"color,omitempty"`
	Size           string   `bson:"size,omitempty"`
	SerialNumber   string   `bson:"serialNumber,omitempty"`
	Description    string   `bson:"description,omitempty"`
	EstimatedValue *float64 `bson:"estimatedValue,omitempty"`
}
