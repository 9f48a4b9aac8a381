package model

import "time"

type CreateReportRequest struct {
	Type             string            `json:"type" validate:"required,report_type"`
	Title            string            `json:"title" validate:"required,notblank,max=200"`
	Description      string            `json:"description" validate:"required,notblank,max=5000"`
	PersonDetails    *PersonDetailsDTO `json:"personDetails"`
	ItemDetails      *ItemDetailsDTO   `json:"itemDetails"`
	LastSeenLocation *LocationDTO      `json:"lastSeenLocation" validate:"required"`
	ImageURLs        []string          `json:"imageUrls" validate:"dive,url"`
	ContactPhone     string            `json:"contactPhone"`
	ContactEmail     string            `json:"contactEmail" validate:"omitempty,email"`
	RewardAmount     *float64          `json:"rewardAmount" validate:"omitempty,gte=0"`
	IsPublic         *bool             `json:"isPublic"`
	IncidentDateTime *time.Time        `json:"incidentDateTime"`
}

type PersonDetailsDTO struct {
	FullName              string   `json:"fullName"`
	Age                   *int     `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender                string   `json:"gender"`
	HeightCm              *float64 `json:"heightCm" validate:"omitempty,gt=0"`
	WeightKg              *float64 `json:"weightKg" validate:"omitempty,gt=0"`
	HairColor             string   `json:"hairColor"`
	EyeColor              string   `json:"eyeColor"`
	Complexion            string   `json:"complexion"`
	ClothingDescription   string   `json:"clothingDescription"`
	DistinguishingMarks   string   `json:"distinguishingMarks"`
	MedicalConditions     []string `json:"medicalConditions"`
	EmergencyContactName  string   `json:"emergencyContactName"`
	EmergencyContactPhone string   `json:"emergencyContactPhone"`
}

type ItemDetailsDTO struct {
	ItemName       string   `json:"itemName"`
	Category       string   `json:"category"`
	Brand          string   `json:"brand"`
	Model          string   `json:"model"`
	Color          string   `json:"color"`
	Size           string   `json:"size"`
	SerialNumber   string   `json:"serialNumber"`
	Description    string   `json:"description"`
	EstimatedValue *float64 `json:"estimatedValue" validate:"omitempty,gte=0"`
}

// LocationDTO carries named latitude/longitude scalars on the wire; the
// persistence layer converts to GeoJSON order.
type LocationDTO struct {
	Latitude   *float64 `json:"latitude" validate:"required,latitude"`
	Longitude  *float64 `json:"longitude" validate:"required,longitude"`
	Address    string   `json:"address"`
	City       string   `json:"city"`
	State      string   `json:"state"`
	Country    string   `json:"country"`
	PostalCode string   `json:"postalCode"`
}

type LocationResponse struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Address    string  `json:"address,omitempty"`
	City       string  `json:"city,omitempty"`
	State      string  `json:"state,omitempty"`
	Country    string  `json:"country,omitempty"`
	PostalCode string  `json:"postalCode,omitempty"`
}

type ReportResponse struct {
	ID               string            `json:"id"`
	Type             string            `json:"type"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Reporter         *UserSummary      `json:"reporter,omitempty"`
	PersonDetails    *PersonDetailsDTO `json:"personDetails,omitempty"`
	ItemDetails      *ItemDetailsDTO   `json:"itemDetails,omitempty"`
	LastSeenLocation LocationResponse  `json:"lastSeenLocation"`
	Status           string            `json:"status"`
	ImageURLs        []string          `json:"imageUrls"`
	AIAnalysis       map[string]any    `json:"aiAnalysis,omitempty"`
	ContactPhone     string            `json:"contactPhone,omitempty"`
	ContactEmail     string            `json:"contactEmail,omitempty"`
	RewardAmount     *float64          `json:"rewardAmount,omitempty"`
	IsPublic         bool              `json:"isPublic"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
	IncidentDateTime *time.Time        `json:"incidentDateTime,omitempty"`
}

type ReportPage struct {
	Content       []ReportResponse `json:"content"`
	PageNumber    int              `json:"pageNumber"`
	PageSize      int              `json:"pageSize"`
	TotalElements int64            `json:"totalElements"`
	TotalPages    int              `json:"totalPages"`
}

type ReportStats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
	ByType   map[string]int64 `json:"byType"`
}
