package service

import (
	"LostFoundAPI/internal/constant"
	"LostFoundAPI/internal/entity"
	"LostFoundAPI/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// toReportEntity maps the wire DTO onto a fresh entity. Server-side fields
// (id, reporter, status, timestamps) are assigned here or by the repository;
// the DTO can never set them.
func toReportEntity(req model.CreateReportRequest, reporterID primitive.ObjectID) *entity.Report {
	report := &entity.Report{
		Type:             req.Type,
		Title:            req.Title,
		Description:      req.Description,
		ReporterID:       reporterID,
		Status:           constant.ReportStatusActive,
		ImageURLs:        req.ImageURLs,
		ContactPhone:     req.ContactPhone,
		ContactEmail:     req.ContactEmail,
		RewardAmount:     req.RewardAmount,
		IsPublic:         true,
		IncidentDateTime: req.IncidentDateTime,
	}
	if report.ImageURLs == nil {
		report.ImageURLs = []string{}
	}
	if req.IsPublic != nil {
		report.IsPublic = *req.IsPublic
	}

	if loc := req.LastSeenLocation; loc != nil {
		l := entity.NewLocation(*loc.Latitude, *loc.Longitude)
		l.Address = loc.Address
		l.City = loc.City
		l.State = loc.State
		l.Country = loc.Country
		l.PostalCode = loc.PostalCode
		report.LastSeenLocation = l
	}

	if pd := req.PersonDetails; pd != nil {
		report.PersonDetails = &entity.PersonDetails{
			FullName:              pd.FullName,
			Age:                   pd.Age,
			Gender:                pd.Gender,
			HeightCm:              pd.HeightCm,
			WeightKg:              pd.WeightKg,
			HairColor:             pd.HairColor,
			EyeColor:              pd.EyeColor,
			Complexion:            pd.Complexion,
			ClothingDescription:   pd.ClothingDescription,
			DistinguishingMarks:   pd.DistinguishingMarks,
			MedicalConditions:     pd.MedicalConditions,
			EmergencyContactName:  pd.EmergencyContactName,
			EmergencyContactPhone: pd.EmergencyContactPhone,
		}
	}

	if id := req.ItemDetails; id != nil {
		report.ItemDetails = &entity.ItemDetails{
			ItemName:       id.ItemName,
			Category:       id.Category,
			Brand:          id.Brand,
			Model:          id.Model,
			Color:          id.Color,
			Size:           id.Size,
			SerialNumber:   id.SerialNumber,
			Description:    id.Description,
			EstimatedValue: id.EstimatedValue,
		}
	}

	return report
}

func toReportResponse(report *entity.Report, reporters map[primitive.ObjectID]model.UserSummary) model.ReportResponse {
	resp := model.ReportResponse{
		ID:          report.ID.Hex(),
		Type:        report.Type,
		Title:       report.Title,
		Description: report.Description,
		LastSeenLocation: model.LocationResponse{
			Latitude:   report.LastSeenLocation.Latitude(),
			Longitude:  report.LastSeenLocation.Longitude(),
			Address:    report.LastSeenLocation.Address,
			City:       report.LastSeenLocation.City,
			State:      report.LastSeenLocation.State,
			Country:    report.LastSeenLocation.Country,
			PostalCode: report.LastSeenLocation.PostalCode,
		},
		Status:           report.Status,
		ImageURLs:        report.ImageURLs,
		ContactPhone:     report.ContactPhone,
		ContactEmail:     report.ContactEmail,
		RewardAmount:     report.RewardAmount,
		IsPublic:         report.IsPublic,
		CreatedAt:        report.CreatedAt,
		UpdatedAt:        report.UpdatedAt,
		IncidentDateTime: report.IncidentDateTime,
	}
	if resp.ImageURLs == nil {
		resp.ImageURLs = []string{}
	}

	if summary, ok := reporters[report.ReporterID]; ok {
		s := summary
		resp.Reporter = &s
	}

	if report.AIAnalysis != nil {
		resp.AIAnalysis = map[string]any(report.AIAnalysis)
	}

	if pd := report.PersonDetails; pd != nil {
		resp.PersonDetails = &model.PersonDetailsDTO{
			FullName:              pd.FullName,
			Age:                   pd.Age,
			Gender:                pd.Gender,
			HeightCm:              pd.HeightCm,
			WeightKg:              pd.WeightKg,
			HairColor:             pd.HairColor,
			EyeColor:              pd.EyeColor,
			Complexion:            pd.Complexion,
			ClothingDescription:   pd.ClothingDescription,
			DistinguishingMarks:   pd.DistinguishingMarks,
			MedicalConditions:     pd.MedicalConditions,
			EmergencyContactName:  pd.EmergencyContactName,
			EmergencyContactPhone: pd.EmergencyContactPhone,
		}
	}

	if id := report.ItemDetails; id != nil {
		resp.ItemDetails = &model.ItemDetailsDTO{
			ItemName:       id.ItemName,
			Category:       id.Category,
			Brand:          id.Brand,
			Model:          id.Model,
			Color:          id.Color,
			Size:           id.Size,
			SerialNumber:   id.SerialNumber,
			Description:    id.Description,
			EstimatedValue: id.EstimatedValue,
		}
	}

	return resp
}

func toReportResponses(reports []entity.Report, reporters map[primitive.ObjectID]model.UserSummary) []model.ReportResponse {
	out := make([]model.ReportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, toReportResponse(&reports[i], reporters))
	}
	return out
}
