package config

import (
	"strings"

	"LostFoundAPI/internal/constant"

	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("report_type", validateReportType)
	_ = v.RegisterValidation("report_status", validateReportStatus)
	_ = v.RegisterValidation("notblank", validateNotBlank)
	return v
}

func validateReportType(fl validator.FieldLevel) bool {
	return constant.IsValidReportType(fl.Field().String())
}

func validateReportStatus(fl validator.FieldLevel) bool {
	return constant.IsValidReportStatus(fl.Field().String())
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
