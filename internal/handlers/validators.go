package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Fiscal year names look like "2024", "2024-25" or "2024-2025".
var fiscalYearNamePattern = regexp.MustCompile(`^[0-9]{4}([-/][0-9]{2,4})?$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("fiscalyear", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return value == "" || fiscalYearNamePattern.MatchString(value)
		})
	}
}
