// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Tickers are 1-10 letters, digits, dots, or hyphens (e.g. BRK-B).
// Lower case is accepted here; services normalize to upper.
var tickerRegex = regexp.MustCompile(`^[A-Za-z0-9.-]{1,10}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("fund_strategy", validateFundStrategy)
		_ = v.RegisterValidation("peer_category", validatePeerCategory)
		_ = v.RegisterValidation("ticker", validateTicker)
	}
}

func validateFundStrategy(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "growth", "value", "blend", "income", "sector_specific", "international", "emerging_markets":
		return true
	}
	return false
}

func validatePeerCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "large_cap_growth", "large_cap_value",
		"mid_cap_growth", "mid_cap_value",
		"small_cap_growth", "small_cap_value",
		"international_developed", "emerging_markets",
		"sector_technology", "sector_healthcare", "sector_financial":
		return true
	}
	return false
}

func validateTicker(fl validator.FieldLevel) bool {
	return tickerRegex.MatchString(fl.Field().String())
}
