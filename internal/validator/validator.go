// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"reflect"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"invoicer/internal/billing"
)

var pinRegex = regexp.MustCompile(`^[0-9]{4,8}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		_ = v.RegisterValidation("period_id", validatePeriodID)
		_ = v.RegisterValidation("pin", validatePIN)
	}
}

// decimalValue exposes decimal.Decimal to numeric tags such as gte and lte.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

func validatePeriodID(fl validator.FieldLevel) bool {
	_, err := billing.ParsePeriodID(fl.Field().String())
	return err == nil
}

func validatePIN(fl validator.FieldLevel) bool {
	return pinRegex.MatchString(fl.Field().String())
}
