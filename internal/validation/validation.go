package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/restexample/shop-service/internal/models"
)

var validate = newValidator()

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// Error carries every rule violation found on one value.
type Error struct {
	Details []ValidationError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.Field+": "+d.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ShopRules mirrors models.Shop with the constraints a shop must satisfy.
type ShopRules struct {
	ID                string `json:"id" validate:"required"`
	ShopName          string `json:"shopName" validate:"required,min=10,max=250"`
	ShopAddress       string `json:"shopAddress" validate:"max=350"`
	NumberOfEmployees int    `json:"numberOfEmployees" validate:"sme=250"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("sme", isSME); err != nil {
		panic(fmt.Sprintf("register sme validation: %v", err))
	}
	return v
}

// isSME accepts integers strictly below the tag parameter.
func isSME(fl validator.FieldLevel) bool {
	limit, err := strconv.ParseInt(fl.Param(), 10, 64)
	if err != nil {
		return false
	}
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() < limit
	default:
		return false
	}
}

// ValidateRequest runs the struct tags of obj and returns nil when every rule holds.
func ValidateRequest(obj any) []ValidationError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Message: err.Error(), Type: "invalid"}}
	}

	validationErrors := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   fe.Field(),
			Message: getErrorMsg(fe),
			Type:    fe.Tag(),
		})
	}
	return validationErrors
}

// ValidateShop checks shop against ShopRules and returns an *Error on failure.
func ValidateShop(shop models.Shop) error {
	details := ValidateRequest(ShopRules{
		ID:                shop.ID,
		ShopName:          shop.ShopName,
		ShopAddress:       shop.ShopAddress,
		NumberOfEmployees: shop.NumberOfEmployees,
	})
	if details != nil {
		return &Error{Details: details}
	}
	return nil
}

func getErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "sme":
		return "This business not a SME"
	}

	switch fe.Field() {
	case "shopName":
		return "Shop Name Invalid"
	case "shopAddress":
		return "Address too long"
	}

	switch fe.Tag() {
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	default:
		return "Invalid value"
	}
}
