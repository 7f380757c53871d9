// Package validation registers the request validators used in binding tags.
package validation

import (
	"reflect"
	"sync"

	"voucher-ledger/internal/domain/voucher"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	TagPlate      = "plate"
	TagDecimalGT0 = "decimal_gt0"
)

var (
	once    sync.Once
	initErr error
)

// Register installs the custom validators on gin's binding engine. Safe to
// call more than once.
func Register() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		initErr = RegisterOn(v)
	})
	return initErr
}

func RegisterOn(v *validator.Validate) error {
	// decimals are validated through their exact string form
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	if err := v.RegisterValidation(TagPlate, validatePlate); err != nil {
		return err
	}
	return v.RegisterValidation(TagDecimalGT0, validateDecimalGT0)
}

func validatePlate(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	return voucher.ValidatePlate(fl.Field().String()).Valid
}

func validateDecimalGT0(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		d, err := decimal.NewFromString(field.String())
		return err == nil && d.IsPositive()
	case reflect.Struct:
		d, ok := field.Interface().(decimal.Decimal)
		return ok && d.IsPositive()
	default:
		return false
	}
}
