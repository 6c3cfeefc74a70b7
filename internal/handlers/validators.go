package handlers

import (
	"log/slog"
	"reflect"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// registerValidators teaches gin's validator about decimal.Decimal fields:
// they are validated through their string form, and dpositive / dnonnegative
// check the sign.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Warn("Gin validator engine is not go-playground/validator; decimal rules disabled")
			return
		}
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		mustRegister(v, "dpositive", func(fl validator.FieldLevel) bool {
			d, ok := fieldDecimal(fl)
			return ok && d.IsPositive()
		})
		mustRegister(v, "dnonnegative", func(fl validator.FieldLevel) bool {
			d, ok := fieldDecimal(fl)
			return ok && !d.IsNegative()
		})
	})
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("register validator " + tag + ": " + err.Error())
	}
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
