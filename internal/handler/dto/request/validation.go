package request

import (
	"reflect"

	"hotel-folio/internal/pkg/errs"
	"hotel-folio/internal/pkg/money"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrAmountOutOfRange rejects decimals too large or too fine for folio arithmetic.
var ErrAmountOutOfRange = errs.New("amount outside the accepted range")

// outOfRange stands in for decimals that must not be rendered as text.
const outOfRange = "out-of-range"

// RegisterValidators teaches gin's validator about decimal fields. Decimals are validated
// through their string form so that tags apply to both values and pointers.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			if !money.InRange(d) {
				return outOfRange
			}
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	return v.RegisterValidation("decimal_gte0", func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		d, err := decimal.NewFromString(s)
		return err == nil && !d.IsNegative()
	})
}
