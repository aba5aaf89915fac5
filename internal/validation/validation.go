// Package validation checks entity inputs before anything is written.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"electroledger/pkg/models"
)

// ErrInvalid is matched by every validation failure.
var ErrInvalid = errors.New("invalid input")

// Error describes one rejected field.
type Error struct {
	// Field is the struct-qualified field name, e.g. "NewPurchase.Price".
	Field string

	// Tag is the failed rule, e.g. "required" or "gte".
	Tag string

	Value interface{}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("validation error for field '%s': failed '%s' (value: %v)", e.Field, e.Tag, e.Value)
}

// Is makes every validation Error match ErrInvalid.
func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// Errors is the list of rejected fields returned by Struct.
type Errors []*Error

// Error implements the error interface.
func (es Errors) Error() string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.Error()
	}
	return strings.Join(parts, "; ")
}

// Is makes Errors match ErrInvalid.
func (es Errors) Is(target error) bool {
	return target == ErrInvalid
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		// Compare decimals numerically so gte/min rules apply to money fields.
		validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.InexactFloat64()
			}
			return nil
		}, decimal.Decimal{})
		_ = validate.RegisterValidation("ddmmyyyy", func(fl validator.FieldLevel) bool {
			_, err := models.ParseDate(fl.Field().String(), nil)
			return err == nil
		})
	})
	return validate
}

// Struct validates v against its `validate` tags. It returns nil or Errors.
func Struct(v interface{}) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, &Error{
			Field: fe.StructNamespace(),
			Tag:   fe.Tag(),
			Value: fe.Value(),
		})
	}
	return out
}

// Required rejects a blank string field, for patches where the validator's
// omitempty cannot tell "unset" from "cleared".
func Required(field string, value *string) error {
	if value != nil && strings.TrimSpace(*value) == "" {
		return Errors{{Field: field, Tag: "required", Value: *value}}
	}
	return nil
}

// Positive rejects a set amount that is not greater than zero. omitempty lets
// a zero through on a pointer field, so patches check their amounts here.
func Positive(field string, value *decimal.Decimal) error {
	if value != nil && !value.IsPositive() {
		return Errors{{Field: field, Tag: "gt", Value: value.String()}}
	}
	return nil
}
