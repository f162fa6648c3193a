// Package schema validates records crossing the record-store boundary.
//
// Records coming out of a store are loosely typed maps keyed by column name
// (user_id, amount_invested, ...). Decoders turn them into typed models and
// encoders do the reverse for writes. Both directions run the same
// validator/v10 rules declared on the model structs, so a record that would
// be rejected on read can never be written either.
package schema

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apperrors "folio/internal/errors"
)

// Record is a raw store row keyed by external (column) names.
type Record map[string]any

// Entity names used in validation errors.
const (
	EntityUser       = "user"
	EntityProduct    = "product"
	EntityInvestment = "investment"
	EntityProjection = "performance_projection"
)

// totalTolerance is how far total_value may drift from principal + yield.
var totalTolerance = decimal.RequireFromString("0.005")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report column names rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// check runs the struct rules of v and converts the first failure into a
// VALIDATION_FAILED AppError naming the offending column.
func check(entity string, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.Validation(entity, verrs[0].Field(), verrs[0].Tag())
	}
	return apperrors.Wrap(apperrors.ErrValidation, err)
}

// checkField validates a single value against the rule declared on the
// named struct field of model.
func checkField(entity string, model reflect.Type, goName, column string, value any) error {
	f, ok := model.FieldByName(goName)
	if !ok {
		return nil
	}
	rule := f.Tag.Get("validate")
	if rule == "" {
		return nil
	}
	err := validate.Var(value, rule)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.Validation(entity, column, verrs[0].Tag())
	}
	return apperrors.Wrap(apperrors.ErrValidation, err)
}

// checkProjectionTotal enforces total_value == principal_amount + yield_amount.
func checkProjectionTotal(principal, yield, total float64) error {
	sum := decimal.NewFromFloat(principal).Add(decimal.NewFromFloat(yield))
	if sum.Sub(decimal.NewFromFloat(total)).Abs().GreaterThan(totalTolerance) {
		return apperrors.Validation(EntityProjection, "total_value", "eq_principal_plus_yield")
	}
	return nil
}
