package schema

import (
	"encoding/json"
	"math"
	"time"

	"github.com/shopspring/decimal"

	apperrors "folio/internal/errors"
	"folio/internal/models"
)

const dateLayout = "2006-01-02"

// decoder reads typed values out of a Record. The first failure sticks and
// every later read becomes a no-op, so callers check err once at the end.
type decoder struct {
	rec    Record
	entity string
	err    error
}

func (d *decoder) fail(field, constraint string) {
	if d.err == nil {
		d.err = apperrors.Validation(d.entity, field, constraint)
	}
}

func (d *decoder) raw(field string) (any, bool) {
	if d.err != nil {
		return nil, false
	}
	v, ok := d.rec[field]
	if !ok || v == nil {
		d.fail(field, "required")
		return nil, false
	}
	return v, true
}

func (d *decoder) str(field string) string {
	v, ok := d.raw(field)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	}
	d.fail(field, "string")
	return ""
}

func (d *decoder) date(field string) string {
	v, ok := d.raw(field)
	if !ok {
		return ""
	}
	if t, isTime := v.(time.Time); isTime {
		return t.Format(dateLayout)
	}
	return d.str(field)
}

func (d *decoder) nullableDate(field string) *string {
	if d.err != nil {
		return nil
	}
	if v, ok := d.rec[field]; !ok || v == nil {
		return nil
	}
	s := d.date(field)
	return &s
}

func (d *decoder) dec(field string) decimal.Decimal {
	v, ok := d.raw(field)
	if !ok {
		return decimal.Zero
	}
	var (
		n   decimal.Decimal
		err error
	)
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			d.fail(field, "number")
			return decimal.Zero
		}
		n = decimal.NewFromFloat(x)
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			d.fail(field, "number")
			return decimal.Zero
		}
		n = decimal.NewFromFloat32(x)
	case int:
		n = decimal.NewFromInt(int64(x))
	case int32:
		n = decimal.NewFromInt32(x)
	case int64:
		n = decimal.NewFromInt(x)
	case decimal.Decimal:
		n = x
	case json.Number:
		n, err = decimal.NewFromString(x.String())
	case string:
		n, err = decimal.NewFromString(x)
	case []byte:
		n, err = decimal.NewFromString(string(x))
	default:
		d.fail(field, "number")
		return decimal.Zero
	}
	if err != nil {
		d.fail(field, "number")
		return decimal.Zero
	}
	return n
}

func (d *decoder) float(field string) float64 {
	return d.dec(field).InexactFloat64()
}

func (d *decoder) integer(field string) int {
	n := d.dec(field)
	if d.err != nil {
		return 0
	}
	if !n.IsInteger() {
		d.fail(field, "int")
		return 0
	}
	return int(n.IntPart())
}

func (d *decoder) base() models.Base {
	id := d.str("id")
	if d.err == nil && id == "" {
		d.fail("id", "required")
	}
	return models.Base{ID: id}
}

// DecodeUser validates a users row.
func DecodeUser(rec Record) (models.User, error) {
	d := decoder{rec: rec, entity: EntityUser}
	u := models.User{
		Base:  d.base(),
		Email: d.str("email"),
		Name:  d.str("name"),
		Role:  models.UserRole(d.str("role")),
	}
	if d.err != nil {
		return models.User{}, d.err
	}
	if err := check(EntityUser, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// DecodeProduct validates a products row.
func DecodeProduct(rec Record) (models.Product, error) {
	d := decoder{rec: rec, entity: EntityProduct}
	p := models.Product{
		Base:              d.base(),
		Category:          d.str("category"),
		InvestmentCompany: d.str("investment_company"),
	}
	if d.err != nil {
		return models.Product{}, d.err
	}
	if err := check(EntityProduct, &p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// DecodeInvestment validates an investments row.
func DecodeInvestment(rec Record) (models.Investment, error) {
	d := decoder{rec: rec, entity: EntityInvestment}
	inv := models.Investment{
		Base:                d.base(),
		UserID:              d.str("user_id"),
		ProductID:           d.str("product_id"),
		AmountInvested:      d.float("amount_invested"),
		Currency:            d.str("currency"),
		USDEquivalent:       d.float("usd_equivalent"),
		DetailsOfInvestment: d.str("details_of_investment"),
		ExpectedYield:       d.str("expected_yield"),
		InvestmentType:      d.str("investment_type"),
		InvestmentDate:      d.date("investment_date"),
		MaturityDate:        d.nullableDate("maturity_date"),
		Status:              models.InvestmentStatus(d.str("status")),
		ContractPDF:         d.str("contract_pdf"),
	}
	if d.err != nil {
		return models.Investment{}, d.err
	}
	if err := check(EntityInvestment, &inv); err != nil {
		return models.Investment{}, err
	}
	return inv, nil
}

// DecodeProjection validates a performance_projections row, including the
// total_value == principal_amount + yield_amount invariant.
func DecodeProjection(rec Record) (models.PerformanceProjection, error) {
	d := decoder{rec: rec, entity: EntityProjection}
	p := models.PerformanceProjection{
		Base:            d.base(),
		InvestmentID:    d.str("investment_id"),
		Year:            d.integer("year"),
		PrincipalAmount: d.float("principal_amount"),
		YieldAmount:     d.float("yield_amount"),
		TotalValue:      d.float("total_value"),
	}
	if d.err != nil {
		return models.PerformanceProjection{}, d.err
	}
	if err := check(EntityProjection, &p); err != nil {
		return models.PerformanceProjection{}, err
	}
	if err := checkProjectionTotal(p.PrincipalAmount, p.YieldAmount, p.TotalValue); err != nil {
		return models.PerformanceProjection{}, err
	}
	return p, nil
}
