package schema

import (
	"reflect"

	"folio/internal/models"
)

// EncodeUser validates u and maps it to a users row. An empty ID is left
// out so that the store assigns one.
func EncodeUser(u models.User) (Record, error) {
	if err := check(EntityUser, &u); err != nil {
		return nil, err
	}
	rec := Record{
		"email": u.Email,
		"name":  u.Name,
		"role":  string(u.Role),
	}
	withID(rec, u.ID)
	return rec, nil
}

// EncodeProduct validates p and maps it to a products row.
func EncodeProduct(p models.Product) (Record, error) {
	if err := check(EntityProduct, &p); err != nil {
		return nil, err
	}
	rec := Record{
		"category":           p.Category,
		"investment_company": p.InvestmentCompany,
	}
	withID(rec, p.ID)
	return rec, nil
}

// EncodeInvestment validates inv and maps it to an investments row.
func EncodeInvestment(inv models.Investment) (Record, error) {
	if err := check(EntityInvestment, &inv); err != nil {
		return nil, err
	}
	rec := Record{
		"user_id":               inv.UserID,
		"product_id":            inv.ProductID,
		"amount_invested":       inv.AmountInvested,
		"currency":              inv.Currency,
		"usd_equivalent":        inv.USDEquivalent,
		"details_of_investment": inv.DetailsOfInvestment,
		"expected_yield":        inv.ExpectedYield,
		"investment_type":       inv.InvestmentType,
		"investment_date":       inv.InvestmentDate,
		"maturity_date":         nil,
		"status":                string(inv.Status),
		"contract_pdf":          inv.ContractPDF,
	}
	if inv.MaturityDate != nil {
		rec["maturity_date"] = *inv.MaturityDate
	}
	withID(rec, inv.ID)
	return rec, nil
}

// EncodeProjection validates p, including the total invariant, and maps it
// to a performance_projections row.
func EncodeProjection(p models.PerformanceProjection) (Record, error) {
	if err := check(EntityProjection, &p); err != nil {
		return nil, err
	}
	if err := checkProjectionTotal(p.PrincipalAmount, p.YieldAmount, p.TotalValue); err != nil {
		return nil, err
	}
	rec := Record{
		"investment_id":    p.InvestmentID,
		"year":             p.Year,
		"principal_amount": p.PrincipalAmount,
		"yield_amount":     p.YieldAmount,
		"total_value":      p.TotalValue,
	}
	withID(rec, p.ID)
	return rec, nil
}

func withID(rec Record, id string) {
	if id != "" {
		rec["id"] = id
	}
}

// InvestmentPatch carries a partial investment update. Nil fields are left
// untouched. ClearMaturityDate sets maturity_date to NULL and wins over
// MaturityDate.
type InvestmentPatch struct {
	UserID              *string
	ProductID           *string
	AmountInvested      *float64
	Currency            *string
	USDEquivalent       *float64
	DetailsOfInvestment *string
	ExpectedYield       *string
	InvestmentType      *string
	InvestmentDate      *string
	MaturityDate        *string
	ClearMaturityDate   bool
	Status              *models.InvestmentStatus
	ContractPDF         *string
}

// IsEmpty reports whether the patch changes nothing.
func (p InvestmentPatch) IsEmpty() bool {
	return p.UserID == nil && p.ProductID == nil && p.AmountInvested == nil &&
		p.Currency == nil && p.USDEquivalent == nil && p.DetailsOfInvestment == nil &&
		p.ExpectedYield == nil && p.InvestmentType == nil && p.InvestmentDate == nil &&
		p.MaturityDate == nil && !p.ClearMaturityDate && p.Status == nil && p.ContractPDF == nil
}

var investmentModel = reflect.TypeOf(models.Investment{})

type patchField struct {
	goName string
	column string
	value  any
}

// EncodeInvestmentPatch validates only the provided fields of p and maps
// them to column names.
func EncodeInvestmentPatch(p InvestmentPatch) (Record, error) {
	var fields []patchField
	add := func(goName, column string, set bool, value any) {
		if set {
			fields = append(fields, patchField{goName: goName, column: column, value: value})
		}
	}
	add("UserID", "user_id", p.UserID != nil, deref(p.UserID))
	add("ProductID", "product_id", p.ProductID != nil, deref(p.ProductID))
	add("AmountInvested", "amount_invested", p.AmountInvested != nil, deref(p.AmountInvested))
	add("Currency", "currency", p.Currency != nil, deref(p.Currency))
	add("USDEquivalent", "usd_equivalent", p.USDEquivalent != nil, deref(p.USDEquivalent))
	add("DetailsOfInvestment", "details_of_investment", p.DetailsOfInvestment != nil, deref(p.DetailsOfInvestment))
	add("ExpectedYield", "expected_yield", p.ExpectedYield != nil, deref(p.ExpectedYield))
	add("InvestmentType", "investment_type", p.InvestmentType != nil, deref(p.InvestmentType))
	add("InvestmentDate", "investment_date", p.InvestmentDate != nil, deref(p.InvestmentDate))
	add("MaturityDate", "maturity_date", p.MaturityDate != nil && !p.ClearMaturityDate, deref(p.MaturityDate))
	if p.Status != nil {
		add("Status", "status", true, string(*p.Status))
	}
	add("ContractPDF", "contract_pdf", p.ContractPDF != nil, deref(p.ContractPDF))

	rec := Record{}
	for _, f := range fields {
		if err := checkField(EntityInvestment, investmentModel, f.goName, f.column, f.value); err != nil {
			return nil, err
		}
		rec[f.column] = f.value
	}
	if p.ClearMaturityDate {
		rec["maturity_date"] = nil
	}
	return rec, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
