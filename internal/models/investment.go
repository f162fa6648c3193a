package models

// InvestmentStatus is the lifecycle state of an investment.
type InvestmentStatus string

const (
	InvestmentStatusActive     InvestmentStatus = "active"
	InvestmentStatusMatured    InvestmentStatus = "matured"
	InvestmentStatusTerminated InvestmentStatus = "terminated"
)

// Known investment types. The set is open: any other string is accepted as-is.
const (
	InvestmentTypeLumpsum        = "Lumpsum"
	InvestmentTypeBuyAndHold     = "Buy and Hold"
	InvestmentTypeLumpsumRegular = "Lumpsum/Regular"
)

// MaxAmount bounds every stored money amount so that portfolio sums stay
// finite. Mirrored as the literal in the validate tags below.
const MaxAmount = 1e15

// Investment is a user's stake in a product.
type Investment struct {
	Base
	UserID              string           `gorm:"not null;index" json:"user_id" validate:"required"`
	ProductID           string           `gorm:"not null;index" json:"product_id" validate:"required"`
	AmountInvested      float64          `gorm:"type:double precision;not null" json:"amount_invested" validate:"gt=0,lte=1000000000000000"`
	Currency            string           `gorm:"size:3;not null" json:"currency" validate:"len=3"`
	USDEquivalent       float64          `gorm:"column:usd_equivalent;type:double precision;not null" json:"usd_equivalent" validate:"gt=0,lte=1000000000000000"`
	DetailsOfInvestment string           `gorm:"not null;default:''" json:"details_of_investment"`
	ExpectedYield       string           `gorm:"not null;default:''" json:"expected_yield"`
	InvestmentType      string           `gorm:"not null;default:''" json:"investment_type"`
	InvestmentDate      string           `gorm:"not null" json:"investment_date" validate:"required"`
	MaturityDate        *string          `json:"maturity_date"`
	Status              InvestmentStatus `gorm:"not null;default:active" json:"status" validate:"required,oneof=active matured terminated"`
	ContractPDF         string           `gorm:"column:contract_pdf;not null" json:"contract_pdf" validate:"required,url"`
}

// IsActive reports whether the investment is still running.
func (i *Investment) IsActive() bool {
	return i.Status == InvestmentStatusActive
}
