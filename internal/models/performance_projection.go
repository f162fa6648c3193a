package models

// Projection year bounds accepted by the schema.
const (
	MinProjectionYear = 2020
	MaxProjectionYear = 2100
)

// PerformanceProjection is a yearly forecast row for one investment.
// The (investment_id, year) pair is unique in the store.
type PerformanceProjection struct {
	Base
	InvestmentID    string  `gorm:"not null;uniqueIndex:uq_projection_investment_year" json:"investment_id" validate:"required"`
	Year            int     `gorm:"not null;uniqueIndex:uq_projection_investment_year" json:"year" validate:"min=2020,max=2100"`
	PrincipalAmount float64 `gorm:"type:double precision;not null" json:"principal_amount" validate:"gte=0,lte=1000000000000000"`
	YieldAmount     float64 `gorm:"type:double precision;not null" json:"yield_amount" validate:"gte=0,lte=1000000000000000"`
	TotalValue      float64 `gorm:"type:double precision;not null" json:"total_value" validate:"gte=0,lte=1000000000000000"`
}
