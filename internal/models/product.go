package models

// Product is static reference data describing an investable asset.
type Product struct {
	Base
	Category          string `gorm:"not null;index" json:"category" validate:"required"`
	InvestmentCompany string `gorm:"not null" json:"investment_company" validate:"required"`
}
