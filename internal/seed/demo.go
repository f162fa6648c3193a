package seed

import "folio/internal/models"

func strPtr(s string) *string { return &s }

func user(id, email, name string, role models.UserRole) models.User {
	return models.User{Base: models.Base{ID: id}, Email: email, Name: name, Role: role}
}

func product(id, category, company string) models.Product {
	return models.Product{Base: models.Base{ID: id}, Category: category, InvestmentCompany: company}
}

type inv struct {
	id, userID, productID      string
	amount                     float64
	currency                   string
	usd                        float64
	details, yield, kind, date string
	maturity                   *string
	contract                   string
}

func (i inv) model() models.Investment {
	return models.Investment{
		Base:                models.Base{ID: i.id},
		UserID:              i.userID,
		ProductID:           i.productID,
		AmountInvested:      i.amount,
		Currency:            i.currency,
		USDEquivalent:       i.usd,
		DetailsOfInvestment: i.details,
		ExpectedYield:       i.yield,
		InvestmentType:      i.kind,
		InvestmentDate:      i.date,
		MaturityDate:        i.maturity,
		Status:              models.InvestmentStatusActive,
		ContractPDF:         "https://example.com/contracts/" + i.contract,
	}
}

func projection(id, investmentID string, year int, principal, yield, total float64) models.PerformanceProjection {
	return models.PerformanceProjection{
		Base:            models.Base{ID: id},
		InvestmentID:    investmentID,
		Year:            year,
		PrincipalAmount: principal,
		YieldAmount:     yield,
		TotalValue:      total,
	}
}

// Demo returns the demo portfolio: two normal users, one super user, eight
// products and ten investments with their projections.
func Demo() Dataset {
	invs := []inv{
		{"inv-1", "user-1", "prod-1", 40000, "USD", 40000, "Maturity May 2027 (2 years)", "10% per annum / paid quarterly", models.InvestmentTypeLumpsumRegular, "2025-05-01", strPtr("2027-05-01"), "woodville.pdf"},
		{"inv-2", "user-1", "prod-2", 25000, "USD", 25000, "Maturity Feb 2026 (2 years)", "Pays 14% per annum semi annually", models.InvestmentTypeLumpsum, "2024-02-01", strPtr("2026-02-01"), "eightcloud.pdf"},
		{"inv-3", "user-1", "prod-3", 25000, "GBP", 33000, "Invested June 2025", "Dividends paid quarterly and exit via IPO/sale by 2028", models.InvestmentTypeBuyAndHold, "2025-06-01", nil, "assisted-living.pdf"},
		{"inv-4", "user-1", "prod-4", 14000, "GBP", 18760, "Maturity October 2025 (3 years) - extended to October 2026", "17% per annum / paid at maturity", models.InvestmentTypeLumpsum, "2023-10-01", strPtr("2026-10-01"), "acorn.pdf"},
		{"inv-5", "user-1", "prod-5", 33000, "USD", 33000, "Buy-and-Hold to make gains from coin entering centralized platforms and NAV being linked to Canadian gold reserve", "Coin value expected to reach USD1.00 by approx. Q4 2025", models.InvestmentTypeBuyAndHold, "2024-01-15", nil, "3rt.pdf"},
		{"inv-6", "user-1", "prod-6", 27000, "EUR", 30820, "2 year convertible loan note with bullet payment at 24 months", "22% bullet payment at 24 months. Conversion rate at £0.69", models.InvestmentTypeLumpsum, "2024-06-01", strPtr("2026-06-01"), "omega.pdf"},
		{"inv-7", "user-1", "prod-7", 27000, "GBP", 36180, "Buy and hold stake in private company, targeting an exit in 24 months from January 2024", "Expected exit value is 2.5 to 3x entry value.", models.InvestmentTypeBuyAndHold, "2024-01-01", strPtr("2026-01-01"), "bricksave.pdf"},
		{"inv-8", "user-1", "prod-8", 20000, "EUR", 24500, "Anticipated exit approximately 2028", "Expected exit value is 4-5x entry value.", models.InvestmentTypeBuyAndHold, "2023-03-01", strPtr("2028-03-01"), "precomb.pdf"},
		{"inv-9", "user-2", "prod-1", 50000, "USD", 50000, "Maturity May 2027 (2 years)", "10% per annum / paid quarterly", models.InvestmentTypeLumpsum, "2025-05-01", strPtr("2027-05-01"), "woodville-2.pdf"},
		{"inv-10", "user-2", "prod-3", 30000, "GBP", 39600, "Invested June 2025", "Dividends paid quarterly and exit via IPO/sale by 2028", models.InvestmentTypeBuyAndHold, "2025-06-01", nil, "assisted-living-2.pdf"},
	}
	investments := make([]models.Investment, len(invs))
	for i, v := range invs {
		investments[i] = v.model()
	}

	return Dataset{
		Users: []models.User{
			user("user-1", "john.doe@example.com", "John Doe", models.RoleNormalUser),
			user("user-2", "jane.smith@example.com", "Jane Smith", models.RoleNormalUser),
			user("super-1", "admin@example.com", "Admin User", models.RoleSuperUser),
		},
		Products: []models.Product{
			product("prod-1", "Loan Notes", "Woodville"),
			product("prod-2", "Loan Notes", "EIGHT Cloud"),
			product("prod-3", "REIT", "Assisted Living Project"),
			product("prod-4", "Loan Notes and Profit Share", "Acorn (St. Lenard's Quarter)"),
			product("prod-5", "Gold", "3RT"),
			product("prod-6", "Gold", "Omega Minerals"),
			product("prod-7", "Private Equity", "Bricksave"),
			product("prod-8", "Private Equity", "Precomb"),
		},
		Investments: investments,
		Projections: []models.PerformanceProjection{
			projection("proj-1", "inv-1", 2025, 0, 2000, 2000),
			projection("proj-2", "inv-1", 2026, 40000, 4000, 44000),
			projection("proj-3", "inv-1", 2027, 40000, 6000, 46000),
			projection("proj-4", "inv-2", 2025, 0, 3500, 3500),
			projection("proj-5", "inv-2", 2026, 25000, 3500, 28500),
			projection("proj-6", "inv-3", 2025, 0, 1500, 1500),
			projection("proj-7", "inv-3", 2026, 33000, 0, 33000),
			projection("proj-8", "inv-4", 2025, 0, 0, 0),
			projection("proj-9", "inv-4", 2026, 18760, 7140, 25900),
			projection("proj-10", "inv-5", 2025, 33000, 0, 33000),
			projection("proj-11", "inv-6", 2026, 30820, 6780, 37600),
			projection("proj-12", "inv-7", 2026, 36180, 0, 36180),
			projection("proj-13", "inv-8", 2028, 24500, 0, 24500),
			projection("proj-14", "inv-9", 2025, 0, 2500, 2500),
			projection("proj-15", "inv-9", 2026, 50000, 5000, 55000),
			projection("proj-16", "inv-9", 2027, 50000, 7500, 57500),
			projection("proj-17", "inv-10", 2025, 0, 1800, 1800),
			projection("proj-18", "inv-10", 2026, 39600, 0, 39600),
		},
	}
}
