// Package access decides what a user may see and change.
package access

import (
	apperrors "folio/internal/errors"
	"folio/internal/models"
	"folio/internal/portfolio"
)

// VisibleInvestments filters all down to what user may see. Super users see
// everything unchanged, normal users see their own investments and any
// other role sees nothing.
func VisibleInvestments(all []portfolio.EnrichedInvestment, user models.User) []portfolio.EnrichedInvestment {
	switch user.Role {
	case models.RoleSuperUser:
		return all
	case models.RoleNormalUser:
		out := make([]portfolio.EnrichedInvestment, 0, len(all))
		for _, e := range all {
			if e.UserID == user.ID {
				out = append(out, e)
			}
		}
		return out
	default:
		return []portfolio.EnrichedInvestment{}
	}
}

// CanSee reports whether user may view a single investment.
func CanSee(inv models.Investment, user models.User) bool {
	switch user.Role {
	case models.RoleSuperUser:
		return true
	case models.RoleNormalUser:
		return inv.UserID == user.ID
	}
	return false
}

// CanMutate reports whether user may create, update or delete investments.
func CanMutate(user models.User) bool {
	return user.Role == models.RoleSuperUser
}

// CanViewAllUsers reports whether user may list every user.
func CanViewAllUsers(user models.User) bool {
	return user.Role == models.RoleSuperUser
}

// Authorize returns ErrForbidden unless user may mutate investments.
func Authorize(user models.User) error {
	if !CanMutate(user) {
		return apperrors.WithMessage(apperrors.ErrForbidden, "Only super users can modify investments")
	}
	return nil
}
