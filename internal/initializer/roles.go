package initializer

import "legendcore/internal/model"

// RoleTableFor returns the fixed camp composition for n seated players, per
// SPEC_FULL.md §6's resolution of identity assignment: exactly one Lord and
// one Renegade regardless of table size; Rebels and Loyalists grow with n,
// starting from one each at n=4 and alternating which grows first as n
// increases toward 10.
func RoleTableFor(n int) []model.CampId {
	extra := n - 4
	if extra < 0 {
		extra = 0
	}
	rebels := 1 + (extra+1)/2
	loyalists := 1 + extra/2

	roles := make([]model.CampId, 0, n)
	roles = append(roles, model.Lord, model.Renegade)
	for i := 0; i < rebels; i++ {
		roles = append(roles, model.Rebel)
	}
	for i := 0; i < loyalists; i++ {
		roles = append(roles, model.Loyalist)
	}
	return roles
}
