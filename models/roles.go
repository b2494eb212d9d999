package models

import "strings"

// Closed set of user roles.
const (
	RoleAdmin   = "admin"
	RoleHR      = "hr"
	RoleFinance = "finance"
	RoleLegal   = "legal"
	RoleGeneral = "general"
)

// Closed set of document categories produced by the classifier.
const (
	CategoryFinance   = "Finance"
	CategoryHR        = "HR"
	CategoryLegal     = "Legal"
	CategoryContracts = "Contracts"
	CategoryTechnical = "Technical"
	CategoryGeneral   = "General"
)

// Canonical is the single case-normalization function used at every
// role/category comparison site. Role and category strings arrive from the
// database, the classifier and client input in mixed case; every comparison
// must go through this function instead of ad hoc per-call folding.
func Canonical(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsValidRole reports whether role belongs to the closed role set.
func IsValidRole(role string) bool {
	switch Canonical(role) {
	case RoleAdmin, RoleHR, RoleFinance, RoleLegal, RoleGeneral:
		return true
	default:
		return false
	}
}

// IsDepartmentalRole reports whether role is one of the category-scoped
// roles (hr, finance, legal) whose visibility is driven by the document
// category rather than ownership.
func IsDepartmentalRole(role string) bool {
	switch Canonical(role) {
	case RoleHR, RoleFinance, RoleLegal:
		return true
	default:
		return false
	}
}
