// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

// AccessPolicy is the single source of truth for document visibility. It
// deliberately exposes two separate rules:
//
//   - CanView gates a single document: admin, ownership, or a departmental
//     role whose name matches the document category case-insensitively.
//   - VisibleSet scopes a bulk listing: admin sees everything, departmental
//     roles see their category only (no ownership union), everyone else
//     sees owned documents only.
//
// VisibleSet is narrower than CanView: a departmental user's own uploads in
// a foreign category are individually viewable but absent from their
// listing. The two rules are kept separate on purpose and tested as such.
type AccessPolicy struct{}

// NewAccessPolicy constructs the policy. The policy is stateless.
func NewAccessPolicy() *AccessPolicy {
	return &AccessPolicy{}
}

// CanView reports whether user may open document.
func (p *AccessPolicy) CanView(user models.User, document models.Document) bool {
	role := models.Canonical(user.Role)

	if role == models.RoleAdmin {
		return true
	}
	if models.IsDepartmentalRole(role) && models.Canonical(document.Category) == role {
		return true
	}
	return document.OwnerUUID == user.UUID
}

// VisibleSet builds the listing filter for user.
func (p *AccessPolicy) VisibleSet(user models.User, skip, limit uint64) store.DocumentFilter {
	filter := store.DocumentFilter{Skip: skip, Limit: limit}
	role := models.Canonical(user.Role)

	switch {
	case role == models.RoleAdmin:
		filter.All = true
	case models.IsDepartmentalRole(role):
		filter.Categories = []string{departmentCategory(role)}
	default:
		filter.OwnerUUID = user.UUID
	}

	return filter
}

// CanReadAuditLog reports whether user may read the audit trail listing.
func (p *AccessPolicy) CanReadAuditLog(user models.User) bool {
	role := models.Canonical(user.Role)
	return role == models.RoleAdmin || role == models.RoleHR
}

// departmentCategory maps a departmental role onto the category label the
// classifier produces for it.
func departmentCategory(role string) string {
	switch models.Canonical(role) {
	case models.RoleHR:
		return models.CategoryHR
	case models.RoleFinance:
		return models.CategoryFinance
	case models.RoleLegal:
		return models.CategoryLegal
	default:
		return ""
	}
}
