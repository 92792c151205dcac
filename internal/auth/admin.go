package auth

import "github.com/spec-kit/sublease-service/internal/domain"

// AdminList is the fixed administrator allow-list. Membership is an exact,
// case-sensitive match on the verified identity's email; changing the list
// requires redeploying configuration.
type AdminList struct {
	emails map[string]struct{}
}

// NewAdminList builds the allow-list from configured addresses.
func NewAdminList(emails []string) *AdminList {
	set := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		set[email] = struct{}{}
	}
	return &AdminList{emails: set}
}

// Contains reports whether the email is on the allow-list.
func (a *AdminList) Contains(email string) bool {
	_, ok := a.emails[email]
	return ok
}

// RoleFor resolves the caller's role once per request. Non-admin identities
// default to tenant; agency ownership is established per record, not here.
func (a *AdminList) RoleFor(identity *domain.Identity) domain.Role {
	if identity != nil && a.Contains(identity.Email) {
		return domain.RoleAdmin
	}
	return domain.RoleTenant
}
