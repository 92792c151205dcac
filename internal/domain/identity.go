package domain

// Identity is the authenticated subject resolved from a bearer token.
// Identities are issued by the external session store; this service only
// reads them.
type Identity struct {
	ID    string
	Email string
}

// Role classifies an identity for authorization. Resolved once per request
// and passed explicitly to the operations that need it.
type Role string

const (
	RoleTenant Role = "TENANT"
	RoleAgency Role = "AGENCY"
	RoleAdmin  Role = "ADMIN"
)
