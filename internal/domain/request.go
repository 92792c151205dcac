package domain

import "time"

// SubleaseRequest is a tenant-authored row: a student looking for (or
// offering) a sublease. Owned and editable only by the creating identity.
type SubleaseRequest struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Budget      int
	MoveIn      *time.Time
	MoveOut     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
