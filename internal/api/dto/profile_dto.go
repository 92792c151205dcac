package dto

// ProfilePayload mirrors the profile row supplied by the caller. The id must
// be the caller's own identity id.
type ProfilePayload struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// CreateProfileRequest is the body of POST /api/create-profile.
type CreateProfileRequest struct {
	Profile   *ProfilePayload `json:"profile"`
	UserToken string          `json:"userToken"`
}

// VerifyUserRequest is the body of POST /api/verify-user.
type VerifyUserRequest struct {
	UserID     string `json:"userId"`
	AdminToken string `json:"adminToken"`
}
