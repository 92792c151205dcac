package dto

// SendEmailsRequest is the body of POST /api/send-emails. The caller's
// identity comes from the server-side session, not the body.
type SendEmailsRequest struct {
	Type      string   `json:"type"`
	FromEmail string   `json:"fromEmail"`
	Subject   string   `json:"subject"`
	Message   string   `json:"message"`
	Emails    []string `json:"emails"`
	UserIDs   []string `json:"userIds"`
}
