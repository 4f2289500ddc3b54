package domain

// ContactMessage is a contact-form submission. Stored for the marketing team,
// never read back through this API.
type ContactMessage struct {
	ID      string  `json:"id,omitempty"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message"`
}
