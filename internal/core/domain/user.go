package domain

// User is an account created through the public registration form.
// Accounts are write-once: registration creates them, login reads them,
// nothing updates or deletes them.
type User struct {
	ID           string  `json:"id,omitempty"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	AvatarURL    *string `json:"avatar_url,omitempty"`
	IsActive     bool    `json:"is_active"`
}
