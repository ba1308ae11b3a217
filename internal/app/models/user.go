package models

import "time"

// User defines an account in the document store. The password is stored
// verbatim in the document for parity with the original data file; it must
// never leave the API layer (responses use dto.UserResponse instead).
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
