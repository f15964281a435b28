package models

// Profile is a subject's display data. Profiles are not backed by the tasks
// database; they live in the profile directory (in-memory or redis) and carry
// no persistence guarantee. Absence of a profile never blocks task operations.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
