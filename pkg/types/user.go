package types

import "fmt"

// Column width limits for user text fields.
const (
	MaxNameLen   = 127
	MaxGenderLen = 10
	MaxEmailLen  = 255
)

// MinUserAge is the minimum borrower age, enforced on every save.
const MinUserAge = 15

// User represents one eligible borrower. FirstName and LastName may be
// unset and are stored as NULL; Age, Gender, and Email are required.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Email     string `json:"email"`
}

// Validate checks the user's fields against the column constraints and the
// minimum-age rule. It does not touch the store.
func (u *User) Validate() error {
	if u.Age < MinUserAge {
		return ErrMinAge
	}
	if len(u.FirstName) > MaxNameLen || len(u.LastName) > MaxNameLen {
		return fmt.Errorf("%w: name exceeds %d characters", ErrValidation, MaxNameLen)
	}
	if len(u.Gender) > MaxGenderLen {
		return fmt.Errorf("%w: gender exceeds %d characters", ErrValidation, MaxGenderLen)
	}
	if len(u.Email) > MaxEmailLen {
		return fmt.Errorf("%w: email exceeds %d characters", ErrValidation, MaxEmailLen)
	}
	return nil
}
