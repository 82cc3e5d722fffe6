// Package model defines domain entities for the application.
package model

// Hash field names for a stored user record.
const (
	FieldFirstname = "firstname"
	FieldLastname  = "lastname"
)

// User is a user record. Username is the store key and is never
// written into the stored hash.
type User struct {
	Username  string `json:"username"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// ToHash returns the fields persisted for the user.
func (u *User) ToHash() map[string]string {
	return map[string]string{
		FieldFirstname: u.Firstname,
		FieldLastname:  u.Lastname,
	}
}

// UserFromHash builds a User from a stored hash, taking the username from
// the key it was stored under.
func UserFromHash(username string, fields map[string]string) *User {
	return &User{
		Username:  username,
		Firstname: fields[FieldFirstname],
		Lastname:  fields[FieldLastname],
	}
}
