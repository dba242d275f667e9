// Package users implements the user directory: registration, credential
// checks, and the persisted user list.
package users

import "unicode"

// JoinDateLayout is the format joinDate is stored in. Comparisons against
// "today" round-trip through this layout (timezone-naive).
const JoinDateLayout = "2006-01-02"

// User is a registered account. The JSON tags match the persisted format
// under the "users" key, so exported documents stay importable.
//
// Password is stored and compared in plaintext. That is a deliberate parity
// decision; comparison is isolated behind CredentialComparer so a hashing
// scheme can be substituted without touching callers.
type User struct {
	// ID is the decimal unix-millisecond timestamp of creation.
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	JoinDate string `json:"joinDate"`
	// IsAdmin is true only for the first user ever registered. There is no
	// promotion or demotion path.
	IsAdmin bool `json:"isAdmin"`
}

// AvatarInitial returns the upper-cased first letter of the username, used
// as the profile avatar.
func (u *User) AvatarInitial() string {
	for _, r := range u.Username {
		return string(unicode.ToUpper(r))
	}
	return ""
}
