package users

import "crypto/subtle"

// CredentialComparer checks a password candidate against the stored
// credential. The plaintext implementation preserves the historical
// behavior; a hashing scheme can be swapped in here without touching
// the service or its callers.
type CredentialComparer interface {
	Compare(stored, candidate string) bool
}

// PlaintextComparer compares passwords byte for byte, case-sensitive.
type PlaintextComparer struct{}

func (PlaintextComparer) Compare(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
