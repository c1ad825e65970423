package user

import (
	"crypto/sha256"
	"encoding/hex"
)

// hashPassword derives the stored credential from a submitted password.
//
// This is a plain unsalted SHA-256 with no work factor, kept
// byte-compatible with the hashes already in the users table.
// TODO: replace with a salted KDF once authentication policy settles on
// parameters and a migration path for existing rows.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
