package passbook

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"
)

// pinSalt is the constant salt mixed into every PIN digest. It is part of
// the document format: changing it would invalidate every stored digest.
const pinSalt = "simple_atm_salt_2024"

// pbkdf2Iterations is deliberately modest: the digest guards a 4-digit PIN
// in a local file, not a network credential.
const pbkdf2Iterations = 10000

// idLength is the number of characters in an account number.
const idLength = 10

var pinPattern = regexp.MustCompile(`^[0-9]{4}$`)

// NewAccountID produces a fresh account number: the first 10 hex characters
// of a random UUID, upper-cased. The 40-bit space makes collisions with an
// existing ledger astronomically unlikely, but callers still re-check
// against the current ledger and retry.
func NewAccountID() string {
	id := uuid.New()
	return strings.ToUpper(hex.EncodeToString(id[:]))[:idLength]
}

// NormalizeID returns the canonical form of an account id. All lookups go
// through this, so ids typed in lower case keep resolving.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

// ValidPIN reports whether pin is exactly 4 ASCII digits. The shell
// validates PIN format on input, but the engine re-checks on creation and
// change rather than trusting its caller.
func ValidPIN(pin string) bool {
	return pinPattern.MatchString(pin)
}

// HashPIN computes the hex digest stored for a PIN: PBKDF2-SHA256 over the
// PIN with the constant salt. Deterministic, so the same PIN always yields
// the same digest and documents re-encode byte for byte.
func HashPIN(pin string) string {
	key := pbkdf2.Key([]byte(pin), []byte(pinSalt), pbkdf2Iterations, sha256.Size, sha256.New)
	return hex.EncodeToString(key)
}

// legacyHashPIN computes the digest the original implementation stored:
// sha256(salt+pin).
func legacyHashPIN(pin string) string {
	sum := sha256.Sum256([]byte(pinSalt + pin))
	return hex.EncodeToString(sum[:])
}

// VerifyPIN reports whether pin matches the stored digest. Digests written
// by the original implementation are still accepted. Comparison is constant
// time.
func VerifyPIN(pin, digest string) bool {
	if subtle.ConstantTimeCompare([]byte(HashPIN(pin)), []byte(digest)) == 1 {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(legacyHashPIN(pin)), []byte(digest)) == 1
}
