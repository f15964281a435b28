// Package identity derives the mock subject IDs this service hands out and
// holds the ownership check every task/subtask route goes through.
//
// There is no user table. A subject ID is a pure function of the email, so
// registering or logging in twice with the same address always yields the
// same identity.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SubjectID returns the deterministic mock ID for an email:
// "mock-<local part>-<first 16 hex chars of sha256(email)>".
func SubjectID(email string) string {
	sum := sha256.Sum256([]byte(email))
	local := LocalPart(email)
	return "mock-" + local + "-" + hex.EncodeToString(sum[:])[:16]
}

// LocalPart returns everything before the first '@'. An address without
// an '@' is returned whole.
func LocalPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

// OwnsResource reports whether the authenticated subject may act on a
// resource declared to belong to ownerID. Exact, case-sensitive string
// equality; no normalization, no prefix matching.
func OwnsResource(subjectID, ownerID string) bool {
	return subjectID != "" && subjectID == ownerID
}
