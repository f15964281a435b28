package identity

import (
	"strings"
	"testing"
)

func TestSubjectID(t *testing.T) {
	id := SubjectID("alice@example.com")

	if !strings.HasPrefix(id, "mock-alice-") {
		t.Errorf("expected mock-alice- prefix, got %q", id)
	}

	hash := strings.TrimPrefix(id, "mock-alice-")
	if len(hash) != 16 {
		t.Errorf("expected 16 hex chars of hash, got %d (%q)", len(hash), hash)
	}

	// Deterministic: same email, same ID, every time
	if again := SubjectID("alice@example.com"); again != id {
		t.Errorf("expected stable ID, got %q then %q", id, again)
	}

	// Different emails with the same local part still differ in the hash
	other := SubjectID("alice@other.com")
	if other == id {
		t.Errorf("expected distinct IDs for distinct emails, both %q", id)
	}
	if !strings.HasPrefix(other, "mock-alice-") {
		t.Errorf("expected mock-alice- prefix, got %q", other)
	}
}

func TestLocalPart(t *testing.T) {
	tests := []struct {
		email    string
		expected string
	}{
		{"alice@example.com", "alice"},
		{"a.b+c@example.com", "a.b+c"},
		{"first@second@third", "first"},
		{"no-at-sign", "no-at-sign"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := LocalPart(tt.email); got != tt.expected {
				t.Errorf("LocalPart(%q) = %q, want %q", tt.email, got, tt.expected)
			}
		})
	}
}

func TestOwnsResource(t *testing.T) {
	id := SubjectID("alice@example.com")

	tests := []struct {
		name    string
		subject string
		owner   string
		allowed bool
	}{
		{"exact match", id, id, true},
		{"different subject", id, SubjectID("bob@example.com"), false},
		{"prefix is not enough", id, id + "x", false},
		{"truncated owner", id, id[:len(id)-1], false},
		{"case differs", id, strings.ToUpper(id), false},
		{"empty subject never owns", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OwnsResource(tt.subject, tt.owner); got != tt.allowed {
				t.Errorf("OwnsResource(%q, %q) = %v, want %v", tt.subject, tt.owner, got, tt.allowed)
			}
		})
	}
}
