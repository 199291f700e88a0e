package security

import (
	"regexp"
	"strings"
	"testing"
)

func TestRandomStringLengthAndAlphabet(t *testing.T) {
	t.Parallel()

	value, err := RandomString(32, inviteCodeAlphabet)
	if err != nil {
		t.Fatalf("random string: %v", err)
	}
	if len(value) != 32 {
		t.Fatalf("expected 32 characters, got %d", len(value))
	}
	for _, character := range value {
		if !strings.ContainsRune(inviteCodeAlphabet, character) {
			t.Fatalf("character %q outside alphabet", character)
		}
	}
}

func TestRandomStringEdgeCases(t *testing.T) {
	t.Parallel()

	if value, err := RandomString(0, "abc"); err != nil || value != "" {
		t.Fatalf("zero length should yield empty string, got %q, %v", value, err)
	}
	if _, err := RandomString(-1, "abc"); err == nil {
		t.Fatalf("negative length must fail")
	}
	if _, err := RandomString(4, ""); err == nil {
		t.Fatalf("empty alphabet must fail")
	}
}

func TestRandomStringUniqueness(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool, 100)
	for i := 0; i < 100; i++ {
		value, err := RandomString(16, inviteCodeAlphabet)
		if err != nil {
			t.Fatalf("random string: %v", err)
		}
		if seen[value] {
			t.Fatalf("duplicate value %q", value)
		}
		seen[value] = true
	}
}

func TestInviteCodeFormat(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^CL-[A-HJ-NP-Z2-9]{4}-[A-HJ-NP-Z2-9]{4}$`)
	for i := 0; i < 50; i++ {
		code, err := InviteCode()
		if err != nil {
			t.Fatalf("invite code: %v", err)
		}
		if !pattern.MatchString(code) {
			t.Fatalf("invite code %q does not match expected shape", code)
		}
		if strings.ContainsAny(code, "01IO") {
			t.Fatalf("invite code %q contains an ambiguous character", code)
		}
	}
}
