package services

import (
	"errors"
	"testing"
)

func TestNormalizeAuthEmail(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "lowercases and trims", raw: "  User@Example.COM ", want: "user@example.com"},
		{name: "empty input", raw: "   ", want: ""},
		{name: "not an address", raw: "not-an-email", want: ""},
		{name: "valid address", raw: "a@b.co", want: "a@b.co"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAuthEmail(tt.raw); got != tt.want {
				t.Fatalf("NormalizeAuthEmail(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeCredentialsInput(t *testing.T) {
	email, password, err := NormalizeCredentialsInput(" User@Example.com ", " secretpass ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if email != "user@example.com" || password != "secretpass" {
		t.Fatalf("got %q / %q", email, password)
	}

	if _, _, err := NormalizeCredentialsInput("user@example.com", "   "); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for blank password, got %v", err)
	}
	if _, _, err := NormalizeCredentialsInput("broken", "secretpass"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for bad email, got %v", err)
	}
}
