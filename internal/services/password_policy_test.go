package services

import (
	"errors"
	"testing"
)

func TestValidatePasswordLength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "seven chars rejected", password: "1234567", wantErr: true},
		{name: "eight chars accepted", password: "12345678", wantErr: false},
		{name: "empty rejected", password: "", wantErr: true},
		{name: "multibyte runes counted as runes", password: "пароль78", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordLength(tt.password)
			if tt.wantErr && !errors.Is(err, ErrPasswordTooShort) {
				t.Fatalf("expected ErrPasswordTooShort, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
