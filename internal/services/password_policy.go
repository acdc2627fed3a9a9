package services

import "errors"

var ErrPasswordTooShort = errors.New("password too short")

const minPasswordLength = 8

func ValidatePasswordLength(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
