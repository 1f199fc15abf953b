// Package auth checks login credentials. There is no account store:
// any non-blank username and password pair opens a session.
package auth

import (
	"farm-advisor/domain"
	"farm-advisor/errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type loginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Check trims both values before checking presence. Credentials are never kept.
func Check(credentials domain.Credentials) error {
	req := loginRequest{
		Username: strings.TrimSpace(credentials.Username),
		Password: strings.TrimSpace(credentials.Password),
	}
	if err := validate.Struct(req); err != nil {
		return errors.ErrEmptyCredentials
	}
	return nil
}
