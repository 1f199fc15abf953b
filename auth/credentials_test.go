package auth

import (
	"farm-advisor/domain"
	"farm-advisor/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name        string
		credentials domain.Credentials
		wantErr     error
	}{
		{"Both present", domain.Credentials{Username: "farmer", Password: "secret"}, nil},
		{"Single characters are enough", domain.Credentials{Username: "a", Password: "b"}, nil},
		{"Empty username", domain.Credentials{Password: "secret"}, errors.ErrEmptyCredentials},
		{"Empty password", domain.Credentials{Username: "farmer"}, errors.ErrEmptyCredentials},
		{"Whitespace only", domain.Credentials{Username: "  ", Password: "\t"}, errors.ErrEmptyCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			err := Check(tt.credentials)
			if tt.wantErr == nil {
				req.NoError(err)
				return
			}
			req.ErrorIs(err, tt.wantErr)
		})
	}
}
