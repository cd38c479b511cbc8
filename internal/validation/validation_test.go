package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/paperplane-redeem/internal/models"
)

func TestValidate_Contact(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr string
	}{
		{name: "valid", email: "a@b.com"},
		{name: "subdomain", email: "jane.doe@mail.example.org"},
		{name: "missing", email: "", wantErr: "contact validation failed: userEmail: Path userEmail is required"},
		{name: "no at sign", email: "not-an-email", wantErr: "contact validation failed: userEmail: Invalid email address"},
		{name: "no tld", email: "a@b", wantErr: "contact validation failed: userEmail: Invalid email address"},
		{name: "whitespace", email: "a b@c.com", wantErr: "contact validation failed: userEmail: Invalid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(models.Contact{UserEmail: tt.email})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrValidation)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestValidate_InputOnlyChecksSuppliedFields(t *testing.T) {
	age := 30.0
	assert.NoError(t, Validate(models.ContactInput{Age: &age}))

	good := "x@y.io"
	assert.NoError(t, Validate(models.ContactInput{UserEmail: &good}))

	bad := "nope"
	err := Validate(models.ContactInput{UserEmail: &bad})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Invalid email address")

	empty := ""
	assert.ErrorIs(t, Validate(models.ContactInput{UserEmail: &empty}), ErrValidation)
}

func TestEmailPattern(t *testing.T) {
	assert.True(t, EmailPattern.MatchString("a@b.co"))
	assert.False(t, EmailPattern.MatchString("@b.co"))
	assert.False(t, EmailPattern.MatchString("a@@b.co"))
}
