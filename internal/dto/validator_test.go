package dto_test

import (
	"testing"

	"github.com/finsim/bank_ledger_app/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestRegisterUserRequestValidation(t *testing.T) {
	v := dto.NewValidator()

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"all character classes", "Str0ng!pass", true},
		{"too short", "S0r!t", false},
		{"missing uppercase", "weak0!pass", false},
		{"missing lowercase", "WEAK0!PASS", false},
		{"missing digit", "Weakness!", false},
		{"missing special", "Weakness0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.RegisterUserRequest{Username: "alice", Password: tt.password}
			err := v.Struct(req)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestOpenAccountRequestValidation(t *testing.T) {
	v := dto.NewValidator()

	err := v.Struct(dto.OpenAccountRequest{HolderName: "Alice", AccountType: "SAVINGS"})
	assert.NoError(t, err)

	err = v.Struct(dto.OpenAccountRequest{HolderName: "Alice", AccountType: "CURRENT"})
	assert.Error(t, err)

	err = v.Struct(dto.OpenAccountRequest{AccountType: "CHECKING"})
	assert.Error(t, err)
}
