//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type usernameHolder struct {
	Username string `validate:"username"`
}

func TestUsernameValidation(t *testing.T) {
	validate, err := New()
	require.NoError(t, err)

	tests := []struct {
		username string
		valid    bool
	}{
		{"wanjiru", true},
		{"john.doe-92_x", true},
		{"", false},
		{"has space", false},
		{"emoji😀", false},
		{"semi;colon", false},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			err := validate.Struct(usernameHolder{Username: tt.username})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestStruct_FlattensErrors(t *testing.T) {
	err := Struct(struct {
		Name string `validate:"required"`
	}{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Name, Tag: required")
}
