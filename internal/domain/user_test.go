package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
		errMsg  string
	}{
		{
			name:    "Valid user should pass",
			user:    User{ID: uuid.New(), Username: "alice", PasswordHash: "$2a$10$hash"},
			wantErr: false,
		},
		{
			name:    "Blank username should fail",
			user:    User{ID: uuid.New(), Username: " ", PasswordHash: "$2a$10$hash"},
			wantErr: true,
			errMsg:  "username cannot be empty",
		},
		{
			name:    "Missing password hash should fail",
			user:    User{ID: uuid.New(), Username: "alice"},
			wantErr: true,
			errMsg:  "password hash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
