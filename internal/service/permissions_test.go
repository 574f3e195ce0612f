package service

import (
	"testing"

	"github.com/avkarpov/itemvault/models"
	"github.com/stretchr/testify/assert"
)

func TestRequireSuperuser(t *testing.T) {
	assert.NoError(t, requireSuperuser(models.User{IsSuperuser: true}))
	assert.ErrorIs(t, requireSuperuser(models.User{}), ErrForbidden)
}

func TestRequireOwnerOrSuperuser(t *testing.T) {
	tests := []struct {
		name    string
		caller  models.User
		ownerID int64
		wantErr error
	}{
		{name: "owner", caller: models.User{ID: 1}, ownerID: 1},
		{name: "superuser on foreign resource", caller: models.User{ID: 2, IsSuperuser: true}, ownerID: 1},
		{name: "stranger", caller: models.User{ID: 3}, ownerID: 1, wantErr: ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireOwnerOrSuperuser(tt.caller, tt.ownerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
