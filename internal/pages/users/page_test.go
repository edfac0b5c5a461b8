package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cravio-admin/internal/common/logger"
	"cravio-admin/internal/models"
)

type fakeAPI struct {
	users []models.User
}

func (f *fakeAPI) FetchUsers(ctx context.Context) ([]models.User, error) {
	return f.users, nil
}

func fixtureUsers() []models.User {
	return []models.User{
		{ID: "u1", Name: "Asha Patel", Email: "asha@example.com", Phone: "9876501234", Role: models.RoleAdmin, IsActive: true},
		{ID: "u2", Name: "Vikram Rao", Email: "vikram@example.com", Phone: "9000000000", Role: models.RoleUser, IsActive: false},
		{ID: "u3", Name: "Meena Iyer", Email: "meena@example.com", Phone: "9123456789", Role: models.RoleUser, IsActive: true},
	}
}

func TestListCriteria(t *testing.T) {
	page := NewPage(&fakeAPI{users: fixtureUsers()}, logger.NewTestLogger(t))

	tests := []struct {
		name     string
		criteria Criteria
		wantIDs  []string
	}{
		{name: "all", criteria: Criteria{}, wantIDs: []string{"u1", "u2", "u3"}},
		{name: "search name", criteria: Criteria{Search: "asha"}, wantIDs: []string{"u1"}},
		{name: "search email", criteria: Criteria{Search: "vikram@"}, wantIDs: []string{"u2"}},
		{name: "search phone", criteria: Criteria{Search: "9123"}, wantIDs: []string{"u3"}},
		{name: "role", criteria: Criteria{Role: "user"}, wantIDs: []string{"u2", "u3"}},
		{name: "active", criteria: Criteria{Active: "active"}, wantIDs: []string{"u1", "u3"}},
		{name: "inactive", criteria: Criteria{Active: "inactive"}, wantIDs: []string{"u2"}},
		{name: "conjunction", criteria: Criteria{Role: "user", Active: "active"}, wantIDs: []string{"u3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := page.List(context.Background(), tt.criteria)
			require.NoError(t, err)
			var ids []string
			for _, u := range got {
				ids = append(ids, u.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
