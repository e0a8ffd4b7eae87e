package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

func TestManageServices(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	logs := audit.NewMemoryStore()
	d := audit.NewDispatcher(logs)

	mk := func(email string, role identity.Role) identity.Actor {
		u := &models.User{Name: email, Email: email, Role: string(role)}
		require.NoError(t, store.Users.CreateUser(ctx, u))
		return identity.Actor{ID: u.ID, Role: role}
	}
	provider := mk("p@example.com", identity.RoleProvider)
	other := mk("o@example.com", identity.RoleProvider)
	client := mk("c@example.com", identity.RoleClient)

	uc := NewManageServices(store.Services, store.Users, d)

	svc, err := uc.Create(ctx, provider, ServiceInput{ProviderID: provider.ID, Name: " Corte ", DurationMinutes: 30})
	require.NoError(t, err)
	assert.Equal(t, "Corte", svc.Name)
	assert.True(t, svc.Active)

	_, err = uc.Create(ctx, provider, ServiceInput{ProviderID: provider.ID, Name: "Barba", DurationMinutes: 0})
	assert.True(t, httperr.IsBusiness(err, "invalid_service_duration"))

	_, err = uc.Create(ctx, provider, ServiceInput{ProviderID: provider.ID, Name: "", DurationMinutes: 10})
	assert.True(t, httperr.IsBusiness(err, "service_name_required"))

	_, err = uc.Create(ctx, client, ServiceInput{ProviderID: client.ID, Name: "Corte", DurationMinutes: 30})
	assert.True(t, httperr.Is(err, httperr.KindUnauthorized))

	inactive := false
	updated, err := uc.Update(ctx, provider, svc.ID, ServiceInput{Name: "Corte longo", DurationMinutes: 45, Active: &inactive})
	require.NoError(t, err)
	assert.Equal(t, 45, updated.DurationMinutes)
	assert.False(t, updated.Active)

	_, err = uc.Update(ctx, other, svc.ID, ServiceInput{Name: "x", DurationMinutes: 10})
	assert.True(t, httperr.Is(err, httperr.KindUnauthorized))

	list, total, err := uc.List(ctx, &provider.ID, pagination.All)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.EqualValues(t, 1, total)

	assert.True(t, httperr.Is(uc.Delete(ctx, other, svc.ID), httperr.KindUnauthorized))
	require.NoError(t, uc.Delete(ctx, provider, svc.ID))

	_, err = uc.Get(ctx, svc.ID)
	assert.True(t, httperr.Is(err, httperr.KindNotFound))

	d.Close()
	events, err := logs.List(ctx, audit.Filter{Entity: "service"})
	require.NoError(t, err)
	assert.Len(t, events, 3)
}
