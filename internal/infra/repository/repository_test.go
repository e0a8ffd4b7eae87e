package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/agenda-scheduler/internal/clock"
	dbpkg "github.com/BruksfildServices01/agenda-scheduler/internal/db"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

var day = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func at(hhmm string) time.Time {
	return clock.MustParse(hhmm).On(day)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, dbpkg.Migrate(gdb))
	return gdb
}

func seedUser(t *testing.T, repo *UserGormRepository, email, role string) *models.User {
	t.Helper()
	u := &models.User{Name: email, Email: email, PasswordHash: "x", Role: role}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	return u
}

func TestUserGormRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserGormRepository(newTestDB(t))

	u := seedUser(t, repo, "Prof@Example.com", "PROVIDER")
	assert.Equal(t, "prof@example.com", u.Email)

	got, err := repo.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "PROVIDER", got.Role)

	byEmail, err := repo.FindByEmail(ctx, "PROF@example.com ")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	err = repo.CreateUser(ctx, &models.User{Name: "x", Email: "prof@example.com", PasswordHash: "x"})
	assert.True(t, httperr.IsBusiness(err, "email_already_registered"))

	_, err = repo.GetUser(ctx, 999)
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))
}

func TestUserGormManagement(t *testing.T) {
	ctx := context.Background()
	repo := NewUserGormRepository(newTestDB(t))

	bia := seedUser(t, repo, "bia@example.com", "CLIENT")
	ana := seedUser(t, repo, "ana@example.com", "PROVIDER")
	caio := seedUser(t, repo, "caio@example.com", "CLIENT")

	bia.Name = "bia souza"
	bia.Email = " BIA.SOUZA@example.com"
	require.NoError(t, repo.UpdateUser(ctx, bia))

	got, err := repo.GetUser(ctx, bia.ID)
	require.NoError(t, err)
	assert.Equal(t, "bia souza", got.Name)
	assert.Equal(t, "bia.souza@example.com", got.Email)

	ana.Email = "caio@example.com"
	assert.True(t, httperr.IsBusiness(repo.UpdateUser(ctx, ana), "email_already_registered"))

	ghost := &models.User{ID: 999, Name: "x", Email: "x@example.com", PasswordHash: "x", Role: "CLIENT"}
	assert.True(t, httperr.IsBusiness(repo.UpdateUser(ctx, ghost), "user_not_found"))

	// seedUser usa o e-mail como nome
	all, total, err := repo.ListUsers(ctx, nil, pagination.Page{Number: 0, Size: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, all, 2)
	assert.Equal(t, ana.ID, all[0].ID)
	assert.Equal(t, bia.ID, all[1].ID)

	client := identity.RoleClient
	clients, total, err := repo.ListUsers(ctx, &client, pagination.All)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, clients, 2)

	require.NoError(t, repo.DeleteUser(ctx, caio.ID))
	assert.True(t, httperr.IsBusiness(repo.DeleteUser(ctx, caio.ID), "user_not_found"))

	_, err = repo.GetUser(ctx, caio.ID)
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))
	_, err = repo.FindByEmail(ctx, "caio@example.com")
	assert.True(t, httperr.IsBusiness(err, "user_not_found"))

	_, total, err = repo.ListUsers(ctx, nil, pagination.All)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	caio.ID = 0
	assert.True(t, httperr.IsBusiness(repo.CreateUser(ctx, caio), "email_already_registered"))
}

func TestCatalogGormRepository(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	users := NewUserGormRepository(gdb)
	repo := NewCatalogGormRepository(gdb)

	p := seedUser(t, users, "p@example.com", "PROVIDER")

	svc := &models.Service{ProviderID: p.ID, Name: "Corte", DurationMinutes: 30, Active: true}
	require.NoError(t, repo.CreateService(ctx, svc))

	svc.Name = "Corte e barba"
	svc.DurationMinutes = 60
	require.NoError(t, repo.UpdateService(ctx, svc))

	got, err := repo.GetService(ctx, svc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Corte e barba", got.Name)
	assert.Equal(t, 60, got.DurationMinutes)

	list, total, err := repo.ListServices(ctx, &p.ID, pagination.All)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.EqualValues(t, 1, total)

	other := uint(999)
	list, total, err = repo.ListServices(ctx, &other, pagination.All)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Zero(t, total)

	require.NoError(t, repo.DeleteService(ctx, svc.ID))
	assert.True(t, httperr.Is(repo.DeleteService(ctx, svc.ID), httperr.KindNotFound))
	assert.True(t, httperr.Is(repo.UpdateService(ctx, svc), httperr.KindNotFound))
}

func TestAvailabilityGormRepository(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	users := NewUserGormRepository(gdb)
	repo := NewAvailabilityGormRepository(gdb)

	p := seedUser(t, users, "p@example.com", "PROVIDER")

	afternoon := &models.AvailabilityBlock{ProviderID: p.ID, Weekday: clock.Monday, StartTime: clock.MustParse("14:00"), EndTime: clock.MustParse("18:00")}
	morning := &models.AvailabilityBlock{ProviderID: p.ID, Weekday: clock.Monday, StartTime: clock.MustParse("08:00"), EndTime: clock.MustParse("12:00")}
	friday := &models.AvailabilityBlock{ProviderID: p.ID, Weekday: clock.Friday, StartTime: clock.MustParse("08:00"), EndTime: clock.MustParse("12:00")}

	for _, b := range []*models.AvailabilityBlock{afternoon, morning, friday} {
		require.NoError(t, repo.CreateBlock(ctx, b))
	}

	mon, err := repo.ListBlocksForWeekday(ctx, p.ID, clock.Monday)
	require.NoError(t, err)
	require.Len(t, mon, 2)
	assert.Equal(t, clock.MustParse("08:00"), mon[0].StartTime)
	assert.Equal(t, clock.MustParse("12:00"), mon[0].EndTime)

	all, total, err := repo.ListBlocks(ctx, nil, pagination.All)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.EqualValues(t, 3, total)

	page, total, err := repo.ListBlocks(ctx, &p.ID, pagination.Page{Number: 1, Size: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, page, 1)

	friday.Weekday = clock.Saturday
	friday.EndTime = clock.MustParse("13:00")
	require.NoError(t, repo.UpdateBlock(ctx, friday))

	got, err := repo.GetBlock(ctx, friday.ID)
	require.NoError(t, err)
	assert.Equal(t, clock.Saturday, got.Weekday)
	assert.Equal(t, clock.MustParse("13:00"), got.EndTime)

	require.NoError(t, repo.DeleteBlock(ctx, friday.ID))
	_, err = repo.GetBlock(ctx, friday.ID)
	assert.True(t, httperr.IsBusiness(err, "availability_not_found"))
	assert.True(t, httperr.Is(repo.DeleteBlock(ctx, friday.ID), httperr.KindNotFound))
}

func TestAppointmentGormRepository(t *testing.T) {
	ctx := context.Background()
	gdb := newTestDB(t)
	users := NewUserGormRepository(gdb)
	services := NewCatalogGormRepository(gdb)
	repo := NewAppointmentGormRepository(gdb)

	p := seedUser(t, users, "p@example.com", "PROVIDER")
	c := seedUser(t, users, "c@example.com", "CLIENT")
	svc := &models.Service{ProviderID: p.ID, Name: "Corte", DurationMinutes: 30, Active: true}
	require.NoError(t, services.CreateService(ctx, svc))

	newAp := func(start string) *models.Appointment {
		s := at(start)
		return &models.Appointment{
			ClientID:   c.ID,
			ProviderID: p.ID,
			ServiceID:  svc.ID,
			StartTime:  s,
			EndTime:    s.Add(30 * time.Minute),
			Status:     "SCHEDULED",
		}
	}

	late := newAp("15:00")
	early := newAp("09:00")
	tomorrow := newAp("09:00")
	tomorrow.StartTime = tomorrow.StartTime.AddDate(0, 0, 1)
	tomorrow.EndTime = tomorrow.EndTime.AddDate(0, 0, 1)

	for _, ap := range []*models.Appointment{late, early, tomorrow} {
		require.NoError(t, repo.Save(ctx, ap))
		require.NotZero(t, ap.ID)
	}

	list, err := repo.FindByProvider(ctx, p.ID, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, early.ID, list[0].ID)
	assert.True(t, at("09:00").Equal(list[0].StartTime))

	now := time.Now().UTC()
	early.Status = "CANCELED_BY_CLIENT"
	early.CanceledAt = &now
	require.NoError(t, repo.Save(ctx, early))

	got, err := repo.FindByID(ctx, early.ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCELED_BY_CLIENT", got.Status)
	assert.NotNil(t, got.CanceledAt)

	byClient, total, err := repo.FindByClient(ctx, c.ID, pagination.All)
	require.NoError(t, err)
	assert.Len(t, byClient, 3)
	assert.EqualValues(t, 3, total)

	first, total, err := repo.FindByClient(ctx, c.ID, pagination.Page{Number: 0, Size: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, first, 1)
	assert.Equal(t, early.ID, first[0].ID)

	agenda, total, err := repo.PageByProvider(ctx, p.ID, day, day.AddDate(0, 0, 2), pagination.Page{Number: 1, Size: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, agenda, 1)
	assert.Equal(t, tomorrow.ID, agenda[0].ID)

	_, err = repo.FindByID(ctx, 12345)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
