package appointment

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/agenda-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

// 2026-10-19 é uma segunda-feira
var monday = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

func at(hhmm string) time.Time {
	return clock.MustParse(hhmm).On(monday)
}

type fixture struct {
	store *memory.Store

	create   *CreateAppointment
	cancel   *CancelAppointment
	complete *CompleteAppointment
	slots    *GenerateSlots
	list     *ListAppointments
	get      *GetAppointment

	provider identity.Actor
	client   identity.Actor
	other    identity.Actor
	admin    identity.Actor
	service  *models.Service
}

// provider com bloco de segunda 09:00-12:00 e serviço de 30 minutos
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	store := memory.NewStore()
	locker := lock.NewKeyed()

	mk := func(email string, role identity.Role) identity.Actor {
		u := &models.User{Name: email, Email: email, Role: string(role)}
		require.NoError(t, store.Users.CreateUser(ctx, u))
		return identity.Actor{ID: u.ID, Role: role}
	}

	f := &fixture{
		store:    store,
		create:   NewCreateAppointment(store.Appointments, store.Availability, store.Services, store.Users, locker, nil, nil),
		cancel:   NewCancelAppointment(store.Appointments, locker, nil, nil),
		complete: NewCompleteAppointment(store.Appointments, locker, nil, nil),
		slots:    NewGenerateSlots(store.Appointments, store.Availability, store.Services, store.Users, nil),
		list:     NewListAppointments(store.Appointments),
		get:      NewGetAppointment(store.Appointments),
		provider: mk("p@example.com", identity.RoleProvider),
		client:   mk("c@example.com", identity.RoleClient),
		other:    mk("x@example.com", identity.RoleClient),
		admin:    mk("a@example.com", identity.RoleAdmin),
	}

	require.NoError(t, store.Availability.CreateBlock(ctx, &models.AvailabilityBlock{
		ProviderID: f.provider.ID,
		Weekday:    clock.Monday,
		StartTime:  clock.MustParse("09:00"),
		EndTime:    clock.MustParse("12:00"),
	}))

	f.service = &models.Service{ProviderID: f.provider.ID, Name: "Corte", DurationMinutes: 30, Active: true}
	require.NoError(t, store.Services.CreateService(ctx, f.service))

	return f
}

func (f *fixture) book(t *testing.T, start string) *models.Appointment {
	t.Helper()
	ap, err := f.create.Execute(context.Background(), f.client, CreateAppointmentInput{
		ProviderID: f.provider.ID,
		ServiceID:  f.service.ID,
		Start:      at(start),
	})
	require.NoError(t, err)
	return ap
}

func (f *fixture) generate(t *testing.T) []domain.TimeSlot {
	t.Helper()
	slots, err := f.slots.Execute(context.Background(), domain.AvailabilityInput{
		ProviderID: f.provider.ID,
		ServiceID:  f.service.ID,
		Date:       monday,
	})
	require.NoError(t, err)
	return slots
}

func starts(slots []domain.TimeSlot) []string {
	out := []string{}
	for _, s := range slots {
		out = append(out, clock.Of(s.Start).String())
	}
	return out
}

// ======================================================
// SLOTS
// ======================================================

func TestGenerateSlotsFullBlock(t *testing.T) {
	f := newFixture(t)

	slots := f.generate(t)

	assert.Equal(t,
		[]string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"},
		starts(slots),
	)
	assert.Equal(t, at("12:00"), slots[len(slots)-1].End)

	// determinístico
	assert.Equal(t, slots, f.generate(t))
}

func TestGenerateSlotsSkipsBooked(t *testing.T) {
	f := newFixture(t)
	f.book(t, "10:00")

	slots := f.generate(t)

	assert.Equal(t,
		[]string{"09:00", "09:30", "10:30", "11:00", "11:30"},
		starts(slots),
	)

	blocks, err := f.store.Availability.ListBlocksForWeekday(context.Background(), f.provider.ID, clock.Monday)
	require.NoError(t, err)
	for _, s := range slots {
		assert.True(t, availability.Covers(blocks, s.Start, s.End))
	}
}

func TestGenerateSlotsIgnoresCanceled(t *testing.T) {
	f := newFixture(t)
	ap := f.book(t, "10:00")

	_, err := f.cancel.Execute(context.Background(), f.client, ap.ID)
	require.NoError(t, err)

	assert.Len(t, f.generate(t), 6)
}

func TestGenerateSlotsOtherWeekdayIsEmpty(t *testing.T) {
	f := newFixture(t)

	slots, err := f.slots.Execute(context.Background(), domain.AvailabilityInput{
		ProviderID: f.provider.ID,
		ServiceID:  f.service.ID,
		Date:       monday.AddDate(0, 0, 1),
	})
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerateSlotsInactiveServiceIsEmpty(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	inactive := &models.Service{ProviderID: f.provider.ID, Name: "Antigo", DurationMinutes: 30, Active: false}
	require.NoError(t, f.store.Services.CreateService(ctx, inactive))

	slots, err := f.slots.Execute(ctx, domain.AvailabilityInput{
		ProviderID: f.provider.ID,
		ServiceID:  inactive.ID,
		Date:       monday,
	})
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)

	// nenhum horário oferecido seria aceito
	_, err = f.create.Execute(ctx, f.client, CreateAppointmentInput{
		ProviderID: f.provider.ID,
		ServiceID:  inactive.ID,
		Start:      at("09:00"),
	})
	assert.True(t, httperr.IsBusiness(err, "service_inactive"))
}

func TestGenerateSlotsServiceOfAnotherProvider(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	foreign := &models.Service{ProviderID: f.provider.ID + 100, Name: "Outro", DurationMinutes: 30, Active: true}
	require.NoError(t, f.store.Services.CreateService(ctx, foreign))

	_, err := f.slots.Execute(ctx, domain.AvailabilityInput{
		ProviderID: f.provider.ID,
		ServiceID:  foreign.ID,
		Date:       monday,
	})
	assert.True(t, httperr.Is(err, httperr.KindNotFound))

	_, err = f.slots.Execute(ctx, domain.AvailabilityInput{
		ProviderID: f.provider.ID,
		ServiceID:  999,
		Date:       monday,
	})
	assert.True(t, httperr.Is(err, httperr.KindNotFound))
}

// ======================================================
// CREATE
// ======================================================

func TestCreateAppointment(t *testing.T) {
	f := newFixture(t)

	ap := f.book(t, "10:00")

	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.Equal(t, f.client.ID, ap.ClientID)
	assert.Equal(t, at("10:30"), ap.EndTime)
}

func TestCreateAppointmentConflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.book(t, "10:00")

	_, err := f.create.Execute(ctx, f.other, CreateAppointmentInput{
		ProviderID: f.provider.ID,
		ServiceID:  f.service.ID,
		Start:      at("10:00"),
	})
	assert.True(t, httperr.Is(err, httperr.KindScheduleConflict))

	_, err = f.create.Execute(ctx, f.other, CreateAppointmentInput{
		ProviderID: f.provider.ID,
		ServiceID:  f.service.ID,
		Start:      at("09:45"),
	})
	assert.True(t, httperr.Is(err, httperr.KindScheduleConflict))

	// encostado no fim do existente
	_, err = f.create.Execute(ctx, f.other, CreateAppointmentInput{
		ProviderID: f.provider.ID,
		ServiceID:  f.service.ID,
		Start:      at("10:30"),
	})
	require.NoError(t, err)
}

func TestCreateAppointmentOutOfAvailability(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, start := range []string{"08:30", "11:45", "13:00"} {
		_, err := f.create.Execute(ctx, f.client, CreateAppointmentInput{
			ProviderID: f.provider.ID,
			ServiceID:  f.service.ID,
			Start:      at(start),
		})
		assert.True(t, httperr.Is(err, httperr.KindOutOfAvailability), start)
	}

	// terça não tem bloco
	_, err := f.create.Execute(ctx, f.client, CreateAppointmentInput{
		ProviderID: f.provider.ID,
		ServiceID:  f.service.ID,
		Start:      at("10:00").AddDate(0, 0, 1),
	})
	assert.True(t, httperr.Is(err, httperr.KindOutOfAvailability))
}

func TestCreateAppointmentCanceledFreesSlot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ap := f.book(t, "10:00")

	_, err := f.cancel.Execute(ctx, f.provider, ap.ID)
	require.NoError(t, err)

	_, err = f.create.Execute(ctx, f.other, CreateAppointmentInput{
		ProviderID: f.provider.ID,
		ServiceID:  f.service.ID,
		Start:      at("10:00"),
	})
	require.NoError(t, err)
}

func TestCreateAppointmentValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	foreign := &models.Service{ProviderID: f.provider.ID + 100, Name: "Outro", DurationMinutes: 30, Active: true}
	require.NoError(t, f.store.Services.CreateService(ctx, foreign))

	inactive := &models.Service{ProviderID: f.provider.ID, Name: "Antigo", DurationMinutes: 30, Active: false}
	require.NoError(t, f.store.Services.CreateService(ctx, inactive))

	tests := []struct {
		name  string
		actor identity.Actor
		in    CreateAppointmentInput
		kind  httperr.Kind
	}{
		{
			name:  "service of another provider",
			actor: f.client,
			in:    CreateAppointmentInput{ProviderID: f.provider.ID, ServiceID: foreign.ID, Start: at("10:00")},
			kind:  httperr.KindValidation,
		},
		{
			name:  "inactive service",
			actor: f.client,
			in:    CreateAppointmentInput{ProviderID: f.provider.ID, ServiceID: inactive.ID, Start: at("10:00")},
			kind:  httperr.KindValidation,
		},
		{
			name:  "unknown service",
			actor: f.client,
			in:    CreateAppointmentInput{ProviderID: f.provider.ID, ServiceID: 999, Start: at("10:00")},
			kind:  httperr.KindNotFound,
		},
		{
			name:  "provider is a client",
			actor: f.client,
			in:    CreateAppointmentInput{ProviderID: f.other.ID, ServiceID: f.service.ID, Start: at("10:00")},
			kind:  httperr.KindValidation,
		},
		{
			name:  "client booking for someone else",
			actor: f.client,
			in:    CreateAppointmentInput{ClientID: f.other.ID, ProviderID: f.provider.ID, ServiceID: f.service.ID, Start: at("10:00")},
			kind:  httperr.KindUnauthorized,
		},
		{
			name:  "provider cannot book",
			actor: f.provider,
			in:    CreateAppointmentInput{ProviderID: f.provider.ID, ServiceID: f.service.ID, Start: at("10:00")},
			kind:  httperr.KindUnauthorized,
		},
		{
			name:  "admin without client",
			actor: f.admin,
			in:    CreateAppointmentInput{ProviderID: f.provider.ID, ServiceID: f.service.ID, Start: at("10:00")},
			kind:  httperr.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.create.Execute(ctx, tt.actor, tt.in)
			require.Error(t, err)
			assert.True(t, httperr.Is(err, tt.kind), err.Error())
		})
	}

	ap, err := f.create.Execute(ctx, f.admin, CreateAppointmentInput{
		ClientID:   f.other.ID,
		ProviderID: f.provider.ID,
		ServiceID:  f.service.ID,
		Start:      at("11:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, f.other.ID, ap.ClientID)
}

// spyLocker marca quais chaves estão travadas no momento.
type spyLocker struct {
	inner lock.Locker

	mu   sync.Mutex
	held map[string]bool
}

func newSpyLocker(inner lock.Locker) *spyLocker {
	return &spyLocker{inner: inner, held: map[string]bool{}}
}

func (s *spyLocker) Lock(ctx context.Context, key string) (func(), error) {
	unlock, err := s.inner.Lock(ctx, key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.held[key] = true
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		s.held[key] = false
		s.mu.Unlock()
		unlock()
	}, nil
}

func (s *spyLocker) isHeld(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.held[key]
}

// unguardedRepo não rejeita sobreposição no Save, como o gorm sem a
// constraint de exclusão. A leitura de conflito demora um pouco para abrir
// a janela entre ler e gravar.
type unguardedRepo struct {
	spy *spyLocker

	mu          sync.Mutex
	rows        []models.Appointment
	outsideLock atomic.Int32
}

func (r *unguardedRepo) checkHeld(providerID uint) {
	if !r.spy.isHeld(lock.ProviderKey(providerID)) {
		r.outsideLock.Add(1)
	}
}

func (r *unguardedRepo) Save(_ context.Context, ap *models.Appointment) error {
	r.checkHeld(ap.ProviderID)

	r.mu.Lock()
	defer r.mu.Unlock()

	if ap.ID == 0 {
		ap.ID = uint(len(r.rows) + 1)
		r.rows = append(r.rows, *ap)
		return nil
	}
	r.rows[ap.ID-1] = *ap
	return nil
}

func (r *unguardedRepo) FindByID(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id == 0 || int(id) > len(r.rows) {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}
	ap := r.rows[id-1]
	return &ap, nil
}

func (r *unguardedRepo) FindByProvider(
	_ context.Context,
	providerID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	r.checkHeld(providerID)
	time.Sleep(5 * time.Millisecond)

	return r.filter(func(ap models.Appointment) bool {
		return ap.ProviderID == providerID && !ap.StartTime.Before(from) && ap.StartTime.Before(to)
	}), nil
}

func (r *unguardedRepo) PageByProvider(
	ctx context.Context,
	providerID uint,
	from time.Time,
	to time.Time,
	page pagination.Page,
) ([]models.Appointment, int64, error) {

	all := r.filter(func(ap models.Appointment) bool {
		return ap.ProviderID == providerID && !ap.StartTime.Before(from) && ap.StartTime.Before(to)
	})
	return pagination.Slice(all, page), int64(len(all)), nil
}

func (r *unguardedRepo) FindByClient(
	_ context.Context,
	clientID uint,
	page pagination.Page,
) ([]models.Appointment, int64, error) {

	all := r.filter(func(ap models.Appointment) bool { return ap.ClientID == clientID })
	return pagination.Slice(all, page), int64(len(all)), nil
}

func (r *unguardedRepo) filter(keep func(models.Appointment) bool) []models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Appointment{}
	for _, ap := range r.rows {
		if keep(ap) {
			out = append(out, ap)
		}
	}
	return out
}

var _ domain.Repository = (*unguardedRepo)(nil)

func TestConcurrentCreateSerializedByProviderLock(t *testing.T) {
	for round := 0; round < 20; round++ {
		f := newFixture(t)

		spy := newSpyLocker(lock.NewKeyed())
		repo := &unguardedRepo{spy: spy}
		uc := NewCreateAppointment(repo, f.store.Availability, f.store.Services, f.store.Users, spy, nil, nil)

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			success int
			errs    []error
		)
		start := make(chan struct{})

		for _, actor := range []identity.Actor{f.client, f.other} {
			wg.Add(1)
			go func(actor identity.Actor) {
				defer wg.Done()
				<-start
				_, err := uc.Execute(context.Background(), actor, CreateAppointmentInput{
					ProviderID: f.provider.ID,
					ServiceID:  f.service.ID,
					Start:      at("10:00"),
				})

				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					success++
					return
				}
				errs = append(errs, err)
			}(actor)
		}
		close(start)
		wg.Wait()

		require.Equal(t, 1, success, "round %d", round)
		require.Len(t, errs, 1)
		assert.True(t, httperr.Is(errs[0], httperr.KindScheduleConflict))
		assert.Len(t, repo.rows, 1)
		assert.Zero(t, repo.outsideLock.Load(), "conflict read or save outside the provider lock")
	}
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func TestCancelAppointment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	byClient := f.book(t, "09:00")
	got, err := f.cancel.Execute(ctx, f.client, byClient.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCanceledByClient), got.Status)
	assert.NotNil(t, got.CanceledAt)

	byProvider := f.book(t, "09:30")
	got, err = f.cancel.Execute(ctx, f.provider, byProvider.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCanceledByProvider), got.Status)

	byAdmin := f.book(t, "10:00")
	got, err = f.cancel.Execute(ctx, f.admin, byAdmin.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCanceledByProvider), got.Status)

	stranger := f.book(t, "10:30")
	_, err = f.cancel.Execute(ctx, f.other, stranger.ID)
	assert.True(t, httperr.Is(err, httperr.KindUnauthorized))

	_, err = f.cancel.Execute(ctx, f.client, 999)
	assert.True(t, httperr.Is(err, httperr.KindNotFound))

	// cancelar de novo não é permitido
	_, err = f.cancel.Execute(ctx, f.client, byClient.ID)
	assert.True(t, httperr.Is(err, httperr.KindInvalidStateTransition))
}

func TestCompleteAppointment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ap := f.book(t, "09:00")

	_, err := f.complete.Execute(ctx, f.client, ap.ID)
	assert.True(t, httperr.Is(err, httperr.KindUnauthorized))

	got, err := f.complete.Execute(ctx, f.provider, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), got.Status)
	assert.NotNil(t, got.CompletedAt)

	_, err = f.complete.Execute(ctx, f.admin, ap.ID)
	assert.True(t, httperr.Is(err, httperr.KindInvalidStateTransition))

	_, err = f.cancel.Execute(ctx, f.client, ap.ID)
	assert.True(t, httperr.Is(err, httperr.KindInvalidStateTransition))

	_, err = f.complete.Execute(ctx, f.provider, 999)
	assert.True(t, httperr.Is(err, httperr.KindNotFound))
}

func TestCompleteCanceledFails(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	ap := f.book(t, "11:00")
	_, err := f.cancel.Execute(ctx, f.client, ap.ID)
	require.NoError(t, err)

	_, err = f.complete.Execute(ctx, f.provider, ap.ID)
	assert.True(t, httperr.Is(err, httperr.KindInvalidStateTransition))

	stored, err := f.store.Appointments.FindByID(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCanceledByClient), stored.Status)
}

// ======================================================
// LIST / GET
// ======================================================

func TestListAppointments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.book(t, "11:00")
	f.book(t, "09:00")

	mine, total, err := f.list.ByClient(ctx, f.client, f.client.ID, pagination.All)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, at("09:00"), mine[0].StartTime)

	_, _, err = f.list.ByClient(ctx, f.other, f.client.ID, pagination.All)
	assert.True(t, httperr.Is(err, httperr.KindUnauthorized))

	day := monday
	agenda, _, err := f.list.ByProvider(ctx, f.provider, f.provider.ID, DateRange{From: &day, To: &day}, pagination.All)
	require.NoError(t, err)
	assert.Len(t, agenda, 2)

	next := monday.AddDate(0, 0, 1)
	agenda, _, err = f.list.ByProvider(ctx, f.admin, f.provider.ID, DateRange{From: &next}, pagination.All)
	require.NoError(t, err)
	assert.Empty(t, agenda)

	all, _, err := f.list.ByProvider(ctx, f.provider, f.provider.ID, DateRange{}, pagination.All)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, _, err = f.list.ByProvider(ctx, f.provider, f.provider.ID, DateRange{From: &next, To: &day}, pagination.All)
	assert.True(t, httperr.Is(err, httperr.KindValidation))

	_, _, err = f.list.ByProvider(ctx, f.client, f.provider.ID, DateRange{}, pagination.All)
	assert.True(t, httperr.Is(err, httperr.KindUnauthorized))
}

func TestListAppointmentsPaged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	for _, start := range []string{"09:00", "09:30", "10:00", "10:30", "11:00"} {
		f.book(t, start)
	}

	second := pagination.Page{Number: 1, Size: 2}

	mine, total, err := f.list.ByClient(ctx, f.client, f.client.ID, second)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, mine, 2)
	assert.Equal(t, at("10:00"), mine[0].StartTime)

	last := pagination.Page{Number: 2, Size: 2}
	agenda, total, err := f.list.ByProvider(ctx, f.provider, f.provider.ID, DateRange{}, last)
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, agenda, 1)
	assert.Equal(t, at("11:00"), agenda[0].StartTime)
}

func TestGetAppointment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	ap := f.book(t, "09:00")

	for _, actor := range []identity.Actor{f.client, f.provider, f.admin} {
		got, err := f.get.Execute(ctx, actor, ap.ID)
		require.NoError(t, err)
		assert.Equal(t, ap.ID, got.ID)
	}

	_, err := f.get.Execute(ctx, f.other, ap.ID)
	assert.True(t, httperr.Is(err, httperr.KindUnauthorized))
}

// ======================================================
// FALHAS DE INFRA
// ======================================================

type mockLocker struct {
	mock.Mock
}

func (m *mockLocker) Lock(ctx context.Context, key string) (func(), error) {
	args := m.Called(key)
	if fn, ok := args.Get(0).(func()); ok {
		return fn, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreateAppointmentLockFailure(t *testing.T) {
	f := newFixture(t)

	locker := &mockLocker{}
	locker.On("Lock", lock.ProviderKey(f.provider.ID)).Return(nil, errors.New("redis unavailable"))

	uc := NewCreateAppointment(f.store.Appointments, f.store.Availability, f.store.Services, f.store.Users, locker, nil, nil)

	_, err := uc.Execute(context.Background(), f.client, CreateAppointmentInput{
		ProviderID: f.provider.ID,
		ServiceID:  f.service.ID,
		Start:      at("10:00"),
	})
	require.Error(t, err)
	_, isBusiness := httperr.KindOf(err)
	assert.False(t, isBusiness)
	locker.AssertExpectations(t)

	aps, _, err := f.store.Appointments.FindByClient(context.Background(), f.client.ID, pagination.All)
	require.NoError(t, err)
	assert.Empty(t, aps)
}
