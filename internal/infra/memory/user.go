package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

// UserRepository: byEmail guarda também e-mails de usuários removidos,
// como o índice único do postgres.
type UserRepository struct {
	mu      sync.RWMutex
	seq     sequence
	rows    map[uint]models.User
	byEmail map[string]uint
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		rows:    map[uint]models.User{},
		byEmail: map[string]uint{},
	}
}

func (r *UserRepository) GetUser(_ context.Context, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.rows[id]
	if !ok {
		return nil, httperr.ErrNotFound("user_not_found")
	}
	return &u, nil
}

func (r *UserRepository) CreateUser(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.Email = normalizeEmail(u.Email)
	if _, taken := r.byEmail[u.Email]; taken {
		return httperr.ErrValidation("email_already_registered")
	}
	if u.Role == "" {
		u.Role = string(identity.RoleClient)
	}

	ts := now()
	u.ID = r.seq.next()
	u.CreatedAt = ts
	u.UpdatedAt = ts

	r.rows[u.ID] = *u
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.rows[r.byEmail[normalizeEmail(email)]]
	if !ok {
		return nil, httperr.ErrNotFound("user_not_found")
	}
	return &u, nil
}

func (r *UserRepository) UpdateUser(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.rows[u.ID]
	if !ok {
		return httperr.ErrNotFound("user_not_found")
	}

	u.Email = normalizeEmail(u.Email)
	if owner, taken := r.byEmail[u.Email]; taken && owner != u.ID {
		return httperr.ErrValidation("email_already_registered")
	}

	u.CreatedAt = cur.CreatedAt
	u.UpdatedAt = now()

	delete(r.byEmail, cur.Email)
	r.byEmail[u.Email] = u.ID
	r.rows[u.ID] = *u
	return nil
}

func (r *UserRepository) DeleteUser(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return httperr.ErrNotFound("user_not_found")
	}
	delete(r.rows, id)
	return nil
}

func (r *UserRepository) ListUsers(
	_ context.Context,
	role *identity.Role,
	page pagination.Page,
) ([]models.User, int64, error) {

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.User{}
	for _, u := range r.rows {
		if role == nil || u.Role == string(*role) {
			out = append(out, u)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return pagination.Slice(out, page), int64(len(out)), nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

var _ identity.Users = (*UserRepository)(nil)
