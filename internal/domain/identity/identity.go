// Package identity describes who is acting on the scheduling engine. Users
// and credentials live elsewhere; the engine only needs to resolve an id to
// a role.
package identity

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

type Role string

const (
	RoleClient   Role = "CLIENT"
	RoleProvider Role = "PROVIDER"
	RoleAdmin    Role = "ADMIN"
)

func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RoleClient, RoleProvider, RoleAdmin:
		return r, true
	}
	return "", false
}

// Actor é o usuário autenticado que dispara a operação.
type Actor struct {
	ID   uint
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanManage: o próprio profissional ou um admin.
func (a Actor) CanManage(providerID uint) bool {
	return a.IsAdmin() || (a.Role == RoleProvider && a.ID == providerID)
}

// Directory resolve usuários por id. Deve devolver um erro
// httperr.KindNotFound quando o id não existe.
type Directory interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
}

// Users é o diretório completo, usado por cadastro, login e gestão de
// usuários. Usuários removidos somem de todas as leituras, mas o e-mail
// continua reservado.
type Users interface {
	Directory
	CreateUser(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, u *models.User) error
	DeleteUser(ctx context.Context, id uint) error

	// ListUsers ordena por nome; role nil lista todos os papéis.
	ListUsers(ctx context.Context, role *Role, page pagination.Page) ([]models.User, int64, error)
}

// RequireRole busca o usuário e exige o papel informado.
func RequireRole(
	ctx context.Context,
	dir Directory,
	id uint,
	role Role,
) (*models.User, error) {

	u, err := dir.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if Role(u.Role) != role {
		return nil, httperr.ErrValidation("user_is_not_" + strings.ToLower(string(role)))
	}

	return u, nil
}
