package identity

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

const minPasswordLength = 6

// UpdateUserInput: campos nil ficam como estão.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Password *string
	Role     *string
}

// ManageUsers reúne a gestão de contas. Leitura, edição e remoção: o
// próprio usuário ou um admin. Listagem e troca de papel: só admin.
type ManageUsers struct {
	users domain.Users
	audit *audit.Dispatcher
}

func NewManageUsers(
	users domain.Users,
	audit *audit.Dispatcher,
) *ManageUsers {
	return &ManageUsers{
		users: users,
		audit: audit,
	}
}

func (uc *ManageUsers) List(
	ctx context.Context,
	actor domain.Actor,
	role *domain.Role,
	page pagination.Page,
) ([]models.User, int64, error) {

	if !actor.IsAdmin() {
		return nil, 0, httperr.ErrUnauthorized("not_allowed_to_list_users")
	}
	return uc.users.ListUsers(ctx, role, page)
}

func (uc *ManageUsers) Get(
	ctx context.Context,
	actor domain.Actor,
	id uint,
) (*models.User, error) {

	if !canAccess(actor, id) {
		return nil, httperr.ErrUnauthorized("not_allowed_to_view_user")
	}
	return uc.users.GetUser(ctx, id)
}

func (uc *ManageUsers) Update(
	ctx context.Context,
	actor domain.Actor,
	id uint,
	in UpdateUserInput,
) (*models.User, error) {

	if !canAccess(actor, id) {
		return nil, httperr.ErrUnauthorized("not_allowed_to_update_user")
	}

	u, err := uc.users.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, httperr.ErrValidation("user_name_required")
		}
		u.Name = name
	}
	if in.Email != nil {
		if strings.TrimSpace(*in.Email) == "" {
			return nil, httperr.ErrValidation("user_email_required")
		}
		u.Email = *in.Email
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}

	if in.Password != nil {
		if len(*in.Password) < minPasswordLength {
			return nil, httperr.ErrValidation("password_too_short")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hashed)
	}

	if in.Role != nil {
		role, ok := domain.ParseRole(*in.Role)
		if !ok {
			return nil, httperr.ErrValidation("invalid_role")
		}
		if string(role) != u.Role && !actor.IsAdmin() {
			return nil, httperr.ErrUnauthorized("role_change_requires_admin")
		}
		u.Role = string(role)
	}

	if err := uc.users.UpdateUser(ctx, u); err != nil {
		return nil, err
	}

	uc.dispatch(actor, audit.ActionUserUpdated, id, map[string]any{"role": u.Role})
	return u, nil
}

// Delete remove a conta. Agendamentos já feitos continuam no histórico.
func (uc *ManageUsers) Delete(
	ctx context.Context,
	actor domain.Actor,
	id uint,
) error {

	if !canAccess(actor, id) {
		return httperr.ErrUnauthorized("not_allowed_to_delete_user")
	}

	if err := uc.users.DeleteUser(ctx, id); err != nil {
		return err
	}

	uc.dispatch(actor, audit.ActionUserDeleted, id, nil)
	return nil
}

func canAccess(actor domain.Actor, id uint) bool {
	return actor.IsAdmin() || actor.ID == id
}

func (uc *ManageUsers) dispatch(actor domain.Actor, action string, id uint, meta any) {
	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.ID(actor.ID),
		Action:   action,
		Entity:   "user",
		EntityID: audit.ID(id),
		Metadata: meta,
	})
}
