package catalog

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/agenda-scheduler/internal/audit"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

// duração máxima de um serviço: um dia inteiro
const maxDurationMinutes = 24 * 60

type ServiceInput struct {
	ProviderID      uint
	Name            string
	Description     string
	DurationMinutes int
	Active          *bool
}

func (in ServiceInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return httperr.ErrValidation("service_name_required")
	}
	if in.DurationMinutes <= 0 || in.DurationMinutes > maxDurationMinutes {
		return httperr.ErrValidation("invalid_service_duration")
	}
	return nil
}

// ManageServices reúne o CRUD do catálogo. Escritas: o próprio
// profissional ou um admin.
type ManageServices struct {
	repo  catalog.Repository
	users identity.Directory
	audit *audit.Dispatcher
}

func NewManageServices(
	repo catalog.Repository,
	users identity.Directory,
	audit *audit.Dispatcher,
) *ManageServices {
	return &ManageServices{
		repo:  repo,
		users: users,
		audit: audit,
	}
}

func (uc *ManageServices) Create(
	ctx context.Context,
	actor identity.Actor,
	in ServiceInput,
) (*models.Service, error) {

	if err := in.validate(); err != nil {
		return nil, err
	}
	if !actor.CanManage(in.ProviderID) {
		return nil, httperr.ErrUnauthorized("not_allowed_to_manage_services")
	}
	if _, err := identity.RequireRole(ctx, uc.users, in.ProviderID, identity.RoleProvider); err != nil {
		return nil, err
	}

	s := &models.Service{
		ProviderID:      in.ProviderID,
		Name:            strings.TrimSpace(in.Name),
		Description:     in.Description,
		DurationMinutes: in.DurationMinutes,
		Active:          in.Active == nil || *in.Active,
	}

	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}

	uc.dispatch(actor, audit.ActionServiceCreated, s.ID, s)
	return s, nil
}

// Update troca nome, descrição, duração e (se informado) o flag de ativo.
// Agendamentos existentes mantêm o horário de término calculado na
// criação.
func (uc *ManageServices) Update(
	ctx context.Context,
	actor identity.Actor,
	id uint,
	in ServiceInput,
) (*models.Service, error) {

	if err := in.validate(); err != nil {
		return nil, err
	}

	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(s.ProviderID) {
		return nil, httperr.ErrUnauthorized("not_allowed_to_manage_services")
	}

	s.Name = strings.TrimSpace(in.Name)
	s.Description = in.Description
	s.DurationMinutes = in.DurationMinutes
	if in.Active != nil {
		s.Active = *in.Active
	}

	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return nil, err
	}

	uc.dispatch(actor, audit.ActionServiceUpdated, s.ID, s)
	return s, nil
}

func (uc *ManageServices) Delete(
	ctx context.Context,
	actor identity.Actor,
	id uint,
) error {

	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanManage(s.ProviderID) {
		return httperr.ErrUnauthorized("not_allowed_to_manage_services")
	}

	if err := uc.repo.DeleteService(ctx, id); err != nil {
		return err
	}

	uc.dispatch(actor, audit.ActionServiceDeleted, id, nil)
	return nil
}

func (uc *ManageServices) Get(ctx context.Context, id uint) (*models.Service, error) {
	return uc.repo.GetService(ctx, id)
}

func (uc *ManageServices) List(
	ctx context.Context,
	providerID *uint,
	page pagination.Page,
) ([]models.Service, int64, error) {
	return uc.repo.ListServices(ctx, providerID, page)
}

func (uc *ManageServices) dispatch(actor identity.Actor, action string, id uint, meta any) {
	uc.audit.Dispatch(audit.Event{
		ActorID:  audit.ID(actor.ID),
		Action:   action,
		Entity:   "service",
		EntityID: audit.ID(id),
		Metadata: meta,
	})
}
