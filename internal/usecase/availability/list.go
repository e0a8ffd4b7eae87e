package availability

import (
	"context"

	domain "github.com/BruksfildServices01/agenda-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

type ListAvailability struct {
	repo domain.Repository
}

func NewListAvailability(repo domain.Repository) *ListAvailability {
	return &ListAvailability{repo: repo}
}

// Execute lista os blocos de um profissional, ou de todos quando
// providerID é nil.
func (uc *ListAvailability) Execute(
	ctx context.Context,
	providerID *uint,
	page pagination.Page,
) ([]models.AvailabilityBlock, int64, error) {
	return uc.repo.ListBlocks(ctx, providerID, page)
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	id uint,
) (*models.AvailabilityBlock, error) {
	return uc.repo.GetBlock(ctx, id)
}

func authorize(actor identity.Actor, providerID uint) error {
	if !actor.CanManage(providerID) {
		return httperr.ErrUnauthorized("not_allowed_to_manage_availability")
	}
	return nil
}
