package catalog

import (
	"context"

	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

// Catalog é a visão somente leitura usada pelo motor de agenda.
type Catalog interface {
	GetService(ctx context.Context, id uint) (*models.Service, error)
}

type Repository interface {
	Catalog

	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id uint) error

	// providerID nil lista todos os serviços
	ListServices(ctx context.Context, providerID *uint, page pagination.Page) ([]models.Service, int64, error)
}

// ServiceOfProvider resolve o serviço e exige que pertença ao profissional.
// Serviço de outro profissional é erro de validação, como no cadastro de
// agendamentos.
func ServiceOfProvider(
	ctx context.Context,
	c Catalog,
	serviceID uint,
	providerID uint,
) (*models.Service, error) {

	svc, err := c.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if svc.ProviderID != providerID {
		return nil, httperr.ErrValidation("service_not_owned_by_provider")
	}

	if svc.DurationMinutes <= 0 {
		return nil, httperr.ErrValidation("invalid_service_duration")
	}

	return svc, nil
}
