package availability

import (
	"context"

	"github.com/BruksfildServices01/agenda-scheduler/internal/clock"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

type Repository interface {
	// -------- Write --------
	CreateBlock(
		ctx context.Context,
		b *models.AvailabilityBlock,
	) error

	UpdateBlock(
		ctx context.Context,
		b *models.AvailabilityBlock,
	) error

	DeleteBlock(
		ctx context.Context,
		id uint,
	) error

	// -------- Read --------
	GetBlock(
		ctx context.Context,
		id uint,
	) (*models.AvailabilityBlock, error)

	// providerID nil lista os blocos de todos os profissionais
	ListBlocks(
		ctx context.Context,
		providerID *uint,
		page pagination.Page,
	) ([]models.AvailabilityBlock, int64, error)

	ListBlocksForWeekday(
		ctx context.Context,
		providerID uint,
		weekday clock.Weekday,
	) ([]models.AvailabilityBlock, error)
}
