package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

// Repository guarda os agendamentos. Nenhuma leitura filtra por status;
// isso é responsabilidade de quem chama.
type Repository interface {
	// insere quando ap.ID == 0, senão atualiza
	Save(
		ctx context.Context,
		ap *models.Appointment,
	) error

	FindByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// agendamentos com início em [from, to), ordenados pelo início
	FindByProvider(
		ctx context.Context,
		providerID uint,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)

	// mesma janela, paginada, com o total de linhas
	PageByProvider(
		ctx context.Context,
		providerID uint,
		from time.Time,
		to time.Time,
		page pagination.Page,
	) ([]models.Appointment, int64, error)

	FindByClient(
		ctx context.Context,
		clientID uint,
		page pagination.Page,
	) ([]models.Appointment, int64, error)
}
