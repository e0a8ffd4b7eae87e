package appointment

import "github.com/BruksfildServices01/agenda-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled          Status = "SCHEDULED"
	StatusCanceledByClient   Status = "CANCELED_BY_CLIENT"
	StatusCanceledByProvider Status = "CANCELED_BY_PROVIDER"
	StatusCompleted          Status = "COMPLETED"
)

// só SCHEDULED sai do lugar; os demais são terminais
var transitions = map[Status][]Status{
	StatusScheduled: {
		StatusCanceledByClient,
		StatusCanceledByProvider,
		StatusCompleted,
	},
}

// ===============================
// Validations
// ===============================

func CanTransition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return httperr.ErrInvalidState("invalid_state_transition")
}

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	return CanTransition(current, StatusCanceledByClient)
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	return CanTransition(current, StatusCompleted)
}

func InitialStatus() Status {
	return StatusScheduled
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCanceledByClient, StatusCanceledByProvider, StatusCompleted:
		return true
	}
	return false
}
