package audit

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	ActionAvailabilityCreated = "availability_created"
	ActionAvailabilityUpdated = "availability_updated"
	ActionAvailabilityDeleted = "availability_deleted"
	ActionAppointmentCreated  = "appointment_created"
	ActionAppointmentCanceled = "appointment_canceled"
	ActionAppointmentRejected = "appointment_rejected"
	ActionAppointmentDone     = "appointment_completed"
	ActionServiceCreated      = "service_created"
	ActionServiceUpdated      = "service_updated"
	ActionServiceDeleted      = "service_deleted"
	ActionUserRegistered      = "user_registered"
	ActionUserUpdated         = "user_updated"
	ActionUserDeleted         = "user_deleted"
)

type Event struct {
	ActorID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	store Store
	queue chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(store Store) *Dispatcher {
	d := &Dispatcher{
		store: store,
		queue: make(chan Event, 100), // buffer seguro
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.store.Log(ctx, ev); err != nil {
			log.Error().Err(err).Str("action", ev.Action).Msg("audit error")
		}
		cancel()
	}
}

// Dispatch nunca bloqueia. Dispatcher nil é aceito e ignora o evento.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	defer func() {
		// Dispatch depois de Close
		if recover() != nil {
			log.Warn().Str("action", ev.Action).Msg("audit dispatcher closed, dropping event")
		}
	}()

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drena a fila e espera o worker terminar.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() { close(d.queue) })
	<-d.done
}

func now() time.Time {
	return time.Now().UTC()
}

// ID devolve um ponteiro para id, para preencher Event.
func ID(id uint) *uint {
	return &id
}
