// Package memory holds map-backed repositories used by STORAGE_DRIVER=memory
// and by the HTTP tests. Every method copies values in and out so callers
// never share state with the store.
package memory

import (
	"sync"
	"time"
)

// Store agrupa um repositório de cada tipo.
type Store struct {
	Users        *UserRepository
	Services     *CatalogRepository
	Availability *AvailabilityRepository
	Appointments *AppointmentRepository
}

func NewStore() *Store {
	return &Store{
		Users:        NewUserRepository(),
		Services:     NewCatalogRepository(),
		Availability: NewAvailabilityRepository(),
		Appointments: NewAppointmentRepository(),
	}
}

type sequence struct {
	mu   sync.Mutex
	last uint
}

func (s *sequence) next() uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return s.last
}

func now() time.Time {
	return time.Now().UTC()
}
