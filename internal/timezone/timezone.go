package timezone

import (
	"sync/atomic"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

var current atomic.Pointer[time.Location]

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Set define o fuso usado para interpretar datas de calendário (slots,
// consultas por dia). Chamado uma vez no boot com APP_TIMEZONE.
func Set(tz string) {
	current.Store(Location(tz))
}

// Default devolve o fuso configurado.
func Default() *time.Location {
	if loc := current.Load(); loc != nil {
		return loc
	}
	return Location(DefaultTimezone)
}

func Now() time.Time {
	return time.Now().In(Default())
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseDate lê "YYYY-MM-DD" como meia-noite no fuso configurado.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, Default())
}
