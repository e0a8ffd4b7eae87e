package httperr

import "errors"

// Kind classifica um erro de negócio; o handler HTTP decide o status a
// partir dele.
type Kind string

const (
	KindNotFound               Kind = "not_found"
	KindValidation             Kind = "validation_error"
	KindOverlap                Kind = "overlap_error"
	KindOutOfAvailability      Kind = "out_of_availability"
	KindScheduleConflict       Kind = "schedule_conflict"
	KindUnauthorized           Kind = "unauthorized"
	KindInvalidStateTransition Kind = "invalid_state_transition"
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrBusiness mantém a assinatura antiga: erro de validação genérico.
func ErrBusiness(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrValidation(code string) error {
	return BusinessError{Kind: KindValidation, Code: code}
}

func ErrOverlap(code string) error {
	return BusinessError{Kind: KindOverlap, Code: code}
}

func ErrOutOfAvailability(code string) error {
	return BusinessError{Kind: KindOutOfAvailability, Code: code}
}

func ErrScheduleConflict(code string) error {
	return BusinessError{Kind: KindScheduleConflict, Code: code}
}

func ErrUnauthorized(code string) error {
	return BusinessError{Kind: KindUnauthorized, Code: code}
}

func ErrInvalidState(code string) error {
	return BusinessError{Kind: KindInvalidStateTransition, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// Is reporta se err é um erro de negócio do tipo kind.
func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

func KindOf(err error) (Kind, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return "", false
}
