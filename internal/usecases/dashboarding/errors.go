package dashboarding

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTenant indica tenant ausente ou vazio
	ErrInvalidTenant = errors.New("tenant inválido")

	// ErrStoreUnavailable indica falha ao consultar o armazenamento de registros
	ErrStoreUnavailable = errors.New("armazenamento de registros indisponível")
)

// StoreError carrega a operação que falhou junto do erro original
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrStoreUnavailable.Error(), e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrStoreUnavailable)
func (e *StoreError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

func storeError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
