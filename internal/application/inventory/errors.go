package inventory

import (
	"errors"
	"fmt"

	"github.com/jhoicas/inventory-alerts-api/internal/domain"
)

var knownErrors = []error{
	domain.ErrNotFound,
	domain.ErrConflict,
	domain.ErrInvalidInput,
	domain.ErrInternal,
	domain.ErrInsufficientStock,
	domain.ErrBundleCycle,
}

// toDomainError deja pasar los errores de dominio y envuelve cualquier otro como ErrInternal.
func toDomainError(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range knownErrors {
		if errors.Is(err, known) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", domain.ErrInternal, err)
}
