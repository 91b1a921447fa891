package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInternal          = errors.New("error interno")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrBundleCycle       = errors.New("el kit formaría un ciclo")

	// ErrDuplicate se mantiene como alias de ErrConflict: una violación de unicidad
	// es un conflicto para el llamador.
	ErrDuplicate = ErrConflict
)
