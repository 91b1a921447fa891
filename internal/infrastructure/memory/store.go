// Package memory implementa los puertos de persistencia en memoria. Sirve para desarrollo
// (DB_DRIVER=memory) y para los tests de casos de uso.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/inventory-alerts-api/internal/application/inventory"
)

// ErrReadOnly escritura dentro de una transacción de solo lectura.
var ErrReadOnly = errors.New("memory: transacción de solo lectura")

var _ inventory.TxRunner = (*Store)(nil)

// Store guarda todo el estado detrás de un único RWMutex.
// Run trabaja sobre una copia privada que solo se publica si fn termina sin error;
// ReadOnly mantiene el lock de lectura durante toda la función.
type Store struct {
	mu sync.RWMutex
	st *state

	faultMu sync.Mutex
	faults  map[string]error
}

// New crea un store vacío.
func New() *Store {
	return &Store{st: newState(), faults: make(map[string]error)}
}

// Run ejecuta fn en una transacción de escritura.
func (s *Store) Run(ctx context.Context, fn func(repos inventory.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(s.repositories(&session{store: s, st: work})); err != nil {
		return err
	}
	// Una transacción abandonada por el llamador no se publica.
	if err := ctx.Err(); err != nil {
		return err
	}
	s.st = work
	return nil
}

// ReadOnly ejecuta fn sobre una foto consistente del estado.
func (s *Store) ReadOnly(ctx context.Context, fn func(repos inventory.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return fn(s.repositories(&session{store: s, st: s.st, readOnly: true}))
}

// Repositories devuelve repositorios sin transacción explícita: cada llamada se confirma sola.
func (s *Store) Repositories() inventory.Repositories {
	return s.repositories(&session{store: s})
}

func (s *Store) repositories(x *session) inventory.Repositories {
	return inventory.Repositories{
		Companies:  &CompanyRepo{x: x},
		Warehouses: &WarehouseRepo{x: x},
		Products:   &ProductRepo{x: x},
		Inventory:  &InventoryRepo{x: x},
		Logs:       &InventoryLogRepo{x: x},
		Suppliers:  &SupplierRepo{x: x},
		Bundles:    &BundleRepo{x: x},
	}
}

// FailNext hace que la próxima llamada a la operación op (por ejemplo "inventory.create")
// devuelva err. Se consume una sola vez.
func (s *Store) FailNext(op string, err error) {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	s.faults[op] = err
}

func (s *Store) takeFault(op string) error {
	s.faultMu.Lock()
	defer s.faultMu.Unlock()
	err, ok := s.faults[op]
	if !ok {
		return nil
	}
	delete(s.faults, op)
	return err
}

// session es el alcance de una operación: una transacción (st != nil) o autocommit (st == nil).
type session struct {
	store    *Store
	st       *state
	readOnly bool
}

func (x *session) read(op string, fn func(st *state) error) error {
	if err := x.store.takeFault(op); err != nil {
		return err
	}
	if x.st != nil {
		return fn(x.st)
	}
	x.store.mu.RLock()
	defer x.store.mu.RUnlock()
	return fn(x.store.st)
}

func (x *session) write(op string, fn func(st *state) error) error {
	if err := x.store.takeFault(op); err != nil {
		return err
	}
	if x.readOnly {
		return ErrReadOnly
	}
	if x.st != nil {
		return fn(x.st)
	}
	x.store.mu.Lock()
	defer x.store.mu.Unlock()
	work := x.store.st.clone()
	if err := fn(work); err != nil {
		return err
	}
	x.store.st = work
	return nil
}
