package acts

import "context"

// Repository persiste la tabla de acts.
// Los adapters devuelven ErrNotFound (envuelto o no) cuando el id no existe.
type Repository interface {
	// List devuelve hasta limit registros, más recientes primero.
	List(ctx context.Context, limit int) ([]Act, error)
	GetByID(ctx context.Context, id int64) (Act, error)
	// Create asigna el id y devuelve el registro guardado.
	Create(ctx context.Context, a Act) (Act, error)
	Update(ctx context.Context, a Act) (Act, error)
	// Delete borra la fila y devuelve su último valor.
	Delete(ctx context.Context, id int64) (Act, error)
}

// Notifier recibe las mutaciones ya persistidas (p.ej. para publicarlas en Kafka).
type Notifier interface {
	Notify(ctx context.Context, c Change)
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Change) {}
