package acts

import "time"

// UnsavedID es el id de un registro que todavía no pasó por el servidor.
const UnsavedID int64 = -1

// ListLimit es el máximo de registros que devuelve List (los más recientes).
const ListLimit = 50

// Act es un evento registrado (comida, paseo, accidente, etc.).
type Act struct {
	ID   int64
	Time time.Time
	Type Type
	Text string
}

// New arma un Act sin guardar, con la hora actual y el label del tipo como texto.
func New(t Type, now time.Time) Act {
	return Act{
		ID:   UnsavedID,
		Time: now,
		Type: t,
		Text: t.Label(),
	}
}

type ChangeOp string

const (
	ChangeCreated ChangeOp = "created"
	ChangeUpdated ChangeOp = "updated"
	ChangeDeleted ChangeOp = "deleted"
)

// Change describe una mutación ya persistida.
type Change struct {
	Op  ChangeOp
	Act Act
	At  time.Time
}
