package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pet-activity-log/internal/domain/acts"
)

type ActsRepo struct {
	db *sql.DB
}

func NewActsRepo(db *sql.DB) *ActsRepo {
	return &ActsRepo{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAct(row scanner) (acts.Act, error) {
	var a acts.Act
	var millis int64
	var code int16
	if err := row.Scan(&a.ID, &millis, &code, &a.Text); err != nil {
		return acts.Act{}, err
	}

	t, err := acts.TypeFromCode(code)
	if err != nil {
		return acts.Act{}, err
	}
	a.Type = t
	a.Time = time.UnixMilli(millis).UTC()
	return a, nil
}

func (r *ActsRepo) List(ctx context.Context, limit int) ([]acts.Act, error) {
	if limit <= 0 {
		limit = acts.ListLimit
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, time, type, text
		FROM acts
		ORDER BY time DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]acts.Act, 0)
	for rows.Next() {
		a, err := scanAct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *ActsRepo) GetByID(ctx context.Context, id int64) (acts.Act, error) {
	return getByID(ctx, r.db, id)
}

func (r *ActsRepo) Create(ctx context.Context, a acts.Act) (acts.Act, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO acts (time, type, text) VALUES (?, ?, ?)
	`, a.Time.UnixMilli(), a.Type.Code(), a.Text)
	if err != nil {
		return acts.Act{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return acts.Act{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *ActsRepo) Update(ctx context.Context, a acts.Act) (acts.Act, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE acts SET time = ?, type = ?, text = ? WHERE id = ?
	`, a.Time.UnixMilli(), a.Type.Code(), a.Text, a.ID)
	if err != nil {
		return acts.Act{}, err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return acts.Act{}, fmt.Errorf("act %d: %w", a.ID, acts.ErrNotFound)
	}
	return r.GetByID(ctx, a.ID)
}

// Delete lee y borra dentro de la misma transacción para devolver el último valor.
func (r *ActsRepo) Delete(ctx context.Context, id int64) (acts.Act, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return acts.Act{}, err
	}
	defer func() { _ = tx.Rollback() }()

	a, err := getByID(ctx, tx, id)
	if err != nil {
		return acts.Act{}, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM acts WHERE id = ?`, id); err != nil {
		return acts.Act{}, err
	}
	if err := tx.Commit(); err != nil {
		return acts.Act{}, err
	}
	return a, nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getByID(ctx context.Context, q queryRower, id int64) (acts.Act, error) {
	row := q.QueryRowContext(ctx, `
		SELECT id, time, type, text FROM acts WHERE id = ?
	`, id)

	a, err := scanAct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return acts.Act{}, fmt.Errorf("act %d: %w", id, acts.ErrNotFound)
		}
		return acts.Act{}, err
	}
	return a, nil
}
