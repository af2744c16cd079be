package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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
	var code int16
	if err := row.Scan(&a.ID, &a.Time, &code, &a.Text); err != nil {
		return acts.Act{}, err
	}

	t, err := acts.TypeFromCode(code)
	if err != nil {
		return acts.Act{}, err
	}
	a.Type = t
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
		LIMIT $1
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
	row := r.db.QueryRowContext(ctx, `
		SELECT id, time, type, text
		FROM acts
		WHERE id = $1
	`, id)

	a, err := scanAct(row)
	if err != nil {
		return acts.Act{}, notFound(id, err)
	}
	return a, nil
}

func (r *ActsRepo) Create(ctx context.Context, a acts.Act) (acts.Act, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO acts (time, type, text)
		VALUES ($1, $2, $3)
		RETURNING id, time, type, text
	`,
		a.Time.UTC(),
		a.Type.Code(),
		a.Text,
	)
	return scanAct(row)
}

func (r *ActsRepo) Update(ctx context.Context, a acts.Act) (acts.Act, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE acts
		SET time = $2, type = $3, text = $4
		WHERE id = $1
		RETURNING id, time, type, text
	`,
		a.ID,
		a.Time.UTC(),
		a.Type.Code(),
		a.Text,
	)

	updated, err := scanAct(row)
	if err != nil {
		return acts.Act{}, notFound(a.ID, err)
	}
	return updated, nil
}

func (r *ActsRepo) Delete(ctx context.Context, id int64) (acts.Act, error) {
	row := r.db.QueryRowContext(ctx, `
		DELETE FROM acts
		WHERE id = $1
		RETURNING id, time, type, text
	`, id)

	removed, err := scanAct(row)
	if err != nil {
		return acts.Act{}, notFound(id, err)
	}
	return removed, nil
}

func notFound(id int64, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("act %d: %w", id, acts.ErrNotFound)
	}
	return err
}
