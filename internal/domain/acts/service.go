package acts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const (
	MinTextLength = 3
	MaxTextLength = 50
)

type Service struct {
	repo     Repository
	notifier Notifier
	now      func() time.Time
}

type Option func(*Service)

func WithNotifier(n Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		notifier: nopNotifier{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Input es el registro tal como llega del cliente.
// Text nil = no enviado (se usa el label del tipo). Time cero = ahora (create) o sin cambios (update).
type Input struct {
	Time time.Time
	Type Type
	Text *string
}

// Validate aplica la regla de largo del texto: entre 3 y 50 caracteres, sin contar espacios en los extremos.
func Validate(text string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(text))
	if n < MinTextLength {
		return fmt.Errorf("%w: text length must be at least %d characters", ErrInvalidInput, MinTextLength)
	}
	if n > MaxTextLength {
		return fmt.Errorf("%w: text length is too long (max %d chars)", ErrInvalidInput, MaxTextLength)
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]Act, error) {
	return s.repo.List(ctx, ListLimit)
}

func (s *Service) Create(ctx context.Context, in Input) (Act, error) {
	a, err := s.normalize(in)
	if err != nil {
		return Act{}, err
	}
	if a.Time.IsZero() {
		a.Time = s.now()
	}

	saved, err := s.repo.Create(ctx, a)
	if err != nil {
		return Act{}, err
	}
	s.notifier.Notify(ctx, Change{Op: ChangeCreated, Act: saved, At: s.now()})
	return saved, nil
}

// Update pisa tipo, texto y hora del registro. Sin control de versión: gana el último.
func (s *Service) Update(ctx context.Context, id int64, in Input) (Act, error) {
	if id <= 0 {
		return Act{}, ErrNotFound
	}

	// Primero el id, después la validación (mismo orden que la API).
	old, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Act{}, err
	}

	a, err := s.normalize(in)
	if err != nil {
		return Act{}, err
	}
	a.ID = old.ID
	if a.Time.IsZero() {
		a.Time = old.Time
	}

	saved, err := s.repo.Update(ctx, a)
	if err != nil {
		return Act{}, err
	}
	s.notifier.Notify(ctx, Change{Op: ChangeUpdated, Act: saved, At: s.now()})
	return saved, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (Act, error) {
	if id <= 0 {
		return Act{}, ErrNotFound
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return Act{}, err
	}
	s.notifier.Notify(ctx, Change{Op: ChangeDeleted, Act: removed, At: s.now()})
	return removed, nil
}

func (s *Service) normalize(in Input) (Act, error) {
	if !in.Type.Valid() {
		return Act{}, fmt.Errorf("%w: unknown type %q", ErrInvalidInput, in.Type)
	}

	text := in.Type.Label()
	if in.Text != nil {
		text = *in.Text
	}
	if err := Validate(text); err != nil {
		return Act{}, err
	}

	return Act{
		ID:   UnsavedID,
		Time: in.Time,
		Type: in.Type,
		Text: strings.TrimSpace(text),
	}, nil
}
