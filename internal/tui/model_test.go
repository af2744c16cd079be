package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"pet-activity-log/internal/domain/acts"
	"pet-activity-log/internal/domain/timeline"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	items   []acts.Act
	created []acts.Act
	listErr error
	saveErr error
}

func (f *fakeStore) List(_ context.Context) ([]acts.Act, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]acts.Act(nil), f.items...), nil
}

func (f *fakeStore) Create(_ context.Context, a acts.Act) (acts.Act, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return acts.Act{}, f.saveErr
	}
	a.ID = int64(len(f.items) + 1)
	f.items = append(f.items, a)
	f.created = append(f.created, a)
	return a, nil
}

var fixedNow = time.Date(2024, 6, 1, 12, 34, 0, 0, time.UTC)

func newTestModel(store *fakeStore) Model {
	return New(store, Options{
		Timeline: timeline.Options{Slots: 12, Location: time.UTC},
		Now:      func() time.Time { return fixedNow },
	})
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func keyRune(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_LoadFillsSlotsAndSincePanel(t *testing.T) {
	store := &fakeStore{items: []acts.Act{
		{ID: 1, Time: fixedNow.Add(-5 * time.Minute), Type: acts.TypeFood, Text: "breakfast"},
		{ID: 2, Time: fixedNow.Add(-90 * time.Minute), Type: acts.TypePee, Text: "Pee"},
	}}
	m := newTestModel(store)

	msg := m.fetchCmd()()
	require.IsType(t, actsLoadedMsg{}, msg)
	m, _ = step(t, m, msg)

	require.Len(t, m.slots, 12)
	assert.Len(t, m.items, 2)

	var placed int
	for _, s := range m.slots {
		placed += len(s.Acts)
	}
	assert.Equal(t, 2, placed)

	view := m.View()
	assert.Contains(t, view, "12:34")
	assert.Contains(t, view, "breakfast")
	assert.Contains(t, view, "1.5h")
}

func TestModel_FailedFetchKeepsCache(t *testing.T) {
	store := &fakeStore{items: []acts.Act{
		{ID: 1, Time: fixedNow.Add(-time.Minute), Type: acts.TypeWater, Text: "Water"},
	}}
	m := newTestModel(store)
	m, _ = step(t, m, m.fetchCmd()())

	store.listErr = errors.New("connection refused")
	msg := m.fetchCmd()()
	require.IsType(t, fetchFailedMsg{}, msg)
	m, _ = step(t, m, msg)

	assert.Len(t, m.items, 1)
	assert.Error(t, m.err)
	assert.Contains(t, m.View(), "connection refused")
}

func TestModel_QuickAddFlow(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(store)

	m, cmd := step(t, m, keyRune("+"))
	assert.True(t, m.modalOpen)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Add activity")

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 2, m.cursor)

	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.modalOpen, "modal closes before the save completes")
	require.NotNil(t, cmd)

	saved := cmd()
	require.IsType(t, actSavedMsg{}, saved)
	require.Len(t, store.created, 1)
	assert.Equal(t, acts.TypeFood, store.created[0].Type)
	assert.Equal(t, "Food", store.created[0].Text)
	assert.True(t, store.created[0].Time.Equal(fixedNow))

	m, cmd = step(t, m, saved)
	require.NotNil(t, cmd, "a successful save triggers a refetch")
	m, _ = step(t, m, cmd())
	assert.Len(t, m.items, 1)
}

func TestModel_EscClosesModalWithoutSaving(t *testing.T) {
	store := &fakeStore{}
	m := newTestModel(store)

	m, _ = step(t, m, keyRune("a"))
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.modalOpen)
	assert.Nil(t, cmd)
	assert.Empty(t, store.created)
}

func TestModel_SaveErrorIsShown(t *testing.T) {
	store := &fakeStore{saveErr: acts.ErrInvalidInput}
	m := newTestModel(store)

	m, _ = step(t, m, keyRune("+"))
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd = step(t, m, cmd())

	assert.Nil(t, cmd)
	assert.ErrorIs(t, m.err, acts.ErrInvalidInput)
	assert.True(t, strings.Contains(m.View(), "save failed"))
}

func TestModel_TicksScheduleWork(t *testing.T) {
	m := newTestModel(&fakeStore{})

	_, cmd := step(t, m, clockTickMsg(fixedNow))
	assert.NotNil(t, cmd)

	_, cmd = step(t, m, pollTickMsg(fixedNow))
	assert.NotNil(t, cmd)

	_, cmd = step(t, m, reloadTickMsg(fixedNow))
	assert.NotNil(t, cmd)

	_, cmd = step(t, m, keyRune("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ReloadReanchorsOnlyWhenDue(t *testing.T) {
	now := fixedNow
	m := New(&fakeStore{}, Options{
		Timeline: timeline.Options{Slots: 3, Location: time.UTC},
		Now:      func() time.Time { return now },
	})
	require.Equal(t, "12:30", m.slots[0].Label)

	now = time.Date(2024, 6, 1, 12, 45, 0, 0, time.UTC)
	m, _ = step(t, m, reloadTickMsg(now))
	assert.Equal(t, "12:30", m.slots[0].Label, "not at a slot boundary")

	now = time.Date(2024, 6, 1, 12, 50, 30, 0, time.UTC)
	m, _ = step(t, m, reloadTickMsg(now))
	assert.Equal(t, "12:50", m.slots[0].Label)
}
