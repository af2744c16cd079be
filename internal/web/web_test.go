package web

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"pet-activity-log/internal/adapters/storage/memory"
	"pet-activity-log/internal/domain/acts"
	"pet-activity-log/internal/domain/timeline"
	"pet-activity-log/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func newTestServer(t *testing.T, now time.Time) (*httptest.Server, *acts.Service) {
	t.Helper()

	svc := acts.NewService(memory.NewActRepo(), acts.WithClock(func() time.Time { return now }))
	r := chi.NewRouter()
	RegisterRoutes(r, svc, Options{
		Timeline: timeline.Options{SlotWidth: 10 * time.Minute, Slots: 100, Location: time.UTC},
		Now:      func() time.Time { return now },
	}, logger.Nop())

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts, svc
}

func TestTimelinePage_RendersSlotsAndActs(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 34, 0, 0, time.UTC)
	ts, svc := newTestServer(t, now)

	if _, err := svc.Create(context.Background(), acts.Input{Type: acts.TypeWater, Time: now.Add(-12 * time.Minute)}); err != nil {
		t.Fatalf("create: %v", err)
	}

	res, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	body := string(raw)

	for _, want := range []string{
		`<td>12:34</td>`,
		`<td class="">12:30</td>`,
		`<td class="hour">12:00</td>`,
		`>Water</div>`,
		`Water: <b>0.2h</b>`,
		`value="ACCIDENT_VOMIT"`,
		`content="10"`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing %q", want)
		}
	}
}

func TestQuickAdd_CreatesAndRedirects(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 34, 0, 0, time.UTC)
	ts, svc := newTestServer(t, now)

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}

	res, err := client.PostForm(ts.URL+"/acts", url.Values{"type": {"EXERCISE"}})
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	res.Body.Close()

	if res.StatusCode != http.StatusSeeOther || res.Header.Get("Location") != "/" {
		t.Fatalf("expected 303 to /, got %d %q", res.StatusCode, res.Header.Get("Location"))
	}

	items, _ := svc.List(context.Background())
	if len(items) != 1 || items[0].Type != acts.TypeExercise || items[0].Text != "Exercise" {
		t.Fatalf("unexpected stored acts %+v", items)
	}

	res, err = client.PostForm(ts.URL+"/acts", url.Values{"type": {"NAP"}})
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown type, got %d", res.StatusCode)
	}
}

func TestStaticAssets(t *testing.T) {
	ts, _ := newTestServer(t, time.Now())

	res, err := http.Get(ts.URL + "/static/app.css")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for css, got %d", res.StatusCode)
	}
}
