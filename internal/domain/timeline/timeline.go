// Package timeline agrupa registros en slots de ancho fijo contados hacia atrás desde "ahora".
//
// Cada slot tiene un centro nominal (la hora que se muestra) y una ventana
// (Bottom, Top]: abierta abajo, cerrada arriba. Las ventanas son contiguas, así que
// un registro anterior al slot abierto cae en exactamente un slot. El slot más
// reciente cierra en "ahora" en vez de centro+ancho/2.
package timeline

import (
	"fmt"
	"strings"
	"time"

	"pet-activity-log/internal/domain/acts"
)

const (
	DefaultSlotWidth = 10 * time.Minute
	DefaultSlots     = 100
)

type Options struct {
	SlotWidth time.Duration
	Slots     int
	Location  *time.Location
}

func (o Options) withDefaults() Options {
	if o.SlotWidth < time.Minute {
		o.SlotWidth = DefaultSlotWidth
	}
	if o.Slots <= 0 {
		o.Slots = DefaultSlots
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	return o
}

type Slot struct {
	Center time.Time
	Bottom time.Time
	Top    time.Time

	// Label es HH:MM del centro; HourMark marca los slots en punto (se muestran en negrita).
	Label    string
	HourMark bool

	Acts []acts.Act
}

// Contains aplica la regla de pertenencia: Bottom < t <= Top.
func (s Slot) Contains(t time.Time) bool {
	return s.Bottom.Before(t) && !t.After(s.Top)
}

// Anchor redondea now hacia abajo al inicio del slot actual, restando segundos
// y minute%ancho minutos en la zona loc.
func Anchor(now time.Time, width time.Duration, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	local := now.In(loc)
	return local.Add(
		-time.Duration(local.Nanosecond()) -
			time.Duration(local.Second())*time.Second -
			time.Duration(local.Minute()%slotMinutes(width))*time.Minute,
	)
}

// Build arma opts.Slots slots, del más reciente al más viejo, y ubica cada registro.
// Dentro de un slot se respeta el orden de items.
func Build(now time.Time, items []acts.Act, opts Options) []Slot {
	opts = opts.withDefaults()

	half := opts.SlotWidth / 2
	openLimit := now.Add(-opts.SlotWidth)
	center := Anchor(now, opts.SlotWidth, opts.Location)

	slots := make([]Slot, 0, opts.Slots)
	for i := 1; i <= opts.Slots; i++ {
		top := center.Add(half)
		if openLimit.Before(center) {
			top = now
		}

		s := Slot{
			Center: center,
			Bottom: center.Add(-half),
			Top:    top,
			Label:  ClockLabel(center, opts.Location),
		}
		s.HourMark = strings.HasSuffix(s.Label, ":00")

		for _, a := range items {
			if s.Contains(a.Time) {
				s.Acts = append(s.Acts, a)
			}
		}

		slots = append(slots, s)
		center = center.Add(-opts.SlotWidth)
	}
	return slots
}

func ClockLabel(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("15:04")
}

// ReloadDue indica si hay que re-anclar la vista: los dos primeros minutos de cada slot.
func ReloadDue(now time.Time, width time.Duration, loc *time.Location) bool {
	if loc == nil {
		loc = time.Local
	}
	m := now.In(loc).Minute() % slotMinutes(width)
	return m == 0 || m == 1
}

// SinceEntry es el último registro de una categoría y cuánto pasó desde entonces.
type SinceEntry struct {
	Category acts.Category
	Act      acts.Act
	Elapsed  time.Duration
}

// Hours formatea Elapsed en horas con un decimal ("1.5h").
func (e SinceEntry) Hours() string {
	return fmt.Sprintf("%.1fh", e.Elapsed.Hours())
}

// Since devuelve, en el orden de la tabla de categorías, el último registro de cada
// categoría presente en items. ACCIDENT_VOMIT no se muestra en este panel.
func Since(now time.Time, items []acts.Act) []SinceEntry {
	latest := map[acts.Type]acts.Act{}
	for _, a := range items {
		if cur, ok := latest[a.Type]; !ok || a.Time.After(cur.Time) {
			latest[a.Type] = a
		}
	}

	out := make([]SinceEntry, 0, len(latest))
	for _, c := range acts.Categories() {
		if c.Type == acts.TypeAccidentVomit {
			continue
		}
		a, ok := latest[c.Type]
		if !ok {
			continue
		}
		elapsed := now.Sub(a.Time)
		if elapsed < 0 {
			elapsed = 0
		}
		out = append(out, SinceEntry{Category: c, Act: a, Elapsed: elapsed})
	}
	return out
}

func slotMinutes(width time.Duration) int {
	m := int(width / time.Minute)
	if m <= 0 {
		return 1
	}
	return m
}
