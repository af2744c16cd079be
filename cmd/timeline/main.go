package main

import (
	"fmt"
	"os"
	"time"

	"pet-activity-log/internal/adapters/actsapi"
	"pet-activity-log/internal/domain/timeline"
	"pet-activity-log/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	serverURL string
	slots     int
	slotWidth time.Duration
	poll      time.Duration
	tz        string
)

var rootCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Línea de tiempo del registro de actividades en la terminal",
	Long: `Muestra los registros del servidor agrupados en slots de ancho fijo,
del más reciente al más viejo, y permite cargar uno nuevo con "+".`,
	Args: cobra.NoArgs,
	RunE: runTimeline,
}

func init() {
	rootCmd.Flags().StringVar(&serverURL, "server", "http://localhost:8181", "URL base del servidor")
	rootCmd.Flags().IntVar(&slots, "slots", timeline.DefaultSlots, "cantidad de slots")
	rootCmd.Flags().DurationVar(&slotWidth, "slot-width", timeline.DefaultSlotWidth, "ancho de cada slot")
	rootCmd.Flags().DurationVar(&poll, "poll", tui.PollInterval, "intervalo de refresco")
	rootCmd.Flags().StringVar(&tz, "tz", "", "zona horaria IANA (vacío = local)")
}

func runTimeline(cmd *cobra.Command, _ []string) error {
	client, err := actsapi.New(serverURL, 0)
	if err != nil {
		return err
	}

	loc := time.Local
	if tz != "" {
		if loc, err = time.LoadLocation(tz); err != nil {
			return fmt.Errorf("invalid --tz: %w", err)
		}
	}

	model := tui.New(client, tui.Options{
		Timeline: timeline.Options{SlotWidth: slotWidth, Slots: slots, Location: loc},
		Poll:     poll,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
