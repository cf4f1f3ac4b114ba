package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/erkinbekov/tomatea/internal/config"
	"github.com/erkinbekov/tomatea/internal/models"
	"github.com/erkinbekov/tomatea/internal/util"
	"github.com/go-pdf/fpdf"
)

// GeneratePDFReport writes a one-page summary of the day's completed
// sessions and returns the file path.
func GeneratePDFReport(ctx context.Context, store Store, date string) (string, error) {
	sessions, err := store.SessionsForDate(ctx, date)
	if err != nil {
		return "", fmt.Errorf("load sessions: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Pomodoro Report: %s", date))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	if len(sessions) == 0 {
		pdf.Cell(0, 8, "No completed sessions.")
		pdf.Ln(8)
	}

	focusCount := 0
	focusSeconds := 0
	for _, s := range sessions {
		if s.Phase == models.PhaseFocus.Key() {
			focusCount++
			focusSeconds += s.DurationSec
		}
		window := fmt.Sprintf("%s - %s",
			s.StartedAt.Local().Format("15:04"),
			s.EndedAt.Local().Format("15:04"))
		pdf.Cell(0, 8, fmt.Sprintf("%s  %-11s  %d min", window, phaseReportLabel(s.Phase), s.DurationSec/60))
		pdf.Ln(6)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Focus sessions: %d", focusCount))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Focus time: %d min", focusSeconds/60))

	reportRoot := util.ReportsDir(config.AppName)
	if err := os.MkdirAll(reportRoot, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	filename := filepath.Join(reportRoot, fmt.Sprintf("report_%s.pdf", date))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return filename, nil
}

func phaseReportLabel(key string) string {
	switch key {
	case models.PhaseShortBreak.Key():
		return "Short break"
	case models.PhaseLongBreak.Key():
		return "Long break"
	default:
		return "Focus"
	}
}
