package export

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/arunpathak904/univaegis-assignment/internal/repository"
)

// Service produces XLSX bytes for eligibility-check history.
type Service struct {
	checks repository.EligibilityCheckRepository
	logger *slog.Logger
}

func NewService(checks repository.EligibilityCheckRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{checks: checks, logger: logger}
}

// ExportChecksXLSX returns a workbook of eligibility checks, one row
// per check, newest first. documentID == nil exports everything.
func (s *Service) ExportChecksXLSX(ctx context.Context, documentID *uint) ([]byte, error) {
	start := time.Now()

	checks, err := s.checks.List(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("query checks: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "EligibilityChecks"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"Check ID",
		"Document ID",
		"Eligible",
		"Listening",
		"Reading",
		"Writing",
		"Speaking",
		"Reasons",
		"Checked At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, c := range checks {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, c.ID)
		write(2, c.DocumentID)
		write(3, c.IsEligible)
		col := 4
		for _, band := range []string{"listening", "reading", "writing", "speaking"} {
			if v, ok := c.IELTSScores[band]; ok {
				write(col, v)
			} else {
				write(col, "")
			}
			col++
		}
		write(8, strings.Join(c.Reasons, "; "))
		write(9, c.CreatedAt.UTC().Format(time.RFC3339))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "B", 12)
	_ = f.SetColWidth(sheet, "C", "G", 10)
	_ = f.SetColWidth(sheet, "H", "H", 64) // reasons
	_ = f.SetColWidth(sheet, "I", "I", 22) // timestamp

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(checks),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
