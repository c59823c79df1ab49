package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	m "jsguard.dev/pkg/jsguard/internal/model"
)

// SheetName is the worksheet that holds the findings.
const SheetName = "Findings"

const defaultSheetName = "Sheet1"

var columnWidths = []float64{60, 8, 30, 100}

// WriteXLSX encodes matches as a single-sheet workbook with a frozen, filterable header row.
func WriteXLSX(w io.Writer, matches []m.Match) (err error) {
	book := excelize.NewFile()

	defer func() {
		if closeErr := book.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close workbook: %w", closeErr)
		}
	}()

	if err := book.SetSheetName(defaultSheetName, SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeSheetHeader(book); err != nil {
		return err
	}

	for i, match := range matches {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := []any{string(match.File), match.Line, match.Issue, match.Code}
		if err := book.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if len(matches) > 0 {
		lastCell, err := excelize.CoordinatesToCellName(len(Headers), len(matches)+1)
		if err != nil {
			return err
		}

		if err := book.AutoFilter(SheetName, "A1:"+lastCell, nil); err != nil {
			return fmt.Errorf("set auto filter: %w", err)
		}
	}

	if err := book.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	return nil
}

func writeSheetHeader(book *excelize.File) error {
	header := make([]any, 0, len(Headers))
	for _, h := range Headers {
		header = append(header, h)
	}

	if err := book.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	style, err := book.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(Headers), 1)
	if err != nil {
		return err
	}

	if err := book.SetCellStyle(SheetName, "A1", lastHeader, style); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}

		if err := book.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("set column width: %w", err)
		}
	}

	return book.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}
