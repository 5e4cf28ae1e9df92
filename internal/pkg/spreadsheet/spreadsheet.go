// Package spreadsheet reads and writes single-sheet .xlsx workbooks.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of an Office Open XML workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	ErrNoSheet     = errors.New("workbook has no sheets")
	ErrNoHeader    = errors.New("first sheet has no header row")
	ErrTooManyRows = errors.New("too many rows")
)

// Row is one data row keyed by exact header text
type Row struct {
	Number int // 1-based row number in the sheet
	values map[string]string
}

// NewRow builds a row from header/value pairs
func NewRow(number int, values map[string]string) Row {
	return Row{Number: number, values: values}
}

// Get returns the raw cell text under header, or "" when the column is absent
func (r Row) Get(header string) string {
	return r.values[header]
}

// Sheet is the parsed content of a worksheet
type Sheet struct {
	Name   string
	Header []string
	Rows   []Row
}

// ReadFirstSheet parses the first worksheet. Row 1 is the header, blank rows are skipped,
// cell values are returned raw. maxRows <= 0 disables the row limit.
func ReadFirstSheet(r io.Reader, maxRows int) (*Sheet, error) {
	f, err := excelize.OpenReader(r, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	defer rows.Close()

	sheet := &Sheet{Name: sheets[0]}
	number := 0
	for rows.Next() {
		number++
		cols, err := rows.Columns(excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", number, err)
		}

		if sheet.Header == nil {
			if isBlank(cols) {
				continue
			}
			sheet.Header = cols
			continue
		}

		if isBlank(cols) {
			continue
		}
		if maxRows > 0 && len(sheet.Rows) >= maxRows {
			return nil, fmt.Errorf("%w: limit is %d", ErrTooManyRows, maxRows)
		}

		values := make(map[string]string, len(sheet.Header))
		for i, name := range sheet.Header {
			if name == "" || i >= len(cols) {
				continue
			}
			if _, seen := values[name]; seen {
				continue
			}
			values[name] = cols[i]
		}
		sheet.Rows = append(sheet.Rows, NewRow(number, values))
	}
	if err := rows.Error(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	if sheet.Header == nil {
		return nil, ErrNoHeader
	}

	return sheet, nil
}

// RowProducer emits data rows in order. It may be called more than once and must
// start from the beginning each time.
type RowProducer func(emit func(values []interface{}) error) error

// Write streams a single-sheet workbook to w: the header row first, then every produced row.
func Write(w io.Writer, sheetName string, header []string, produce RowProducer) error {
	f := excelize.NewFile()
	defer f.Close()

	if defaultSheet := f.GetSheetName(0); defaultSheet != sheetName {
		if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}

	rowNum := 1
	writeRow := func(values []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", rowNum, err)
		}
		rowNum++
		return nil
	}

	if err := writeRow(headerRow); err != nil {
		return err
	}
	if produce != nil {
		if err := produce(writeRow); err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("failed to flush sheet: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func isBlank(cols []string) bool {
	for _, c := range cols {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
