package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, sheet string, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheet))
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadFirstSheet(t *testing.T) {
	buf := buildWorkbook(t, "Roster", [][]interface{}{
		{"NAME", "STUDENT ID", "Flag1"},
		{"Anu", "S1", "Yes"},
		{nil, nil, nil},
		{"Biju", "S2"},
	})

	sheet, err := ReadFirstSheet(buf, 0)
	require.NoError(t, err)

	assert.Equal(t, "Roster", sheet.Name)
	assert.Equal(t, []string{"NAME", "STUDENT ID", "Flag1"}, sheet.Header)
	require.Len(t, sheet.Rows, 2)

	assert.Equal(t, 2, sheet.Rows[0].Number)
	assert.Equal(t, "Anu", sheet.Rows[0].Get("NAME"))
	assert.Equal(t, "Yes", sheet.Rows[0].Get("Flag1"))

	assert.Equal(t, 4, sheet.Rows[1].Number)
	assert.Equal(t, "S2", sheet.Rows[1].Get("STUDENT ID"))
	assert.Equal(t, "", sheet.Rows[1].Get("Flag1"))
	assert.Equal(t, "", sheet.Rows[1].Get("missing"))
}

func TestReadFirstSheet_HeaderTextIsExact(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", [][]interface{}{
		{"student id"},
		{"S1"},
	})

	sheet, err := ReadFirstSheet(buf, 0)
	require.NoError(t, err)
	assert.Equal(t, "", sheet.Rows[0].Get("STUDENT ID"))
	assert.Equal(t, "S1", sheet.Rows[0].Get("student id"))
}

func TestReadFirstSheet_RowLimit(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", [][]interface{}{
		{"NAME"},
		{"a"},
		{"b"},
		{"c"},
	})

	_, err := ReadFirstSheet(buf, 2)
	assert.ErrorIs(t, err, ErrTooManyRows)
}

func TestReadFirstSheet_Empty(t *testing.T) {
	buf := buildWorkbook(t, "Sheet1", nil)

	_, err := ReadFirstSheet(buf, 0)
	assert.ErrorIs(t, err, ErrNoHeader)
}

func TestReadFirstSheet_NotAWorkbook(t *testing.T) {
	_, err := ReadFirstSheet(bytes.NewBufferString("name,id\n"), 0)
	assert.Error(t, err)
}

func TestWrite_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Students", []string{"id", "name"}, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Students"}, f.GetSheetList())
	rows, err := f.GetRows("Students")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"id", "name"}}, rows)
}

func TestWrite_ProducedRows(t *testing.T) {
	produce := func(emit func([]interface{}) error) error {
		for _, r := range [][]interface{}{{1, "Anu", true}, {2, "Biju", nil}} {
			if err := emit(r); err != nil {
				return err
			}
		}
		return nil
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Students", []string{"id", "name", "flag1"}, produce))

	sheet, err := ReadFirstSheet(&buf, 0)
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "Anu", sheet.Rows[0].Get("name"))
	assert.Equal(t, "2", sheet.Rows[1].Get("id"))
	assert.Equal(t, "", sheet.Rows[1].Get("flag1"))
}
