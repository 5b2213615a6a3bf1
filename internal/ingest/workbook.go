package ingest

import (
	"bytes"
	"errors"

	"github.com/xuri/excelize/v2"
)

// ReadRows opens an xlsx workbook from memory and returns every row of its
// first worksheet as raw cell values. Raw-value reads keep numeric cells
// unformatted and surface native date cells as Excel serial numbers, which is
// what the coercion layer expects.
//
// A workbook that cannot be opened or read fails with *MalformedFileError;
// nothing is partially consumed.
func ReadRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &MalformedFileError{Err: err}
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, &MalformedFileError{Err: errors.New("workbook has no worksheets")}
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &MalformedFileError{Err: err}
	}
	return rows, nil
}
