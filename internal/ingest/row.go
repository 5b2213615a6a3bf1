package ingest

import (
	"strings"

	"github.com/tfarhq/tfar_backend/internal/core/domain"
)

// cell is a safe accessor for a raw row: rows read from a sheet are ragged,
// so an index past the end means an absent cell.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// isBlankRow reports whether every cell of the row is empty or whitespace.
func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// atCell stamps a coercion error with the 1-based row number and field name
// it occurred at. The header row counts as row 1.
func atCell(err error, rowNum int, field string) error {
	switch e := err.(type) {
	case *ConversionError:
		e.Row, e.Field = rowNum, field
	case *DateParseError:
		e.Row, e.Field = rowNum, field
	case *MissingFieldError:
		e.Row, e.Field = rowNum, field
	}
	return err
}

// MapRow converts one raw data row into a typed asset record using the
// resolved column map. The second return value is false when the row is
// entirely blank and should be silently skipped.
//
// Only the business fields are populated; the caller assigns record identity,
// tenant, owner and timestamp. When the sheet carries a client column its
// value must name the selected tenant (case-insensitive, trimmed).
func MapRow(row []string, cols ColumnMap, tenantName string, rowNum int) (*domain.AssetRecord, bool, error) {
	if isBlankRow(row) {
		return nil, false, nil
	}

	if idx, ok := cols[domain.ClientColumn]; ok {
		fileTenant := strings.TrimSpace(cell(row, idx))
		if !strings.EqualFold(fileTenant, strings.TrimSpace(tenantName)) {
			return nil, false, &TenantMismatchError{Row: rowNum, Found: fileTenant, Want: tenantName}
		}
	}

	getInt := func(column string) (int64, error) {
		v, err := CoerceInteger(cell(row, cols[column]))
		if err != nil {
			return 0, atCell(err, rowNum, column)
		}
		return v, nil
	}

	rec := &domain.AssetRecord{
		AssetID:            CoerceString(cell(row, cols["asset id"]), domain.AssetIDMaxLen),
		AssetDescription:   CoerceString(cell(row, cols["asset description"]), domain.AssetDescriptionMaxLen),
		DepreciationMethod: CoerceString(cell(row, cols["depreciation method"]), domain.DepreciationMethodMaxLen),
	}

	taxStartDate, err := CoerceDate(cell(row, cols["tax start date"]))
	if err != nil {
		return nil, false, atCell(err, rowNum, "tax start date")
	}
	rec.TaxStartDate = taxStartDate

	intFields := []struct {
		column string
		dst    *int64
	}{
		{"purchase cost", &rec.PurchaseCost},
		{"tax effective life", &rec.TaxEffectiveLife},
		{"opening cost", &rec.OpeningCost},
		{"opening accumulated depreciation", &rec.OpeningAccumDepreciation},
		{"opening wdv", &rec.OpeningWDV},
		{"addition", &rec.Addition},
		{"disposal", &rec.Disposal},
		{"tax depreciation", &rec.TaxDepreciation},
		{"closing cost", &rec.ClosingCost},
		{"closing accumulated depreciation", &rec.ClosingAccumDepreciation},
		{"closing wdv", &rec.ClosingWDV},
	}
	for _, f := range intFields {
		v, err := getInt(f.column)
		if err != nil {
			return nil, false, err
		}
		*f.dst = v
	}

	return rec, true, nil
}
