package ingest

import (
	"strings"

	"github.com/tfarhq/tfar_backend/internal/core/domain"
)

// ColumnMap resolves a normalized header name to its zero-based cell index.
type ColumnMap map[string]int

// HasClient reports whether the sheet carried the optional client column.
func (m ColumnMap) HasClient() bool {
	_, ok := m[domain.ClientColumn]
	return ok
}

// ValidateHeader checks the first row of a sheet against the TFAR schema.
// Header names are trimmed and case-folded; order is not significant. The
// sheet must carry all fifteen required columns and nothing else, except for
// an optional sixteenth "client" column. On success it returns the resolved
// column index map.
func ValidateHeader(cells []string) (ColumnMap, error) {
	found := make([]string, len(cells))
	for i, c := range cells {
		found[i] = strings.ToLower(strings.TrimSpace(c))
	}
	// Spreadsheet readers often pad the header row with empty trailing cells.
	for len(found) > 0 && found[len(found)-1] == "" {
		found = found[:len(found)-1]
	}

	cols := make(ColumnMap, len(found))
	for i, name := range found {
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}

	okCount := len(found) == len(domain.Columns) ||
		(len(found) == len(domain.Columns)+1 && cols.HasClient())
	if !okCount {
		return nil, &HeaderMismatchError{Expected: domain.Columns, Found: found}
	}
	for _, name := range domain.Columns {
		if _, ok := cols[name]; !ok {
			return nil, &HeaderMismatchError{Expected: domain.Columns, Found: found}
		}
	}
	return cols, nil
}
