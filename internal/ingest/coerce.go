package ingest

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const isoDateLayout = "2006-01-02"

// CoerceInteger converts a raw cell value to an int64. Blank cells default to
// zero. Fractional numeric values (common for Excel number cells) are rounded
// to the nearest integer.
func CoerceInteger(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ConversionError{Raw: raw}
	}
	return int64(math.Round(f)), nil
}

// CoerceString truncates a raw cell value to maxLen codepoints. Never fails.
func CoerceString(raw string, maxLen int) string {
	r := []rune(raw)
	if len(r) > maxLen {
		r = r[:maxLen]
	}
	return string(r)
}

// CoerceDate converts a raw cell value to a calendar date (midnight UTC).
// Blank cells fail: the field is required. Text cells must be strict ISO-8601
// (YYYY-MM-DD). Native date cells arrive as Excel serial numbers under
// raw-value reads and are converted through the workbook epoch; only the date
// component is kept.
func CoerceDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, &MissingFieldError{}
	}
	if t, err := time.Parse(isoDateLayout, s); err == nil {
		return t.UTC(), nil
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, &DateParseError{Raw: raw}
}
