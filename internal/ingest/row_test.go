package ingest_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfarhq/tfar_backend/internal/core/domain"
	"github.com/tfarhq/tfar_backend/internal/ingest"
)

// dataRow builds a raw row matching the required column order, without the
// client column.
func dataRow() []string {
	return []string{
		"FA-001",          // asset id
		"Office printer",  // asset description
		"2023-07-01",      // tax start date
		"Prime Cost",      // depreciation method
		"1200",            // purchase cost
		"5",               // tax effective life
		"1200",            // opening cost
		"240",             // opening accumulated depreciation
		"960",             // opening wdv
		"0",               // addition
		"0",               // disposal
		"240",             // tax depreciation
		"1200",            // closing cost
		"480",             // closing accumulated depreciation
		"720",             // closing wdv
	}
}

func mustCols(t *testing.T, header []string) ingest.ColumnMap {
	t.Helper()
	cols, err := ingest.ValidateHeader(header)
	require.NoError(t, err)
	return cols
}

func TestMapRow_Success(t *testing.T) {
	cols := mustCols(t, domain.Columns)

	rec, ok, err := ingest.MapRow(dataRow(), cols, "Acme Pty Ltd", 2)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "FA-001", rec.AssetID)
	assert.Equal(t, "Office printer", rec.AssetDescription)
	assert.Equal(t, time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC), rec.TaxStartDate)
	assert.Equal(t, "Prime Cost", rec.DepreciationMethod)
	assert.Equal(t, int64(1200), rec.PurchaseCost)
	assert.Equal(t, int64(5), rec.TaxEffectiveLife)
	assert.Equal(t, int64(960), rec.OpeningWDV)
	assert.Equal(t, int64(240), rec.TaxDepreciation)
	assert.Equal(t, int64(720), rec.ClosingWDV)
}

func TestMapRow_BlankRowSkipped(t *testing.T) {
	cols := mustCols(t, domain.Columns)

	rec, ok, err := ingest.MapRow([]string{"", "  ", ""}, cols, "Acme Pty Ltd", 3)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, rec)

	rec, ok, err = ingest.MapRow(nil, cols, "Acme Pty Ltd", 3)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, rec)
}

func TestMapRow_BlankMoneyCellsDefaultToZero(t *testing.T) {
	cols := mustCols(t, domain.Columns)

	row := dataRow()
	row[9] = ""   // addition
	row[10] = " " // disposal

	rec, ok, err := ingest.MapRow(row, cols, "Acme Pty Ltd", 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, rec.Addition)
	assert.Zero(t, rec.Disposal)
}

func TestMapRow_RaggedRowTreatedAsAbsentCells(t *testing.T) {
	cols := mustCols(t, domain.Columns)

	// Row cut short after the depreciation method: all money cells absent.
	rec, ok, err := ingest.MapRow(dataRow()[:4], cols, "Acme Pty Ltd", 2)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, rec.PurchaseCost)
	assert.Zero(t, rec.ClosingWDV)
}

func TestMapRow_StringFieldsTruncated(t *testing.T) {
	cols := mustCols(t, domain.Columns)

	long := make([]byte, 0, 300)
	for i := 0; i < 300; i++ {
		long = append(long, 'a')
	}
	row := dataRow()
	row[1] = string(long)

	rec, _, err := ingest.MapRow(row, cols, "Acme Pty Ltd", 2)
	require.NoError(t, err)
	assert.Len(t, rec.AssetDescription, domain.AssetDescriptionMaxLen)
}

func TestMapRow_ConversionErrorCarriesRowAndField(t *testing.T) {
	cols := mustCols(t, domain.Columns)

	row := dataRow()
	row[4] = "twelve hundred"

	_, _, err := ingest.MapRow(row, cols, "Acme Pty Ltd", 7)
	require.Error(t, err)
	var convErr *ingest.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, 7, convErr.Row)
	assert.Equal(t, "purchase cost", convErr.Field)
	assert.Equal(t, "twelve hundred", convErr.Raw)
}

func TestMapRow_MissingDateCarriesRowAndField(t *testing.T) {
	cols := mustCols(t, domain.Columns)

	row := dataRow()
	row[2] = ""

	_, _, err := ingest.MapRow(row, cols, "Acme Pty Ltd", 4)
	var missing *ingest.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, 4, missing.Row)
	assert.Equal(t, "tax start date", missing.Field)
}

func TestMapRow_ClientColumnMustMatchTenant(t *testing.T) {
	header := append([]string{domain.ClientColumn}, domain.Columns...)
	cols := mustCols(t, header)

	row := append([]string{"Acme Pty Ltd"}, dataRow()...)
	_, ok, err := ingest.MapRow(row, cols, "Acme Pty Ltd", 2)
	require.NoError(t, err)
	assert.True(t, ok)

	// Comparison ignores case and surrounding whitespace.
	row[0] = "  acme pty ltd "
	_, _, err = ingest.MapRow(row, cols, "Acme Pty Ltd", 2)
	require.NoError(t, err)

	row[0] = "Other Client"
	_, _, err = ingest.MapRow(row, cols, "Acme Pty Ltd", 5)
	var mismatch *ingest.TenantMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 5, mismatch.Row)
	assert.Equal(t, "Other Client", mismatch.Found)
	assert.Equal(t, "Acme Pty Ltd", mismatch.Want)
}
