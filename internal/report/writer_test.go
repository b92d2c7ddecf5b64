package report

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/khazar-analytics/scopus-processor/internal/domain"
)

func testWriter() *Writer {
	return NewWriter("FFFF00", zerolog.Nop())
}

func sampleRecords() []domain.ResultRecord {
	return []domain.ResultRecord{
		{
			Department:        "Computer Science",
			AffiliatedAuthors: "Smith, J.",
			AllAuthors:        "Smith J.; Brown A.",
			Title:             "Deep Learning Methods",
			Year:              2025,
			SourceTitle:       "Journal of Testing",
			Source:            "Scopus",
		},
		{
			Department:        "",
			AffiliatedAuthors: "Unknown, X.",
			Title:             "Work by Unknown Author",
			Year:              2025,
			Source:            "Scopus",
			Highlight:         domain.HighlightNotFound,
		},
	}
}

func TestWriteReport(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.xlsx")

	summary, err := testWriter().Write(sampleRecords(), path)
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, path, summary.Path)
	assert.Equal(t, 2, summary.Rows)
	assert.Equal(t, 1, summary.Highlighted)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Departament", rows[0][0])
	assert.Equal(t, "Title", rows[0][4])
	assert.Equal(t, "Computer Science", rows[1][0])
	assert.Equal(t, "Deep Learning Methods", rows[1][4])
	assert.Equal(t, "2025", rows[1][5])
	assert.Equal(t, "Scopus", rows[1][13])

	// The internal highlight fields must not leak into the sheet.
	for _, name := range rows[0] {
		assert.NotContains(t, name, "highlight")
	}

	// The flagged record's department cell carries a non-default style.
	style, err := f.GetCellStyle(sheet, "A3")
	require.NoError(t, err)
	assert.NotZero(t, style)

	plain, err := f.GetCellStyle(sheet, "A2")
	require.NoError(t, err)
	assert.NotEqual(t, style, plain)
}

func TestWriteEmptyResultSet(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.xlsx")

	summary, err := testWriter().Write(nil, path)

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, domain.ErrNoRecords)

	var exportErr *domain.ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, path, exportErr.Path)
}

func TestWriteBadDestination(t *testing.T) {
	t.Parallel()

	_, err := testWriter().Write(sampleRecords(), filepath.Join(t.TempDir(), "missing", "deep", "report.xlsx"))
	assert.Error(t, err)

	var exportErr *domain.ExportError
	assert.ErrorAs(t, err, &exportErr)
}
