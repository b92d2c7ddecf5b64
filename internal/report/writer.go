// Package report serializes result records to an XLSX workbook, shading the
// department cell of every record flagged for manual review.
package report

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/khazar-analytics/scopus-processor/internal/domain"
)

// header is the published column order. The historical registry spells the
// first column "Departament" and carries the Azerbaijani "Təqdimat" and
// "Quartil" columns for manual entry, so the rendered report keeps them.
var header = []any{
	"Departament",
	"Authors",
	"Authors",
	"Author full names",
	"Title",
	"Year",
	"Source title",
	"Volume",
	"Issue",
	"Art. No.",
	"Page start",
	"Page end",
	"Page count",
	"Source",
	"Təqdimat",
	"Data",
	"Amount",
	"Quartil",
}

// Summary describes a successfully written report.
type Summary struct {
	// Path is the destination file.
	Path string
	// Rows is the number of data rows written, excluding the header.
	Rows int
	// Highlighted is the number of shaded department cells.
	Highlighted int
}

// Writer renders result records to XLSX files.
type Writer struct {
	highlightColor string
	logger         zerolog.Logger
}

// NewWriter creates a Writer that shades review cells with the given RGB hex
// color.
func NewWriter(highlightColor string, logger zerolog.Logger) *Writer {
	return &Writer{
		highlightColor: highlightColor,
		logger:         logger,
	}
}

// Write serializes the records to path. The internal highlight fields are
// consumed for shading and never serialized. Writing an empty record set is
// an explicit failure so the caller can tell the user apart from a silent
// empty file.
func (w *Writer) Write(records []domain.ResultRecord, path string) (*Summary, error) {
	if len(records) == 0 {
		return nil, &domain.ExportError{Path: path, Err: domain.ErrNoRecords}
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, &domain.ExportError{Path: path, Err: err}
	}

	highlight, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{w.highlightColor},
		},
	})
	if err != nil {
		return nil, &domain.ExportError{Path: path, Err: err}
	}

	highlighted := 0
	for i, rec := range records {
		rowIdx := i + 2 // 1-based, after the header
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowIdx), rowValues(rec)); err != nil {
			return nil, &domain.ExportError{Path: path, Err: err}
		}

		if rec.NeedsHighlight() {
			cell := "A" + strconv.Itoa(rowIdx)
			if err := f.SetCellStyle(sheet, cell, cell, highlight); err != nil {
				return nil, &domain.ExportError{Path: path, Err: err}
			}
			highlighted++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return nil, &domain.ExportError{Path: path, Err: err}
	}

	w.logger.Info().
		Str("path", path).
		Int("rows", len(records)).
		Int("highlighted", highlighted).
		Msg("report written")

	return &Summary{Path: path, Rows: len(records), Highlighted: highlighted}, nil
}

func rowValues(rec domain.ResultRecord) *[]any {
	year := ""
	if rec.Year != 0 {
		year = strconv.Itoa(rec.Year)
	}

	return &[]any{
		rec.Department,
		rec.AffiliatedAuthors,
		rec.AllAuthors,
		rec.AllAuthorFullNames,
		rec.Title,
		year,
		rec.SourceTitle,
		rec.Volume,
		rec.Issue,
		rec.ArticleNumber,
		rec.PageStart,
		rec.PageEnd,
		rec.PageCount,
		rec.Source,
		rec.Presentation,
		rec.Data,
		rec.Amount,
		rec.Quartile,
	}
}
