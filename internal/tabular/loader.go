// Package tabular loads Scopus exports, the curated corpus and the
// department mapping table from CSV or XLSX files into domain records.
//
// The loaders are deliberately lenient: a column absent from the input
// schema defaults every value to the empty string, and an unparsable year
// loads as zero. Malformed rows never fail a file.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/khazar-analytics/scopus-processor/internal/domain"
)

// LoadSource reads a Scopus export file (.csv, .xlsx or .xlsm) into source
// records. The first sheet is used for workbook formats.
func LoadSource(path string) ([]domain.SourceRecord, error) {
	rows, err := readRows(path, "")
	if err != nil {
		return nil, fmt.Errorf("loading source file: %w", err)
	}
	return parseSource(rows), nil
}

// LoadReference reads the curated corpus file into reference records. For
// workbook formats the named sheet is read; an empty name selects the first
// sheet.
func LoadReference(path, sheet string) ([]domain.ReferenceRecord, error) {
	rows, err := readRows(path, sheet)
	if err != nil {
		return nil, fmt.Errorf("loading reference file: %w", err)
	}
	return parseReference(rows), nil
}

// LoadDepartments reads the author-to-department mapping table.
func LoadDepartments(path string) ([]domain.DepartmentMapping, error) {
	rows, err := readRows(path, "")
	if err != nil {
		return nil, fmt.Errorf("loading department file: %w", err)
	}
	return parseDepartments(rows), nil
}

// readRows reads a tabular file into string rows, dispatching on extension.
func readRows(path, sheet string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readCSV(f)
	case ".xlsx", ".xlsm":
		return readWorkbook(path, sheet)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	return rows, nil
}

func readWorkbook(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// columnIndex maps normalized header names to column positions. It is built
// once per file so optional-field defaults live in a single place instead of
// per-field presence checks scattered through record assembly.
type columnIndex map[string]int

func indexColumns(header []string) columnIndex {
	index := make(columnIndex, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return index
}

// get returns the cell under the first matching header name, or "" when the
// column is absent or the row is short.
func (ix columnIndex) get(row []string, names ...string) string {
	for _, name := range names {
		col, ok := ix[name]
		if !ok || col >= len(row) {
			continue
		}
		return strings.TrimSpace(row[col])
	}
	return ""
}

func parseSource(rows [][]string) []domain.SourceRecord {
	if len(rows) < 2 {
		return []domain.SourceRecord{}
	}

	ix := indexColumns(rows[0])
	records := make([]domain.SourceRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, domain.SourceRecord{
			Title:                   ix.get(row, "title"),
			Year:                    parseYear(ix.get(row, "year")),
			Authors:                 ix.get(row, "authors"),
			AuthorFullNames:         ix.get(row, "author full names"),
			AuthorsWithAffiliations: ix.get(row, "authors with affiliations"),
			SourceTitle:             ix.get(row, "source title"),
			Volume:                  ix.get(row, "volume"),
			Issue:                   ix.get(row, "issue"),
			ArticleNumber:           ix.get(row, "art. no."),
			PageStart:               ix.get(row, "page start"),
			PageEnd:                 ix.get(row, "page end"),
			PageCount:               ix.get(row, "page count"),
		})
	}
	return records
}

func parseReference(rows [][]string) []domain.ReferenceRecord {
	if len(rows) < 2 {
		return []domain.ReferenceRecord{}
	}

	ix := indexColumns(rows[0])
	records := make([]domain.ReferenceRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, domain.ReferenceRecord{
			Title: ix.get(row, "title"),
			Year:  parseYear(ix.get(row, "year")),
		})
	}
	return records
}

func parseDepartments(rows [][]string) []domain.DepartmentMapping {
	if len(rows) < 2 {
		return []domain.DepartmentMapping{}
	}

	ix := indexColumns(rows[0])
	entries := make([]domain.DepartmentMapping, 0, len(rows)-1)
	for _, row := range rows[1:] {
		// The historical mapping file spells the column "Departament".
		entry := domain.DepartmentMapping{
			AuthorName: ix.get(row, "author name"),
			Department: ix.get(row, "departament", "department"),
		}
		if entry.AuthorName == "" {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

// parseYear accepts plain integers plus the "2024.0" float rendering that
// spreadsheet tools produce. Anything else loads as zero, which never
// matches a year filter.
func parseYear(value string) int {
	value = strings.TrimSuffix(strings.TrimSpace(value), ".0")
	year, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return year
}
