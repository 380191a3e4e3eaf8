package importer

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xavierca1/leadflow/internal/entity"
)

var (
	ErrParseCSV          = errors.New("failed to parse CSV file")
	ErrParseExcel        = errors.New("failed to parse Excel file")
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrNoLeads           = errors.New("no leads to import")
)

// Format is the upload kind derived from the file extension.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatOf maps the extension to a parser. Legacy .xls (BIFF) workbooks are
// unsupported since excelize only reads OOXML.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "csv":
		return FormatCSV, nil
	case "xlsx":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
}

// ParseFile dispatches on the file extension and maps the rows to leads.
// An empty result is ErrNoLeads.
func ParseFile(filename string, r io.Reader) ([]entity.NewLead, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}

	var rows []Row
	switch format {
	case FormatCSV:
		rows, err = ParseCSV(r)
	case FormatXLSX:
		rows, err = ParseXLSX(r)
	}
	if err != nil {
		return nil, err
	}

	leads := ParseRows(rows)
	if len(leads) == 0 {
		return nil, ErrNoLeads
	}
	return leads, nil
}
