package importer

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ParseCSV reads a header-first CSV document.
func ParseCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	table, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseCSV, err)
	}
	return rowsFromTable(table), nil
}
