package importer

import (
	"strings"

	"github.com/xavierca1/leadflow/internal/entity"
)

// Row is one spreadsheet line keyed by its header cell.
type Row map[string]string

// first returns the first non-empty value among the aliased columns.
func (r Row) first(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(r[k]); v != "" {
			return v
		}
	}
	return ""
}

func firstWord(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return ""
}

// ParseRows maps header-keyed rows to new leads. Rows without any name
// column are skipped.
func ParseRows(rows []Row) []entity.NewLead {
	leads := make([]entity.NewLead, 0, len(rows))
	for _, row := range rows {
		firstName := row.first("firstName", "first_name")
		if firstName == "" {
			firstName = firstWord(row.first("name", "Name"))
		}
		if firstName == "" {
			continue
		}

		link := row.first("profileLink", "profile_link", "link", "url", "URL")
		declared := row.first("platform", "type")

		var platform entity.PlatformType
		switch {
		case link != "":
			platform = DetectPlatform(link)
		case entity.PlatformType(strings.ToLower(declared)).Valid():
			platform = entity.PlatformType(strings.ToLower(declared))
		default:
			platform = DetectPlatform(declared)
		}

		tags := []string{}
		if raw := row.first("tags"); raw != "" {
			for _, t := range strings.Split(raw, ",") {
				if t = strings.TrimSpace(t); t != "" {
					tags = append(tags, t)
				}
			}
		}

		leads = append(leads, entity.NewLead{
			FirstName:    firstName,
			LastName:     row.first("lastName", "last_name"),
			PlatformType: platform,
			ProfileLink:  link,
			Email:        row.first("email", "Email"),
			Phone:        row.first("phone", "Phone"),
			Status:       entity.StatusNew,
			Tags:         tags,
			Notes:        row.first("notes", "Notes"),
			Source:       entity.SourceOther,
		})
	}
	return leads
}

// rowsFromTable keys each data line by the header line. Short lines get
// empty cells; fully blank lines are dropped.
func rowsFromTable(table [][]string) []Row {
	if len(table) == 0 {
		return nil
	}
	header := make([]string, len(table[0]))
	for i, h := range table[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	rows := make([]Row, 0, len(table)-1)
	for _, line := range table[1:] {
		row := make(Row, len(header))
		blank := true
		for i, h := range header {
			if i < len(line) {
				row[h] = line[i]
				if strings.TrimSpace(line[i]) != "" {
					blank = false
				}
			}
		}
		if !blank {
			rows = append(rows, row)
		}
	}
	return rows
}
