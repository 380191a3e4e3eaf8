package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/xavierca1/leadflow/internal/entity"
)

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		in   string
		want entity.PlatformType
	}{
		{"https://instagram.com/sam", entity.PlatformInstagram},
		{"Instagram", entity.PlatformInstagram},
		{"https://www.facebook.com/sam", entity.PlatformFacebook},
		{"fb.com/sam", entity.PlatformFacebook},
		{"sam@example.com", entity.PlatformEmail},
		{"+1 555 123 4567", entity.PlatformPhone},
		{"555-123-4567", entity.PlatformPhone},
		{"12345", entity.PlatformOther},
		{"https://twitter.com/sam", entity.PlatformOther},
		{"", entity.PlatformOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectPlatform(tt.in), tt.in)
	}
}

func TestParseFileCSV(t *testing.T) {
	doc := "name,email,link,tags,notes\n" +
		"Ana Lima,ana@example.com,https://instagram.com/ana,\"VIP, warm\",met at fair\n" +
		"Bob,,,,\n" +
		",orphan@example.com,,,\n" +
		"Cid,,,,\n"

	leads, err := ParseFile("leads.CSV", strings.NewReader(doc))

	require.NoError(t, err)
	require.Len(t, leads, 3)

	ana := leads[0]
	assert.Equal(t, "Ana", ana.FirstName)
	assert.Equal(t, entity.PlatformInstagram, ana.PlatformType)
	assert.Equal(t, "https://instagram.com/ana", ana.ProfileLink)
	assert.Equal(t, "ana@example.com", ana.Email)
	assert.Equal(t, []string{"VIP", "warm"}, ana.Tags)
	assert.Equal(t, "met at fair", ana.Notes)

	for _, l := range leads {
		assert.Equal(t, entity.StatusNew, l.Status)
		assert.Equal(t, entity.SourceOther, l.Source)
	}
	assert.Equal(t, entity.PlatformOther, leads[1].PlatformType)
	assert.Empty(t, leads[1].Tags)
}

func TestParseRowsAliases(t *testing.T) {
	rows := []Row{
		{"first_name": "Ana", "last_name": "Lima", "profile_link": "fb.com/ana", "Phone": "555"},
		{"firstName": "Bia", "platform": "twitter"},
		{"Name": "Caio Souza", "type": "instagram"},
		{"firstName": "Dan", "platform": "facebook"},
		{"firstName": "Eva", "URL": "https://x.com/eva", "platform": "email"},
	}

	leads := ParseRows(rows)

	require.Len(t, leads, 5)
	assert.Equal(t, "Lima", leads[0].LastName)
	assert.Equal(t, entity.PlatformFacebook, leads[0].PlatformType)
	assert.Equal(t, "555", leads[0].Phone)
	assert.Equal(t, entity.PlatformTwitter, leads[1].PlatformType)
	assert.Equal(t, "Caio", leads[2].FirstName)
	assert.Equal(t, entity.PlatformInstagram, leads[2].PlatformType)
	assert.Equal(t, entity.PlatformFacebook, leads[3].PlatformType)
	// the link decides when present
	assert.Equal(t, entity.PlatformOther, leads[4].PlatformType)
}

func TestParseFileXLSX(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]string{"firstName", "lastName", "email"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]string{"Ana", "Lima", "ana@example.com"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]string{"Bob"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	leads, err := ParseFile("book.xlsx", bytes.NewReader(buf.Bytes()))

	require.NoError(t, err)
	require.Len(t, leads, 2)
	assert.Equal(t, "Lima", leads[0].LastName)
	assert.Equal(t, "ana@example.com", leads[0].Email)
	assert.Equal(t, "Bob", leads[1].FirstName)
}

func TestParseFileErrors(t *testing.T) {
	_, err := ParseFile("leads.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ParseFile("leads.xlsx", strings.NewReader("not a zip"))
	assert.ErrorIs(t, err, ErrParseExcel)

	_, err = ParseFile("leads.csv", strings.NewReader("name\nAn\"a\n"))
	assert.ErrorIs(t, err, ErrParseCSV)

	_, err = ParseFile("leads.csv", strings.NewReader("email\nx@y.com\n"))
	assert.ErrorIs(t, err, ErrNoLeads)
}

func TestParseBulkText(t *testing.T) {
	text := "https://instagram.com/sam\nana@example.com, +1 555 123 4567\n\n  plain  \nhttps://site.com/\n"

	leads := ParseBulkText(text)

	require.Len(t, leads, 5)

	assert.Equal(t, "sam", leads[0].FirstName)
	assert.Equal(t, entity.PlatformInstagram, leads[0].PlatformType)
	assert.Equal(t, "https://instagram.com/sam", leads[0].ProfileLink)

	assert.Equal(t, "ana", leads[1].FirstName)
	assert.Equal(t, entity.PlatformEmail, leads[1].PlatformType)
	assert.Equal(t, "ana@example.com", leads[1].Email)

	assert.Equal(t, entity.PlatformPhone, leads[2].PlatformType)
	assert.Equal(t, "+1 555 123 4567", leads[2].Phone)
	assert.Equal(t, "+1 555 123 4567", leads[2].FirstName)

	assert.Equal(t, "plain", leads[3].FirstName)
	assert.Equal(t, entity.PlatformOther, leads[3].PlatformType)

	assert.Equal(t, "Unknown", leads[4].FirstName)
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"leads.csv", FormatCSV, false},
		{"Leads.XLSX", FormatXLSX, false},
		{"legacy.xls", "", true},
		{"notes.txt", "", true},
		{"noext", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatOf(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
