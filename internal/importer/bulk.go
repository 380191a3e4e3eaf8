package importer

import (
	"regexp"
	"strings"

	"github.com/xavierca1/leadflow/internal/entity"
)

var bulkSeparators = regexp.MustCompile(`[\n,]+`)

// ParseBulkText treats every line or comma-separated entry as one lead.
// Links are named after their last path segment, e-mails after the local
// part.
func ParseBulkText(text string) []entity.NewLead {
	var leads []entity.NewLead
	for _, entry := range bulkSeparators.Split(text, -1) {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		platform := DetectPlatform(entry)
		isLink := strings.Contains(entry, "http") || strings.Contains(entry, ".com")

		lead := entity.NewLead{
			PlatformType: platform,
			Status:       entity.StatusNew,
			Tags:         []string{},
			Source:       entity.SourceOther,
		}
		if isLink {
			lead.ProfileLink = entry
			lead.FirstName = entry[strings.LastIndex(entry, "/")+1:]
			if lead.FirstName == "" {
				lead.FirstName = "Unknown"
			}
		} else {
			lead.FirstName = strings.SplitN(entry, "@", 2)[0]
			if lead.FirstName == "" {
				lead.FirstName = entry
			}
		}
		switch platform {
		case entity.PlatformEmail:
			lead.Email = entry
		case entity.PlatformPhone:
			lead.Phone = entry
		}
		leads = append(leads, lead)
	}
	return leads
}
