// Package importer turns uploaded spreadsheets and pasted text into new
// leads. A batch either parses completely or is rejected.
package importer

import (
	"regexp"
	"strings"

	"github.com/xavierca1/leadflow/internal/entity"
)

var phonePattern = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)

// DetectPlatform guesses a platform from a link, handle or contact string.
func DetectPlatform(text string) entity.PlatformType {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "instagram"):
		return entity.PlatformInstagram
	case strings.Contains(lower, "facebook.com"), strings.Contains(lower, "fb.com"):
		return entity.PlatformFacebook
	case strings.Contains(lower, "@") && strings.Contains(lower, "."):
		return entity.PlatformEmail
	case phonePattern.MatchString(strings.Join(strings.Fields(text), "")):
		return entity.PlatformPhone
	}
	return entity.PlatformOther
}
