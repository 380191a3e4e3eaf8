// Package outreach turns message profiles into ready-to-send text.
package outreach

import (
	"strings"

	"github.com/xavierca1/leadflow/internal/entity"
)

const (
	fallbackHighlight       = "your content"
	fallbackClientHighlight = "your work"
	fallbackPlatform        = "social media"
)

// Context is what a template can see about the recipient.
type Context struct {
	Name      string
	Highlight string
	Bio       string
	Platform  entity.PlatformType
}

// ContextFor builds a render context from a lead. Highlight stays empty so
// the bio is used.
func ContextFor(l entity.Lead) Context {
	return Context{
		Name:     l.FirstName,
		Bio:      l.Bio,
		Platform: l.PlatformType,
	}
}

// ContextForClient highlights the client's notes, or "your work".
func ContextForClient(c entity.Client) Context {
	highlight := c.Notes
	if highlight == "" {
		highlight = fallbackClientHighlight
	}
	return Context{
		Name:      c.FirstName,
		Highlight: highlight,
		Platform:  c.PlatformType,
	}
}

// Render substitutes the five known placeholders in one pass. Unknown brace
// text is left as is and substituted values are never re-scanned.
func Render(p entity.MessageProfile, c Context) string {
	highlight := c.Highlight
	if highlight == "" {
		highlight = c.Bio
	}
	if highlight == "" {
		highlight = fallbackHighlight
	}
	platform := string(c.Platform)
	if platform == "" {
		platform = fallbackPlatform
	}

	r := strings.NewReplacer(
		"{name}", c.Name,
		"{bio_highlight}", highlight,
		"{offer}", p.Offer,
		"{cta}", p.CTA,
		"{platform}", platform,
	)
	return r.Replace(p.Template)
}
