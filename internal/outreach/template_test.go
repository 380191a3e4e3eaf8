package outreach

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/leadflow/internal/entity"
)

func TestRender(t *testing.T) {
	profile := entity.MessageProfile{Offer: "X", CTA: "Y"}

	tests := []struct {
		name     string
		template string
		ctx      Context
		want     string
	}{
		{
			name:     "basic substitution",
			template: "Hi {name}, {offer}. {cta}",
			ctx:      Context{Name: "Sam"},
			want:     "Hi Sam, X. Y",
		},
		{
			name:     "highlight wins over bio",
			template: "{bio_highlight}",
			ctx:      Context{Highlight: "reels", Bio: "bio"},
			want:     "reels",
		},
		{
			name:     "bio used when no highlight",
			template: "{bio_highlight}",
			ctx:      Context{Bio: "travel vlogs"},
			want:     "travel vlogs",
		},
		{
			name:     "fallbacks",
			template: "Loved {bio_highlight} on {platform}",
			want:     "Loved your content on social media",
		},
		{
			name:     "platform value",
			template: "{platform}",
			ctx:      Context{Platform: entity.PlatformInstagram},
			want:     "instagram",
		},
		{
			name:     "every occurrence replaced",
			template: "{name} {name}",
			ctx:      Context{Name: "Ana"},
			want:     "Ana Ana",
		},
		{
			name:     "unknown braces untouched",
			template: "Hi {name}, {unknown} {Name}",
			ctx:      Context{Name: "Ana"},
			want:     "Hi Ana, {unknown} {Name}",
		},
		{
			name:     "values are not re-scanned",
			template: "Hi {name}",
			ctx:      Context{Name: "{offer}"},
			want:     "Hi {offer}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := profile
			p.Template = tt.template
			assert.Equal(t, tt.want, Render(p, tt.ctx))
		})
	}
}

func TestContextFor(t *testing.T) {
	l := entity.Lead{FirstName: "Ana", LastName: "Lima", Bio: "chef", PlatformType: entity.PlatformTwitter}

	got := ContextFor(l)

	assert.Equal(t, Context{Name: "Ana", Bio: "chef", Platform: entity.PlatformTwitter}, got)
}

func TestContextForClient(t *testing.T) {
	c := entity.Client{Lead: entity.Lead{FirstName: "Ana", Bio: "chef", PlatformType: entity.PlatformEmail}}
	p := entity.MessageProfile{Template: "{name}: {bio_highlight} via {platform}"}

	assert.Equal(t, "Ana: your work via email", Render(p, ContextForClient(c)))

	c.Notes = "the wedding video"
	assert.Equal(t, "Ana: the wedding video via email", Render(p, ContextForClient(c)))
}
