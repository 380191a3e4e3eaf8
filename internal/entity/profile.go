package entity

type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneFriendly     Tone = "friendly"
	ToneFormal       Tone = "formal"
)

type MessageLength string

const (
	LengthShort  MessageLength = "short"
	LengthMedium MessageLength = "medium"
	LengthLong   MessageLength = "long"
)

// MessageProfile is a reusable outreach template. Template may reference
// {name}, {bio_highlight}, {offer}, {cta} and {platform}.
type MessageProfile struct {
	ID       string        `json:"id" yaml:"-"`
	Name     string        `json:"name" yaml:"name"`
	Tone     Tone          `json:"tone" yaml:"tone"`
	Offer    string        `json:"offer" yaml:"offer"`
	CTA      string        `json:"cta" yaml:"cta"`
	Length   MessageLength `json:"length" yaml:"length"`
	Template string        `json:"template" yaml:"template"`
}

type MessageProfileUpdate struct {
	Name     *string        `json:"name,omitempty"`
	Tone     *Tone          `json:"tone,omitempty"`
	Offer    *string        `json:"offer,omitempty"`
	CTA      *string        `json:"cta,omitempty"`
	Length   *MessageLength `json:"length,omitempty"`
	Template *string        `json:"template,omitempty"`
}

func (u MessageProfileUpdate) Apply(p *MessageProfile) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Tone != nil {
		p.Tone = *u.Tone
	}
	if u.Offer != nil {
		p.Offer = *u.Offer
	}
	if u.CTA != nil {
		p.CTA = *u.CTA
	}
	if u.Length != nil {
		p.Length = *u.Length
	}
	if u.Template != nil {
		p.Template = *u.Template
	}
}
