package entity

type Settings struct {
	CompanyName     string   `json:"companyName" yaml:"company_name"`
	DefaultCurrency string   `json:"defaultCurrency" yaml:"default_currency"`
	AIAPIKey        string   `json:"aiApiKey,omitempty" yaml:"-"`
	CustomTags      []string `json:"customTags" yaml:"custom_tags"`
	Services        []string `json:"services" yaml:"services"`
}

type SettingsUpdate struct {
	CompanyName     *string   `json:"companyName,omitempty"`
	DefaultCurrency *string   `json:"defaultCurrency,omitempty"`
	AIAPIKey        *string   `json:"aiApiKey,omitempty"`
	CustomTags      *[]string `json:"customTags,omitempty"`
	Services        *[]string `json:"services,omitempty"`
}

func (u SettingsUpdate) Apply(s *Settings) {
	if u.CompanyName != nil {
		s.CompanyName = *u.CompanyName
	}
	if u.DefaultCurrency != nil {
		s.DefaultCurrency = *u.DefaultCurrency
	}
	if u.AIAPIKey != nil {
		s.AIAPIKey = *u.AIAPIKey
	}
	if u.CustomTags != nil {
		s.CustomTags = append([]string{}, (*u.CustomTags)...)
	}
	if u.Services != nil {
		s.Services = append([]string{}, (*u.Services)...)
	}
}

// User is the stubbed session owner.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
