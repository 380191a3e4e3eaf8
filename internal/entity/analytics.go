package entity

// DateLayout keys DailyAnalytics records.
const DateLayout = "2006-01-02"

type DailyAnalytics struct {
	Date           string `json:"date"`
	LeadsCollected int    `json:"leadsCollected"`
	MessagesSent   int    `json:"messagesSent"`
}

type DashboardStats struct {
	TodayLeads     int `json:"todayLeads"`
	YesterdayLeads int `json:"yesterdayLeads"`
	TotalLeads     int `json:"totalLeads"`
	TodayMessages  int `json:"todayMessages"`
	InstagramCount int `json:"instagramCount"`
	TwitterCount   int `json:"twitterCount"`
	FacebookCount  int `json:"facebookCount"`
	EmailCount     int `json:"emailCount"`
	PhoneCount     int `json:"phoneCount"`
	OtherCount     int `json:"otherCount"`
	ClientCount    int `json:"clientCount"`

	// Derived for the dashboard cards.
	TodayChangePct float64                  `json:"todayChangePct"`
	ConversionRate float64                  `json:"conversionRate"`
	PlatformShare  map[PlatformType]float64 `json:"platformShare"`
}

// PlatformCount returns the counter matching p.
func (s DashboardStats) PlatformCount(p PlatformType) int {
	switch p {
	case PlatformInstagram:
		return s.InstagramCount
	case PlatformTwitter:
		return s.TwitterCount
	case PlatformFacebook:
		return s.FacebookCount
	case PlatformEmail:
		return s.EmailCount
	case PlatformPhone:
		return s.PhoneCount
	default:
		return s.OtherCount
	}
}
