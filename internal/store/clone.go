package store

import "github.com/xavierca1/leadflow/internal/entity"

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneLead(l entity.Lead) entity.Lead {
	l.Tags = cloneStrings(l.Tags)
	if l.MessageDate != nil {
		d := *l.MessageDate
		l.MessageDate = &d
	}
	return l
}

func cloneClient(c entity.Client) entity.Client {
	c.Lead = cloneLead(c.Lead)
	c.Services = cloneStrings(c.Services)
	c.Quotes = append([]entity.Quote{}, c.Quotes...)
	c.Timeline = append([]entity.TimelineEvent{}, c.Timeline...)
	return c
}

func cloneSettings(st entity.Settings) entity.Settings {
	st.CustomTags = cloneStrings(st.CustomTags)
	st.Services = cloneStrings(st.Services)
	return st
}

func cloneState(st State) State {
	out := State{
		IsAuthenticated:    st.IsAuthenticated,
		Leads:              make([]entity.Lead, 0, len(st.Leads)),
		Clients:            make([]entity.Client, 0, len(st.Clients)),
		Quotes:             append([]entity.Quote{}, st.Quotes...),
		TimelineEvents:     append([]entity.TimelineEvent{}, st.TimelineEvents...),
		MessageProfiles:    append([]entity.MessageProfile{}, st.MessageProfiles...),
		Settings:           cloneSettings(st.Settings),
		LandingSubmissions: append([]entity.LandingSubmission{}, st.LandingSubmissions...),
		DailyAnalytics:     append([]entity.DailyAnalytics{}, st.DailyAnalytics...),
	}
	if st.User != nil {
		u := *st.User
		out.User = &u
	}
	for _, l := range st.Leads {
		out.Leads = append(out.Leads, cloneLead(l))
	}
	for _, c := range st.Clients {
		out.Clients = append(out.Clients, cloneClient(c))
	}
	return out
}
