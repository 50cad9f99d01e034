package agent

// Name identifies a routable agent. The set is closed and versioned: the
// router prompt and the orchestrator's dispatch branches are both derived
// from it, and any identifier outside the set is rejected rather than
// silently ignored.
type Name string

const (
	// NameEmail handles sending, reading and summarizing email.
	NameEmail Name = "email_agent"
	// NameCalendar handles event creation and listing.
	NameCalendar Name = "calendar_agent"
	// NameResearcher handles web search and page scraping; it may also
	// answer in free text without invoking a tool.
	NameResearcher Name = "researcher_agent"
	// NameContacts handles address book lookups.
	NameContacts Name = "contacts_agent"
	// NameGoogleNews handles news fetching and summarization.
	NameGoogleNews Name = "google_news_agent"
	// NameNone means no specialized agent applies to the message.
	NameNone Name = "none"
)

// RoutableNames returns the specialized agent names the router may pick,
// excluding NameNone.
func RoutableNames() []Name {
	return []Name{NameEmail, NameCalendar, NameResearcher, NameContacts, NameGoogleNews}
}

// Names returns the full router output enum, including NameNone.
func Names() []Name {
	return append(RoutableNames(), NameNone)
}

// Known reports whether n is in the router output enum.
func (n Name) Known() bool {
	for _, name := range Names() {
		if n == name {
			return true
		}
	}
	return false
}
