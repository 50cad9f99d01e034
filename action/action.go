package action

import (
	"encoding/json"
	"fmt"

	"github.com/autopilot-ai/autopilot/internal/jsonx"
)

// Kind is the tag identifying which external tool an action descriptor targets.
type Kind string

// The closed set of action tags agents are instructed to emit.
const (
	KindCreateSchedule   Kind = "create_schedule"
	KindListEvents       Kind = "list_events"
	KindSendEmail        Kind = "send_email"
	KindReadEmails       Kind = "read_emails"
	KindSummarizeEmails  Kind = "summarize_emails"
	KindSearchWeb        Kind = "search_web"
	KindScrapeWebsite    Kind = "scrape_website"
	KindFindContactEmail Kind = "find_contact_email"
	KindFetchNews        Kind = "fetch_news"
)

// Kinds returns all recognized action tags.
func Kinds() []Kind {
	return []Kind{
		KindCreateSchedule,
		KindListEvents,
		KindSendEmail,
		KindReadEmails,
		KindSummarizeEmails,
		KindSearchWeb,
		KindScrapeWebsite,
		KindFindContactEmail,
		KindFetchNews,
	}
}

// Known reports whether k is a recognized action tag.
func (k Kind) Known() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Descriptor is the raw {action, data} contract object emitted by a
// specialized agent. The payload mapping is accepted under either the "data"
// or the legacy "parameters" key.
type Descriptor struct {
	Action     string          `json:"action,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	Parameters json.RawMessage `json:"parameters,omitempty"`
}

// Kind returns the descriptor's action tag.
func (d *Descriptor) Kind() Kind { return Kind(d.Action) }

// Payload returns the action payload: data if present, else parameters, else
// an empty JSON object. First-present wins.
func (d *Descriptor) Payload() json.RawMessage {
	if isPresent(d.Data) {
		return d.Data
	}
	if isPresent(d.Parameters) {
		return d.Parameters
	}
	return json.RawMessage(`{}`)
}

func isPresent(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// Decode parses raw agent text into a Descriptor using the lenient decode
// policy (plain JSON, stripped quoting, repaired JSON). It fails only when no
// strategy yields a JSON document.
func Decode(raw string) (*Descriptor, error) {
	var d Descriptor
	if err := jsonx.DecodeLenient(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// decodePayload unmarshals the descriptor payload into v, retrying leniently:
// payloads inherit the same untrusted provenance as the descriptor itself.
func (d *Descriptor) decodePayload(v any) error {
	if err := json.Unmarshal(d.Payload(), v); err != nil {
		if lerr := jsonx.DecodeLenient(string(d.Payload()), v); lerr != nil {
			return fmt.Errorf("action %q: payload decode failed: %w", d.Action, err)
		}
	}
	return nil
}

// StringList accepts either a JSON string or a JSON array of strings,
// normalizing to a list. Agents are told to emit lists but routinely emit a
// bare string for a single recipient.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = StringList{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("action: value is neither string nor string list: %w", err)
	}
	*s = StringList(many)
	return nil
}

// CreateSchedulePayload carries the slots for a calendar event creation.
type CreateSchedulePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// CreateSchedule decodes the payload for KindCreateSchedule, applying the
// documented slot defaults.
func (d *Descriptor) CreateSchedule() (*CreateSchedulePayload, error) {
	p := &CreateSchedulePayload{}
	if err := d.decodePayload(p); err != nil {
		return nil, err
	}
	if p.Title == "" {
		p.Title = "Untitled Event"
	}
	if p.Date == "" {
		p.Date = "today"
	}
	if p.Time == "" {
		p.Time = "9:00 AM"
	}
	return p, nil
}

// ListEventsPayload carries a calendar query range.
type ListEventsPayload struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ListEvents decodes the payload for KindListEvents.
func (d *Descriptor) ListEvents() (*ListEventsPayload, error) {
	p := &ListEventsPayload{}
	if err := d.decodePayload(p); err != nil {
		return nil, err
	}
	return p, nil
}

// SendEmailPayload carries the slots for an outbound email batch.
type SendEmailPayload struct {
	To      StringList `json:"to"`
	Subject string     `json:"subject"`
	Body    string     `json:"body"`
}

// SendEmail decodes the payload for KindSendEmail. A bare string recipient is
// normalized to a one-element list; a missing subject defaults to "No Subject".
func (d *Descriptor) SendEmail() (*SendEmailPayload, error) {
	p := &SendEmailPayload{}
	if err := d.decodePayload(p); err != nil {
		return nil, err
	}
	if p.Subject == "" {
		p.Subject = "No Subject"
	}
	return p, nil
}

// ReadEmailsPayload carries an inbox query range with an optional sender filter.
type ReadEmailsPayload struct {
	FromDate string `json:"from_date"`
	ToDate   string `json:"to_date"`
	Email    string `json:"email"`
}

// ReadEmails decodes the payload for KindReadEmails.
func (d *Descriptor) ReadEmails() (*ReadEmailsPayload, error) {
	p := &ReadEmailsPayload{}
	if err := d.decodePayload(p); err != nil {
		return nil, err
	}
	return p, nil
}

// SummarizeEmailsPayload carries the number of recent emails to summarize.
type SummarizeEmailsPayload struct {
	Count int `json:"count"`
}

// SummarizeEmails decodes the payload for KindSummarizeEmails. A missing or
// non-positive count defaults to 5.
func (d *Descriptor) SummarizeEmails() (*SummarizeEmailsPayload, error) {
	p := &SummarizeEmailsPayload{}
	if err := d.decodePayload(p); err != nil {
		return nil, err
	}
	if p.Count <= 0 {
		p.Count = 5
	}
	return p, nil
}

// SearchWebPayload carries a web search query.
type SearchWebPayload struct {
	Query string `json:"query"`
}

// SearchWeb decodes the payload for KindSearchWeb.
func (d *Descriptor) SearchWeb() (*SearchWebPayload, error) {
	p := &SearchWebPayload{}
	if err := d.decodePayload(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ScrapeWebsitePayload carries the URL of a page to convert to readable text.
type ScrapeWebsitePayload struct {
	URL string `json:"url"`
}

// ScrapeWebsite decodes the payload for KindScrapeWebsite.
func (d *Descriptor) ScrapeWebsite() (*ScrapeWebsitePayload, error) {
	p := &ScrapeWebsitePayload{}
	if err := d.decodePayload(p); err != nil {
		return nil, err
	}
	return p, nil
}

// FindContactPayload carries the name of the contact to look up.
type FindContactPayload struct {
	Name string `json:"name"`
}

// FindContact decodes the payload for KindFindContactEmail.
func (d *Descriptor) FindContact() (*FindContactPayload, error) {
	p := &FindContactPayload{}
	if err := d.decodePayload(p); err != nil {
		return nil, err
	}
	return p, nil
}

// FetchNewsPayload carries a news topic query with an optional result cap.
type FetchNewsPayload struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// FetchNews decodes the payload for KindFetchNews. A missing or non-positive
// max_results defaults to 5.
func (d *Descriptor) FetchNews() (*FetchNewsPayload, error) {
	p := &FetchNewsPayload{}
	if err := d.decodePayload(p); err != nil {
		return nil, err
	}
	if p.MaxResults <= 0 {
		p.MaxResults = 5
	}
	return p, nil
}
