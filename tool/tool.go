// Package tool declares the boundaries to the external services the executor
// dispatches to (calendar, mail, contacts, web search/scrape, news). The
// executor depends only on these interfaces; concrete Google-backed adapters
// are wired by the application, while the self-contained web and news
// adapters live in subpackages.
//
// Implementations should return errors for failed calls; the executor embeds
// those errors into the action's result envelope rather than propagating
// them, so a boundary error never aborts a turn.
package tool

import (
	"context"
	"fmt"
)

// EventDetails is the calendar boundary's event creation receipt.
type EventDetails struct {
	Message  string `json:"message,omitempty"`
	EventID  string `json:"event_id,omitempty"`
	HTMLLink string `json:"html_link,omitempty"`
}

// Event is a calendar event as returned by the provider. Providers disagree
// on event shape, so the boundary stays schemaless.
type Event map[string]any

// Calendar is the boundary to the user's calendar service.
type Calendar interface {
	// CreateEvent creates one event starting at startTime (ISO 8601 with
	// explicit offset) on the calendar belonging to userID.
	CreateEvent(ctx context.Context, title, description, startTime, userID string) (*EventDetails, error)

	// ListEvents fetches events between startDate and endDate.
	ListEvents(ctx context.Context, startDate, endDate, userID string) ([]Event, error)
}

// SendReceipt is the mail boundary's per-message send acknowledgement.
type SendReceipt struct {
	Status    string `json:"status,omitempty"`
	MessageID string `json:"message_id,omitempty"`
}

// EmailMessage is a fetched inbox message.
type EmailMessage struct {
	ID      string `json:"id"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Date    string `json:"date"`
	Snippet string `json:"snippet"`
}

// MailQuery bounds an inbox fetch. Email optionally filters by sender.
type MailQuery struct {
	FromDate string
	ToDate   string
	Email    string
}

// Mail is the boundary to the user's mailbox.
type Mail interface {
	// Send delivers one message to a single recipient.
	Send(ctx context.Context, to, subject, body, userID string) (*SendReceipt, error)

	// Read fetches messages matching the query.
	Read(ctx context.Context, q MailQuery, userID string) ([]EmailMessage, error)
}

// Contact is a single address book entry.
type Contact struct {
	Name         string   `json:"name"`
	PhoneNumbers []string `json:"phone_numbers"`
	Emails       []string `json:"emails"`
}

// ContactResult carries either matches or a no-match message.
type ContactResult struct {
	Contacts []Contact `json:"contacts,omitempty"`
	Message  string    `json:"message,omitempty"`
}

// Contacts is the boundary to the user's address book.
type Contacts interface {
	FindByName(ctx context.Context, name string) (*ContactResult, error)
}

// WebSearcher performs a web search and returns readable text.
type WebSearcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// Scraper fetches a page and converts it to readable text.
type Scraper interface {
	Scrape(ctx context.Context, url string) (string, error)
}

// Article is a fetched news item.
type Article struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet,omitempty"`
	Date    string `json:"date,omitempty"`
}

// News is the boundary to a news feed.
type News interface {
	Fetch(ctx context.Context, query string, maxResults int) ([]Article, error)
}

// Error categorizes a boundary failure for uniform downstream handling.
type Error struct {
	Tool    string `json:"tool"`              // Name of the boundary that failed
	Message string `json:"message"`           // Error message
	Code    string `json:"code"`              // Error code for categorization
	Details any    `json:"details,omitempty"` // Additional error details
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// NewError creates an Error with the specified details.
func NewError(tool, message, code string) *Error {
	return &Error{Tool: tool, Message: message, Code: code}
}
