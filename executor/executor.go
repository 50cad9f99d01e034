package executor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/autopilot-ai/autopilot/action"
	"github.com/autopilot-ai/autopilot/gateway"
	"github.com/autopilot-ai/autopilot/logging"
	"github.com/autopilot-ai/autopilot/tool"
)

const emailSummaryPrompt = `You are an email summarization assistant.
Your task is to summarize emails clearly and concisely.

Rules:
- Return ONLY one short sentence
- Do NOT add explanations
- Do NOT use markdown
- Do NOT return JSON`

const newsSummaryPrompt = `You are a news summarization assistant.
Summarize the given articles into concise bullet points.
Return plain text only. No markdown headers, no JSON.`

// Options configure an Executor. Unset tool boundaries are tolerated: actions
// that need them report a configuration error inside the result envelope
// instead of failing the turn.
type Options struct {
	Calendar tool.Calendar
	Mail     tool.Mail
	Contacts tool.Contacts
	Searcher tool.WebSearcher
	Scraper  tool.Scraper
	News     tool.News

	// Summarizer drives the LLM summarization steps of summarize_emails and
	// fetch_news.
	Summarizer gateway.Gateway

	Logger logging.Logger

	// Now supplies the clock; overridable for tests.
	Now func() time.Time
}

// Executor dispatches validated action descriptors to the external tool
// boundaries. It holds no mutable state and is safe for concurrent use.
type Executor struct {
	opts Options
}

// New constructs an Executor.
func New(optFns ...func(o *Options)) *Executor {
	opts := Options{
		Logger: logging.NoOpLogger{},
		Now:    time.Now,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Executor{opts: opts}
}

// Execute decodes raw agent text leniently and dispatches the resulting
// descriptor. Undecodable input is reported in the envelope, never raised.
func (e *Executor) Execute(ctx context.Context, raw, userID string) (Envelope, error) {
	desc, err := action.Decode(raw)
	if err != nil {
		e.opts.Logger.Warn("executor.decode.failed", "error", err.Error())
		return errorEnvelope("Invalid JSON from agent", "raw", raw), nil
	}
	return e.ExecuteDescriptor(ctx, desc, userID)
}

// ExecuteDescriptor dispatches an already-decoded descriptor. The returned
// error is non-nil only for fatal domain failures (unparseable date/time
// literals, LLM gateway transport errors); everything else is reported inside
// the envelope.
func (e *Executor) ExecuteDescriptor(ctx context.Context, desc *action.Descriptor, userID string) (Envelope, error) {
	if desc.Action == "" {
		return errorEnvelope("No action provided by agent", "raw", desc), nil
	}

	e.opts.Logger.Debug("executor.dispatch", "action", desc.Action, "user_id", userID)

	switch desc.Kind() {
	case action.KindCreateSchedule:
		return e.createSchedule(ctx, desc, userID)
	case action.KindListEvents:
		return e.listEvents(ctx, desc, userID)
	case action.KindSendEmail:
		return e.sendEmail(ctx, desc, userID)
	case action.KindReadEmails:
		return e.readEmails(ctx, desc, userID)
	case action.KindSummarizeEmails:
		return e.summarizeEmails(ctx, desc, userID)
	case action.KindSearchWeb:
		return e.searchWeb(ctx, desc)
	case action.KindScrapeWebsite:
		return e.scrapeWebsite(ctx, desc)
	case action.KindFindContactEmail:
		return e.findContact(ctx, desc)
	case action.KindFetchNews:
		return e.fetchNews(ctx, desc)
	default:
		return errorEnvelope("Unknown action", "action", desc.Action), nil
	}
}

func (e *Executor) createSchedule(ctx context.Context, desc *action.Descriptor, userID string) (Envelope, error) {
	p, err := desc.CreateSchedule()
	if err != nil {
		return errorEnvelope("Invalid action payload", "action", desc.Action), nil
	}

	startISO, err := ResolveDateTime(p.Date, p.Time, e.opts.Now())
	if err != nil {
		return nil, err
	}

	var details any
	if e.opts.Calendar == nil {
		details = toolError(tool.NewError("calendar", "calendar tool not configured", "NOT_CONFIGURED"))
	} else if created, err := e.opts.Calendar.CreateEvent(ctx, p.Title, p.Description, startISO, userID); err != nil {
		e.opts.Logger.Warn("executor.calendar.create.failed", "error", err.Error())
		details = toolError(err)
	} else {
		details = created
	}

	return statusEnvelope("event_created", "details", details), nil
}

func (e *Executor) listEvents(ctx context.Context, desc *action.Descriptor, userID string) (Envelope, error) {
	p, err := desc.ListEvents()
	if err != nil {
		return errorEnvelope("Invalid action payload", "action", desc.Action), nil
	}

	var events any
	if e.opts.Calendar == nil {
		events = toolError(tool.NewError("calendar", "calendar tool not configured", "NOT_CONFIGURED"))
	} else if fetched, err := e.opts.Calendar.ListEvents(ctx, p.StartDate, p.EndDate, userID); err != nil {
		e.opts.Logger.Warn("executor.calendar.list.failed", "error", err.Error())
		events = toolError(err)
	} else {
		events = fetched
	}

	return statusEnvelope("events_fetched", "events", events), nil
}

func (e *Executor) sendEmail(ctx context.Context, desc *action.Descriptor, userID string) (Envelope, error) {
	p, err := desc.SendEmail()
	if err != nil {
		return errorEnvelope("Invalid action payload", "action", desc.Action), nil
	}

	// One independent send per recipient, sequential, results in input
	// order. A failed recipient never aborts the batch.
	results := make([]Envelope, 0, len(p.To))
	for _, recipient := range p.To {
		var result any
		if e.opts.Mail == nil {
			result = toolError(tool.NewError("mail", "mail tool not configured", "NOT_CONFIGURED"))
		} else if receipt, err := e.opts.Mail.Send(ctx, recipient, p.Subject, p.Body, userID); err != nil {
			e.opts.Logger.Warn("executor.mail.send.failed", "to", recipient, "error", err.Error())
			result = toolError(err)
		} else {
			result = receipt
		}
		results = append(results, Envelope{"to": recipient, "result": result})
	}

	return statusEnvelope("emails_sent", "results", results), nil
}

func (e *Executor) readEmails(ctx context.Context, desc *action.Descriptor, userID string) (Envelope, error) {
	p, err := desc.ReadEmails()
	if err != nil {
		return errorEnvelope("Invalid action payload", "action", desc.Action), nil
	}

	var emails any
	if e.opts.Mail == nil {
		emails = toolError(tool.NewError("mail", "mail tool not configured", "NOT_CONFIGURED"))
	} else if fetched, err := e.opts.Mail.Read(ctx, tool.MailQuery{FromDate: p.FromDate, ToDate: p.ToDate, Email: p.Email}, userID); err != nil {
		e.opts.Logger.Warn("executor.mail.read.failed", "error", err.Error())
		emails = toolError(err)
	} else {
		emails = fetched
	}

	return statusEnvelope("emails_fetched", "emails", emails), nil
}

func (e *Executor) summarizeEmails(ctx context.Context, desc *action.Descriptor, userID string) (Envelope, error) {
	p, err := desc.SummarizeEmails()
	if err != nil {
		return errorEnvelope("Invalid action payload", "action", desc.Action), nil
	}

	if e.opts.Mail == nil {
		result := toolError(tool.NewError("mail", "mail tool not configured", "NOT_CONFIGURED"))
		return statusEnvelope("emails_summary", "result", result), nil
	}
	if e.opts.Summarizer == nil {
		result := toolError(tool.NewError("summarizer", "summarizer gateway not configured", "NOT_CONFIGURED"))
		return statusEnvelope("emails_summary", "result", result), nil
	}

	// Trailing 24-hour window ending now.
	now := e.opts.Now()
	q := tool.MailQuery{
		FromDate: now.Add(-24 * time.Hour).Format(time.RFC3339),
		ToDate:   now.Format(time.RFC3339),
	}

	fetched, err := e.opts.Mail.Read(ctx, q, userID)
	if err != nil {
		e.opts.Logger.Warn("executor.mail.read.failed", "error", err.Error())
		return statusEnvelope("emails_summary", "result", toolError(err)), nil
	}

	// Count truncates the raw list before summarization; an undersupplied
	// inbox yields fewer entries, never an error.
	selected := fetched
	if len(selected) > p.Count {
		selected = selected[:p.Count]
	}

	summaries := make([]Envelope, 0, len(selected))
	for _, mail := range selected {
		summary, err := e.summarizeOne(ctx, mail)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, Envelope{
			"from":    mail.From,
			"subject": mail.Subject,
			"summary": summary,
			"date":    mail.Date,
		})
	}

	result := Envelope{
		"total_emails": len(fetched),
		"returned":     len(summaries),
		"emails":       summaries,
	}
	return statusEnvelope("emails_summary", "result", result), nil
}

func (e *Executor) summarizeOne(ctx context.Context, mail tool.EmailMessage) (string, error) {
	userPrompt := fmt.Sprintf("From: %s\nSubject: %s\nEmail Content: %s", mail.From, mail.Subject, mail.Snippet)

	completion, err := e.opts.Summarizer.Complete(ctx, emailSummaryPrompt, userPrompt)
	if err != nil {
		return "", fmt.Errorf("email summarization failed: %w", err)
	}
	text, err := completion.Text()
	if err != nil {
		return "", fmt.Errorf("email summarization failed: %w", err)
	}
	return strings.ReplaceAll(strings.TrimSpace(text), "\n", " "), nil
}

func (e *Executor) searchWeb(ctx context.Context, desc *action.Descriptor) (Envelope, error) {
	p, err := desc.SearchWeb()
	if err != nil {
		return errorEnvelope("Invalid action payload", "action", desc.Action), nil
	}

	var results any
	if e.opts.Searcher == nil {
		results = toolError(tool.NewError("web_search", "web search tool not configured", "NOT_CONFIGURED"))
	} else if text, err := e.opts.Searcher.Search(ctx, p.Query); err != nil {
		e.opts.Logger.Warn("executor.search.failed", "query", p.Query, "error", err.Error())
		results = toolError(err)
	} else {
		results = text
	}

	return statusEnvelope("web_search", "query", p.Query, "results", results), nil
}

func (e *Executor) scrapeWebsite(ctx context.Context, desc *action.Descriptor) (Envelope, error) {
	p, err := desc.ScrapeWebsite()
	if err != nil {
		return errorEnvelope("Invalid action payload", "action", desc.Action), nil
	}

	var content any
	if e.opts.Scraper == nil {
		content = toolError(tool.NewError("scraper", "scraper tool not configured", "NOT_CONFIGURED"))
	} else if text, err := e.opts.Scraper.Scrape(ctx, p.URL); err != nil {
		e.opts.Logger.Warn("executor.scrape.failed", "url", p.URL, "error", err.Error())
		content = toolError(err)
	} else {
		content = text
	}

	return statusEnvelope("website_scraped", "url", p.URL, "content", content), nil
}

func (e *Executor) findContact(ctx context.Context, desc *action.Descriptor) (Envelope, error) {
	p, err := desc.FindContact()
	if err != nil {
		return errorEnvelope("Invalid action payload", "action", desc.Action), nil
	}

	var result any
	if e.opts.Contacts == nil {
		result = toolError(tool.NewError("contacts", "contacts tool not configured", "NOT_CONFIGURED"))
	} else if found, err := e.opts.Contacts.FindByName(ctx, p.Name); err != nil {
		e.opts.Logger.Warn("executor.contacts.failed", "name", p.Name, "error", err.Error())
		result = toolError(err)
	} else {
		result = found
	}

	return statusEnvelope("success", "action", desc.Action, "result", result), nil
}

func (e *Executor) fetchNews(ctx context.Context, desc *action.Descriptor) (Envelope, error) {
	p, err := desc.FetchNews()
	if err != nil {
		return errorEnvelope("Invalid action payload", "action", desc.Action), nil
	}

	if e.opts.News == nil {
		return statusEnvelope("error", "message", "news tool not configured"), nil
	}
	if e.opts.Summarizer == nil {
		return statusEnvelope("error", "message", "summarizer gateway not configured"), nil
	}

	articles, err := e.opts.News.Fetch(ctx, p.Query, p.MaxResults)
	if err != nil {
		e.opts.Logger.Warn("executor.news.fetch.failed", "query", p.Query, "error", err.Error())
		return statusEnvelope("error", "message", err.Error()), nil
	}
	if len(articles) == 0 {
		return statusEnvelope("error", "message", "No news found"), nil
	}

	var combined strings.Builder
	for _, a := range articles {
		combined.WriteString(a.Title)
		if a.Snippet != "" {
			combined.WriteString(": ")
			combined.WriteString(a.Snippet)
		}
		combined.WriteString("\n")
	}

	completion, err := e.opts.Summarizer.Complete(ctx, newsSummaryPrompt, combined.String())
	if err != nil {
		return nil, fmt.Errorf("news summarization failed: %w", err)
	}
	summary, err := completion.Text()
	if err != nil {
		return nil, fmt.Errorf("news summarization failed: %w", err)
	}

	return statusEnvelope("success",
		"query", p.Query,
		"summary", strings.TrimSpace(summary),
		"articles", articles,
	), nil
}

// toolError normalizes a boundary failure for embedding into an envelope.
func toolError(err error) Envelope {
	if terr, ok := err.(*tool.Error); ok {
		return Envelope{"error": terr.Message, "tool": terr.Tool, "code": terr.Code}
	}
	return Envelope{"error": err.Error()}
}
