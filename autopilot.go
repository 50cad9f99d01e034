// Package autopilot provides a high-level façade over the intent-routing and
// action-execution pipeline. Most applications interact with this package by:
//  1. Creating an Autopilot via New() with a gateway and the tool boundaries
//     they have credentials for
//  2. Calling Handle for each inbound user message
//
// The façade constructs one long-lived router, one specialized agent per
// routable name and one executor at wiring time; all are read-only afterwards
// and shared across concurrent turns. Defaults are safe for local development
// and testing (no-op logger, in-memory history store, self-contained web and
// news adapters); production deployments supply a durable history store, a
// structured logger and real calendar/mail/contacts adapters.
package autopilot

import (
	"context"
	"time"

	"github.com/autopilot-ai/autopilot/agent"
	"github.com/autopilot-ai/autopilot/assistant"
	"github.com/autopilot-ai/autopilot/executor"
	"github.com/autopilot-ai/autopilot/gateway"
	"github.com/autopilot-ai/autopilot/history"
	"github.com/autopilot-ai/autopilot/logging"
	"github.com/autopilot-ai/autopilot/tool"
	"github.com/autopilot-ai/autopilot/tool/googlenews"
	"github.com/autopilot-ai/autopilot/tool/webscrape"
)

// Options configure the Autopilot instance.
type Options struct {
	// Tool boundaries. Calendar, Mail and Contacts have no default: actions
	// that need an unset boundary report a configuration error inside their
	// result envelope. Searcher, Scraper and News default to the
	// self-contained adapters in tool/webscrape and tool/googlenews.
	Calendar tool.Calendar
	Mail     tool.Mail
	Contacts tool.Contacts
	Searcher tool.WebSearcher
	Scraper  tool.Scraper
	News     tool.News

	// HistoryStore persists analyzed turns (defaults to in-memory).
	HistoryStore history.Store

	// DisableHistory turns off the background analyze-and-store task.
	DisableHistory bool

	// RecordTimeout bounds each background recording task.
	RecordTimeout time.Duration

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger

	// Now supplies the clock; overridable for tests.
	Now func() time.Time
}

// Autopilot is the high-level façade aggregating the assistant pipeline.
type Autopilot struct {
	assistant *assistant.Assistant
	history   history.Store
}

// New wires the full pipeline around the given gateway.
func New(gw gateway.Gateway, optFns ...func(o *Options)) *Autopilot {
	opts := Options{
		HistoryStore:  history.NewInMemoryStore(),
		RecordTimeout: 30 * time.Second,
		Logger:        logging.NoOpLogger{},
		Now:           time.Now,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Searcher == nil || opts.Scraper == nil {
		web := webscrape.New()
		if opts.Searcher == nil {
			opts.Searcher = web
		}
		if opts.Scraper == nil {
			opts.Scraper = web
		}
	}
	if opts.News == nil {
		opts.News = googlenews.New()
	}

	agentLogger := func(o *agent.Options) { o.Logger = opts.Logger }

	agents := map[agent.Name]*agent.Agent{
		agent.NameCalendar:   agent.NewCalendarAgent(gw, agentLogger),
		agent.NameEmail:      agent.NewEmailAgent(gw, agentLogger),
		agent.NameContacts:   agent.NewContactsAgent(gw, agentLogger),
		agent.NameResearcher: agent.NewResearcherAgent(gw, agentLogger),
		agent.NameGoogleNews: agent.NewNewsAgent(gw, agentLogger),
	}

	exec := executor.New(func(o *executor.Options) {
		o.Calendar = opts.Calendar
		o.Mail = opts.Mail
		o.Contacts = opts.Contacts
		o.Searcher = opts.Searcher
		o.Scraper = opts.Scraper
		o.News = opts.News
		o.Summarizer = gw
		o.Logger = opts.Logger
		o.Now = opts.Now
	})

	var recorder assistant.Recorder
	if !opts.DisableHistory {
		recorder = history.NewRecorder(gw, opts.HistoryStore, func(o *history.RecorderOptions) {
			o.Logger = opts.Logger
			o.Now = opts.Now
		})
	}

	a := assistant.New(agent.NewRouter(gw, agentLogger), agents, exec, func(o *assistant.Options) {
		o.Logger = opts.Logger
		o.Recorder = recorder
		o.RecordTimeout = opts.RecordTimeout
		o.Now = opts.Now
	})

	return &Autopilot{assistant: a, history: opts.HistoryStore}
}

// Handle runs one assistant turn for userID.
func (p *Autopilot) Handle(ctx context.Context, message, userID string) (assistant.Reply, error) {
	return p.assistant.Handle(ctx, message, userID)
}

// History exposes the configured history store.
func (p *Autopilot) History() history.Store { return p.history }
