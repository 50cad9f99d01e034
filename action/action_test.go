package action

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_PlainDescriptor(t *testing.T) {
	desc, err := Decode(`{"action": "search_web", "data": {"query": "golang"}}`)
	require.NoError(t, err)
	assert.Equal(t, KindSearchWeb, desc.Kind())

	p, err := desc.SearchWeb()
	require.NoError(t, err)
	assert.Equal(t, "golang", p.Query)
}

func TestDecode_QuotedThenDecodedAreEquivalent(t *testing.T) {
	inner := `{"action": "scrape_website", "data": {"url": "https://example.com"}}`
	quoted, err := json.Marshal(inner) // one extra layer of string quoting
	require.NoError(t, err)

	direct, err := Decode(inner)
	require.NoError(t, err)
	wrapped, err := Decode(string(quoted))
	require.NoError(t, err)

	assert.Equal(t, direct.Action, wrapped.Action)

	dp, err := direct.ScrapeWebsite()
	require.NoError(t, err)
	wp, err := wrapped.ScrapeWebsite()
	require.NoError(t, err)
	assert.Equal(t, dp.URL, wp.URL)
}

func TestDecode_MarkdownFencedDescriptor(t *testing.T) {
	desc, err := Decode("```json\n{\"action\": \"fetch_news\", \"data\": {\"query\": \"AI\"}}\n```")
	require.NoError(t, err)
	assert.Equal(t, KindFetchNews, desc.Kind())
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode("certainly! here is your answer")
	assert.Error(t, err)
}

func TestPayload_DataWinsOverParameters(t *testing.T) {
	desc := &Descriptor{
		Action:     "search_web",
		Data:       json.RawMessage(`{"query": "from data"}`),
		Parameters: json.RawMessage(`{"query": "from parameters"}`),
	}
	p, err := desc.SearchWeb()
	require.NoError(t, err)
	assert.Equal(t, "from data", p.Query)
}

func TestPayload_ParametersFallback(t *testing.T) {
	desc, err := Decode(`{"action": "search_web", "parameters": {"query": "legacy"}}`)
	require.NoError(t, err)
	p, err := desc.SearchWeb()
	require.NoError(t, err)
	assert.Equal(t, "legacy", p.Query)
}

func TestPayload_MissingIsEmptyObject(t *testing.T) {
	desc := &Descriptor{Action: "summarize_emails"}
	assert.Equal(t, `{}`, string(desc.Payload()))

	p, err := desc.SummarizeEmails()
	require.NoError(t, err)
	assert.Equal(t, 5, p.Count)
}

func TestStringList_AcceptsBareString(t *testing.T) {
	var s StringList
	require.NoError(t, json.Unmarshal([]byte(`"alice@example.com"`), &s))
	assert.Equal(t, StringList{"alice@example.com"}, s)
}

func TestStringList_AcceptsArray(t *testing.T) {
	var s StringList
	require.NoError(t, json.Unmarshal([]byte(`["a@x.com", "b@x.com"]`), &s))
	assert.Equal(t, StringList{"a@x.com", "b@x.com"}, s)
}

func TestStringList_RejectsNumber(t *testing.T) {
	var s StringList
	assert.Error(t, json.Unmarshal([]byte(`42`), &s))
}

func TestCreateSchedule_Defaults(t *testing.T) {
	desc, err := Decode(`{"action": "create_schedule", "data": {}}`)
	require.NoError(t, err)

	p, err := desc.CreateSchedule()
	require.NoError(t, err)
	assert.Equal(t, "Untitled Event", p.Title)
	assert.Equal(t, "today", p.Date)
	assert.Equal(t, "9:00 AM", p.Time)
}

func TestCreateSchedule_ExplicitSlots(t *testing.T) {
	desc, err := Decode(`{"action": "create_schedule", "data": {"title": "Standup", "date": "2025-01-15", "time": "9:30 AM", "description": "daily"}}`)
	require.NoError(t, err)

	p, err := desc.CreateSchedule()
	require.NoError(t, err)
	assert.Equal(t, "Standup", p.Title)
	assert.Equal(t, "2025-01-15", p.Date)
	assert.Equal(t, "9:30 AM", p.Time)
	assert.Equal(t, "daily", p.Description)
}

func TestSendEmail_SubjectDefault(t *testing.T) {
	desc, err := Decode(`{"action": "send_email", "data": {"to": "a@x.com", "body": "hi"}}`)
	require.NoError(t, err)

	p, err := desc.SendEmail()
	require.NoError(t, err)
	assert.Equal(t, "No Subject", p.Subject)
	assert.Equal(t, StringList{"a@x.com"}, p.To)
}

func TestSummarizeEmails_NonPositiveCountDefaults(t *testing.T) {
	desc, err := Decode(`{"action": "summarize_emails", "data": {"count": -3}}`)
	require.NoError(t, err)

	p, err := desc.SummarizeEmails()
	require.NoError(t, err)
	assert.Equal(t, 5, p.Count)
}

func TestFetchNews_Defaults(t *testing.T) {
	desc, err := Decode(`{"action": "fetch_news", "data": {"query": "AI"}}`)
	require.NoError(t, err)

	p, err := desc.FetchNews()
	require.NoError(t, err)
	assert.Equal(t, "AI", p.Query)
	assert.Equal(t, 5, p.MaxResults)
}

func TestKind_Known(t *testing.T) {
	for _, k := range Kinds() {
		assert.True(t, k.Known(), string(k))
	}
	assert.False(t, Kind("search_linkedin").Known())
	assert.False(t, Kind("").Known())
}
