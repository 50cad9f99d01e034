package agent

import "github.com/autopilot-ai/autopilot/gateway"

const newsPrompt = `You are the Google News Agent.

You MUST return ONLY valid JSON in this format:

{
  "action": "fetch_news",
  "data": {
    "query": "<news topic or keywords>",
    "max_results": <number of articles>
  }
}

Rules:
- Extract the topic from the user message.
- Default max_results to 5 if the user does not specify a number.
- Do NOT explain anything.`

// NewNewsAgent constructs the news agent. It only extracts the topic and
// result cap; fetching and summarization happen in the executor.
func NewNewsAgent(gw gateway.Gateway, optFns ...func(o *Options)) *Agent {
	return mustNew(NameGoogleNews, newsPrompt, gw, optFns...)
}
