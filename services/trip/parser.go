package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"orbit/models"
)

// ParseError marks a model reply that could not be turned into a valid
// ParsedIntent. It aborts the request; no repair attempt is made.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "intent parse error: " + e.Reason
}

const intentPromptTemplate = `You are a helpful assistant that answers in JSON. Here is the JSON schema you must adhere to:
<schema>
{
  "type": "object",
  "properties": {
    "origin": {"type": "string"},
    "destination": {"type": "string"},
    "travel_month": {"type": "integer", "minimum": 1, "maximum": 12}
  },
  "required": ["origin", "destination", "travel_month"]
}
</schema>
Output ONLY the JSON object, nothing else. It must start with an opening curly brace and end with a closing curly brace.
If the origin is not specified by the user, assume it is Phoenix by default.
Autocorrect obvious typos in place names (for example "mombai" means "mumbai").
If the destination has no airport, use the nearest city with one.

User request: %s`

// parseIntent sends the free-text request to the language model with a fixed
// schema instruction and validates the structured reply.
func (s *DefaultTripService) parseIntent(ctx context.Context, query string) (models.ParsedIntent, error) {
	reply, err := s.AI.GenerateContent(ctx, fmt.Sprintf(intentPromptTemplate, query))
	if err != nil {
		return models.ParsedIntent{}, fmt.Errorf("intent extraction: %w", err)
	}

	var intent models.ParsedIntent
	if err := json.Unmarshal([]byte(stripCodeFences(reply)), &intent); err != nil {
		return models.ParsedIntent{}, &ParseError{Reason: "model reply is not valid JSON: " + err.Error()}
	}
	if intent.Origin == "" {
		return models.ParsedIntent{}, &ParseError{Reason: "missing origin"}
	}
	if intent.Destination == "" {
		return models.ParsedIntent{}, &ParseError{Reason: "missing destination"}
	}
	if intent.TravelMonth < 1 || intent.TravelMonth > 12 {
		return models.ParsedIntent{}, &ParseError{Reason: fmt.Sprintf("travel_month %d out of range", intent.TravelMonth)}
	}
	return intent, nil
}

// stripCodeFences removes the markdown fences Gemini tends to wrap JSON in.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
