package triples

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"kgraph/pkg/ai"
	"kgraph/pkg/logger"
)

// Triple is a (subject, predicate, object) fact statement extracted from
// text. All three fields must be non-empty for the triple to be usable.
type Triple struct {
	Subject   string `json:"subject" jsonschema_description:"The entity the statement is about"`
	Predicate string `json:"predicate" jsonschema_description:"The relation connecting subject and object"`
	Object    string `json:"object" jsonschema_description:"The entity the subject relates to"`
}

// Complete reports whether all three fields are non-empty.
func (t Triple) Complete() bool {
	return t.Subject != "" && t.Predicate != "" && t.Object != ""
}

// TripleSet is an ordered sequence of triples as parsed from a model
// response. An empty set signals that extraction produced nothing usable.
type TripleSet []Triple

// reCodeFence matches a markdown code fence delimiter at the start or end
// of a line, with an optional json language tag on the opening fence.
var reCodeFence = regexp.MustCompile("(?m)^```(?:json)?|```$")

// BuildPrompt constructs the extraction instruction for the given document
// text. The expected output schema is derived from the Triple type itself.
func BuildPrompt(text string) string {
	schema, err := json.MarshalIndent(ai.GenerateSchema(&Triple{}), "", "  ")
	if err != nil {
		// The schema is derived from a static type; marshalling it cannot
		// fail at runtime, but fall back to the format example alone.
		schema = []byte("{}")
	}
	return fmt.Sprintf(ai.ExtractTriplesPrompt, schema, text)
}

// Extract asks the model for knowledge triples in the given text and parses
// its reply. A model transport error is returned as-is; a reply that cannot
// be parsed yields an empty TripleSet and no error. A single attempt is
// made per call.
func Extract(
	ctx context.Context,
	client ai.CompletionClient,
	text string,
	opts ...ai.GenerateOption,
) (TripleSet, error) {
	response, err := client.GenerateCompletion(ctx, BuildPrompt(text), opts...)
	if err != nil {
		return nil, fmt.Errorf("triple extraction request failed: %w", err)
	}
	return Parse(response), nil
}

// Parse turns a raw model reply into a TripleSet. The reply is trimmed,
// a surrounding markdown code fence is stripped, and the remainder is
// parsed as a JSON array of triples. Replies that cannot be parsed are
// logged and produce an empty set rather than an error.
func Parse(raw string) TripleSet {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimSpace(reCodeFence.ReplaceAllString(cleaned, ""))

	var set TripleSet
	if err := ai.UnmarshalFlexible(cleaned, &set); err != nil {
		logger.Error("Failed to parse triples from model response", "err", err, "response", raw)
		return TripleSet{}
	}
	if set == nil {
		set = TripleSet{}
	}
	return set
}
