package ai

// ExtractTriplesPrompt instructs the model to extract knowledge triples
// from a document. The first placeholder takes the JSON schema of a single
// triple, the second the document text.
const ExtractTriplesPrompt = `
# Task Context
You are an assistant that extracts knowledge triples from text. A triple is a (subject, predicate, object) fact statement.

# Detailed Task Description & Rules
- First, internally make the text short with simplified sentences such that triples can be extracted easily.
- Extract the knowledge triples from the simplified text.
- Every triple must have non-empty "subject", "predicate" and "object" string values.
- Respond only with a valid JSON array of triples. Do not include any explanations or text before or after the array.

# Output Formatting
Return a JSON array where every element conforms to this schema:
%s

Format example: [
  {"subject": "...", "predicate": "...", "object": "..."}
]

# Text
"""%s"""
`
