package domain

// Candidate is one raw extraction candidate as produced by the backend.
// Producers disagree on key names, so values are read through an ordered
// synonym fallback rather than a fixed struct shape.
type Candidate map[string]any

// Synonym key orderings for candidate fields. First non-empty match wins.
var (
	labelKeys = []string{"extraction_class", "class", "label", "name"}
	textKeys  = []string{"extraction_text", "text", "value", "content"}
)

// Label resolves the candidate's field label, or "" if none is present.
func (c Candidate) Label() string {
	return c.firstString(labelKeys)
}

// Text resolves the candidate's field value, or "" if none is present.
func (c Candidate) Text() string {
	return c.firstString(textKeys)
}

// firstString returns the first non-empty string value among keys.
// Non-string values are skipped, not coerced.
func (c Candidate) firstString(keys []string) string {
	for _, key := range keys {
		if v, ok := c[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
