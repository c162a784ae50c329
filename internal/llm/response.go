package llm

// Response is the result of one generation call. Providers return rich
// responses carrying a content field; test doubles and raw string providers
// return the bare value. Exactly these two variants exist, and both reduce to
// plain text through Text().
type Response interface {
	Text() string
}

// TextResponse wraps a provider response that exposes a content field.
type TextResponse struct {
	Content string
}

// Text returns the response content.
func (r TextResponse) Text() string { return r.Content }

// RawResponse wraps a provider response that is already a plain string.
type RawResponse struct {
	Value string
}

// Text returns the raw string value.
func (r RawResponse) Text() string { return r.Value }
