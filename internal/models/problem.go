package models

// Problem is one math practice problem served to the client.
// Options is empty unless the problem is multiple-choice, in which
// case it carries exactly 4 entries.
type Problem struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Options  []string `json:"options"`
	Type     string   `json:"type"` // topic name
}

// ProblemMetadata describes how a problem was produced
type ProblemMetadata struct {
	ProcessingTime int    `json:"processing_time_ms,omitempty"`
	Attempts       int    `json:"attempts"`
	Source         string `json:"source"` // "generated" | "fallback"
	Provider       string `json:"provider,omitempty"`
	Model          string `json:"model,omitempty"`
}

// CompletionMetadata carries provider diagnostics for one completion
type CompletionMetadata struct {
	ProcessingTime int    `json:"processing_time_ms,omitempty"`
	Provider       string `json:"provider,omitempty"`
	Model          string `json:"model,omitempty"`
}

// CompletionResponse is the raw text returned by a provider call
type CompletionResponse struct {
	Text      string             `json:"text"`
	RequestID string             `json:"request_id,omitempty"`
	Metadata  CompletionMetadata `json:"metadata,omitempty"`
}

// ErrorResponse is the JSON body for every error status
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
