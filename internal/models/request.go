package models

import (
	"net/url"
	"strings"

	"github.com/rekhamallam/LCPSMathLearningApp/internal/curriculum"
)

type ProblemRequest struct {
	Grade     string
	Topic     string
	Nonce     string // cache-busting token from the client, accepted but unused
	RequestID string
}

// populates the request from URL query parameters
func (r *ProblemRequest) Bind(values url.Values) {
	r.Grade = strings.TrimSpace(values.Get("grade"))
	r.Topic = strings.ToLower(strings.TrimSpace(values.Get("topic")))
	r.Nonce = values.Get("nonce")
}

// checks the grade/topic pair against the curriculum map
func (r *ProblemRequest) Validate() *ErrorResponse {
	if r.Grade == "" || r.Topic == "" {
		return &ErrorResponse{
			Error:   "Grade and topic are required",
			Message: "Provide both grade and topic query parameters",
		}
	}

	if !curriculum.IsValidTopic(r.Grade, r.Topic) {
		return &ErrorResponse{
			Error:   "Invalid grade or topic",
			Message: "Topic " + r.Topic + " is not in the grade " + r.Grade + " curriculum",
		}
	}

	return nil
}
