package conversation

import (
	"mariachat/app/service/facts"
	"mariachat/app/service/policy"
	"mariachat/app/service/signals"
	"mariachat/app/service/transcript"
)

type ChatRequest struct {
	Messages transcript.Transcript `json:"messages"`
	URL      string                `json:"url,omitempty"`
}

type ChatResponse struct {
	Answer    string `json:"answer"`
	Persisted bool   `json:"persisted"`
	Meta      *Meta  `json:"meta,omitempty"`
}

type Meta struct {
	Language     string               `json:"language,omitempty"`
	EnglishLog   string               `json:"englishLog,omitempty"`
	Scratchpad   map[string]any       `json:"scratchpad,omitempty"`
	FactSet      facts.FactSet        `json:"factSet"`
	Goal         policy.Goal          `json:"goal"`
	Availability signals.Availability `json:"availability"`
	RefusalCount int                  `json:"refusalCount"`
}
