package appraisal

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type Status string

const (
	StatusCompleted  Status = "completed"
	StatusProcessing Status = "processing"
	StatusPending    Status = "pending"
)

// Label capitalises the first letter; unknown statuses are labelled the same way.
func (s Status) Label() string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(string(s))
	return string(unicode.ToUpper(r)) + string(s)[size:]
}

func (s Status) Known() bool {
	switch s {
	case StatusCompleted, StatusProcessing, StatusPending:
		return true
	}
	return false
}

type Record struct {
	ID         string `json:"id"`
	Address    string `json:"address"`
	Status     Status `json:"status"`
	Value      string `json:"value"`
	Confidence int    `json:"confidence"`
	Date       string `json:"date"`
	Encrypted  bool   `json:"encrypted"`
}

func (r Record) ShowsConfidence() bool {
	return r.Status == StatusCompleted
}

func (r Record) FilterValue() string {
	return strings.ToLower(r.ID + " " + r.Address)
}
