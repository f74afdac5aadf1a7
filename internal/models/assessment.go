package models

import (
	"time"

	"github.com/google/uuid"
)

type QuestionType string

const (
	QuestionSingleChoice QuestionType = "single-choice"
	QuestionMultiChoice  QuestionType = "multi-choice"
	QuestionShortText    QuestionType = "short-text"
	QuestionLongText     QuestionType = "long-text"
	QuestionNumeric      QuestionType = "numeric"
	QuestionFileUpload   QuestionType = "file-upload"
)

// Question carries the type-specific constraints as optional fields; which
// ones apply depends on Type (options for choice types, min/max for numeric,
// maxLength for text types). The wire name for the prompt is "question" to
// match the builder UI's payload.
type Question struct {
	ID        string       `json:"id"`
	Type      QuestionType `json:"type"`
	Prompt    string       `json:"question"`
	Required  bool         `json:"required"`
	Options   []string     `json:"options,omitempty"`
	MinRange  *float64     `json:"minRange,omitempty"`
	MaxRange  *float64     `json:"maxRange,omitempty"`
	MaxLength *int         `json:"maxLength,omitempty"`
}

type Section struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Assessment is an immutable question template authored once per job.
type Assessment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobID     uint      `gorm:"index" json:"jobId"`
	Name      string    `json:"name"`
	Sections  []Section `gorm:"serializer:json" json:"sections"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Assessment) TableName() string {
	return "assessments"
}
