package models

import (
	"time"

	"github.com/google/uuid"
)

// Response is an answer to a single question. Answer is free-form: the test
// runner has already enforced required/range/length constraints client-side,
// and the server stores whatever arrived (see the submit handler).
type Response struct {
	QuestionID string `json:"questionId"`
	Answer     any    `json:"answer"`
}

// Submission is a strictly append-only record of one test-taker run. It is
// never mutated after creation.
type Submission struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	JobID        uint       `gorm:"index" json:"jobId"`
	AssessmentID *uuid.UUID `gorm:"type:uuid" json:"assessmentId,omitempty"`
	Responses    []Response `gorm:"serializer:json" json:"responses"`
	SubmittedAt  time.Time  `json:"submittedAt"`
}

func (Submission) TableName() string {
	return "submissions"
}
