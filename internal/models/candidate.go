package models

import (
	"time"

	"github.com/google/uuid"
)

type Stage string

const (
	StageApplied   Stage = "applied"
	StageScreening Stage = "screening"
	StageTechnical Stage = "technical"
	StageOffer     Stage = "offer"
	StageHired     Stage = "hired"
	StageRejected  Stage = "rejected"
)

// Stages lists the pipeline stages in board order.
var Stages = []Stage{
	StageApplied,
	StageScreening,
	StageTechnical,
	StageOffer,
	StageHired,
	StageRejected,
}

func (s Stage) Valid() bool {
	for _, known := range Stages {
		if s == known {
			return true
		}
	}
	return false
}

// StageEvent is one entry in a candidate's audit timeline.
type StageEvent struct {
	Stage     Stage     `json:"stage"`
	Timestamp time.Time `json:"timestamp"`
}

type Note struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Candidate tracks one applicant through the hiring pipeline. Timeline and
// Notes are append-only: entries are never edited, removed, or resequenced
// after the fact, even when timestamps arrive out of order. Stage always
// mirrors the stage of the last timeline entry, and the timeline is never
// empty once the candidate exists (the first entry is always "applied").
type Candidate struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string       `gorm:"not null" json:"name"`
	Email          string       `gorm:"not null" json:"email"`
	Phone          string       `json:"phone"`
	Location       string       `json:"location"`
	JobID          uint         `gorm:"index" json:"jobId"`
	Stage          Stage        `gorm:"index" json:"stage"`
	Timeline       []StageEvent `gorm:"serializer:json" json:"timeline"`
	Notes          []Note       `gorm:"serializer:json" json:"notes"`
	StageUpdatedAt time.Time    `gorm:"index" json:"stageUpdatedAt"`
}

func (Candidate) TableName() string {
	return "candidates"
}
