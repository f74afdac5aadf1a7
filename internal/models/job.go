package models

import "time"

type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusArchived JobStatus = "archived"
)

func (s JobStatus) Valid() bool {
	return s == JobStatusActive || s == JobStatusArchived
}

// Job is a posting on the jobs board. The Order column establishes a dense
// 1..N ranking across all jobs: no gaps, no duplicates, at any observable
// point in time. Every write that touches Order must go through the ordering
// service so the invariant survives concurrent reorders.
type Job struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Status      JobStatus `gorm:"default:'active';index" json:"status"`
	PostedBy    string    `json:"postedBy"`
	Location    string    `json:"location"`
	Vacancies   int       `json:"vacancies"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	PostingDate time.Time `json:"postingDate"`
	// "order" is a reserved word in SQL, so the column gets an explicit name.
	Order int `gorm:"column:sort_order;index" json:"order"`
}

func (Job) TableName() string {
	return "jobs"
}
