package models

import (
	"time"

	"github.com/google/uuid"
)

type CreateJobRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      JobStatus  `json:"status"`
	PostedBy    string     `json:"postedBy"`
	Location    string     `json:"location"`
	Vacancies   int        `json:"vacancies"`
	Tags        []string   `json:"tags"`
	PostingDate *time.Time `json:"postingDate"`
}

// PatchJobRequest uses pointers so absent fields stay untouched: only keys
// present in the payload are applied.
type PatchJobRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *JobStatus `json:"status"`
	PostedBy    *string    `json:"postedBy"`
	Location    *string    `json:"location"`
	Vacancies   *int       `json:"vacancies"`
	Tags        *[]string  `json:"tags"`
	PostingDate *time.Time `json:"postingDate"`
}

type ReorderJobRequest struct {
	FromOrder int `json:"fromOrder"`
	ToOrder   int `json:"toOrder"`
}

type JobListResponse struct {
	Jobs       []Job `json:"jobs"`
	TotalPages int   `json:"totalPages"`
}

type CreateCandidateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	JobID    uint   `json:"jobId"`
}

type TransitionRequest struct {
	Stage          Stage      `json:"stage"`
	StageUpdatedAt *time.Time `json:"stageUpdatedAt"`
}

type NoteRequest struct {
	Note string `json:"note"`
}

// CandidateListResponse keeps the original wire name "paginated" for the
// page slice.
type CandidateListResponse struct {
	Paginated  []Candidate `json:"paginated"`
	TotalPages int         `json:"totalPages"`
}

type CreateAssessmentRequest struct {
	Name     string    `json:"name"`
	Sections []Section `json:"sections"`
}

type SubmitAssessmentRequest struct {
	AssessmentID *uuid.UUID `json:"assessmentId"`
	Responses    []Response `json:"responses"`
	SubmittedAt  *time.Time `json:"submittedAt"`
}

type SubmitAssessmentResponse struct {
	Success    bool       `json:"success"`
	Submission Submission `json:"submission"`
}
