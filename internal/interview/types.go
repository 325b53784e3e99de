package interview

import (
	"time"

	"github.com/vettalabs/vetta/internal/bank"
	"github.com/vettalabs/vetta/internal/scoring"
)

// Stage is the coarse phase of an interview session.
type Stage string

const (
	StageUpload         Stage = "upload"
	StageInfoCollection Stage = "info-collection"
	StageInterview      Stage = "interview"
	StageCompleted      Stage = "completed"
)

// Status classifies a candidate record on the dashboard.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusInProgress Status = "in-progress"
)

// CandidateInfo holds the candidate's identity fields. All fields are
// empty until supplied; they freeze once the interview stage begins.
type CandidateInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ResumeText string `json:"resume_text"`
}

// Complete reports whether all contact fields required to start the
// interview are present.
func (c CandidateInfo) Complete() bool {
	return c.Name != "" && c.Email != "" && c.Phone != ""
}

// merge overlays non-blank fields from other onto c. Blank values never
// overwrite data already collected.
func (c CandidateInfo) merge(other CandidateInfo) CandidateInfo {
	if other.Name != "" {
		c.Name = other.Name
	}
	if other.Email != "" {
		c.Email = other.Email
	}
	if other.Phone != "" {
		c.Phone = other.Phone
	}
	if other.ResumeText != "" {
		c.ResumeText = other.ResumeText
	}
	return c
}

// Answer records the candidate's response to one question.
// Appended in question order and never mutated afterwards.
type Answer struct {
	QuestionIndex int       `json:"question_index"`
	Text          string    `json:"text"`
	TimeUsedSecs  int       `json:"time_used_secs"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// Outcome describes the result of submitting one answer.
type Outcome struct {
	// Evaluation is the score for the answer just submitted.
	Evaluation scoring.Evaluation

	// Completed is true when this submission finished the interview.
	Completed bool

	// Record carries the finalized candidate record when Completed.
	// It is the payload for the external candidate store.
	Record *CandidateRecord
}

// CandidateRecord is the dashboard entry produced exactly once when a
// session completes. Identity is the session ID: re-finalizing the same
// session replaces the stored record rather than appending a new one.
type CandidateRecord struct {
	SessionID   string               `json:"session_id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Phone       string               `json:"phone"`
	ResumeText  string               `json:"resume_text"`
	Questions   []bank.Question      `json:"questions"`
	Answers     []Answer             `json:"answers"`
	Evaluations []scoring.Evaluation `json:"evaluations"`
	FinalScore  float64              `json:"final_score"`
	Percentage  float64              `json:"percentage"`
	SummaryText string               `json:"summary_text"`
	Status      Status               `json:"status"`
	StartedAt   time.Time            `json:"started_at"`
	EndedAt     time.Time            `json:"ended_at"`
	RecordedAt  time.Time            `json:"recorded_at"`
}
