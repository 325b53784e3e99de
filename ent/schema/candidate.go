package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Candidate is one finished interview on the dashboard. Identity is the
// session ID: re-finalizing a session replaces its row.
type Candidate struct {
	ent.Schema
}

// QuestionRecord is the serialized form of an interview question.
type QuestionRecord struct {
	ID              int    `json:"id"`
	Text            string `json:"text"`
	Tier            string `json:"tier"`
	ReferenceAnswer string `json:"reference_answer"`
	Category        string `json:"category"`
}

// AnswerRecord is the serialized form of one submitted answer.
type AnswerRecord struct {
	QuestionIndex int       `json:"question_index"`
	Text          string    `json:"text"`
	TimeUsedSecs  int       `json:"time_used_secs"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// EvaluationRecord is the serialized form of one answer's evaluation.
type EvaluationRecord struct {
	Score          float64 `json:"score"`
	Feedback       string  `json:"feedback"`
	KeywordMatches int     `json:"keyword_matches"`
	TimeBonus      float64 `json:"time_bonus"`
}

func (Candidate) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("UUID of the interview session"),
		field.String("name").
			Default(""),
		field.String("email").
			Default(""),
		field.String("phone").
			Default(""),
		field.Text("resume_text").
			Default(""),
		field.JSON("questions", []QuestionRecord{}).
			Optional(),
		field.JSON("answers", []AnswerRecord{}).
			Optional(),
		field.JSON("evaluations", []EvaluationRecord{}).
			Optional(),
		field.Float("final_score").
			Default(0),
		field.Float("percentage").
			Default(0),
		field.Text("summary_text").
			Default(""),
		field.String("status").
			Default("completed").
			Comment("completed or in-progress"),
		field.Time("started_at"),
		field.Time("ended_at"),
		field.Time("recorded_at").
			Default(time.Now),
	}
}

func (Candidate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id").Unique(),
		index.Fields("final_score"),
		index.Fields("recorded_at"),
	}
}
