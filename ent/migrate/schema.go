// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CandidatesColumns holds the columns for the "candidates" table.
	CandidatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "email", Type: field.TypeString, Default: ""},
		{Name: "phone", Type: field.TypeString, Default: ""},
		{Name: "resume_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "questions", Type: field.TypeJSON, Nullable: true},
		{Name: "answers", Type: field.TypeJSON, Nullable: true},
		{Name: "evaluations", Type: field.TypeJSON, Nullable: true},
		{Name: "final_score", Type: field.TypeFloat64, Default: 0},
		{Name: "percentage", Type: field.TypeFloat64, Default: 0},
		{Name: "summary_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "completed"},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "ended_at", Type: field.TypeTime},
		{Name: "recorded_at", Type: field.TypeTime},
	}
	// CandidatesTable holds the schema information for the "candidates" table.
	CandidatesTable = &schema.Table{
		Name:       "candidates",
		Columns:    CandidatesColumns,
		PrimaryKey: []*schema.Column{CandidatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "candidate_session_id",
				Unique:  true,
				Columns: []*schema.Column{CandidatesColumns[1]},
			},
			{
				Name:    "candidate_final_score",
				Unique:  false,
				Columns: []*schema.Column{CandidatesColumns[9]},
			},
			{
				Name:    "candidate_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{CandidatesColumns[15]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CandidatesTable,
	}
)

func init() {
}
