// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/vettalabs/vetta/ent/candidate"
	"github.com/vettalabs/vetta/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	candidateFields := schema.Candidate{}.Fields()
	_ = candidateFields
	// candidateDescSessionID is the schema descriptor for session_id field.
	candidateDescSessionID := candidateFields[0].Descriptor()
	// candidate.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	candidate.SessionIDValidator = candidateDescSessionID.Validators[0].(func(string) error)
	// candidateDescName is the schema descriptor for name field.
	candidateDescName := candidateFields[1].Descriptor()
	// candidate.DefaultName holds the default value on creation for the name field.
	candidate.DefaultName = candidateDescName.Default.(string)
	// candidateDescEmail is the schema descriptor for email field.
	candidateDescEmail := candidateFields[2].Descriptor()
	// candidate.DefaultEmail holds the default value on creation for the email field.
	candidate.DefaultEmail = candidateDescEmail.Default.(string)
	// candidateDescPhone is the schema descriptor for phone field.
	candidateDescPhone := candidateFields[3].Descriptor()
	// candidate.DefaultPhone holds the default value on creation for the phone field.
	candidate.DefaultPhone = candidateDescPhone.Default.(string)
	// candidateDescResumeText is the schema descriptor for resume_text field.
	candidateDescResumeText := candidateFields[4].Descriptor()
	// candidate.DefaultResumeText holds the default value on creation for the resume_text field.
	candidate.DefaultResumeText = candidateDescResumeText.Default.(string)
	// candidateDescFinalScore is the schema descriptor for final_score field.
	candidateDescFinalScore := candidateFields[8].Descriptor()
	// candidate.DefaultFinalScore holds the default value on creation for the final_score field.
	candidate.DefaultFinalScore = candidateDescFinalScore.Default.(float64)
	// candidateDescPercentage is the schema descriptor for percentage field.
	candidateDescPercentage := candidateFields[9].Descriptor()
	// candidate.DefaultPercentage holds the default value on creation for the percentage field.
	candidate.DefaultPercentage = candidateDescPercentage.Default.(float64)
	// candidateDescSummaryText is the schema descriptor for summary_text field.
	candidateDescSummaryText := candidateFields[10].Descriptor()
	// candidate.DefaultSummaryText holds the default value on creation for the summary_text field.
	candidate.DefaultSummaryText = candidateDescSummaryText.Default.(string)
	// candidateDescStatus is the schema descriptor for status field.
	candidateDescStatus := candidateFields[11].Descriptor()
	// candidate.DefaultStatus holds the default value on creation for the status field.
	candidate.DefaultStatus = candidateDescStatus.Default.(string)
	// candidateDescRecordedAt is the schema descriptor for recorded_at field.
	candidateDescRecordedAt := candidateFields[14].Descriptor()
	// candidate.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	candidate.DefaultRecordedAt = candidateDescRecordedAt.Default.(func() time.Time)
}
