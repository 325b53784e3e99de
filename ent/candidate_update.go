// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/vettalabs/vetta/ent/candidate"
	"github.com/vettalabs/vetta/ent/predicate"
	"github.com/vettalabs/vetta/ent/schema"
)

// CandidateUpdate is the builder for updating Candidate entities.
type CandidateUpdate struct {
	config
	hooks    []Hook
	mutation *CandidateMutation
}

// Where appends a list predicates to the CandidateUpdate builder.
func (_u *CandidateUpdate) Where(ps ...predicate.Candidate) *CandidateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CandidateUpdate) SetName(v string) *CandidateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableName(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *CandidateUpdate) SetEmail(v string) *CandidateUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableEmail(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CandidateUpdate) SetPhone(v string) *CandidateUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillablePhone(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetResumeText sets the "resume_text" field.
func (_u *CandidateUpdate) SetResumeText(v string) *CandidateUpdate {
	_u.mutation.SetResumeText(v)
	return _u
}

// SetNillableResumeText sets the "resume_text" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableResumeText(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetResumeText(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *CandidateUpdate) SetQuestions(v []schema.QuestionRecord) *CandidateUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *CandidateUpdate) AppendQuestions(v []schema.QuestionRecord) *CandidateUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *CandidateUpdate) ClearQuestions() *CandidateUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *CandidateUpdate) SetAnswers(v []schema.AnswerRecord) *CandidateUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *CandidateUpdate) AppendAnswers(v []schema.AnswerRecord) *CandidateUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *CandidateUpdate) ClearAnswers() *CandidateUpdate {
	_u.mutation.ClearAnswers()
	return _u
}

// SetEvaluations sets the "evaluations" field.
func (_u *CandidateUpdate) SetEvaluations(v []schema.EvaluationRecord) *CandidateUpdate {
	_u.mutation.SetEvaluations(v)
	return _u
}

// AppendEvaluations appends value to the "evaluations" field.
func (_u *CandidateUpdate) AppendEvaluations(v []schema.EvaluationRecord) *CandidateUpdate {
	_u.mutation.AppendEvaluations(v)
	return _u
}

// ClearEvaluations clears the value of the "evaluations" field.
func (_u *CandidateUpdate) ClearEvaluations() *CandidateUpdate {
	_u.mutation.ClearEvaluations()
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *CandidateUpdate) SetFinalScore(v float64) *CandidateUpdate {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableFinalScore(v *float64) *CandidateUpdate {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *CandidateUpdate) AddFinalScore(v float64) *CandidateUpdate {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *CandidateUpdate) SetPercentage(v float64) *CandidateUpdate {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillablePercentage(v *float64) *CandidateUpdate {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *CandidateUpdate) AddPercentage(v float64) *CandidateUpdate {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetSummaryText sets the "summary_text" field.
func (_u *CandidateUpdate) SetSummaryText(v string) *CandidateUpdate {
	_u.mutation.SetSummaryText(v)
	return _u
}

// SetNillableSummaryText sets the "summary_text" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableSummaryText(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetSummaryText(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CandidateUpdate) SetStatus(v string) *CandidateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableStatus(v *string) *CandidateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CandidateUpdate) SetStartedAt(v time.Time) *CandidateUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableStartedAt(v *time.Time) *CandidateUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *CandidateUpdate) SetEndedAt(v time.Time) *CandidateUpdate {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableEndedAt(v *time.Time) *CandidateUpdate {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *CandidateUpdate) SetRecordedAt(v time.Time) *CandidateUpdate {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_u *CandidateUpdate) SetNillableRecordedAt(v *time.Time) *CandidateUpdate {
	if v != nil {
		_u.SetRecordedAt(*v)
	}
	return _u
}

// Mutation returns the CandidateMutation object of the builder.
func (_u *CandidateUpdate) Mutation() *CandidateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CandidateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CandidateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CandidateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(candidate.Table, candidate.Columns, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(candidate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(candidate.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(candidate.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResumeText(); ok {
		_spec.SetField(candidate.FieldResumeText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(candidate.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, candidate.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(candidate.FieldQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(candidate.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, candidate.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(candidate.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Evaluations(); ok {
		_spec.SetField(candidate.FieldEvaluations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvaluations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, candidate.FieldEvaluations, value)
		})
	}
	if _u.mutation.EvaluationsCleared() {
		_spec.ClearField(candidate.FieldEvaluations, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(candidate.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(candidate.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(candidate.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(candidate.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SummaryText(); ok {
		_spec.SetField(candidate.FieldSummaryText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(candidate.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(candidate.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(candidate.FieldEndedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(candidate.FieldRecordedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CandidateUpdateOne is the builder for updating a single Candidate entity.
type CandidateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CandidateMutation
}

// SetName sets the "name" field.
func (_u *CandidateUpdateOne) SetName(v string) *CandidateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableName(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *CandidateUpdateOne) SetEmail(v string) *CandidateUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableEmail(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *CandidateUpdateOne) SetPhone(v string) *CandidateUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillablePhone(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetResumeText sets the "resume_text" field.
func (_u *CandidateUpdateOne) SetResumeText(v string) *CandidateUpdateOne {
	_u.mutation.SetResumeText(v)
	return _u
}

// SetNillableResumeText sets the "resume_text" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableResumeText(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetResumeText(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *CandidateUpdateOne) SetQuestions(v []schema.QuestionRecord) *CandidateUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *CandidateUpdateOne) AppendQuestions(v []schema.QuestionRecord) *CandidateUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *CandidateUpdateOne) ClearQuestions() *CandidateUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *CandidateUpdateOne) SetAnswers(v []schema.AnswerRecord) *CandidateUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *CandidateUpdateOne) AppendAnswers(v []schema.AnswerRecord) *CandidateUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// ClearAnswers clears the value of the "answers" field.
func (_u *CandidateUpdateOne) ClearAnswers() *CandidateUpdateOne {
	_u.mutation.ClearAnswers()
	return _u
}

// SetEvaluations sets the "evaluations" field.
func (_u *CandidateUpdateOne) SetEvaluations(v []schema.EvaluationRecord) *CandidateUpdateOne {
	_u.mutation.SetEvaluations(v)
	return _u
}

// AppendEvaluations appends value to the "evaluations" field.
func (_u *CandidateUpdateOne) AppendEvaluations(v []schema.EvaluationRecord) *CandidateUpdateOne {
	_u.mutation.AppendEvaluations(v)
	return _u
}

// ClearEvaluations clears the value of the "evaluations" field.
func (_u *CandidateUpdateOne) ClearEvaluations() *CandidateUpdateOne {
	_u.mutation.ClearEvaluations()
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *CandidateUpdateOne) SetFinalScore(v float64) *CandidateUpdateOne {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableFinalScore(v *float64) *CandidateUpdateOne {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *CandidateUpdateOne) AddFinalScore(v float64) *CandidateUpdateOne {
	_u.mutation.AddFinalScore(v)
	return _u
}

// SetPercentage sets the "percentage" field.
func (_u *CandidateUpdateOne) SetPercentage(v float64) *CandidateUpdateOne {
	_u.mutation.ResetPercentage()
	_u.mutation.SetPercentage(v)
	return _u
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillablePercentage(v *float64) *CandidateUpdateOne {
	if v != nil {
		_u.SetPercentage(*v)
	}
	return _u
}

// AddPercentage adds value to the "percentage" field.
func (_u *CandidateUpdateOne) AddPercentage(v float64) *CandidateUpdateOne {
	_u.mutation.AddPercentage(v)
	return _u
}

// SetSummaryText sets the "summary_text" field.
func (_u *CandidateUpdateOne) SetSummaryText(v string) *CandidateUpdateOne {
	_u.mutation.SetSummaryText(v)
	return _u
}

// SetNillableSummaryText sets the "summary_text" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableSummaryText(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetSummaryText(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CandidateUpdateOne) SetStatus(v string) *CandidateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableStatus(v *string) *CandidateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *CandidateUpdateOne) SetStartedAt(v time.Time) *CandidateUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableStartedAt(v *time.Time) *CandidateUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetEndedAt sets the "ended_at" field.
func (_u *CandidateUpdateOne) SetEndedAt(v time.Time) *CandidateUpdateOne {
	_u.mutation.SetEndedAt(v)
	return _u
}

// SetNillableEndedAt sets the "ended_at" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableEndedAt(v *time.Time) *CandidateUpdateOne {
	if v != nil {
		_u.SetEndedAt(*v)
	}
	return _u
}

// SetRecordedAt sets the "recorded_at" field.
func (_u *CandidateUpdateOne) SetRecordedAt(v time.Time) *CandidateUpdateOne {
	_u.mutation.SetRecordedAt(v)
	return _u
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_u *CandidateUpdateOne) SetNillableRecordedAt(v *time.Time) *CandidateUpdateOne {
	if v != nil {
		_u.SetRecordedAt(*v)
	}
	return _u
}

// Mutation returns the CandidateMutation object of the builder.
func (_u *CandidateUpdateOne) Mutation() *CandidateMutation {
	return _u.mutation
}

// Where appends a list predicates to the CandidateUpdate builder.
func (_u *CandidateUpdateOne) Where(ps ...predicate.Candidate) *CandidateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CandidateUpdateOne) Select(field string, fields ...string) *CandidateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Candidate entity.
func (_u *CandidateUpdateOne) Save(ctx context.Context) (*Candidate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CandidateUpdateOne) SaveX(ctx context.Context) *Candidate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CandidateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CandidateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CandidateUpdateOne) sqlSave(ctx context.Context) (_node *Candidate, err error) {
	_spec := sqlgraph.NewUpdateSpec(candidate.Table, candidate.Columns, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Candidate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, candidate.FieldID)
		for _, f := range fields {
			if !candidate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != candidate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(candidate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(candidate.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(candidate.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResumeText(); ok {
		_spec.SetField(candidate.FieldResumeText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(candidate.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, candidate.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(candidate.FieldQuestions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(candidate.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, candidate.FieldAnswers, value)
		})
	}
	if _u.mutation.AnswersCleared() {
		_spec.ClearField(candidate.FieldAnswers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Evaluations(); ok {
		_spec.SetField(candidate.FieldEvaluations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvaluations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, candidate.FieldEvaluations, value)
		})
	}
	if _u.mutation.EvaluationsCleared() {
		_spec.ClearField(candidate.FieldEvaluations, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(candidate.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(candidate.FieldFinalScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Percentage(); ok {
		_spec.SetField(candidate.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPercentage(); ok {
		_spec.AddField(candidate.FieldPercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SummaryText(); ok {
		_spec.SetField(candidate.FieldSummaryText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(candidate.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(candidate.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndedAt(); ok {
		_spec.SetField(candidate.FieldEndedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RecordedAt(); ok {
		_spec.SetField(candidate.FieldRecordedAt, field.TypeTime, value)
	}
	_node = &Candidate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{candidate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
