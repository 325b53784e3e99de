// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/vettalabs/vetta/ent/candidate"
	"github.com/vettalabs/vetta/ent/schema"
)

// CandidateCreate is the builder for creating a Candidate entity.
type CandidateCreate struct {
	config
	mutation *CandidateMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *CandidateCreate) SetSessionID(v string) *CandidateCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *CandidateCreate) SetName(v string) *CandidateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableName(v *string) *CandidateCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *CandidateCreate) SetEmail(v string) *CandidateCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableEmail(v *string) *CandidateCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *CandidateCreate) SetPhone(v string) *CandidateCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *CandidateCreate) SetNillablePhone(v *string) *CandidateCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetResumeText sets the "resume_text" field.
func (_c *CandidateCreate) SetResumeText(v string) *CandidateCreate {
	_c.mutation.SetResumeText(v)
	return _c
}

// SetNillableResumeText sets the "resume_text" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableResumeText(v *string) *CandidateCreate {
	if v != nil {
		_c.SetResumeText(*v)
	}
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *CandidateCreate) SetQuestions(v []schema.QuestionRecord) *CandidateCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *CandidateCreate) SetAnswers(v []schema.AnswerRecord) *CandidateCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetEvaluations sets the "evaluations" field.
func (_c *CandidateCreate) SetEvaluations(v []schema.EvaluationRecord) *CandidateCreate {
	_c.mutation.SetEvaluations(v)
	return _c
}

// SetFinalScore sets the "final_score" field.
func (_c *CandidateCreate) SetFinalScore(v float64) *CandidateCreate {
	_c.mutation.SetFinalScore(v)
	return _c
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableFinalScore(v *float64) *CandidateCreate {
	if v != nil {
		_c.SetFinalScore(*v)
	}
	return _c
}

// SetPercentage sets the "percentage" field.
func (_c *CandidateCreate) SetPercentage(v float64) *CandidateCreate {
	_c.mutation.SetPercentage(v)
	return _c
}

// SetNillablePercentage sets the "percentage" field if the given value is not nil.
func (_c *CandidateCreate) SetNillablePercentage(v *float64) *CandidateCreate {
	if v != nil {
		_c.SetPercentage(*v)
	}
	return _c
}

// SetSummaryText sets the "summary_text" field.
func (_c *CandidateCreate) SetSummaryText(v string) *CandidateCreate {
	_c.mutation.SetSummaryText(v)
	return _c
}

// SetNillableSummaryText sets the "summary_text" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableSummaryText(v *string) *CandidateCreate {
	if v != nil {
		_c.SetSummaryText(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CandidateCreate) SetStatus(v string) *CandidateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableStatus(v *string) *CandidateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *CandidateCreate) SetStartedAt(v time.Time) *CandidateCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetEndedAt sets the "ended_at" field.
func (_c *CandidateCreate) SetEndedAt(v time.Time) *CandidateCreate {
	_c.mutation.SetEndedAt(v)
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *CandidateCreate) SetRecordedAt(v time.Time) *CandidateCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *CandidateCreate) SetNillableRecordedAt(v *time.Time) *CandidateCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// Mutation returns the CandidateMutation object of the builder.
func (_c *CandidateCreate) Mutation() *CandidateMutation {
	return _c.mutation
}

// Save creates the Candidate in the database.
func (_c *CandidateCreate) Save(ctx context.Context) (*Candidate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CandidateCreate) SaveX(ctx context.Context) *Candidate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CandidateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CandidateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CandidateCreate) defaults() {
	if _, ok := _c.mutation.Name(); !ok {
		v := candidate.DefaultName
		_c.mutation.SetName(v)
	}
	if _, ok := _c.mutation.Email(); !ok {
		v := candidate.DefaultEmail
		_c.mutation.SetEmail(v)
	}
	if _, ok := _c.mutation.Phone(); !ok {
		v := candidate.DefaultPhone
		_c.mutation.SetPhone(v)
	}
	if _, ok := _c.mutation.ResumeText(); !ok {
		v := candidate.DefaultResumeText
		_c.mutation.SetResumeText(v)
	}
	if _, ok := _c.mutation.FinalScore(); !ok {
		v := candidate.DefaultFinalScore
		_c.mutation.SetFinalScore(v)
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		v := candidate.DefaultPercentage
		_c.mutation.SetPercentage(v)
	}
	if _, ok := _c.mutation.SummaryText(); !ok {
		v := candidate.DefaultSummaryText
		_c.mutation.SetSummaryText(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := candidate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := candidate.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CandidateCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Candidate.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := candidate.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Candidate.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Candidate.name"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Candidate.email"`)}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`ent: missing required field "Candidate.phone"`)}
	}
	if _, ok := _c.mutation.ResumeText(); !ok {
		return &ValidationError{Name: "resume_text", err: errors.New(`ent: missing required field "Candidate.resume_text"`)}
	}
	if _, ok := _c.mutation.FinalScore(); !ok {
		return &ValidationError{Name: "final_score", err: errors.New(`ent: missing required field "Candidate.final_score"`)}
	}
	if _, ok := _c.mutation.Percentage(); !ok {
		return &ValidationError{Name: "percentage", err: errors.New(`ent: missing required field "Candidate.percentage"`)}
	}
	if _, ok := _c.mutation.SummaryText(); !ok {
		return &ValidationError{Name: "summary_text", err: errors.New(`ent: missing required field "Candidate.summary_text"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Candidate.status"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Candidate.started_at"`)}
	}
	if _, ok := _c.mutation.EndedAt(); !ok {
		return &ValidationError{Name: "ended_at", err: errors.New(`ent: missing required field "Candidate.ended_at"`)}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "Candidate.recorded_at"`)}
	}
	return nil
}

func (_c *CandidateCreate) sqlSave(ctx context.Context) (*Candidate, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CandidateCreate) createSpec() (*Candidate, *sqlgraph.CreateSpec) {
	var (
		_node = &Candidate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(candidate.Table, sqlgraph.NewFieldSpec(candidate.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(candidate.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(candidate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(candidate.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(candidate.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.ResumeText(); ok {
		_spec.SetField(candidate.FieldResumeText, field.TypeString, value)
		_node.ResumeText = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(candidate.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(candidate.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.Evaluations(); ok {
		_spec.SetField(candidate.FieldEvaluations, field.TypeJSON, value)
		_node.Evaluations = value
	}
	if value, ok := _c.mutation.FinalScore(); ok {
		_spec.SetField(candidate.FieldFinalScore, field.TypeFloat64, value)
		_node.FinalScore = value
	}
	if value, ok := _c.mutation.Percentage(); ok {
		_spec.SetField(candidate.FieldPercentage, field.TypeFloat64, value)
		_node.Percentage = value
	}
	if value, ok := _c.mutation.SummaryText(); ok {
		_spec.SetField(candidate.FieldSummaryText, field.TypeString, value)
		_node.SummaryText = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(candidate.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(candidate.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.EndedAt(); ok {
		_spec.SetField(candidate.FieldEndedAt, field.TypeTime, value)
		_node.EndedAt = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(candidate.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	return _node, _spec
}

// CandidateCreateBulk is the builder for creating many Candidate entities in bulk.
type CandidateCreateBulk struct {
	config
	err      error
	builders []*CandidateCreate
}

// Save creates the Candidate entities in the database.
func (_c *CandidateCreateBulk) Save(ctx context.Context) ([]*Candidate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Candidate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CandidateMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CandidateCreateBulk) SaveX(ctx context.Context) []*Candidate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CandidateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CandidateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
