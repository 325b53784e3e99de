package store

import (
	"context"
	"fmt"

	"github.com/vettalabs/vetta/ent"
	"github.com/vettalabs/vetta/ent/candidate"
	entschema "github.com/vettalabs/vetta/ent/schema"
	"github.com/vettalabs/vetta/internal/bank"
	"github.com/vettalabs/vetta/internal/interview"
	"github.com/vettalabs/vetta/internal/scoring"
)

type candidateRepo struct {
	client *ent.Client
}

func (r *candidateRepo) Upsert(ctx context.Context, rec *interview.CandidateRecord) error {
	// Replace-by-id: drop any prior finalization of the same session
	// before inserting the new record.
	if _, err := r.client.Candidate.Delete().
		Where(candidate.SessionID(rec.SessionID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete prior record: %w", err)
	}

	_, err := r.client.Candidate.Create().
		SetSessionID(rec.SessionID).
		SetName(rec.Name).
		SetEmail(rec.Email).
		SetPhone(rec.Phone).
		SetResumeText(rec.ResumeText).
		SetQuestions(questionRecords(rec.Questions)).
		SetAnswers(answerRecords(rec.Answers)).
		SetEvaluations(evaluationRecords(rec.Evaluations)).
		SetFinalScore(rec.FinalScore).
		SetPercentage(rec.Percentage).
		SetSummaryText(rec.SummaryText).
		SetStatus(string(rec.Status)).
		SetStartedAt(rec.StartedAt).
		SetEndedAt(rec.EndedAt).
		SetRecordedAt(rec.RecordedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save candidate: %w", err)
	}
	return nil
}

func (r *candidateRepo) Get(ctx context.Context, sessionID string) (*interview.CandidateRecord, error) {
	c, err := r.client.Candidate.Query().
		Where(candidate.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query candidate: %w", err)
	}
	rec := fromEnt(c)
	return &rec, nil
}

func (r *candidateRepo) List(ctx context.Context, opts ListOpts) ([]interview.CandidateRecord, error) {
	q := r.client.Candidate.Query()

	if opts.Search != "" {
		q = q.Where(candidate.Or(
			candidate.NameContainsFold(opts.Search),
			candidate.EmailContainsFold(opts.Search),
		))
	}

	field := sortColumn(opts.SortBy)
	if opts.Order == OrderAsc {
		q = q.Order(ent.Asc(field))
	} else {
		q = q.Order(ent.Desc(field))
	}

	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	out := make([]interview.CandidateRecord, 0, len(rows))
	for _, c := range rows {
		out = append(out, fromEnt(c))
	}
	return out, nil
}

func (r *candidateRepo) Delete(ctx context.Context, sessionID string) error {
	if _, err := r.client.Candidate.Delete().
		Where(candidate.SessionID(sessionID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete candidate: %w", err)
	}
	return nil
}

func (r *candidateRepo) Purge(ctx context.Context) error {
	if _, err := r.client.Candidate.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("purge candidates: %w", err)
	}
	return nil
}

func sortColumn(f SortField) string {
	switch f {
	case SortByName:
		return candidate.FieldName
	case SortByDate:
		return candidate.FieldRecordedAt
	default:
		return candidate.FieldFinalScore
	}
}

// Conversions between the domain record and the ent row.

func questionRecords(qs []bank.Question) []entschema.QuestionRecord {
	out := make([]entschema.QuestionRecord, 0, len(qs))
	for _, q := range qs {
		out = append(out, entschema.QuestionRecord{
			ID:              q.ID,
			Text:            q.Text,
			Tier:            string(q.Tier),
			ReferenceAnswer: q.ReferenceAnswer,
			Category:        q.Category,
		})
	}
	return out
}

func answerRecords(as []interview.Answer) []entschema.AnswerRecord {
	out := make([]entschema.AnswerRecord, 0, len(as))
	for _, a := range as {
		out = append(out, entschema.AnswerRecord{
			QuestionIndex: a.QuestionIndex,
			Text:          a.Text,
			TimeUsedSecs:  a.TimeUsedSecs,
			SubmittedAt:   a.SubmittedAt,
		})
	}
	return out
}

func evaluationRecords(evs []scoring.Evaluation) []entschema.EvaluationRecord {
	out := make([]entschema.EvaluationRecord, 0, len(evs))
	for _, ev := range evs {
		out = append(out, entschema.EvaluationRecord{
			Score:          ev.Score,
			Feedback:       ev.Feedback,
			KeywordMatches: ev.KeywordMatches,
			TimeBonus:      ev.TimeBonus,
		})
	}
	return out
}

func fromEnt(c *ent.Candidate) interview.CandidateRecord {
	rec := interview.CandidateRecord{
		SessionID:   c.SessionID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		ResumeText:  c.ResumeText,
		FinalScore:  c.FinalScore,
		Percentage:  c.Percentage,
		SummaryText: c.SummaryText,
		Status:      interview.Status(c.Status),
		StartedAt:   c.StartedAt,
		EndedAt:     c.EndedAt,
		RecordedAt:  c.RecordedAt,
	}

	for _, q := range c.Questions {
		rec.Questions = append(rec.Questions, bank.Question{
			ID:              q.ID,
			Text:            q.Text,
			Tier:            bank.Tier(q.Tier),
			ReferenceAnswer: q.ReferenceAnswer,
			Category:        q.Category,
		})
	}
	for _, a := range c.Answers {
		rec.Answers = append(rec.Answers, interview.Answer{
			QuestionIndex: a.QuestionIndex,
			Text:          a.Text,
			TimeUsedSecs:  a.TimeUsedSecs,
			SubmittedAt:   a.SubmittedAt,
		})
	}
	for _, ev := range c.Evaluations {
		rec.Evaluations = append(rec.Evaluations, scoring.Evaluation{
			Score:          ev.Score,
			Feedback:       ev.Feedback,
			KeywordMatches: ev.KeywordMatches,
			TimeBonus:      ev.TimeBonus,
		})
	}

	return rec
}
