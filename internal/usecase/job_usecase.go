package usecase

import (
	"context"

	"job-skill-api/internal/domain/job"
	"job-skill-api/internal/jedx"
)

// JobReader is the catalog surface the job usecase depends on.
type JobReader interface {
	Jobs() []job.Job
	JobByPositionID(positionID string) (job.Job, bool)
}

// SkillBreakdown is a job together with its skills partitioned into
// required and recommended.
type SkillBreakdown struct {
	Job         job.Job        `json:"job"`
	Required    []job.JobSkill `json:"required_skills"`
	Recommended []job.JobSkill `json:"recommended_skills"`
}

type JobUsecase interface {
	ListJobs(ctx context.Context) []job.Job
	GetPosting(ctx context.Context, positionID string) (jedx.JobPosting, error)
	GetSkillBreakdown(ctx context.Context, positionID string) (SkillBreakdown, error)
	RequiredSkills(ctx context.Context, positionID string) ([]job.JobSkill, error)
	RecommendedSkills(ctx context.Context, positionID string) ([]job.JobSkill, error)
}

type Jobs struct {
	reader JobReader
}

func NewJobUsecase(reader JobReader) *Jobs {
	return &Jobs{reader: reader}
}

func (u *Jobs) ListJobs(_ context.Context) []job.Job {
	return u.reader.Jobs()
}

func (u *Jobs) GetPosting(_ context.Context, positionID string) (jedx.JobPosting, error) {
	j, ok := u.reader.JobByPositionID(positionID)
	if !ok {
		return jedx.JobPosting{}, ErrNotFound
	}
	return jedx.ToPosting(j), nil
}

func (u *Jobs) GetSkillBreakdown(_ context.Context, positionID string) (SkillBreakdown, error) {
	j, ok := u.reader.JobByPositionID(positionID)
	if !ok {
		return SkillBreakdown{}, ErrNotFound
	}

	required, recommended := job.PartitionSkills(j.Skills)
	return SkillBreakdown{Job: j, Required: required, Recommended: recommended}, nil
}

func (u *Jobs) RequiredSkills(_ context.Context, positionID string) ([]job.JobSkill, error) {
	j, ok := u.reader.JobByPositionID(positionID)
	if !ok {
		return nil, ErrNotFound
	}
	required, _ := job.PartitionSkills(j.Skills)
	return required, nil
}

func (u *Jobs) RecommendedSkills(_ context.Context, positionID string) ([]job.JobSkill, error) {
	j, ok := u.reader.JobByPositionID(positionID)
	if !ok {
		return nil, ErrNotFound
	}
	_, recommended := job.PartitionSkills(j.Skills)
	return recommended, nil
}
