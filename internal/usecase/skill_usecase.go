package usecase

import (
	"context"

	"job-skill-api/internal/domain/skill"
)

// SkillReader is the catalog surface the skill usecase depends on.
type SkillReader interface {
	Skills() []skill.Skill
	SkillByName(name string) (skill.Skill, bool)
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) []skill.Skill
	GetSkill(ctx context.Context, name string) (skill.Skill, error)
}

type Skills struct {
	reader SkillReader
}

func NewSkillUsecase(reader SkillReader) *Skills {
	return &Skills{reader: reader}
}

func (u *Skills) ListSkills(_ context.Context) []skill.Skill {
	return u.reader.Skills()
}

func (u *Skills) GetSkill(_ context.Context, name string) (skill.Skill, error) {
	s, ok := u.reader.SkillByName(name)
	if !ok {
		return skill.Skill{}, ErrNotFound
	}
	return s, nil
}
