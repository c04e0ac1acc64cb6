// Package catalog holds the process-wide job and skill data. Everything is
// built once at startup and never mutated, so reads need no synchronization.
package catalog

import (
	"strings"

	"job-skill-api/internal/domain/job"
	"job-skill-api/internal/domain/skill"
)

type Catalog struct {
	jobs   []job.Job
	skills []skill.Skill
}

func New() *Catalog {
	return &Catalog{
		jobs:   defaultJobs(),
		skills: defaultSkills(),
	}
}

// Jobs returns every job in declaration order.
func (c *Catalog) Jobs() []job.Job {
	return c.jobs
}

// Skills returns every taxonomy skill in declaration order.
func (c *Catalog) Skills() []skill.Skill {
	return c.skills
}

// JobByPositionID looks up a job by its exact position ID.
func (c *Catalog) JobByPositionID(positionID string) (job.Job, bool) {
	for _, j := range c.jobs {
		if j.PositionID == positionID {
			return j, true
		}
	}
	return job.Job{}, false
}

// SkillByName looks up a taxonomy skill by name, case-insensitively.
func (c *Catalog) SkillByName(name string) (skill.Skill, bool) {
	for _, s := range c.skills {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return skill.Skill{}, false
}
