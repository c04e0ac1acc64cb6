package catalog

import (
	"github.com/google/uuid"

	"job-skill-api/internal/domain/job"
	"job-skill-api/internal/domain/skill"
)

func boolPtr(b bool) *bool { return &b }

func defaultSkills() []skill.Skill {
	return []skill.Skill{
		{Name: "Python Programming", Description: "Proficiency in Python programming language", YearsOfExperience: 3},
		{Name: "FastAPI Development", Description: "Experience building REST APIs with FastAPI framework", YearsOfExperience: 2},
		{Name: "SQL Database Design", Description: "Ability to design and optimize SQL databases", YearsOfExperience: 4},
		{Name: "Docker Containerization", Description: "Experience with containerization using Docker", YearsOfExperience: 2},
		{Name: "AWS Cloud Services", Description: "Knowledge of Amazon Web Services cloud platform", YearsOfExperience: 3},
		{Name: "Git Version Control", Description: "Proficiency with Git for version control", YearsOfExperience: 5},
		{Name: "RESTful API Design", Description: "Understanding of REST principles and API design", YearsOfExperience: 3},
		{Name: "PostgreSQL", Description: "Experience with PostgreSQL database management", YearsOfExperience: 2},
	}
}

func defaultJobs() []job.Job {
	return []job.Job{
		{
			Identifiers:        []job.Identifier{{Value: uuid.NewString(), SchemeID: "UUID"}},
			HiringOrganization: job.HiringOrganization{LegalName: "TechCorp Solutions"},
			Name:               "Senior Backend Developer",
			PositionID:         "JDX-001",
			DateCreated:        "2024-01-15T10:00:00Z",
			Skills: []job.JobSkill{
				{
					Name:              "Python Programming",
					Description:       "Proficiency in Python programming language",
					YearsOfExperience: 3,
					Annotation:        &job.SkillAnnotation{Required: true, RequiredAtHiring: boolPtr(true)},
				},
				{
					Name:              "FastAPI Development",
					Description:       "Experience building REST APIs with FastAPI framework",
					YearsOfExperience: 2,
					Annotation:        &job.SkillAnnotation{Required: true, RequiredAtHiring: boolPtr(true)},
				},
				{
					Name:              "SQL Database Design",
					Description:       "Ability to design and optimize SQL databases",
					YearsOfExperience: 4,
					Annotation:        &job.SkillAnnotation{Required: true, RequiredAtHiring: boolPtr(false)},
				},
				{
					Name:              "Docker Containerization",
					Description:       "Experience with containerization using Docker",
					YearsOfExperience: 2,
					Annotation:        &job.SkillAnnotation{Preferred: true},
				},
				{
					Name:              "AWS Cloud Services",
					Description:       "Knowledge of Amazon Web Services cloud platform",
					YearsOfExperience: 3,
					Annotation:        &job.SkillAnnotation{Preferred: true},
				},
			},
		},
		{
			Identifiers:        []job.Identifier{{Value: uuid.NewString(), SchemeID: "UUID"}},
			HiringOrganization: job.HiringOrganization{LegalName: "DataSystems Inc"},
			Name:               "Full Stack Developer",
			PositionID:         "JDX-002",
			DateCreated:        "2024-02-01T09:30:00Z",
			Skills: []job.JobSkill{
				{
					Name:              "Python Programming",
					Description:       "Proficiency in Python programming language",
					YearsOfExperience: 2,
					Annotation:        &job.SkillAnnotation{Required: true, RequiredAtHiring: boolPtr(true)},
				},
				{
					Name:              "RESTful API Design",
					Description:       "Understanding of REST principles and API design",
					YearsOfExperience: 3,
					Annotation:        &job.SkillAnnotation{Required: true, RequiredAtHiring: boolPtr(true)},
				},
				{
					Name:              "PostgreSQL",
					Description:       "Experience with PostgreSQL database management",
					YearsOfExperience: 2,
					Annotation:        &job.SkillAnnotation{Required: true, RequiredAtHiring: boolPtr(false)},
				},
				{
					Name:              "Git Version Control",
					Description:       "Proficiency with Git for version control",
					YearsOfExperience: 3,
					Annotation:        &job.SkillAnnotation{Preferred: true},
				},
				{
					Name:              "FastAPI Development",
					Description:       "Experience building REST APIs with FastAPI framework",
					YearsOfExperience: 1,
					Annotation:        &job.SkillAnnotation{Preferred: true},
				},
			},
		},
		{
			Identifiers:        []job.Identifier{{Value: uuid.NewString(), SchemeID: "UUID"}},
			HiringOrganization: job.HiringOrganization{LegalName: "CloudTech Innovations"},
			Name:               "DevOps Engineer",
			PositionID:         "JDX-003",
			DateCreated:        "2024-02-10T14:20:00Z",
			Skills: []job.JobSkill{
				{
					Name:              "Docker Containerization",
					Description:       "Experience with containerization using Docker",
					YearsOfExperience: 3,
					Annotation:        &job.SkillAnnotation{Required: true, RequiredAtHiring: boolPtr(true)},
				},
				{
					Name:              "AWS Cloud Services",
					Description:       "Knowledge of Amazon Web Services cloud platform",
					YearsOfExperience: 4,
					Annotation:        &job.SkillAnnotation{Required: true, RequiredAtHiring: boolPtr(true)},
				},
				{
					Name:              "Git Version Control",
					Description:       "Proficiency with Git for version control",
					YearsOfExperience: 4,
					Annotation:        &job.SkillAnnotation{Required: true, RequiredAtHiring: boolPtr(true)},
				},
				{
					Name:              "Python Programming",
					Description:       "Proficiency in Python programming language",
					YearsOfExperience: 2,
					Annotation:        &job.SkillAnnotation{Preferred: true},
				},
				{
					Name:              "SQL Database Design",
					Description:       "Ability to design and optimize SQL databases",
					YearsOfExperience: 2,
					Annotation:        &job.SkillAnnotation{Preferred: true},
				},
			},
		},
	}
}
