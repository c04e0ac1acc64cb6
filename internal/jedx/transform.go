package jedx

import (
	"fmt"

	"job-skill-api/internal/domain/job"
)

// ToPosting maps a catalog job onto the JEDx JobPosting shape. The mapping
// is pure; a fresh posting is built per call.
func ToPosting(j job.Job) JobPosting {
	skills := make([]AnnotatedDefinedTerm, 0, len(j.Skills))
	for _, s := range j.Skills {
		skills = append(skills, toDefinedTerm(s))
	}

	profile := ProfileFor(j.PositionID)

	return JobPosting{
		Identifiers: j.Identifiers,
		Name:        j.Name,
		Title:       j.Name,
		PositionID:  j.PositionID,
		PostingID:   j.PositionID,
		HiringOrganization: &Organization{
			LegalName: j.HiringOrganization.LegalName,
		},
		DateCreated:         j.DateCreated,
		Skills:              skills,
		Responsibilities:    profile.Responsibilities,
		RequiredExperiences: profile.RequiredExperiences,
		RequiredCredentials: profile.RequiredCredentials,
		EmployerOverview: []string{
			fmt.Sprintf("Position at %s", j.HiringOrganization.LegalName),
		},
		QualificationSummary: []string{
			fmt.Sprintf("%s position requiring various technical skills", j.Name),
		},
	}
}

func toDefinedTerm(s job.JobSkill) AnnotatedDefinedTerm {
	var annotation *ScaleAnnotation
	if s.Annotation != nil {
		annotation = &ScaleAnnotation{
			Required:              s.Annotation.Required,
			Preferred:             s.Annotation.Preferred,
			RequiredAtHiring:      s.Annotation.RequiredAtHiring,
			AcquisitionDifficulty: s.Annotation.AcquisitionDifficulty,
		}
	}

	var descriptions []string
	if s.Description != "" {
		descriptions = []string{s.Description}
	}

	return AnnotatedDefinedTerm{
		Name:         s.Name,
		Descriptions: descriptions,
		Annotation:   annotation,
	}
}
