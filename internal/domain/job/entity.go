package job

// Identifier tags a job with an opaque external ID under a named scheme.
type Identifier struct {
	Value       string `json:"value"`
	SchemeID    string `json:"schemeId"`
	Description string `json:"description,omitempty"`
	SchemeLink  string `json:"schemeLink,omitempty"`
}

type HiringOrganization struct {
	LegalName string `json:"legalName"`
}

// SkillAnnotation carries the importance flags attached to a skill within a
// job. Required and Preferred are not mutually exclusive in the model;
// consumers resolve ties with required taking priority.
type SkillAnnotation struct {
	Required              bool     `json:"required"`
	Preferred             bool     `json:"preferred"`
	RequiredAtHiring      *bool    `json:"requiredAtHiring,omitempty"`
	AcquisitionDifficulty *float64 `json:"acquisitionDifficulty,omitempty"`
}

// RequiredAtHiringSet reports whether the annotation marks the skill as
// required at the point of hire.
func (a *SkillAnnotation) RequiredAtHiringSet() bool {
	return a != nil && a.RequiredAtHiring != nil && *a.RequiredAtHiring
}

type JobSkill struct {
	Name              string           `json:"name"`
	Description       string           `json:"description,omitempty"`
	YearsOfExperience int              `json:"yearsOfExperience,omitempty"`
	Annotation        *SkillAnnotation `json:"annotation,omitempty"`
}

// IsRequired reports whether the skill is annotated as required.
func (s JobSkill) IsRequired() bool {
	return s.Annotation != nil && s.Annotation.Required
}

// IsRecommended reports whether the skill is annotated as preferred without
// also being required. A skill carrying both flags counts as required only.
func (s JobSkill) IsRecommended() bool {
	return s.Annotation != nil && s.Annotation.Preferred && !s.Annotation.Required
}

// Job is the canonical internal job record. PositionID is the stable lookup
// key; uniqueness across the catalog is assumed, not validated.
type Job struct {
	Identifiers        []Identifier       `json:"identifiers"`
	HiringOrganization HiringOrganization `json:"hiringOrganization"`
	Name               string             `json:"name"`
	PositionID         string             `json:"positionID"`
	DateCreated        string             `json:"dateCreated"`
	Skills             []JobSkill         `json:"skills"`
}

// PartitionSkills splits a job's skills into required and recommended lists.
// Skills with no annotation, or with neither flag set, land in neither list.
func PartitionSkills(skills []JobSkill) (required, recommended []JobSkill) {
	required = make([]JobSkill, 0, len(skills))
	recommended = make([]JobSkill, 0, len(skills))
	for _, s := range skills {
		switch {
		case s.IsRequired():
			required = append(required, s)
		case s.IsRecommended():
			recommended = append(recommended, s)
		}
	}
	return required, recommended
}
