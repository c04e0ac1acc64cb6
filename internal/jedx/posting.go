// Package jedx maps the internal job record onto the JEDx JobPosting
// exchange format.
package jedx

import "job-skill-api/internal/domain/job"

// ScaleAnnotation is JEDx's richer annotation shape for a defined term.
type ScaleAnnotation struct {
	Required              bool     `json:"required"`
	Preferred             bool     `json:"preferred"`
	RequiredAtHiring      *bool    `json:"requiredAtHiring,omitempty"`
	AcquisitionDifficulty *float64 `json:"acquisitionDifficulty,omitempty"`
	AcquiredInternally    *bool    `json:"acquiredInternally,omitempty"`
	Descriptions          []string `json:"descriptions,omitempty"`
}

// AnnotatedDefinedTerm is JEDx's representation of a skill, competency,
// responsibility or similar named concept.
type AnnotatedDefinedTerm struct {
	Name         string           `json:"name"`
	TermCode     string           `json:"termCode,omitempty"`
	Descriptions []string         `json:"descriptions,omitempty"`
	Annotation   *ScaleAnnotation `json:"annotation,omitempty"`
}

type Organization struct {
	Name         string   `json:"name,omitempty"`
	LegalName    string   `json:"legalName,omitempty"`
	Descriptions []string `json:"descriptions,omitempty"`
}

type Place struct {
	Name         string            `json:"name,omitempty"`
	Address      map[string]string `json:"address,omitempty"`
	Descriptions []string          `json:"descriptions,omitempty"`
}

type ExperienceCategory struct {
	Descriptions []string `json:"descriptions,omitempty"`
}

// ExperienceRequirement describes a duration of prior experience. Duration
// is an ISO-8601 period, e.g. "P5Y".
type ExperienceRequirement struct {
	Duration             string               `json:"duration,omitempty"`
	Descriptions         []string             `json:"descriptions,omitempty"`
	ExperienceCategories []ExperienceCategory `json:"experienceCategories,omitempty"`
}

type CredentialRequirement struct {
	ProgramConcentration string   `json:"programConcentration,omitempty"`
	Descriptions         []string `json:"descriptions,omitempty"`
}

type SalaryRequirement struct {
	Currency     string   `json:"currency,omitempty"`
	Minimum      float64  `json:"minimum,omitempty"`
	Maximum      float64  `json:"maximum,omitempty"`
	Descriptions []string `json:"descriptions,omitempty"`
}

// JobPosting is the JEDx JobPostingType surface. The schema declares far
// more fields than this service ever fills in; only about a dozen are
// populated per job, the rest stay omitted on the wire. Name/Title and
// PositionID/PostingID intentionally duplicate one logical value to satisfy
// both of the schema's naming conventions.
type JobPosting struct {
	Identifiers        []job.Identifier `json:"identifiers"`
	Name               string           `json:"name"`
	Title              string           `json:"title"`
	PositionID         string           `json:"positionID"`
	PostingID          string           `json:"postingID"`
	HiringOrganization *Organization    `json:"hiringOrganization,omitempty"`
	DateCreated        string           `json:"dateCreated,omitempty"`
	DatePosted         string           `json:"datePosted,omitempty"`
	DateModified       string           `json:"dateModified,omitempty"`
	ValidFrom          string           `json:"validFrom,omitempty"`
	ValidThrough       string           `json:"validThrough,omitempty"`

	Skills           []AnnotatedDefinedTerm `json:"skills"`
	Abilities        []AnnotatedDefinedTerm `json:"abilities,omitempty"`
	Knowledge        []AnnotatedDefinedTerm `json:"knowledge,omitempty"`
	Competencies     []AnnotatedDefinedTerm `json:"competencies,omitempty"`
	Responsibilities []AnnotatedDefinedTerm `json:"responsibilities"`
	Tasks            []AnnotatedDefinedTerm `json:"tasks,omitempty"`
	WorkActivities   []AnnotatedDefinedTerm `json:"workActivities,omitempty"`
	Technologies     []AnnotatedDefinedTerm `json:"technologies,omitempty"`

	RequiredExperiences  []ExperienceRequirement `json:"requiredExperiences"`
	PreferredExperiences []ExperienceRequirement `json:"preferredExperiences,omitempty"`
	RequiredCredentials  []CredentialRequirement `json:"requiredCredentials"`
	PreferredCredentials []CredentialRequirement `json:"preferredCredentials,omitempty"`
	RequiredEducation    []CredentialRequirement `json:"requiredEducation,omitempty"`
	PreferredEducation   []CredentialRequirement `json:"preferredEducation,omitempty"`

	JobLocation       *Place                 `json:"jobLocation,omitempty"`
	JobLocationTypes  []string               `json:"jobLocationTypes,omitempty"`
	JobSchedules      []AnnotatedDefinedTerm `json:"jobSchedules,omitempty"`
	JobTerms          []AnnotatedDefinedTerm `json:"jobTerms,omitempty"`
	JobBenefits       []string               `json:"jobBenefits,omitempty"`
	BaseSalaries      []SalaryRequirement    `json:"baseSalaries,omitempty"`
	EstimatedSalaries []SalaryRequirement    `json:"estimatedSalaries,omitempty"`

	EmployerOverview      []string `json:"employerOverview"`
	QualificationSummary  []string `json:"qualificationSummary"`
	FormattedDescriptions []string `json:"formattedDescriptions,omitempty"`
	ShiftSchedules        []string `json:"shiftSchedules,omitempty"`
	WorkHours             []string `json:"workHours,omitempty"`

	Industries           []string               `json:"industries,omitempty"`
	IndustryCodes        []AnnotatedDefinedTerm `json:"industryCodes,omitempty"`
	OccupationCategories []AnnotatedDefinedTerm `json:"occupationCategories,omitempty"`
	CareerLevels         []AnnotatedDefinedTerm `json:"careerLevels,omitempty"`
	ExperienceCategories []AnnotatedDefinedTerm `json:"experienceCategories,omitempty"`
	EducationLevels      []AnnotatedDefinedTerm `json:"educationLevels,omitempty"`

	TotalJobOpenings   *int     `json:"totalJobOpenings,omitempty"`
	JobImmediateStart  *bool    `json:"jobImmediateStart,omitempty"`
	Disclaimers        []string `json:"disclaimers,omitempty"`
	SpecialCommitments []string `json:"specialCommitments,omitempty"`
	TravelRequirements []string `json:"travelRequirements,omitempty"`
}
