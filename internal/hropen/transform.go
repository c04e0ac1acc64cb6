package hropen

import (
	"fmt"
	"strings"

	"job-skill-api/internal/domain/job"
)

const (
	skillBaseURI = "https://api.example.com/skills/"
	jobBaseURI   = "https://api.example.com/jedx/jobs/"
)

// assertionRule pairs a predicate over the skill annotation with the status
// and level it yields. Rules are checked in order; the first match wins, so
// a skill flagged both preferred and required is treated as required.
type assertionRule struct {
	match  func(a job.SkillAnnotation) bool
	status string
	level  string
}

var assertionRules = []assertionRule{
	{
		match:  func(a job.SkillAnnotation) bool { return a.Preferred && !a.Required },
		status: StatusProvisional,
		level:  LevelDeveloping,
	},
	{
		match:  func(a job.SkillAnnotation) bool { return a.Required && a.RequiredAtHiringSet() },
		status: StatusValidated,
		level:  LevelAdvanced,
	},
	{
		match:  func(a job.SkillAnnotation) bool { return a.Required },
		status: StatusValidated,
		level:  LevelProficient,
	},
}

// Derive resolves the validation status and proficiency level for a skill
// annotation. A nil or unflagged annotation falls back to
// Validated/Proficient.
func Derive(a *job.SkillAnnotation) (status, level string) {
	if a != nil {
		for _, r := range assertionRules {
			if r.match(*a) {
				return r.status, r.level
			}
		}
	}
	return StatusValidated, LevelProficient
}

// SkillURI builds the taxonomy URI for a skill name: lower-cased, spaces
// replaced with hyphens, under the fixed base.
func SkillURI(name string) string {
	return skillBaseURI + strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// JobURI is the canonical JEDx URI for a position.
func JobURI(positionID string) string {
	return jobBaseURI + positionID
}

// CodedNotation generates a short code for a skill from the first two
// letters of each of its first two words, followed by the skill's 1-indexed
// position within the assertion list, zero-padded to three digits.
// "Docker Containerization" at position 1 becomes "DOCO-001".
func CodedNotation(name string, seq int) string {
	var prefix strings.Builder
	words := strings.Fields(name)
	if len(words) > 2 {
		words = words[:2]
	}
	for _, w := range words {
		r := []rune(w)
		if len(r) > 2 {
			r = r[:2]
		}
		prefix.WriteString(strings.ToUpper(string(r)))
	}
	return fmt.Sprintf("%s-%03d", prefix.String(), seq)
}

// ParsePositionID extracts a position ID from a bare ID or a URI whose last
// path segment is the ID.
func ParsePositionID(identifier string) string {
	if i := strings.LastIndex(identifier, "/"); i >= 0 {
		return identifier[i+1:]
	}
	return identifier
}

// ToSkillsResponse builds the Skills API view of a job: one assertion per
// job skill, in catalog order, wrapped with a reference to the canonical
// JEDx job URI.
func ToSkillsResponse(j job.Job) SkillsResponse {
	assertions := make([]SkillAssertion, 0, len(j.Skills))
	for i, s := range j.Skills {
		status, level := Derive(s.Annotation)
		assertions = append(assertions, SkillAssertion{
			Type: "SkillAssertion",
			Skill: SkillModel{
				ID:            SkillURI(s.Name),
				Name:          s.Name,
				Description:   s.Description,
				CodedNotation: CodedNotation(s.Name, i+1),
			},
			ProficiencyLevel: ProficiencyLevel{Type: "DefinedTerm", Name: level},
			ValidationStatus: status,
			ValidFrom:        j.DateCreated,
		})
	}

	return SkillsResponse{
		Context: ContextURI,
		Object: &ReferencedObject{
			ID:   JobURI(j.PositionID),
			Type: "JobPosting",
		},
		ProficiencyScales: []ProficiencyScale{},
		Skills:            assertions,
	}
}
