// Package hropen maps catalog jobs onto the HR-Open Skills API response
// shape, deriving a validation status and proficiency level per skill from
// the job's annotation flags.
package hropen

// ContextURI is the JSON-LD context attached to every skills response.
const ContextURI = "https://schema.hropenstandards.org/4.5/recruiting/rdf/SkillsApi.json"

// Validation statuses defined by the Skills API.
const (
	StatusValidated   = "Validated"
	StatusProvisional = "Provisional"
	StatusProposed    = "Proposed"
	StatusExpired     = "Expired"
)

// Proficiency level names used by this service.
const (
	LevelAdvanced   = "Advanced"
	LevelProficient = "Proficient"
	LevelDeveloping = "Developing"
)

type SkillKeyword struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

type SkillModel struct {
	ID            string         `json:"id"`
	Name          string         `json:"name,omitempty"`
	Description   string         `json:"description,omitempty"`
	CodedNotation string         `json:"codedNotation,omitempty"`
	CTID          string         `json:"ctid,omitempty"`
	Keywords      []SkillKeyword `json:"keywords,omitempty"`
}

type ProficiencyLevel struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type SkillAssertion struct {
	Type             string           `json:"@type"`
	Skill            SkillModel       `json:"skill"`
	ProficiencyLevel ProficiencyLevel `json:"proficiencyLevel"`
	ValidationStatus string           `json:"validationStatus"`
	ValidFrom        string           `json:"validFrom"`
	ValidUntil       string           `json:"validUntil,omitempty"`
}

// ReferencedObject points at the JEDx object the assertions describe.
type ReferencedObject struct {
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`
}

type ProficiencyScale struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type SkillsResponse struct {
	Context           string             `json:"@context"`
	Object            *ReferencedObject  `json:"object,omitempty"`
	ProficiencyScales []ProficiencyScale `json:"proficiencyScales"`
	Skills            []SkillAssertion   `json:"skills"`
}
