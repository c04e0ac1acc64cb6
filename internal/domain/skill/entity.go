package skill

// Skill is a standalone taxonomy entry, independent of any job.
type Skill struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	YearsOfExperience int    `json:"yearsOfExperience,omitempty"`
}
