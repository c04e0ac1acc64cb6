package jedx

// PositionProfile is the posting detail that has no counterpart on the
// internal job record: responsibilities, experience and credential
// requirements, keyed by position ID.
type PositionProfile struct {
	Responsibilities    []AnnotatedDefinedTerm
	RequiredExperiences []ExperienceRequirement
	RequiredCredentials []CredentialRequirement
}

// ProfileFor returns the posting profile for a position ID. Unknown IDs get
// an empty profile, not an error; the posting then carries empty lists.
func ProfileFor(positionID string) PositionProfile {
	p, ok := positionProfiles[positionID]
	if !ok {
		return PositionProfile{
			Responsibilities:    []AnnotatedDefinedTerm{},
			RequiredExperiences: []ExperienceRequirement{},
			RequiredCredentials: []CredentialRequirement{},
		}
	}
	return p
}

var bsComputerScience = []CredentialRequirement{
	{ProgramConcentration: "Computer Science", Descriptions: []string{"BS"}},
}

var workExperience = []ExperienceCategory{{Descriptions: []string{"Work Experience"}}}

var positionProfiles = map[string]PositionProfile{
	"JDX-001": {
		Responsibilities: []AnnotatedDefinedTerm{
			{
				Name: "Backend API Development",
				Descriptions: []string{
					"Design, develop, and maintain scalable REST APIs and microservices",
					"Implement business logic and data processing pipelines",
					"Optimize API performance and ensure high availability",
				},
			},
			{
				Name: "Database Architecture",
				Descriptions: []string{
					"Design and implement database schemas",
					"Optimize database queries and performance",
					"Manage database migrations and data integrity",
				},
			},
			{
				Name: "System Architecture",
				Descriptions: []string{
					"Architect scalable backend systems",
					"Design system integrations and data flows",
					"Lead technical design discussions and code reviews",
				},
			},
		},
		RequiredExperiences: []ExperienceRequirement{
			{
				Duration:             "P5Y",
				Descriptions:         []string{"Backend software development experience"},
				ExperienceCategories: workExperience,
			},
			{
				Duration:             "P3Y",
				Descriptions:         []string{"API development and RESTful service design"},
				ExperienceCategories: workExperience,
			},
		},
		RequiredCredentials: bsComputerScience,
	},
	"JDX-002": {
		Responsibilities: []AnnotatedDefinedTerm{
			{
				Name: "Full Stack Development",
				Descriptions: []string{
					"Develop both frontend and backend components of web applications",
					"Create responsive user interfaces and RESTful APIs",
					"Integrate frontend and backend systems",
				},
			},
			{
				Name: "Database Management",
				Descriptions: []string{
					"Design and maintain database schemas",
					"Write efficient SQL queries and stored procedures",
					"Implement database optimization strategies",
				},
			},
			{
				Name: "Application Integration",
				Descriptions: []string{
					"Integrate third-party APIs and services",
					"Implement authentication and authorization",
					"Ensure seamless data flow between systems",
				},
			},
		},
		RequiredExperiences: []ExperienceRequirement{
			{
				Duration:             "P3Y",
				Descriptions:         []string{"Full stack web development experience"},
				ExperienceCategories: workExperience,
			},
			{
				Duration:             "P2Y",
				Descriptions:         []string{"API design and database management"},
				ExperienceCategories: workExperience,
			},
		},
		RequiredCredentials: bsComputerScience,
	},
	"JDX-003": {
		Responsibilities: []AnnotatedDefinedTerm{
			{
				Name: "Infrastructure Management",
				Descriptions: []string{
					"Design, implement, and maintain cloud infrastructure",
					"Manage CI/CD pipelines and deployment automation",
					"Monitor and optimize system performance and reliability",
				},
			},
			{
				Name: "Container Orchestration",
				Descriptions: []string{
					"Manage containerized applications with Docker and Kubernetes",
					"Implement infrastructure as code (IaC)",
					"Ensure high availability and disaster recovery",
				},
			},
			{
				Name: "DevOps Practices",
				Descriptions: []string{
					"Implement automation for testing, building, and deployment",
					"Manage configuration and secrets",
					"Collaborate with development teams on deployment strategies",
				},
			},
		},
		RequiredExperiences: []ExperienceRequirement{
			{
				Duration:             "P4Y",
				Descriptions:         []string{"DevOps or infrastructure engineering experience"},
				ExperienceCategories: workExperience,
			},
			{
				Duration:             "P3Y",
				Descriptions:         []string{"Cloud infrastructure management and CI/CD"},
				ExperienceCategories: workExperience,
			},
		},
		RequiredCredentials: bsComputerScience,
	},
}
