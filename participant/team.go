package participant

import "github.com/cwbhub/hivemind/core"

// Well-known participant ids of the default professional team. The routing
// tables in the collab and router packages reference these ids.
const (
	IDCTO       = "cto"
	IDArchitect = "architect"
	IDFullstack = "fullstack"
	IDMobile    = "mobile"
	IDDesigner  = "designer"
	IDQA        = "qa"
	IDDevOps    = "devops"
	IDPM        = "pm"
)

// DefaultTeam returns the eight scripted professionals the engine ships
// with: strategy, architecture, full stack, mobile, design, quality,
// infrastructure and project management.
func DefaultTeam() []core.Participant {
	return []core.Participant{
		NewCTO(),
		NewArchitect(),
		NewFullstack(),
		NewMobileEngineer(),
		NewDesigner(),
		NewQAEngineer(),
		NewDevOpsEngineer(),
		NewProjectManager(),
	}
}

// NewCTO returns the strategic/leadership participant. The requirement
// router falls back to this participant when nothing else matches.
func NewCTO() *Scripted {
	return NewScripted(Persona{
		Profile: core.Profile{
			ID:   IDCTO,
			Name: "Elena Marsh",
			Role: "Chief Technology Officer",
			Specialties: []string{
				"strategy", "vision", "roadmap", "innovation", "business",
				"scalability", "leadership", "investment", "growth", "market",
			},
		},
		Voice: "long-term technology strategy, business viability and innovation potential",
		Focus: []FocusArea{
			{Title: "Strategic Viability", Comment: "the initiative must align with the long-term technology roadmap and create durable business value"},
			{Title: "Technology Impact", Comment: "prefer proven, scalable building blocks over novelty; evaluate how the choice shifts the overall stack"},
			{Title: "Scalability and Future", Comment: "design decisions must survive a tenfold growth in load and team size"},
			{Title: "Risks and Opportunities", Comment: "weigh vendor lock-in, security posture and the opportunity cost of delay"},
			{Title: "Strategic Recommendations", Comment: "start with the smallest investment that validates the direction, then scale deliberately"},
		},
		PeerNotes: map[string]string{
			IDArchitect: "providing strategic direction for the architectural decisions and validating their business fit",
			IDPM:        "aligning scope and timeline with the strategic priorities of the roadmap",
			IDDevOps:    "setting the infrastructure investment level matching the growth expectations",
		},
	})
}

// NewArchitect returns the software architecture participant.
func NewArchitect() *Scripted {
	return NewScripted(Persona{
		Profile: core.Profile{
			ID:   IDArchitect,
			Name: "Victor Reyes",
			Role: "Software Architect",
			Specialties: []string{
				"architecture", "design pattern", "structure", "component",
				"microservices", "api", "integration", "performance", "database",
				"system", "module", "interface", "security",
			},
		},
		Voice: "system structure, integration boundaries and non-functional requirements",
		Focus: []FocusArea{
			{Title: "Architecture Fit", Comment: "decompose the problem into components with explicit contracts and minimal coupling"},
			{Title: "Data and Integration", Comment: "define ownership of data early; integrations go through versioned interfaces"},
			{Title: "Performance and Security", Comment: "identify the critical paths and the trust boundaries before implementation starts"},
			{Title: "Evolution", Comment: "prefer designs that can be changed piecewise over designs that must be replaced wholesale"},
		},
		PeerNotes: map[string]string{
			IDCTO:       "translating the strategic direction into a concrete technical architecture",
			IDFullstack: "handing over component contracts and reviewing implementation trade-offs",
			IDMobile:    "defining the API surface and offline-sync semantics the mobile client depends on",
			IDQA:        "making the architecture observable and testable at its seams",
			IDDevOps:    "shaping deployment units and operational boundaries",
		},
	})
}

// NewFullstack returns the full stack engineering participant.
func NewFullstack() *Scripted {
	return NewScripted(Persona{
		Profile: core.Profile{
			ID:   IDFullstack,
			Name: "Sofia Lane",
			Role: "Full Stack Engineer",
			Specialties: []string{
				"development", "code", "implementation", "frontend", "backend",
				"fullstack", "framework", "library", "function", "web", "api",
			},
		},
		Voice: "pragmatic implementation across frontend and backend",
		Focus: []FocusArea{
			{Title: "Implementation Path", Comment: "slice the work into vertically integrated increments that ship end to end"},
			{Title: "Technology Choices", Comment: "use the boring, well-supported option unless a requirement rules it out"},
			{Title: "API Design", Comment: "design the API from the consumer's point of view and keep error handling explicit"},
			{Title: "Maintainability", Comment: "optimize for the next reader; tests and types are cheaper than debugging sessions"},
		},
		PeerNotes: map[string]string{
			IDArchitect: "validating that the proposed structure is implementable within the iteration budget",
			IDDesigner:  "turning the design system into reusable UI components",
			IDQA:        "agreeing on the test pyramid and the seams for automation",
			IDMobile:    "aligning shared API contracts between web and mobile clients",
		},
	})
}

// NewMobileEngineer returns the mobile engineering participant.
func NewMobileEngineer() *Scripted {
	return NewScripted(Persona{
		Profile: core.Profile{
			ID:   IDMobile,
			Name: "Gabriel Park",
			Role: "Mobile Engineer",
			Specialties: []string{
				"mobile", "app", "ios", "android", "smartphone", "tablet",
				"native", "hybrid", "offline", "sync", "push notification",
			},
		},
		Voice: "mobile platforms, offline behavior and device constraints",
		Focus: []FocusArea{
			{Title: "Platform Strategy", Comment: "choose native versus cross-platform based on the feature's reliance on device capabilities"},
			{Title: "Offline and Sync", Comment: "treat the network as optional; conflict resolution rules must be designed, not discovered"},
			{Title: "Resource Budget", Comment: "battery, bandwidth and startup time are features; budget them explicitly"},
			{Title: "Store and Distribution", Comment: "release trains and review cycles shape the delivery cadence"},
		},
		PeerNotes: map[string]string{
			IDFullstack: "aligning the backend API shape with the mobile client's batching and caching needs",
			IDDesigner:  "adapting the experience to platform conventions and small-screen ergonomics",
			IDArchitect: "agreeing on the sync protocol and its failure semantics",
			IDQA:        "covering the device and connectivity matrix in the test plan",
		},
	})
}

// NewDesigner returns the UX/UI design participant.
func NewDesigner() *Scripted {
	return NewScripted(Persona{
		Profile: core.Profile{
			ID:   IDDesigner,
			Name: "Isabella Cruz",
			Role: "UX/UI Designer",
			Specialties: []string{
				"design", "ux", "ui", "user", "experience", "usability",
				"wireframe", "prototype", "layout", "accessibility", "interface",
			},
		},
		Voice: "user experience, usability and accessibility",
		Focus: []FocusArea{
			{Title: "User Journey", Comment: "map the core journey first; every screen must earn its place in it"},
			{Title: "Usability", Comment: "reduce cognitive load; defaults should make the common case effortless"},
			{Title: "Accessibility", Comment: "contrast, focus order and assistive labels are requirements, not polish"},
			{Title: "Design System", Comment: "consistency comes from shared components, not from review meetings"},
		},
		PeerNotes: map[string]string{
			IDFullstack: "specifying interaction states precisely enough to implement without guesswork",
			IDMobile:    "resolving platform-specific interaction patterns for the mobile experience",
			IDPM:        "grounding scope discussions in user needs and journey priorities",
			IDQA:        "defining usability acceptance criteria that can actually be verified",
		},
	})
}

// NewQAEngineer returns the quality assurance participant.
func NewQAEngineer() *Scripted {
	return NewScripted(Persona{
		Profile: core.Profile{
			ID:   IDQA,
			Name: "Lucas Bennett",
			Role: "QA Automation Engineer",
			Specialties: []string{
				"quality", "test", "qa", "bug", "validation", "automation",
				"coverage", "reliability", "stability", "monitoring", "regression",
			},
		},
		Voice: "risk-based testing, automation and release confidence",
		Focus: []FocusArea{
			{Title: "Risk Assessment", Comment: "test effort follows risk; identify what failure costs the most and cover that first"},
			{Title: "Automation Strategy", Comment: "automate the regression surface; keep exploratory testing for the unknowns"},
			{Title: "Quality Gates", Comment: "define what blocks a release before the first release candidate exists"},
			{Title: "Observability", Comment: "production monitoring is the last test stage; alerts must map to user impact"},
		},
		PeerNotes: map[string]string{
			IDArchitect: "reviewing the design for testability and failure injection points",
			IDFullstack: "pairing on the automation seams inside the implementation",
			IDMobile:    "defining the device lab coverage and the offline test scenarios",
			IDDevOps:    "wiring the quality gates into the delivery pipeline",
		},
	})
}

// NewDevOpsEngineer returns the infrastructure/operations participant.
func NewDevOpsEngineer() *Scripted {
	return NewScripted(Persona{
		Profile: core.Profile{
			ID:   IDDevOps,
			Name: "Mara Ellis",
			Role: "DevOps Engineer",
			Specialties: []string{
				"infrastructure", "devops", "deploy", "pipeline", "ci/cd",
				"cloud", "aws", "docker", "kubernetes", "monitoring", "backup",
			},
		},
		Voice: "deployability, operability and infrastructure cost",
		Focus: []FocusArea{
			{Title: "Delivery Pipeline", Comment: "every artifact must be buildable and deployable from day one, automatically"},
			{Title: "Runtime Topology", Comment: "size the infrastructure for the realistic load, with a tested path to scale"},
			{Title: "Operability", Comment: "logs, metrics and runbooks are part of the deliverable, not an afterthought"},
			{Title: "Cost and Recovery", Comment: "know what an hour of downtime and a month of idle capacity each cost"},
		},
		PeerNotes: map[string]string{
			IDArchitect: "mapping components onto deployment units with clear scaling behavior",
			IDCTO:       "matching the infrastructure investment to the growth strategy",
			IDQA:        "providing production-like environments for the automated quality gates",
			IDFullstack: "agreeing on configuration, secrets handling and rollout mechanics",
		},
	})
}

// NewProjectManager returns the agile project management participant.
func NewProjectManager() *Scripted {
	return NewScripted(Persona{
		Profile: core.Profile{
			ID:   IDPM,
			Name: "Pedro Vance",
			Role: "Agile Project Manager",
			Specialties: []string{
				"project", "management", "planning", "schedule", "resources",
				"team", "sprint", "scrum", "kanban", "agile", "milestone",
				"stakeholder", "delivery", "risk",
			},
		},
		Voice: "delivery planning, team coordination and stakeholder alignment",
		Focus: []FocusArea{
			{Title: "Scope and Sequencing", Comment: "define the smallest releasable slice and sequence the rest by learning value"},
			{Title: "Team and Capacity", Comment: "plans follow capacity; name the dependencies between specialties explicitly"},
			{Title: "Stakeholder Alignment", Comment: "agree on the definition of done and the demo cadence before work starts"},
			{Title: "Delivery Risk", Comment: "track the two or three assumptions that, if wrong, invalidate the plan"},
		},
		PeerNotes: map[string]string{
			IDCTO:       "aligning delivery milestones with the strategic checkpoints",
			IDDesigner:  "sequencing research and design ahead of the implementation sprints",
			IDArchitect: "converting architectural decisions into plannable work packages",
			IDQA:        "building stabilization and hardening time into the release plan",
		},
	})
}
