package router

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DefaultFallbackID is the strategic/leadership participant of the default
// team, returned when no expertise matches a request.
const DefaultFallbackID = "cto"

// ExpertiseConfig is the YAML representation of the selector's expertise
// table, so routing stays data-driven and adjustable without code changes.
//
//	fallback: cto
//	participants:
//	  mobile:
//	    primary: [mobile, development]
//	    secondary: [design, quality]
//	    keywords: [mobile, app, ios, android]
type ExpertiseConfig struct {
	Fallback     string               `yaml:"fallback"`
	Participants map[string]Expertise `yaml:"participants"`
}

// LoadExpertise parses an expertise table from YAML. Use the result via
// Options.Expertise / Options.FallbackID.
func LoadExpertise(r io.Reader) (*ExpertiseConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read expertise config: %w", err)
	}
	var cfg ExpertiseConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse expertise config: %w", err)
	}
	if len(cfg.Participants) == 0 {
		return nil, fmt.Errorf("expertise config declares no participants")
	}
	if cfg.Fallback == "" {
		cfg.Fallback = DefaultFallbackID
	}
	return &cfg, nil
}

// DefaultExpertise returns the expertise table for the default professional
// team.
func DefaultExpertise() map[string]Expertise {
	return map[string]Expertise{
		"cto": {
			Primary:   []RequirementType{TypeStrategic},
			Secondary: []RequirementType{TypeArchitectural, TypeInfrastructure},
			Keywords:  []string{"strategy", "vision", "innovation", "leadership", "business"},
		},
		"architect": {
			Primary:   []RequirementType{TypeArchitectural},
			Secondary: []RequirementType{TypeDevelopment, TypeQuality},
			Keywords:  []string{"architecture", "pattern", "system", "performance", "integration"},
		},
		"fullstack": {
			Primary:   []RequirementType{TypeDevelopment},
			Secondary: []RequirementType{TypeArchitectural, TypeQuality},
			Keywords:  []string{"development", "fullstack", "frontend", "backend", "api"},
		},
		"mobile": {
			Primary:   []RequirementType{TypeMobile, TypeDevelopment},
			Secondary: []RequirementType{TypeDesign, TypeQuality},
			Keywords:  []string{"mobile", "app", "ios", "android", "native", "offline"},
		},
		"designer": {
			Primary:   []RequirementType{TypeDesign},
			Secondary: []RequirementType{TypeMobile, TypeDevelopment},
			Keywords:  []string{"design", "ux", "ui", "user", "interface", "experience"},
		},
		"qa": {
			Primary:   []RequirementType{TypeQuality},
			Secondary: []RequirementType{TypeDevelopment, TypeInfrastructure},
			Keywords:  []string{"quality", "test", "qa", "automation", "bug", "validation"},
		},
		"devops": {
			Primary:   []RequirementType{TypeInfrastructure},
			Secondary: []RequirementType{TypeQuality, TypeArchitectural},
			Keywords:  []string{"infrastructure", "devops", "cloud", "deploy", "ci/cd"},
		},
		"pm": {
			Primary:   []RequirementType{TypeProjectManagement},
			Secondary: []RequirementType{TypeStrategic, TypeQuality},
			Keywords:  []string{"project", "management", "agile", "scrum", "planning"},
		},
	}
}
