package router

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var teamIDs = []string{"cto", "architect", "fullstack", "mobile", "designer", "qa", "devops", "pm"}

func TestSelectParticipants_MobileRequest(t *testing.T) {
	s := NewKeywordSelector()

	got := s.SelectParticipants(
		"Create a mobile app with offline support and a great user experience",
		teamIDs,
	)

	require.NotEmpty(t, got)
	assert.Contains(t, got, "mobile")
	assert.Contains(t, got, "designer")
	assert.Equal(t, "mobile", got[0], "strongest match leads the ranking")
}

func TestSelectParticipants_Deterministic(t *testing.T) {
	s := NewKeywordSelector()
	request := "Design a scalable microservices architecture with ci/cd pipeline"

	first := s.SelectParticipants(request, teamIDs)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.SelectParticipants(request, teamIDs))
	}
}

func TestSelectParticipants_CapsResult(t *testing.T) {
	s := NewKeywordSelector()

	// Touches every requirement type so many participants score.
	request := "strategy architecture development design quality test infrastructure " +
		"deploy project planning mobile app user interface api cloud"
	got := s.SelectParticipants(request, teamIDs)

	assert.LessOrEqual(t, len(got), maxParticipants)
	assert.NotEmpty(t, got)
}

func TestSelectParticipants_NeverEmpty(t *testing.T) {
	s := NewKeywordSelector()

	t.Run("unknown participants fall back to first available", func(t *testing.T) {
		got := s.SelectParticipants("anything at all", []string{"ghost-1", "ghost-2"})
		assert.Equal(t, []string{"ghost-1"}, got)
	})

	t.Run("no available yields configured fallback", func(t *testing.T) {
		got := s.SelectParticipants("anything at all", nil)
		assert.Equal(t, []string{DefaultFallbackID}, got)
	})
}

func TestSelectParticipants_BestScorerBelowThreshold(t *testing.T) {
	s := NewKeywordSelector(func(o *Options) {
		o.Expertise = map[string]Expertise{
			"niche": {Keywords: []string{"ledger"}},
		}
	})

	got := s.SelectParticipants("reconcile the ledger nightly", []string{"niche"})
	assert.Equal(t, []string{"niche"}, got)
}

func TestAnalyze_Classification(t *testing.T) {
	s := NewKeywordSelector()

	a := s.Analyze(
		"Build a complex distributed real-time platform with machine learning, "+
			"security compliance and ci/cd automation",
		teamIDs,
	)

	assert.NotEmpty(t, a.Types)
	assert.LessOrEqual(t, len(a.Types), maxTypes)
	assert.GreaterOrEqual(t, a.Complexity, 0.8)
	assert.LessOrEqual(t, a.Complexity, 1.0)
	assert.GreaterOrEqual(t, a.Priority, 1)
	assert.LessOrEqual(t, a.Priority, 10)
	assert.NotEmpty(t, a.Effort)
	assert.NotEmpty(t, a.Participants)
}

func TestAnalyze_DefaultsToDevelopment(t *testing.T) {
	s := NewKeywordSelector()
	a := s.Analyze("hmm", teamIDs)
	assert.Equal(t, []RequirementType{TypeDevelopment}, a.Types)
}

func TestDetectTechnologies_Capped(t *testing.T) {
	techs := detectTechnologies("react node python go docker kubernetes postgresql redis aws")
	assert.NotEmpty(t, techs)
	assert.LessOrEqual(t, len(techs), 5)
}

func TestLoadExpertise(t *testing.T) {
	cfg, err := LoadExpertise(strings.NewReader(`
fallback: architect
participants:
  mobile:
    primary: [mobile, development]
    secondary: [design]
    keywords: [mobile, app, ios, android]
  architect:
    primary: [architectural]
    keywords: [architecture, system]
`))
	require.NoError(t, err)
	assert.Equal(t, "architect", cfg.Fallback)
	require.Len(t, cfg.Participants, 2)
	assert.Equal(t, []RequirementType{TypeMobile, TypeDevelopment}, cfg.Participants["mobile"].Primary)

	s := NewKeywordSelector(func(o *Options) {
		o.Expertise = cfg.Participants
		o.FallbackID = cfg.Fallback
	})
	got := s.SelectParticipants("ship an ios app", []string{"mobile", "architect"})
	assert.Contains(t, got, "mobile")
}

func TestLoadExpertise_Errors(t *testing.T) {
	_, err := LoadExpertise(strings.NewReader("participants: {}"))
	assert.Error(t, err)

	_, err = LoadExpertise(strings.NewReader("::not yaml::"))
	assert.Error(t, err)
}
