package collab

import (
	"strings"
	"testing"

	"github.com/cwbhub/hivemind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_PairLookupIsUnordered(t *testing.T) {
	g := DefaultGraph()

	assert.Equal(t, core.CollabDecisionMaking, g.TypeOf("cto", "architect"))
	assert.Equal(t, core.CollabDecisionMaking, g.TypeOf("architect", "cto"))
	assert.Equal(t, 10, g.PriorityOf("cto", "architect"))
	assert.Equal(t, 10, g.PriorityOf("architect", "cto"))
}

func TestGraph_Defaults(t *testing.T) {
	g := DefaultGraph()

	// pairs without an entry get the neutral type and priority
	assert.Equal(t, core.CollabExpertiseSharing, g.TypeOf("cto", "qa"))
	assert.Equal(t, DefaultPriority, g.PriorityOf("cto", "qa"))

	// unknown participants have no preferred collaborators
	assert.Empty(t, g.Preferred("ghost"))
	assert.NotEmpty(t, g.Preferred("architect"))
}

func TestGraph_MobileDesignerPairing(t *testing.T) {
	g := DefaultGraph()
	assert.Equal(t, core.CollabProblemSolving, g.TypeOf("mobile", "designer"))
	assert.Contains(t, g.Preferred("mobile"), "designer")
}

func TestLoadGraph(t *testing.T) {
	g, err := LoadGraph(strings.NewReader(`
affinity:
  alpha: [beta, gamma]
  beta: [alpha]
pairs:
  - a: alpha
    b: beta
    type: decision_making
    priority: 9
  - a: beta
    b: gamma
    type: peer_review
    priority: 7
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"beta", "gamma"}, g.Preferred("alpha"))
	assert.Equal(t, core.CollabDecisionMaking, g.TypeOf("beta", "alpha"))
	assert.Equal(t, 9, g.PriorityOf("beta", "alpha"))
	assert.Equal(t, core.CollabPeerReview, g.TypeOf("gamma", "beta"))
	assert.Equal(t, DefaultPriority, g.PriorityOf("alpha", "gamma"))
}

func TestLoadGraph_Invalid(t *testing.T) {
	_, err := LoadGraph(strings.NewReader("::broken::"))
	assert.Error(t, err)
}
