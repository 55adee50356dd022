package core

// Strategy names the way the synthesizer weighs contributions when building
// the final response.
type Strategy string

const (
	// StrategyHierarchical weighs the designated lead participant's
	// perspective highest.
	StrategyHierarchical Strategy = "hierarchical"
	// StrategyCollaborative weighs all perspectives equally.
	StrategyCollaborative Strategy = "collaborative"
	// StrategyComplementary applies when only one or two participants
	// contributed and their perspectives are merged side by side.
	StrategyComplementary Strategy = "complementary"
)

// SynthesisResult is the structured product of one completed pipeline run,
// produced once per run (including each iteration).
type SynthesisResult struct {
	Strategy              Strategy `json:"strategy"`
	MainSolution          string   `json:"main_solution"`
	AlternativeApproaches []string `json:"alternative_approaches"`
	ImplementationPlan    string   `json:"implementation_plan"`
	RiskAssessment        string   `json:"risk_assessment"`
	SuccessMetrics        []string `json:"success_metrics"`
	NextSteps             []string `json:"next_steps"`
	Confidence            float64  `json:"confidence"`
}
