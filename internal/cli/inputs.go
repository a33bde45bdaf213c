package cli

import (
	"github.com/smartshark/sharkdb-cli/internal/plan"
)

const (
	// FlagPlanFile is the '--plan-file' flag name shared by the plan-driven commands
	FlagPlanFile      = "plan-file"
	FlagPlanFileUsage = "Specify the path of a provisioning plan file (defaults to the replication kit's built-in plan)"
)

// PlanInputs are the inputs shared by commands that operate on a provisioning plan
type PlanInputs struct {
	PlanFile string
}

// Plan resolves the effective provisioning plan: the plan file if one was
// specified, the replication kit's built-in plan otherwise
func (i PlanInputs) Plan() (plan.Plan, error) {
	if i.PlanFile != "" {
		return plan.Load(i.PlanFile)
	}
	return plan.Default(), nil
}
