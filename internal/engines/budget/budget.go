/*
Copyright 2025 The CustomComponents Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package budget computes the contract-level salvage slot counts.
package budget

import (
	"fmt"
	"math"

	"github.com/customcomponents/salvage-engine/pkg/config"
	"github.com/customcomponents/salvage-engine/pkg/core"
)

// MaxPrioritySalvage caps the priority salvage count.
const MaxPrioritySalvage = 7

// Input is the contract state the budget is derived from.
type Input struct {
	Outcome core.ContractOutcome

	// LostCount is the number of friendly units lost in the engagement.
	LostCount int

	SalvagePotential int

	// PercentageShare is the share (0.0-1.0) of the salvage potential granted
	// by the contract.
	PercentageShare float64
}

// Budget is the number of salvage picks offered to the player.
type Budget struct {
	FinalCount    int
	PriorityCount int
}

// Compute derives the salvage budget. It returns an error for inputs that
// violate the calculator's contract.
func Compute(in Input, constants *config.SalvageConstants) (Budget, error) {
	if constants == nil {
		return Budget{}, fmt.Errorf("salvage constants cannot be nil")
	}
	if in.LostCount < 0 {
		return Budget{}, fmt.Errorf("lost count must be >= 0, got %d", in.LostCount)
	}
	if in.SalvagePotential < 0 {
		return Budget{}, fmt.Errorf("salvage potential must be >= 0, got %d", in.SalvagePotential)
	}
	if math.IsNaN(in.PercentageShare) || math.IsInf(in.PercentageShare, 0) || in.PercentageShare < 0 {
		return Budget{}, fmt.Errorf("percentage share must be a non-negative number, got %v", in.PercentageShare)
	}

	base, decay, err := chanceFor(in.Outcome, constants)
	if err != nil {
		return Budget{}, err
	}
	adjusted := math.Max(0, base-decay*float64(in.LostCount))

	budget := float64(in.SalvagePotential) * in.PercentageShare
	if in.SalvagePotential > 0 {
		budget += float64(constants.ContractFloorSalvageBonus)
	}

	final := int(math.Floor(budget * adjusted))
	priority := min(MaxPrioritySalvage, int(math.Floor(float64(final)*constants.PrioritySalvageModifier)))
	// Priority picks never exceed total picks, even with a modifier above 1.
	priority = max(0, min(priority, final))

	return Budget{FinalCount: final, PriorityCount: priority}, nil
}

func chanceFor(outcome core.ContractOutcome, constants *config.SalvageConstants) (float64, float64, error) {
	switch outcome {
	case core.OutcomeVictory:
		return constants.VictorySalvageChance, constants.VictorySalvageLostPerMechDestroyed, nil
	case core.OutcomeDefeat:
		return constants.DefeatSalvageChance, constants.DefeatSalvageLostPerMechDestroyed, nil
	case core.OutcomeRetreat:
		return constants.RetreatSalvageChance, constants.RetreatSalvageLostPerMechDestroyed, nil
	default:
		return 0, 0, fmt.Errorf("unknown contract outcome %q", outcome)
	}
}
