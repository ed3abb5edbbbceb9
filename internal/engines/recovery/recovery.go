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

// Package recovery decides whether a destroyed friendly mech is recovered
// after an engagement or permanently lost.
package recovery

import (
	"context"
	"fmt"

	"github.com/customcomponents/salvage-engine/pkg/config"
	"github.com/customcomponents/salvage-engine/pkg/core"
)

// Outcome is the result of a recovery roll.
type Outcome int

const (
	Recovered Outcome = iota
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Recovered:
		return "Recovered"
	case Lost:
		return "Lost"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Policy resolves the recovery of a destroyed friendly unit.
type Policy interface {
	// Resolve rolls recovery for unit and records the result in unit.MechLost.
	// Callers only pass units that were classified destroyed.
	Resolve(ctx context.Context, unit *core.UnitResult, constants *config.SalvageConstants, rng core.Random) Outcome
}

// Strategy is an enumeration of the recovery algorithms.
type Strategy int

// enumeration of Strategy
const (
	SimpleStrategy Strategy = iota
	WeightedStrategy
)

func (s Strategy) String() string {
	switch s {
	case SimpleStrategy:
		return "Simple"
	case WeightedStrategy:
		return "Weighted"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// StrategyFor returns the strategy selected by settings.
func StrategyFor(settings *config.Settings) Strategy {
	if settings != nil && settings.OverrideRecoveryChance {
		return WeightedStrategy
	}
	return SimpleStrategy
}

// New is a factory that creates a Policy for the provided strategy.
func New(strategy Strategy, settings *config.Settings) (Policy, error) {
	switch strategy {
	case SimpleStrategy:
		return NewSimplePolicy(), nil
	case WeightedStrategy:
		return NewWeightedPolicy(settings)
	default:
		return nil, fmt.Errorf("unsupported recovery strategy: %v", strategy)
	}
}

// lostIf applies a roll: the unit is lost when chance is below the draw.
func lostIf(chance, draw float64) Outcome {
	if chance < draw {
		return Lost
	}
	return Recovered
}
