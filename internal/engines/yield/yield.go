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

// Package yield computes how many mech parts a destroyed mech is worth and
// adds them to a salvage pool.
package yield

import (
	"errors"
	"fmt"

	"github.com/customcomponents/salvage-engine/pkg/config"
	"github.com/customcomponents/salvage-engine/pkg/core"
)

var (
	errNoChassis    = errors.New("mech has no chassis id")
	errInvalidMax   = errors.New("mech part max must be at least 1")
	errInvalidParts = errors.New("part count must be at least 1")
)

// Calculator computes the part yield of a destroyed mech. The result is
// always within [1, constants.DefaultMechPartMax].
type Calculator interface {
	Parts(mech *core.MechDef, constants *config.SalvageConstants) (int, error)
}

// Strategy is an enumeration of the part yield algorithms.
type Strategy int

// enumeration of Strategy
const (
	TieredStrategy Strategy = iota
	WeightedStrategy
)

func (s Strategy) String() string {
	switch s {
	case TieredStrategy:
		return "Tiered"
	case WeightedStrategy:
		return "Weighted"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// StrategyFor returns the strategy selected by settings.
func StrategyFor(settings *config.Settings) Strategy {
	if settings != nil && settings.OverrideMechPartCalculation {
		return WeightedStrategy
	}
	return TieredStrategy
}

// New is a factory that creates a Calculator for the provided strategy.
func New(strategy Strategy, settings *config.Settings) (Calculator, error) {
	switch strategy {
	case TieredStrategy:
		return NewTieredCalculator(), nil
	case WeightedStrategy:
		return NewWeightedCalculator(settings)
	default:
		return nil, fmt.Errorf("unsupported part yield strategy: %v", strategy)
	}
}

// AddMechParts appends n parts of mech's chassis to pool.
func AddMechParts(pool *core.SalvagePool, mech *core.MechDef, n int) error {
	if mech == nil || mech.ChassisID == "" {
		return errNoChassis
	}
	if n < 1 {
		return fmt.Errorf("%w: got %d for %s", errInvalidParts, n, mech.ChassisID)
	}
	pool.Add(core.SalvageEntry{
		Type:  core.SalvageMechPart,
		DefID: mech.ChassisID,
		Tier:  core.ComponentFunctional,
		Count: n,
	})
	return nil
}

func partMax(constants *config.SalvageConstants) (int, error) {
	if constants.DefaultMechPartMax < 1 {
		return 0, fmt.Errorf("%w: got %d", errInvalidMax, constants.DefaultMechPartMax)
	}
	return constants.DefaultMechPartMax, nil
}

func clamp(n, limit int) int {
	if n < 1 {
		return 1
	}
	if n > limit {
		return limit
	}
	return n
}
