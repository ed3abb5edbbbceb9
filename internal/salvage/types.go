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

package salvage

import (
	"errors"
	"fmt"

	"github.com/customcomponents/salvage-engine/pkg/config"
	"github.com/customcomponents/salvage-engine/pkg/core"
)

// ErrNoSimulation is returned when a run is requested without simulation state.
var ErrNoSimulation = errors.New("no active simulation")

var errNoContract = errors.New("request has no contract")

// Phase is the stage a run has reached.
type Phase int

const (
	PhaseInit Phase = iota
	PhaseClassifyLostUnits
	PhaseClassifyEnemyUnits
	PhaseClassifyVehicles
	PhaseComputeBudget
	PhaseDone
	PhaseAborted
)

var phaseNames = []string{
	"Init",
	"ClassifyLostUnits",
	"ClassifyEnemyUnits",
	"ClassifyVehicles",
	"ComputeBudget",
	"Done",
	"Aborted",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Simulation is the game state a run depends on.
type Simulation struct {
	// Constants is shared game state. A run overrides rarity chances on it
	// while salvaging unrecovered mechs and restores them afterwards.
	Constants *config.SalvageConstants

	// Random is the single draw source for the whole run.
	Random core.Random
}

// Request is the input of a run.
type Request struct {
	Contract *core.Contract

	// Simulation is nil when no game session is active.
	Simulation *Simulation

	// LostUnits are the friendly units taken out during the engagement.
	LostUnits []*core.UnitResult

	EnemyMechs    []*core.UnitResult
	EnemyVehicles []*core.VehicleDef
}

// Result is the outcome of a run.
type Result struct {
	// Ran is false when the run was rejected before processing any unit.
	Ran   bool
	Phase Phase

	// PotentialSalvage is the filtered pool the player picks from.
	PotentialSalvage core.SalvagePool

	// ForcedSalvage is the consolation salvage of unrecovered friendly mechs.
	ForcedSalvage core.SalvagePool

	// LostMechs are the friendly mechs that were not recovered.
	LostMechs []*core.MechDef

	FinalSalvageCount         int
	FinalPrioritySalvageCount int
}
