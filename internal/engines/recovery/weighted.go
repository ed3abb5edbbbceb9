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

package recovery

import (
	"context"
	"errors"

	"github.com/customcomponents/salvage-engine/internal/engines/common"
	"github.com/customcomponents/salvage-engine/internal/logging"
	"github.com/customcomponents/salvage-engine/pkg/config"
	"github.com/customcomponents/salvage-engine/pkg/core"
)

// WeightedPolicy adjusts the base recovery chance by location damage and pilot
// ejection before rolling.
type WeightedPolicy struct {
	headPenalty  float64
	torsoPenalty float64
	limbPenalty  float64
	ejectBonus   float64
}

// NewWeightedPolicy creates a WeightedPolicy from the override parameters in settings.
func NewWeightedPolicy(settings *config.Settings) (*WeightedPolicy, error) {
	if settings == nil {
		return nil, errors.New("settings cannot be nil")
	}
	return &WeightedPolicy{
		headPenalty:  settings.HeadRecoveryPenalty,
		torsoPenalty: settings.TorsoRecoveryPenalty,
		limbPenalty:  settings.LimbRecoveryPenalty,
		ejectBonus:   settings.EjectRecoveryBonus,
	}, nil
}

// Chance returns the adjusted recovery chance for unit. It may fall outside [0, 1].
func (p *WeightedPolicy) Chance(unit *core.UnitResult, constants *config.SalvageConstants) float64 {
	mech := unit.Mech
	chance := constants.DestroyedMechRecoveryChance
	if mech.IsLocationDestroyed(core.Head) {
		chance -= p.headPenalty
	}
	chance -= p.torsoPenalty * float64(common.LocationsDestroyed(mech, core.TorsoLocations...))
	chance -= p.limbPenalty * float64(common.LocationsDestroyed(mech, core.LimbLocations...))
	if unit.Pilot.Ejected {
		chance += p.ejectBonus
	}
	return chance
}

// Resolve rolls recovery against the adjusted chance.
func (p *WeightedPolicy) Resolve(ctx context.Context, unit *core.UnitResult, constants *config.SalvageConstants, rng core.Random) Outcome {
	chance := p.Chance(unit, constants)
	draw := rng.Float64()
	outcome := lostIf(chance, draw)
	unit.MechLost = outcome == Lost

	logging.LoggerFrom(ctx).V(logging.DEBUG).Info("Weighted recovery roll",
		"mech", unit.Mech.DisplayName(),
		"chance", chance,
		"draw", draw,
		"outcome", outcome.String())
	return outcome
}
