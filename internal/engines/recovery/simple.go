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

	"github.com/customcomponents/salvage-engine/internal/logging"
	"github.com/customcomponents/salvage-engine/pkg/config"
	"github.com/customcomponents/salvage-engine/pkg/core"
)

// SimplePolicy rolls against the base recovery chance. A mech without a
// center torso is never recovered.
type SimplePolicy struct{}

// NewSimplePolicy creates a SimplePolicy.
func NewSimplePolicy() *SimplePolicy {
	return &SimplePolicy{}
}

// Resolve rolls recovery. No draw is consumed when the center torso is destroyed.
func (p *SimplePolicy) Resolve(ctx context.Context, unit *core.UnitResult, constants *config.SalvageConstants, rng core.Random) Outcome {
	logger := logging.LoggerFrom(ctx)

	if unit.Mech.IsLocationDestroyed(core.CenterTorso) {
		unit.MechLost = true
		logger.V(logging.DEBUG).Info("Center torso destroyed, mech lost", "mech", unit.Mech.DisplayName())
		return Lost
	}

	draw := rng.Float64()
	outcome := lostIf(constants.DestroyedMechRecoveryChance, draw)
	unit.MechLost = outcome == Lost

	logger.V(logging.DEBUG).Info("Recovery roll",
		"mech", unit.Mech.DisplayName(),
		"chance", constants.DestroyedMechRecoveryChance,
		"draw", draw,
		"outcome", outcome.String())
	return outcome
}
