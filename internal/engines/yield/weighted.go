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

package yield

import (
	"errors"
	"fmt"
	"math"

	"github.com/customcomponents/salvage-engine/pkg/config"
	"github.com/customcomponents/salvage-engine/pkg/core"
)

// WeightedCalculator scales the part max by the weighted share of the chassis
// that survived.
type WeightedCalculator struct {
	arm, head, leg, torso float64
	ctDestroyedParts      int
	legacy                bool
}

// NewWeightedCalculator creates a WeightedCalculator from the weights in settings.
func NewWeightedCalculator(settings *config.Settings) (*WeightedCalculator, error) {
	if settings == nil {
		return nil, errors.New("settings cannot be nil")
	}
	return &WeightedCalculator{
		arm:              settings.SalvageArmWeight,
		head:             settings.SalvageHeadWeight,
		leg:              settings.SalvageLegWeight,
		torso:            settings.SalvageTorsoWeight,
		ctDestroyedParts: settings.CenterTorsoDestroyedParts,
		legacy:           settings.LegacyPartWeighting,
	}, nil
}

// Parts computes the weighted part yield of mech.
func (c *WeightedCalculator) Parts(mech *core.MechDef, constants *config.SalvageConstants) (int, error) {
	limit, err := partMax(constants)
	if err != nil {
		return 0, err
	}
	if mech.IsLocationDestroyed(core.CenterTorso) {
		return clamp(c.ctDestroyedParts, limit), nil
	}

	total := 2*c.arm + c.head + 2*c.leg + 2*c.torso + 1
	if total <= 0 {
		return 0, fmt.Errorf("non-positive part weight total %.2f", total)
	}

	value := total
	if mech.IsLocationDestroyed(core.Head) {
		value -= c.head
	}
	if mech.IsLocationDestroyed(core.LeftTorso) {
		value -= c.torso
	}
	if mech.IsLocationDestroyed(core.RightTorso) {
		value -= c.torso
	}
	if mech.IsLocationDestroyed(core.LeftLeg) {
		value -= c.leg
	}
	if mech.IsLocationDestroyed(core.RightLeg) {
		value -= c.leg
	}
	if mech.IsLocationDestroyed(core.LeftArm) {
		value -= c.arm
	}
	secondArm := core.RightArm
	if c.legacy {
		secondArm = core.LeftLeg
	}
	if mech.IsLocationDestroyed(secondArm) {
		value -= c.arm
	}

	parts := int(math.Floor(float64(limit)*value/total + 0.5))
	return clamp(parts, limit), nil
}
