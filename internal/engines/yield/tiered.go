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
	"github.com/customcomponents/salvage-engine/pkg/config"
	"github.com/customcomponents/salvage-engine/pkg/core"
)

// Tiered yields.
const (
	fullParts        = 3
	legsMissingParts = 2
	coreMissingParts = 1
)

// TieredCalculator is the stock three-tier part yield.
type TieredCalculator struct{}

// NewTieredCalculator creates a TieredCalculator.
func NewTieredCalculator() *TieredCalculator {
	return &TieredCalculator{}
}

// Parts returns 1 without a center torso, 2 without both legs, 3 otherwise.
func (c *TieredCalculator) Parts(mech *core.MechDef, constants *config.SalvageConstants) (int, error) {
	limit, err := partMax(constants)
	if err != nil {
		return 0, err
	}
	parts := fullParts
	switch {
	case mech.IsLocationDestroyed(core.CenterTorso):
		parts = coreMissingParts
	case mech.IsLocationDestroyed(core.LeftLeg) && mech.IsLocationDestroyed(core.RightLeg):
		parts = legsMissingParts
	}
	return clamp(parts, limit), nil
}
