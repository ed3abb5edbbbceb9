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

package collector

import (
	"github.com/customcomponents/salvage-engine/pkg/config"
	"github.com/customcomponents/salvage-engine/pkg/core"
)

// Admit decides whether a component of def enters the salvage pool.
func Admit(def *core.ComponentDef, constants *config.SalvageConstants, difficulty int, rng core.Random) bool {
	chance, gated := admissionChance(def, constants)
	if !gated {
		return true
	}
	if difficulty < def.MinDifficulty {
		return false
	}
	return rng.Float64() < chance
}

// admissionChance returns the chance for def and whether def is subject to a roll.
func admissionChance(def *core.ComponentDef, constants *config.SalvageConstants) (float64, bool) {
	weapon := def.Type == core.ComponentWeapon
	switch def.EffectiveRarity() {
	case core.RarityRare:
		if weapon {
			return constants.RareWeaponChance, true
		}
		return constants.RareUpgradeChance, true
	case core.RarityVeryRare:
		if weapon {
			return constants.VeryRareWeaponChance, true
		}
		return constants.VeryRareUpgradeChance, true
	default:
		return 0, false
	}
}
