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
	"fmt"

	"github.com/customcomponents/salvage-engine/internal/logging"
	"github.com/customcomponents/salvage-engine/pkg/core"
)

// rarityOverride is the state withSuppressedRarity replaces.
type rarityOverride struct {
	rareUpgrade     float64
	rareWeapon      float64
	veryRareUpgrade float64
	veryRareWeapon  float64
	difficulty      int
}

func (r *run) snapshotRarity() rarityOverride {
	return rarityOverride{
		rareUpgrade:     r.constants.RareUpgradeChance,
		rareWeapon:      r.constants.RareWeaponChance,
		veryRareUpgrade: r.constants.VeryRareUpgradeChance,
		veryRareWeapon:  r.constants.VeryRareWeaponChance,
		difficulty:      r.contract.FinalDifficulty,
	}
}

func (r *run) applyRarity(o rarityOverride) {
	r.constants.RareUpgradeChance = o.rareUpgrade
	r.constants.RareWeaponChance = o.rareWeapon
	r.constants.VeryRareUpgradeChance = o.veryRareUpgrade
	r.constants.VeryRareWeaponChance = o.veryRareWeapon
	r.contract.FinalDifficulty = o.difficulty
}

// withSuppressedRarity runs fn with rare and very rare chances and the
// contract difficulty zeroed. The previous values are restored on every exit
// path, including a panic in fn.
func (r *run) withSuppressedRarity(fn func()) {
	saved := r.snapshotRarity()
	defer func() {
		r.applyRarity(saved)
		r.logger.V(logging.TRACE).Info("Rarity restored", "difficulty", saved.difficulty)
	}()
	r.applyRarity(rarityOverride{})
	fn()
}

// isolate runs fn as one unit step. An error or panic is logged and recorded
// and does not reach the caller.
func (r *run) isolate(stage, unit string, fn func() error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.fail(stage, unit, fmt.Errorf("panic: %v", rec))
		}
	}()
	if err := fn(); err != nil {
		r.fail(stage, unit, err)
	}
}

func (r *run) fail(stage, unit string, err error) {
	r.logger.Error(err, "Unit salvage step failed", "stage", stage, "unit", unit)
	r.recorder.UnitFailed(stage)
}

func unitName(unit *core.UnitResult) string {
	if unit == nil {
		return "<nil unit>"
	}
	return unit.Mech.DisplayName()
}
