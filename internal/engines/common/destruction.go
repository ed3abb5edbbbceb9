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

// Package common holds helpers shared by the salvage engines.
package common

import (
	"github.com/customcomponents/salvage-engine/pkg/config"
	"github.com/customcomponents/salvage-engine/pkg/core"
)

// IsDestroyed decides whether mech counts as destroyed for salvage purposes.
//
// A mech is destroyed when the battle engine flagged it, when critical
// component checks are enabled and a critical component is destroyed, or when
// any installed component exposes a MechDestroyer capability that says so.
func IsDestroyed(mech *core.MechDef, settings *config.Settings) bool {
	if mech == nil {
		return false
	}
	if mech.Destroyed {
		return true
	}

	if settings != nil && settings.CheckCriticalComponent {
		for _, ref := range mech.Inventory {
			if ref == nil {
				continue
			}
			if ref.Def != nil && ref.Def.CriticalComponent && ref.IsDestroyed() {
				return true
			}
		}
	}

	for _, ref := range mech.Inventory {
		if ref == nil {
			continue
		}
		for _, d := range core.CapabilitiesOf[core.MechDestroyer](ref.Def) {
			if d.IsMechDestroyed(ref, mech) {
				return true
			}
		}
	}
	return false
}

// LocationsDestroyed counts how many of locs are destroyed on mech.
func LocationsDestroyed(mech *core.MechDef, locs ...core.ChassisLocation) int {
	n := 0
	for _, loc := range locs {
		if mech.IsLocationDestroyed(loc) {
			n++
		}
	}
	return n
}
