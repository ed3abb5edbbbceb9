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

package core

// Random is the sequential random source shared by a salvage run.
// *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// MechDef is a mech as it left the battlefield.
type MechDef struct {
	ID        string
	ChassisID string
	Name      string
	// Destroyed is the battle engine's own destroyed flag.
	Destroyed bool
	Locations [NumLocations]LocationDamageLevel
	Inventory []*ComponentRef
}

// IsLocationDestroyed reports whether loc is destroyed. Out-of-range locations
// are never destroyed.
func (m *MechDef) IsLocationDestroyed(loc ChassisLocation) bool {
	if m == nil || !loc.Valid() {
		return false
	}
	return m.Locations[loc] == LocationDestroyed
}

// IsLocationDamaged reports whether loc took any structural damage.
func (m *MechDef) IsLocationDamaged(loc ChassisLocation) bool {
	if m == nil || !loc.Valid() {
		return false
	}
	return m.Locations[loc] != LocationFunctional
}

// DisplayName returns Name, falling back to the chassis id.
func (m *MechDef) DisplayName() string {
	if m == nil {
		return "<nil mech>"
	}
	if m.Name != "" {
		return m.Name
	}
	return m.ChassisID
}

// VehicleDef is an enemy vehicle. Vehicles have no location gating for loot.
type VehicleDef struct {
	ID        string
	ChassisID string
	Name      string
	Inventory []*ComponentRef
}

// DisplayName returns Name, falling back to the chassis id.
func (v *VehicleDef) DisplayName() string {
	if v == nil {
		return "<nil vehicle>"
	}
	if v.Name != "" {
		return v.Name
	}
	return v.ChassisID
}

// Pilot carries the pilot state relevant to salvage.
type Pilot struct {
	Ejected       bool
	Incapacitated bool
}

// UnitResult is a mech and its pilot after the engagement.
type UnitResult struct {
	Mech  *MechDef
	Pilot Pilot
	// MechLost is written by the recovery policy: true when a destroyed friendly
	// mech could not be recovered.
	MechLost bool
}
