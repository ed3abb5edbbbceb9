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

// MechDestroyer is implemented by capabilities that can declare the owning mech
// destroyed for salvage purposes.
type MechDestroyer interface {
	IsMechDestroyed(ref *ComponentRef, mech *MechDef) bool
}

// CapabilitiesOf returns every capability of def that implements T, in
// declaration order.
func CapabilitiesOf[T any](def *ComponentDef) []T {
	if def == nil {
		return nil
	}
	var out []T
	for _, c := range def.Capabilities {
		if v, ok := c.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// CriticalPart marks a component whose destruction alone destroys the mech,
// independent of the CheckCriticalComponent setting.
type CriticalPart struct{}

// IsMechDestroyed implements MechDestroyer.
func (CriticalPart) IsMechDestroyed(ref *ComponentRef, _ *MechDef) bool {
	return ref != nil && ref.IsDestroyed()
}

// LocationBound marks a component that takes the mech with it when the
// location it is mounted in is destroyed (cockpit-style equipment).
type LocationBound struct{}

// IsMechDestroyed implements MechDestroyer.
func (LocationBound) IsMechDestroyed(ref *ComponentRef, mech *MechDef) bool {
	return ref != nil && mech.IsLocationDestroyed(ref.MountedLocation)
}
