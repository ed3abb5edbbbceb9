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

import (
	"fmt"
	"strings"
)

// ChassisLocation identifies a structural location on a mech.
type ChassisLocation int

// enumeration of ChassisLocation
const (
	Head ChassisLocation = iota
	CenterTorso
	LeftTorso
	RightTorso
	LeftArm
	RightArm
	LeftLeg
	RightLeg
	NumLocations
)

var locationNames = [NumLocations]string{
	"Head", "CenterTorso", "LeftTorso", "RightTorso", "LeftArm", "RightArm", "LeftLeg", "RightLeg",
}

var locationShortNames = [NumLocations]string{"HD", "CT", "LT", "RT", "LA", "RA", "LL", "RL"}

// TorsoLocations lists the torso locations in recovery-penalty order.
var TorsoLocations = []ChassisLocation{LeftTorso, CenterTorso, RightTorso}

// LimbLocations lists the limb locations in recovery-penalty order.
var LimbLocations = []ChassisLocation{RightArm, RightLeg, LeftArm, LeftLeg}

func (l ChassisLocation) String() string {
	if l < 0 || l >= NumLocations {
		return fmt.Sprintf("ChassisLocation(%d)", int(l))
	}
	return locationNames[l]
}

// Valid reports whether l names one of the eight mech locations.
func (l ChassisLocation) Valid() bool {
	return l >= 0 && l < NumLocations
}

// ParseLocation accepts both the long names ("CenterTorso", "Center Torso")
// and the short record-sheet forms ("CT").
func ParseLocation(name string) (ChassisLocation, error) {
	compact := strings.ReplaceAll(strings.TrimSpace(name), " ", "")
	for i := ChassisLocation(0); i < NumLocations; i++ {
		if strings.EqualFold(compact, locationNames[i]) || strings.EqualFold(compact, locationShortNames[i]) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown chassis location %q", name)
}

// LocationDamageLevel is the structural state of a single location.
type LocationDamageLevel int

const (
	LocationFunctional LocationDamageLevel = iota
	LocationDamaged
	LocationNonFunctional
	LocationDestroyed
)

var locationDamageNames = []string{"Functional", "Damaged", "NonFunctional", "Destroyed"}

func (d LocationDamageLevel) String() string {
	if d < 0 || int(d) >= len(locationDamageNames) {
		return fmt.Sprintf("LocationDamageLevel(%d)", int(d))
	}
	return locationDamageNames[d]
}

// ParseLocationDamageLevel parses the String form of a LocationDamageLevel.
// The empty string is treated as Functional.
func ParseLocationDamageLevel(s string) (LocationDamageLevel, error) {
	if s == "" {
		return LocationFunctional, nil
	}
	for i, n := range locationDamageNames {
		if strings.EqualFold(s, n) {
			return LocationDamageLevel(i), nil
		}
	}
	return 0, fmt.Errorf("unknown location damage level %q", s)
}
