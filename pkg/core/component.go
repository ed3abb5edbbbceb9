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
	"slices"
	"strings"
)

// ComponentDamageLevel is the damage state of a mounted component.
type ComponentDamageLevel int

const (
	ComponentFunctional ComponentDamageLevel = iota
	ComponentPenalized
	ComponentNonFunctional
	ComponentDestroyed
)

var componentDamageNames = []string{"Functional", "Penalized", "NonFunctional", "Destroyed"}

func (d ComponentDamageLevel) String() string {
	if d < 0 || int(d) >= len(componentDamageNames) {
		return fmt.Sprintf("ComponentDamageLevel(%d)", int(d))
	}
	return componentDamageNames[d]
}

// ParseComponentDamageLevel parses the String form of a ComponentDamageLevel.
// The empty string is treated as Functional.
func ParseComponentDamageLevel(s string) (ComponentDamageLevel, error) {
	if s == "" {
		return ComponentFunctional, nil
	}
	for i, n := range componentDamageNames {
		if strings.EqualFold(s, n) {
			return ComponentDamageLevel(i), nil
		}
	}
	return 0, fmt.Errorf("unknown component damage level %q", s)
}

// ComponentType is the broad class of a component definition.
type ComponentType string

const (
	ComponentWeapon        ComponentType = "Weapon"
	ComponentUpgrade       ComponentType = "Upgrade"
	ComponentAmmunitionBox ComponentType = "AmmunitionBox"
	ComponentHeatSink      ComponentType = "HeatSink"
	ComponentJumpJet       ComponentType = "JumpJet"
	ComponentOther         ComponentType = "Other"
)

var componentTypes = []ComponentType{
	ComponentWeapon, ComponentUpgrade, ComponentAmmunitionBox, ComponentHeatSink, ComponentJumpJet, ComponentOther,
}

// ParseComponentType parses a component type name, ignoring case.
// The empty string is treated as Other.
func ParseComponentType(s string) (ComponentType, error) {
	if s == "" {
		return ComponentOther, nil
	}
	for _, ct := range componentTypes {
		if strings.EqualFold(s, string(ct)) {
			return ct, nil
		}
	}
	return "", fmt.Errorf("unknown component type %q", s)
}

// Rarity is the loot rarity tier of a component definition.
type Rarity string

const (
	RarityCommon   Rarity = "Common"
	RarityRare     Rarity = "Rare"
	RarityVeryRare Rarity = "VeryRare"
)

// ComponentDef is a component definition shared by every mounted instance.
type ComponentDef struct {
	ID   string
	Type ComponentType
	// Rarity gates admission to the salvage pool; the zero value is Common.
	Rarity Rarity
	// MinDifficulty is the contract difficulty required before a rare or very
	// rare definition can be rolled for at all.
	MinDifficulty     int
	CriticalComponent bool
	Tags              []string
	// Capabilities is the capability set of this definition. See CapabilitiesOf.
	Capabilities []any
}

// HasTag reports whether the definition carries tag (case-insensitive).
func (d *ComponentDef) HasTag(tag string) bool {
	if d == nil {
		return false
	}
	return slices.ContainsFunc(d.Tags, func(t string) bool {
		return strings.EqualFold(t, tag)
	})
}

// EffectiveRarity returns Common for an unset rarity.
func (d *ComponentDef) EffectiveRarity() Rarity {
	if d == nil || d.Rarity == "" {
		return RarityCommon
	}
	return d.Rarity
}

// ComponentRef is a component instance mounted on a unit.
type ComponentRef struct {
	ComponentDefID  string
	Def             *ComponentDef
	MountedLocation ChassisLocation
	DamageLevel     ComponentDamageLevel
}

// IsDestroyed reports whether the instance itself is destroyed.
func (r *ComponentRef) IsDestroyed() bool {
	return r.DamageLevel == ComponentDestroyed
}
