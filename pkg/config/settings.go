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

package config

import (
	"fmt"
)

// Settings selects the salvage algorithm variants and holds the parameters of
// the override variants.
type Settings struct {
	// OverrideRecoveryChance selects the weighted recovery roll instead of the
	// vanilla one.
	OverrideRecoveryChance bool `yaml:"overrideRecoveryChance" json:"overrideRecoveryChance"`

	// OverrideMechPartCalculation selects the weighted part yield instead of the
	// vanilla three-tier yield.
	OverrideMechPartCalculation bool `yaml:"overrideMechPartCalculation" json:"overrideMechPartCalculation"`

	// NoLootCTDestroyed suppresses component loot from mechs whose center torso
	// is destroyed.
	NoLootCTDestroyed bool `yaml:"noLootCTDestroyed" json:"noLootCTDestroyed"`

	// CheckCriticalComponent counts a destroyed critical component as a
	// destroyed mech.
	CheckCriticalComponent bool `yaml:"checkCriticalComponent" json:"checkCriticalComponent"`

	// SalvageUnrecoveredMech salvages unrecovered friendly mechs into the normal
	// pool with normal rarity instead of the suppressed consolation pool.
	SalvageUnrecoveredMech bool `yaml:"salvageUnrecoveredMech" json:"salvageUnrecoveredMech"`

	// LegacyPartWeighting reproduces the original weighted part formula, where
	// the second arm penalty keys on the left leg instead of the right arm.
	LegacyPartWeighting bool `yaml:"legacyPartWeighting" json:"legacyPartWeighting"`

	// Weighted recovery parameters (0.0-1.0)
	HeadRecoveryPenalty  float64 `yaml:"headRecoveryPenalty" json:"headRecoveryPenalty"`
	TorsoRecoveryPenalty float64 `yaml:"torsoRecoveryPenalty" json:"torsoRecoveryPenalty"`
	LimbRecoveryPenalty  float64 `yaml:"limbRecoveryPenalty" json:"limbRecoveryPenalty"`
	EjectRecoveryBonus   float64 `yaml:"ejectRecoveryBonus" json:"ejectRecoveryBonus"`

	// Weighted part yield parameters
	SalvageArmWeight   float64 `yaml:"salvageArmWeight" json:"salvageArmWeight"`
	SalvageHeadWeight  float64 `yaml:"salvageHeadWeight" json:"salvageHeadWeight"`
	SalvageLegWeight   float64 `yaml:"salvageLegWeight" json:"salvageLegWeight"`
	SalvageTorsoWeight float64 `yaml:"salvageTorsoWeight" json:"salvageTorsoWeight"`

	// CenterTorsoDestroyedParts is the weighted yield of a mech whose center
	// torso is destroyed.
	CenterTorsoDestroyedParts int `yaml:"centerTorsoDestroyedParts" json:"centerTorsoDestroyedParts"`
}

// DefaultSettings returns the vanilla policy with the stock override parameters.
func DefaultSettings() Settings {
	return Settings{
		OverrideRecoveryChance:      false,
		OverrideMechPartCalculation: false,
		NoLootCTDestroyed:           false,
		CheckCriticalComponent:      true,
		SalvageUnrecoveredMech:      false,
		HeadRecoveryPenalty:         0.15,
		TorsoRecoveryPenalty:        0.1,
		LimbRecoveryPenalty:         0.05,
		EjectRecoveryBonus:          0.25,
		SalvageArmWeight:            1,
		SalvageHeadWeight:           1,
		SalvageLegWeight:            2,
		SalvageTorsoWeight:          2,
		CenterTorsoDestroyedParts:   1,
	}
}

// Validate checks for invalid settings values.
func (s *Settings) Validate() error {
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"headRecoveryPenalty", s.HeadRecoveryPenalty},
		{"torsoRecoveryPenalty", s.TorsoRecoveryPenalty},
		{"limbRecoveryPenalty", s.LimbRecoveryPenalty},
		{"ejectRecoveryBonus", s.EjectRecoveryBonus},
	} {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %.2f", p.name, p.value)
		}
	}
	for _, w := range []struct {
		name  string
		value float64
	}{
		{"salvageArmWeight", s.SalvageArmWeight},
		{"salvageHeadWeight", s.SalvageHeadWeight},
		{"salvageLegWeight", s.SalvageLegWeight},
		{"salvageTorsoWeight", s.SalvageTorsoWeight},
	} {
		if w.value < 0 {
			return fmt.Errorf("%s must be >= 0, got %.2f", w.name, w.value)
		}
	}
	if s.CenterTorsoDestroyedParts < 1 {
		return fmt.Errorf("centerTorsoDestroyedParts must be >= 1, got %d", s.CenterTorsoDestroyedParts)
	}
	return nil
}
