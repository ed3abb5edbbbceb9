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

// SalvageConstants is the game's salvage constants snapshot.
type SalvageConstants struct {
	// DestroyedMechRecoveryChance is the base chance (0.0-1.0) that a destroyed
	// friendly mech is recovered.
	DestroyedMechRecoveryChance float64 `yaml:"destroyedMechRecoveryChance" json:"destroyedMechRecoveryChance"`

	// Rarity admission chances (0.0-1.0)
	RareUpgradeChance     float64 `yaml:"rareUpgradeChance" json:"rareUpgradeChance"`
	RareWeaponChance      float64 `yaml:"rareWeaponChance" json:"rareWeaponChance"`
	VeryRareUpgradeChance float64 `yaml:"veryRareUpgradeChance" json:"veryRareUpgradeChance"`
	VeryRareWeaponChance  float64 `yaml:"veryRareWeaponChance" json:"veryRareWeaponChance"`

	// Contract salvage chance and per-lost-mech decay by outcome
	VictorySalvageChance               float64 `yaml:"victorySalvageChance" json:"victorySalvageChance"`
	VictorySalvageLostPerMechDestroyed float64 `yaml:"victorySalvageLostPerMechDestroyed" json:"victorySalvageLostPerMechDestroyed"`
	DefeatSalvageChance                float64 `yaml:"defeatSalvageChance" json:"defeatSalvageChance"`
	DefeatSalvageLostPerMechDestroyed  float64 `yaml:"defeatSalvageLostPerMechDestroyed" json:"defeatSalvageLostPerMechDestroyed"`
	RetreatSalvageChance               float64 `yaml:"retreatSalvageChance" json:"retreatSalvageChance"`
	RetreatSalvageLostPerMechDestroyed float64 `yaml:"retreatSalvageLostPerMechDestroyed" json:"retreatSalvageLostPerMechDestroyed"`

	// PrioritySalvageModifier is the share of the final salvage count offered
	// as priority picks.
	PrioritySalvageModifier float64 `yaml:"prioritySalvageModifier" json:"prioritySalvageModifier"`

	// ContractFloorSalvageBonus is added to the salvage budget of any contract
	// with a positive salvage potential.
	ContractFloorSalvageBonus int `yaml:"contractFloorSalvageBonus" json:"contractFloorSalvageBonus"`

	// DefaultMechPartMax is the number of parts that make up a full mech.
	DefaultMechPartMax int `yaml:"defaultMechPartMax" json:"defaultMechPartMax"`
}

// DefaultSalvageConstants returns the stock game constants.
func DefaultSalvageConstants() SalvageConstants {
	return SalvageConstants{
		DestroyedMechRecoveryChance:        0.6,
		RareUpgradeChance:                  0.1,
		RareWeaponChance:                   0.1,
		VeryRareUpgradeChance:              0.02,
		VeryRareWeaponChance:               0.02,
		VictorySalvageChance:               1.0,
		VictorySalvageLostPerMechDestroyed: 0.1,
		DefeatSalvageChance:                0.5,
		DefeatSalvageLostPerMechDestroyed:  0.1,
		RetreatSalvageChance:               0.5,
		RetreatSalvageLostPerMechDestroyed: 0.1,
		PrioritySalvageModifier:            0.25,
		ContractFloorSalvageBonus:          2,
		DefaultMechPartMax:                 3,
	}
}

// Validate checks for invalid constant values.
func (c *SalvageConstants) Validate() error {
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"destroyedMechRecoveryChance", c.DestroyedMechRecoveryChance},
		{"rareUpgradeChance", c.RareUpgradeChance},
		{"rareWeaponChance", c.RareWeaponChance},
		{"veryRareUpgradeChance", c.VeryRareUpgradeChance},
		{"veryRareWeaponChance", c.VeryRareWeaponChance},
		{"victorySalvageChance", c.VictorySalvageChance},
		{"defeatSalvageChance", c.DefeatSalvageChance},
		{"retreatSalvageChance", c.RetreatSalvageChance},
		{"prioritySalvageModifier", c.PrioritySalvageModifier},
	} {
		if p.value < 0 || p.value > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %.2f", p.name, p.value)
		}
	}
	for _, d := range []struct {
		name  string
		value float64
	}{
		{"victorySalvageLostPerMechDestroyed", c.VictorySalvageLostPerMechDestroyed},
		{"defeatSalvageLostPerMechDestroyed", c.DefeatSalvageLostPerMechDestroyed},
		{"retreatSalvageLostPerMechDestroyed", c.RetreatSalvageLostPerMechDestroyed},
	} {
		if d.value < 0 {
			return fmt.Errorf("%s must be >= 0, got %.2f", d.name, d.value)
		}
	}
	if c.ContractFloorSalvageBonus < 0 {
		return fmt.Errorf("contractFloorSalvageBonus must be >= 0, got %d", c.ContractFloorSalvageBonus)
	}
	if c.DefaultMechPartMax < 1 {
		return fmt.Errorf("defaultMechPartMax must be >= 1, got %d", c.DefaultMechPartMax)
	}
	return nil
}
