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

// ContractOutcome is how the contract ended.
type ContractOutcome string

const (
	OutcomeVictory ContractOutcome = "Victory"
	OutcomeDefeat  ContractOutcome = "Defeat"
	OutcomeRetreat ContractOutcome = "Retreat"
)

// ParseContractOutcome parses an outcome name (case-insensitive).
func ParseContractOutcome(s string) (ContractOutcome, error) {
	for _, o := range []ContractOutcome{OutcomeVictory, OutcomeDefeat, OutcomeRetreat} {
		if strings.EqualFold(s, string(o)) {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown contract outcome %q", s)
}

// Contract holds the contract-level scalars used by salvage generation.
type Contract struct {
	Name                      string
	Outcome                   ContractOutcome
	SalvagePotential          int
	PercentageContractSalvage float64
	// FinalDifficulty gates rare loot. It is zeroed while an unrecovered mech is
	// salvaged and restored afterwards.
	FinalDifficulty int
}
