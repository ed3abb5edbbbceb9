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

// SalvageType distinguishes mech parts from components.
type SalvageType string

const (
	SalvageMechPart  SalvageType = "MechPart"
	SalvageComponent SalvageType = "Component"
)

// SalvageEntry is a single salvage record offered to the player.
type SalvageEntry struct {
	Type SalvageType
	// DefID is the chassis id for mech parts and the component definition id
	// for components.
	DefID         string
	Def           *ComponentDef
	ComponentType ComponentType
	Rarity        Rarity
	Tier          ComponentDamageLevel
	Count         int
	// Excludable entries are dropped by the salvage filter when their definition
	// is excluded.
	Excludable bool
}

// SalvagePool is an ordered salvage list.
type SalvagePool []SalvageEntry

// Add appends e to the pool.
func (p *SalvagePool) Add(e SalvageEntry) {
	*p = append(*p, e)
}

// Len returns the number of entries.
func (p SalvagePool) Len() int {
	return len(p)
}

// TotalCount sums Count over all entries.
func (p SalvagePool) TotalCount() int {
	n := 0
	for _, e := range p {
		n += e.Count
	}
	return n
}
