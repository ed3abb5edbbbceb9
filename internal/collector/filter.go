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

package collector

import (
	"github.com/customcomponents/salvage-engine/pkg/core"
)

// BlacklistTag marks component definitions that never appear as salvage.
const BlacklistTag = "BLACKLISTED"

// Excluder reports whether salvage of def is disallowed.
type Excluder func(def *core.ComponentDef) bool

// Blacklisted excludes definitions tagged BLACKLISTED.
func Blacklisted(def *core.ComponentDef) bool {
	return def.HasTag(BlacklistTag)
}

type entryKey struct {
	typ  core.SalvageType
	id   string
	tier core.ComponentDamageLevel
}

// Filter returns pool without excluded entries, with entries of the same
// type, definition and tier merged into the first one seen. A nil excluded
// keeps every entry. pool is not modified.
func Filter(pool core.SalvagePool, excluded Excluder) core.SalvagePool {
	out := make(core.SalvagePool, 0, len(pool))
	index := make(map[entryKey]int, len(pool))
	for _, e := range pool {
		if e.Excludable && excluded != nil && excluded(e.Def) {
			continue
		}
		key := entryKey{typ: e.Type, id: e.DefID, tier: e.Tier}
		if i, ok := index[key]; ok {
			out[i].Count += e.Count
			continue
		}
		index[key] = len(out)
		out = append(out, e)
	}
	return out
}
