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
	"context"
	"errors"
	"fmt"

	"github.com/customcomponents/salvage-engine/internal/logging"
	"github.com/customcomponents/salvage-engine/pkg/config"
	"github.com/customcomponents/salvage-engine/pkg/core"
)

// ErrMissingDefinition is returned when an inventory entry has no component definition.
var ErrMissingDefinition = errors.New("component definition not found")

// LootInput holds the state loot collection reads.
type LootInput struct {
	// Constants provides the rarity admission chances.
	Constants *config.SalvageConstants

	// Difficulty is the contract difficulty rare components are gated on.
	Difficulty int

	// Random is the shared draw source.
	Random core.Random

	// SuppressIfCTDestroyed drops all component loot from mechs whose center
	// torso is destroyed.
	SuppressIfCTDestroyed bool
}

func (in LootInput) validate() error {
	if in.Constants == nil {
		return errors.New("loot input has no constants")
	}
	if in.Random == nil {
		return errors.New("loot input has no random source")
	}
	return nil
}

// CollectMech adds the surviving components of mech to pool.
// Entries added before an error stay in pool.
func CollectMech(ctx context.Context, pool *core.SalvagePool, mech *core.MechDef, in LootInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	logger := logging.LoggerFrom(ctx).WithValues("mech", mech.DisplayName())

	if in.SuppressIfCTDestroyed && mech.IsLocationDestroyed(core.CenterTorso) {
		logger.V(logging.DEBUG).Info("Center torso destroyed, no component loot")
		return nil
	}

	added := 0
	for _, ref := range mech.Inventory {
		if ref == nil || ref.IsDestroyed() || mech.IsLocationDestroyed(ref.MountedLocation) {
			continue
		}
		ok, err := AddComponent(pool, ref, in)
		if err != nil {
			return fmt.Errorf("collecting %s from %s: %w", ref.ComponentDefID, mech.DisplayName(), err)
		}
		if ok {
			added++
		}
		logger.V(logging.TRACE).Info("Component considered", "component", ref.ComponentDefID, "admitted", ok)
	}
	logger.V(logging.DEBUG).Info("Mech loot collected", "components", added)
	return nil
}

// CollectVehicle adds every component of vehicle that is not destroyed to pool.
func CollectVehicle(ctx context.Context, pool *core.SalvagePool, vehicle *core.VehicleDef, in LootInput) error {
	if err := in.validate(); err != nil {
		return err
	}
	logger := logging.LoggerFrom(ctx).WithValues("vehicle", vehicle.DisplayName())

	added := 0
	for _, ref := range vehicle.Inventory {
		if ref == nil || ref.IsDestroyed() {
			continue
		}
		ok, err := AddComponent(pool, ref, in)
		if err != nil {
			return fmt.Errorf("collecting %s from %s: %w", ref.ComponentDefID, vehicle.DisplayName(), err)
		}
		if ok {
			added++
		}
	}
	logger.V(logging.DEBUG).Info("Vehicle loot collected", "components", added)
	return nil
}

// AddComponent runs rarity admission for ref and, when admitted, appends a
// Functional entry for it to pool.
func AddComponent(pool *core.SalvagePool, ref *core.ComponentRef, in LootInput) (bool, error) {
	if ref.Def == nil {
		return false, fmt.Errorf("%w: %q", ErrMissingDefinition, ref.ComponentDefID)
	}
	if !Admit(ref.Def, in.Constants, in.Difficulty, in.Random) {
		return false, nil
	}
	pool.Add(core.SalvageEntry{
		Type:          core.SalvageComponent,
		DefID:         ref.Def.ID,
		Def:           ref.Def,
		ComponentType: ref.Def.Type,
		Rarity:        ref.Def.EffectiveRarity(),
		Tier:          core.ComponentFunctional,
		Count:         1,
		Excludable:    true,
	})
	return true, nil
}
