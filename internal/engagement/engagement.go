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

// Package engagement converts Engagement documents to salvage requests and
// writes salvage results back into their status.
package engagement

import (
	"errors"
	"fmt"
	"strconv"

	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/customcomponents/salvage-engine/api/v1alpha1"
	"github.com/customcomponents/salvage-engine/internal/salvage"
	"github.com/customcomponents/salvage-engine/pkg/core"
)

// Built-in capability names accepted in ComponentDefSpec.Capabilities.
const (
	CapabilityCriticalPart  = "CriticalPart"
	CapabilityLocationBound = "LocationBound"
)

// ToRequest builds the salvage request described by eng. Inventory entries
// that reference a definition missing from the catalog are kept without a
// definition; salvage generation isolates the unit that carries them.
func ToRequest(eng *v1alpha1.Engagement, sim *salvage.Simulation) (salvage.Request, error) {
	spec := &eng.Spec
	contract, err := toContract(spec.Contract)
	if err != nil {
		return salvage.Request{}, err
	}

	catalog, err := toCatalog(spec.Components)
	if err != nil {
		return salvage.Request{}, err
	}

	req := salvage.Request{Contract: contract, Simulation: sim}
	for i, u := range spec.LostUnits {
		unit, err := toUnit(u, catalog)
		if err != nil {
			return salvage.Request{}, fmt.Errorf("lostUnits[%d]: %w", i, err)
		}
		req.LostUnits = append(req.LostUnits, unit)
	}
	for i, u := range spec.EnemyMechs {
		unit, err := toUnit(u, catalog)
		if err != nil {
			return salvage.Request{}, fmt.Errorf("enemyMechs[%d]: %w", i, err)
		}
		req.EnemyMechs = append(req.EnemyMechs, unit)
	}
	for i, v := range spec.EnemyVehicles {
		inventory, err := toInventory(v.Inventory, catalog, false)
		if err != nil {
			return salvage.Request{}, fmt.Errorf("enemyVehicles[%d]: %w", i, err)
		}
		req.EnemyVehicles = append(req.EnemyVehicles, &core.VehicleDef{
			ID:        v.ID,
			ChassisID: v.ChassisID,
			Name:      v.Name,
			Inventory: inventory,
		})
	}
	return req, nil
}

func toContract(c v1alpha1.ContractSpec) (*core.Contract, error) {
	outcome, err := core.ParseContractOutcome(c.Outcome)
	if err != nil {
		return nil, fmt.Errorf("contract: %w", err)
	}
	share := 0.0
	if c.PercentageContractSalvage != "" {
		share, err = strconv.ParseFloat(c.PercentageContractSalvage, 64)
		if err != nil {
			return nil, fmt.Errorf("contract: invalid percentageContractSalvage %q: %w", c.PercentageContractSalvage, err)
		}
	}
	return &core.Contract{
		Name:                      c.Name,
		Outcome:                   outcome,
		SalvagePotential:          c.SalvagePotential,
		PercentageContractSalvage: share,
		FinalDifficulty:           c.Difficulty,
	}, nil
}

func toCatalog(specs []v1alpha1.ComponentDefSpec) (map[string]*core.ComponentDef, error) {
	catalog := make(map[string]*core.ComponentDef, len(specs))
	for _, s := range specs {
		if s.ID == "" {
			return nil, errors.New("component definition without id")
		}
		if _, dup := catalog[s.ID]; dup {
			return nil, fmt.Errorf("duplicate component definition %q", s.ID)
		}
		componentType, err := core.ParseComponentType(s.Type)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", s.ID, err)
		}
		def := &core.ComponentDef{
			ID:                s.ID,
			Type:              componentType,
			Rarity:            core.Rarity(s.Rarity),
			MinDifficulty:     s.MinDifficulty,
			CriticalComponent: s.Critical,
			Tags:              s.Tags,
		}
		switch def.Rarity {
		case "", core.RarityCommon, core.RarityRare, core.RarityVeryRare:
		default:
			return nil, fmt.Errorf("component %q: unknown rarity %q", s.ID, s.Rarity)
		}
		for _, name := range s.Capabilities {
			switch name {
			case CapabilityCriticalPart:
				def.Capabilities = append(def.Capabilities, core.CriticalPart{})
			case CapabilityLocationBound:
				def.Capabilities = append(def.Capabilities, core.LocationBound{})
			default:
				return nil, fmt.Errorf("component %q: unknown capability %q", s.ID, name)
			}
		}
		catalog[s.ID] = def
	}
	return catalog, nil
}

func toUnit(u v1alpha1.UnitSpec, catalog map[string]*core.ComponentDef) (*core.UnitResult, error) {
	mech := &core.MechDef{
		ID:        u.Mech.ID,
		ChassisID: u.Mech.ChassisID,
		Name:      u.Mech.Name,
		Destroyed: u.Mech.Destroyed,
	}
	for name, level := range u.Mech.Locations {
		loc, err := core.ParseLocation(name)
		if err != nil {
			return nil, err
		}
		dmg, err := core.ParseLocationDamageLevel(level)
		if err != nil {
			return nil, fmt.Errorf("location %s: %w", name, err)
		}
		mech.Locations[loc] = dmg
	}
	inventory, err := toInventory(u.Mech.Inventory, catalog, true)
	if err != nil {
		return nil, err
	}
	mech.Inventory = inventory
	return &core.UnitResult{
		Mech: mech,
		Pilot: core.Pilot{
			Ejected:       u.Pilot.Ejected,
			Incapacitated: u.Pilot.Incapacitated,
		},
	}, nil
}

func toInventory(refs []v1alpha1.ComponentRefSpec, catalog map[string]*core.ComponentDef, located bool) ([]*core.ComponentRef, error) {
	out := make([]*core.ComponentRef, 0, len(refs))
	for _, r := range refs {
		ref := &core.ComponentRef{ComponentDefID: r.ComponentDefID, Def: catalog[r.ComponentDefID]}
		if located {
			if r.Location == "" {
				return nil, fmt.Errorf("component %q has no location", r.ComponentDefID)
			}
			loc, err := core.ParseLocation(r.Location)
			if err != nil {
				return nil, fmt.Errorf("component %q: %w", r.ComponentDefID, err)
			}
			ref.MountedLocation = loc
		}
		dmg, err := core.ParseComponentDamageLevel(r.DamageLevel)
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", r.ComponentDefID, err)
		}
		ref.DamageLevel = dmg
		out = append(out, ref)
	}
	return out, nil
}

// ApplyResult writes the outcome of a salvage run into eng.Status.
// runErr is the error returned by the run, if any.
func ApplyResult(eng *v1alpha1.Engagement, result *salvage.Result, runErr error, now metav1.Time) {
	status := &eng.Status
	status.LastRunTime = now
	if result != nil {
		status.Ran = result.Ran
		status.Phase = result.Phase.String()
		status.FinalSalvageCount = int32(result.FinalSalvageCount)
		status.FinalPrioritySalvageCount = int32(result.FinalPrioritySalvageCount)
		status.PotentialSalvage = toEntryStatus(result.PotentialSalvage)
		status.ForcedSalvage = toEntryStatus(result.ForcedSalvage)
		status.LostMechs = nil
		for _, m := range result.LostMechs {
			id := m.ID
			if id == "" {
				id = m.ChassisID
			}
			status.LostMechs = append(status.LostMechs, id)
		}
	}

	cond := metav1.Condition{
		Type:               v1alpha1.TypeSalvageGenerated,
		Status:             metav1.ConditionTrue,
		Reason:             v1alpha1.ReasonGenerated,
		Message:            fmt.Sprintf("Generated %d salvage picks, %d priority", status.FinalSalvageCount, status.FinalPrioritySalvageCount),
		ObservedGeneration: eng.Generation,
		LastTransitionTime: now,
	}
	switch {
	case errors.Is(runErr, salvage.ErrNoSimulation):
		cond.Status = metav1.ConditionFalse
		cond.Reason = v1alpha1.ReasonNoSimulation
		cond.Message = runErr.Error()
	case runErr != nil:
		cond.Status = metav1.ConditionFalse
		cond.Reason = v1alpha1.ReasonBudgetFailed
		cond.Message = runErr.Error()
	}
	meta.SetStatusCondition(&status.Conditions, cond)
}

// ApplyConversionError records that eng could not be converted to a request.
func ApplyConversionError(eng *v1alpha1.Engagement, err error, now metav1.Time) {
	eng.Status.Ran = false
	eng.Status.LastRunTime = now
	meta.SetStatusCondition(&eng.Status.Conditions, metav1.Condition{
		Type:               v1alpha1.TypeSalvageGenerated,
		Status:             metav1.ConditionFalse,
		Reason:             v1alpha1.ReasonInvalidEngagement,
		Message:            err.Error(),
		ObservedGeneration: eng.Generation,
		LastTransitionTime: now,
	})
}

func toEntryStatus(pool core.SalvagePool) []v1alpha1.SalvageEntryStatus {
	if len(pool) == 0 {
		return nil
	}
	out := make([]v1alpha1.SalvageEntryStatus, 0, len(pool))
	for _, e := range pool {
		out = append(out, v1alpha1.SalvageEntryStatus{
			Type:          string(e.Type),
			DefID:         e.DefID,
			ComponentType: string(e.ComponentType),
			Rarity:        string(e.Rarity),
			Tier:          e.Tier.String(),
			Count:         int32(e.Count),
		})
	}
	return out
}
