// Package core provides the fundamental data structures of the salvage engine.
//
// This package contains the domain models that describe the outcome of a resolved
// engagement as the salvage engine sees it:
//
//   - MechDef / VehicleDef: units with their per-location damage and inventory
//   - ComponentDef / ComponentRef: component definitions and their mounted instances
//   - UnitResult: a unit together with its pilot state and the recovery flag
//   - Contract: the contract outcome and salvage scalars
//   - SalvageEntry / SalvagePool: emitted salvage records
//
// Component definitions carry a capability set. Capabilities are plain values that
// implement one or more small interfaces (for example MechDestroyer); callers query
// them with CapabilitiesOf rather than switching on concrete types:
//
//	for _, d := range core.CapabilitiesOf[core.MechDestroyer](ref.Def) {
//		if d.IsMechDestroyed(ref, mech) {
//			return true
//		}
//	}
//
// The core package is designed to be:
//   - Independent of configuration loading and of the document format in api/v1alpha1
//   - Free of randomness: rolls come from a Random supplied by the caller
//   - Read-only during salvage generation, except UnitResult.MechLost and
//     Contract.FinalDifficulty
package core
