// Package salvage generates the salvage of a resolved engagement.
//
// A Generator runs once per contract. It classifies the lost friendly units,
// rolls recovery for the destroyed ones, collects parts and components from
// recovered mechs, disabled enemy mechs and enemy vehicles, and derives the
// contract's salvage budget:
//
//	gen, err := salvage.NewGenerator(settings, salvage.WithRecorder(recorder))
//	result, err := gen.Run(ctx, salvage.Request{
//		Contract:      contract,
//		Simulation:    &salvage.Simulation{Constants: &constants, Random: rng},
//		LostUnits:     lost,
//		EnemyMechs:    enemies,
//		EnemyVehicles: vehicles,
//	})
//
// Unrecovered friendly mechs are salvaged into a separate forced pool with
// rare and very rare admission disabled and contract difficulty set to zero.
// The constants and contract are restored before the next unit is processed.
//
// A failure or panic while processing one unit is logged and the unit
// contributes nothing further; the remaining units and the budget are still
// computed. Budget errors are returned to the caller.
package salvage
