// Package collector gathers component loot from destroyed units into salvage pools.
//
// The collector walks a unit's inventory, decides which components survived
// the engagement and passes each survivor through rarity admission before it
// is added to a pool.
//
// # Mechs
//
//	err := collector.CollectMech(ctx, &pool, mech, collector.LootInput{
//		Constants:  constants,
//		Difficulty: contract.FinalDifficulty,
//		Random:     rng,
//	})
//
// A component survives when it is not destroyed and its mount location is not
// destroyed. With SuppressIfCTDestroyed set, a mech without a center torso
// yields no components at all.
//
// # Vehicles
//
// Vehicles have no location damage; every component that is not destroyed is
// considered.
//
// # Rarity Admission
//
// Admit decides whether a surviving component enters the pool:
//   - Common: always admitted, no draw
//   - Rare, VeryRare: not admitted below the definition's minimum difficulty
//     (no draw); otherwise one draw against the weapon or upgrade chance
//
// Draws are taken from LootInput.Random in inventory order.
//
// # Filtering
//
// Filter removes excludable entries whose definition is excluded and merges
// duplicate entries. Blacklisted is the default exclusion predicate.
package collector
