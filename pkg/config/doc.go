// Package config provides the tunable inputs of the salvage engine.
//
// Configuration Types:
//
//   - Settings: the policy bundle selecting algorithm variants (override vs
//     vanilla recovery, override vs vanilla part yield, loot suppression,
//     critical component checks) together with the penalties and weights the
//     override variants use
//   - SalvageConstants: the game's salvage constants (recovery chance, rarity
//     chances, contract salvage chances and decays, part and priority limits)
//
// Both types carry yaml and json tags and a Validate method. Loading them from
// files, environment variables and flags lives in internal/config; this package
// only defines the types and their defaults.
//
// Example usage:
//
//	settings := config.DefaultSettings()
//	settings.OverrideRecoveryChance = true
//	if err := settings.Validate(); err != nil {
//	    return err
//	}
//
//	constants := config.DefaultSalvageConstants()
//	gen, err := salvage.NewGenerator(settings)
//
// SalvageConstants is treated as a shared snapshot during a run: the salvage
// orchestrator may zero the rarity chances while it salvages an unrecovered mech
// but always restores the exact previous values before returning.
package config
