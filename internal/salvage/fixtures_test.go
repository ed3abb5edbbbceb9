package salvage

import (
	"sync"

	"github.com/customcomponents/salvage-engine/pkg/config"
	"github.com/customcomponents/salvage-engine/pkg/core"
)

var (
	mediumLaser = &core.ComponentDef{ID: "Weapon_Laser_MediumLaser_0-STOCK", Type: core.ComponentWeapon}
	heatSink    = &core.ComponentDef{ID: "Gear_HeatSink_Generic_Standard", Type: core.ComponentHeatSink}
	srmAmmo     = &core.ComponentDef{ID: "Ammo_AmmunitionBox_Generic_SRM", Type: core.ComponentAmmunitionBox}
	rarePPC     = &core.ComponentDef{ID: "Weapon_PPC_PPC_2-Tiegart", Type: core.ComponentWeapon, Rarity: core.RarityRare}
	bannedGear  = &core.ComponentDef{ID: "Gear_Mech_Banned", Type: core.ComponentUpgrade, Tags: []string{"BLACKLISTED"}}
)

func mechWith(chassis string, destroyed bool, locs ...core.ChassisLocation) *core.MechDef {
	m := &core.MechDef{ID: chassis + "-1", ChassisID: chassis, Destroyed: destroyed}
	for _, loc := range locs {
		m.Locations[loc] = core.LocationDestroyed
	}
	return m
}

func mount(m *core.MechDef, def *core.ComponentDef, loc core.ChassisLocation) *core.MechDef {
	m.Inventory = append(m.Inventory, &core.ComponentRef{ComponentDefID: def.ID, Def: def, MountedLocation: loc})
	return m
}

func victoryContract() *core.Contract {
	return &core.Contract{
		Name:                      "Assassinate the Magistrate",
		Outcome:                   core.OutcomeVictory,
		SalvagePotential:          10,
		PercentageContractSalvage: 0.5,
		FinalDifficulty:           6,
	}
}

func scenarioConstants() config.SalvageConstants {
	c := config.DefaultSalvageConstants()
	c.RareWeaponChance = 0.5
	c.RareUpgradeChance = 0.5
	c.VictorySalvageChance = 0.8
	c.VictorySalvageLostPerMechDestroyed = 0.1
	c.ContractFloorSalvageBonus = 2
	c.PrioritySalvageModifier = 0.5
	return c
}

type panicRandom struct{}

func (panicRandom) Float64() float64 { panic("random source exhausted") }

type panicDestroyer struct{}

func (panicDestroyer) IsMechDestroyed(*core.ComponentRef, *core.MechDef) bool {
	panic("capability failure")
}

// fakeRecorder captures metrics.Recorder events.
type fakeRecorder struct {
	mu       sync.Mutex
	runs     []string
	rolls    []string
	failures []string
	entries  map[string]int
	final    int
	priority int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{entries: map[string]int{}}
}

func (f *fakeRecorder) RunFinished(result string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs = append(f.runs, result)
}

func (f *fakeRecorder) RecoveryRolled(outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rolls = append(f.rolls, outcome)
}

func (f *fakeRecorder) UnitFailed(stage string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, stage)
}

func (f *fakeRecorder) EntriesAdded(pool string, n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[pool] += n
}

func (f *fakeRecorder) BudgetComputed(final, priority int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.final, f.priority = final, priority
}

func defIDs(pool core.SalvagePool) []string {
	var out []string
	for _, e := range pool {
		out = append(out, e.DefID)
	}
	return out
}
