package salvage

import (
	"math/rand/v2"

	"github.com/go-logr/logr"
	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/customcomponents/salvage-engine/internal/metrics"
	"github.com/customcomponents/salvage-engine/internal/testutil"
	"github.com/customcomponents/salvage-engine/pkg/config"
	"github.com/customcomponents/salvage-engine/pkg/core"
)

var _ = Describe("Generator", func() {
	var (
		settings  config.Settings
		constants config.SalvageConstants
		contract  *core.Contract
		recorder  *fakeRecorder
	)

	BeforeEach(func() {
		settings = config.DefaultSettings()
		constants = scenarioConstants()
		contract = victoryContract()
		recorder = newFakeRecorder()
	})

	newGenerator := func(opts ...Option) *Generator {
		g, err := NewGenerator(settings, append([]Option{WithRecorder(recorder)}, opts...)...)
		Expect(err).NotTo(HaveOccurred())
		return g
	}

	request := func(rng core.Random) Request {
		return Request{
			Contract:   contract,
			Simulation: &Simulation{Constants: &constants, Random: rng},
		}
	}

	Context("without an active simulation", func() {
		It("should reject the run before touching any unit", func() {
			unit := &core.UnitResult{Mech: mechWith("chassisdef_atlas_AS7-D", true)}
			req := Request{Contract: contract, LostUnits: []*core.UnitResult{unit}}

			result, err := newGenerator().Run(testCtx, req)
			Expect(err).To(MatchError(ErrNoSimulation))
			Expect(result.Ran).To(BeFalse())
			Expect(result.Phase).To(Equal(PhaseAborted))
			Expect(result.PotentialSalvage).To(BeEmpty())
			Expect(unit.MechLost).To(BeFalse())
			Expect(recorder.runs).To(Equal([]string{metrics.RunAborted}))
		})

		It("should reject a simulation without a random source", func() {
			req := Request{Contract: contract, Simulation: &Simulation{Constants: &constants}}
			result, err := newGenerator().Run(testCtx, req)
			Expect(err).To(MatchError(ErrNoSimulation))
			Expect(result.Ran).To(BeFalse())
		})
	})

	Context("with a lost friendly unit", func() {
		It("should salvage a recovered mech into the potential pool", func() {
			settings.OverrideRecoveryChance = true
			m := mechWith("chassisdef_hunchback_HBK-4G", true, core.LeftTorso)
			mount(m, mediumLaser, core.RightArm)
			mount(m, heatSink, core.LeftTorso)
			unit := &core.UnitResult{Mech: m}

			rng := testutil.NewSequence(0.4)
			req := request(rng)
			req.LostUnits = []*core.UnitResult{unit}

			result, err := newGenerator().Run(testCtx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Ran).To(BeTrue())
			Expect(result.Phase).To(Equal(PhaseDone))
			Expect(unit.MechLost).To(BeFalse())
			Expect(rng.Calls).To(Equal(1))

			Expect(defIDs(result.PotentialSalvage)).To(Equal([]string{"chassisdef_hunchback_HBK-4G", mediumLaser.ID}))
			Expect(result.PotentialSalvage[0].Type).To(Equal(core.SalvageMechPart))
			Expect(result.PotentialSalvage[0].Count).To(Equal(3))
			Expect(result.ForcedSalvage).To(BeEmpty())
			Expect(result.LostMechs).To(BeEmpty())

			Expect(result.FinalSalvageCount).To(Equal(4))
			Expect(result.FinalPrioritySalvageCount).To(Equal(2))
			Expect(recorder.rolls).To(Equal([]string{"Recovered"}))
			Expect(recorder.entries[metrics.PoolPotential]).To(Equal(2))
		})

		It("should salvage an unrecovered mech into the forced pool without rare loot", func() {
			m := mechWith("chassisdef_atlas_AS7-D", true, core.CenterTorso)
			mount(m, heatSink, core.LeftTorso)
			mount(m, rarePPC, core.RightArm)
			mount(m, mediumLaser, core.CenterTorso)
			unit := &core.UnitResult{Mech: m}

			rng := testutil.NewSequence(0.0)
			req := request(rng)
			req.LostUnits = []*core.UnitResult{unit}
			before := constants

			result, err := newGenerator().Run(testCtx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(unit.MechLost).To(BeTrue())
			Expect(rng.Calls).To(Equal(1))

			Expect(result.PotentialSalvage).To(BeEmpty())
			Expect(defIDs(result.ForcedSalvage)).To(Equal([]string{"chassisdef_atlas_AS7-D", heatSink.ID}))
			Expect(result.ForcedSalvage[0].Count).To(Equal(1))
			Expect(result.LostMechs).To(ConsistOf(m))

			Expect(cmp.Diff(before, constants)).To(BeEmpty())
			Expect(contract.FinalDifficulty).To(Equal(6))
			Expect(recorder.entries[metrics.PoolForced]).To(Equal(2))
		})

		It("should salvage an unrecovered mech normally when configured to", func() {
			settings.SalvageUnrecoveredMech = true
			m := mechWith("chassisdef_atlas_AS7-D", true, core.CenterTorso)
			mount(m, heatSink, core.LeftTorso)
			mount(m, rarePPC, core.RightArm)
			unit := &core.UnitResult{Mech: m}

			req := request(testutil.NewSequence(0.0))
			req.LostUnits = []*core.UnitResult{unit}

			result, err := newGenerator().Run(testCtx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(unit.MechLost).To(BeTrue())
			Expect(result.LostMechs).To(HaveLen(1))
			Expect(result.ForcedSalvage).To(BeEmpty())
			Expect(defIDs(result.PotentialSalvage)).To(Equal([]string{"chassisdef_atlas_AS7-D", heatSink.ID, rarePPC.ID}))
		})

		It("should skip a lost unit that is not destroyed", func() {
			m := mount(mechWith("chassisdef_jenner_JR7-D", false, core.LeftArm), mediumLaser, core.RightArm)
			rng := testutil.NewSequence()
			req := request(rng)
			req.LostUnits = []*core.UnitResult{{Mech: m}}

			result, err := newGenerator().Run(testCtx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(rng.Calls).To(BeZero())
			Expect(result.PotentialSalvage).To(BeEmpty())
			Expect(result.ForcedSalvage).To(BeEmpty())
			Expect(recorder.rolls).To(BeEmpty())
		})

		It("should treat a destroyed critical component as a destroyed mech", func() {
			gyro := &core.ComponentDef{ID: "Gear_Gyro_Generic_Standard", Type: core.ComponentUpgrade, CriticalComponent: true}
			m := mechWith("chassisdef_jenner_JR7-D", false)
			m.Inventory = append(m.Inventory, &core.ComponentRef{
				ComponentDefID: gyro.ID, Def: gyro, MountedLocation: core.CenterTorso, DamageLevel: core.ComponentDestroyed,
			})
			rng := testutil.NewSequence(0.1)
			req := request(rng)
			req.LostUnits = []*core.UnitResult{{Mech: m}}

			result, err := newGenerator().Run(testCtx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(rng.Calls).To(Equal(1))
			Expect(defIDs(result.PotentialSalvage)).To(Equal([]string{"chassisdef_jenner_JR7-D"}))
		})
		It("should classify and salvage a mech whose inventory has empty slots", func() {
			gyro := &core.ComponentDef{ID: "Gear_Gyro_Generic_Standard", Type: core.ComponentUpgrade, CriticalComponent: true}
			m := mechWith("chassisdef_jenner_JR7-D", false)
			m.Inventory = append(m.Inventory, nil, &core.ComponentRef{
				ComponentDefID: gyro.ID, Def: gyro, MountedLocation: core.CenterTorso, DamageLevel: core.ComponentDestroyed,
			})
			mount(m, mediumLaser, core.RightArm)
			rng := testutil.NewSequence(0.1)
			req := request(rng)
			req.LostUnits = []*core.UnitResult{{Mech: m}}

			result, err := newGenerator().Run(testCtx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(recorder.failures).To(BeEmpty())
			Expect(recorder.rolls).To(Equal([]string{"Recovered"}))
			Expect(defIDs(result.PotentialSalvage)).To(Equal([]string{"chassisdef_jenner_JR7-D", mediumLaser.ID}))
		})
	})

	Context("with enemy units", func() {
		It("should only salvage mechs that are out of the fight", func() {
			capable := mount(mechWith("chassisdef_locust_LCT-1V", false), mediumLaser, core.RightArm)
			ejected := mount(mechWith("chassisdef_spider_SDR-5V", false), mediumLaser, core.RightArm)
			downed := mount(mechWith("chassisdef_commando_COM-2D", false), heatSink, core.LeftTorso)

			req := request(testutil.NewSequence())
			req.EnemyMechs = []*core.UnitResult{
				{Mech: capable},
				{Mech: ejected, Pilot: core.Pilot{Ejected: true}},
				{Mech: downed, Pilot: core.Pilot{Incapacitated: true}},
			}

			result, err := newGenerator().Run(testCtx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(defIDs(result.PotentialSalvage)).To(Equal([]string{
				"chassisdef_spider_SDR-5V", mediumLaser.ID, "chassisdef_commando_COM-2D", heatSink.ID,
			}))
		})

		It("should collect every functional vehicle component exactly once", func() {
			vehicle := &core.VehicleDef{ChassisID: "vehicledef_SCHREK"}
			for _, def := range []*core.ComponentDef{mediumLaser, heatSink, srmAmmo} {
				vehicle.Inventory = append(vehicle.Inventory, &core.ComponentRef{ComponentDefID: def.ID, Def: def})
			}
			req := request(testutil.NewSequence())
			req.EnemyVehicles = []*core.VehicleDef{vehicle}

			result, err := newGenerator().Run(testCtx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(defIDs(result.PotentialSalvage)).To(Equal([]string{mediumLaser.ID, heatSink.ID, srmAmmo.ID}))
			for _, e := range result.PotentialSalvage {
				Expect(e.Count).To(Equal(1))
			}
			Expect(result.FinalSalvageCount).To(Equal(5))
			Expect(result.FinalPrioritySalvageCount).To(Equal(2))
		})

		It("should filter excluded components from the potential pool", func() {
			m := mechWith("chassisdef_spider_SDR-5V", true)
			mount(m, bannedGear, core.CenterTorso)
			mount(m, mediumLaser, core.RightArm)
			unit := &core.UnitResult{Mech: m}

			req := request(testutil.NewSequence())
			req.EnemyMechs = []*core.UnitResult{unit}
			result, err := newGenerator().Run(testCtx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(defIDs(result.PotentialSalvage)).To(Equal([]string{"chassisdef_spider_SDR-5V", mediumLaser.ID}))

			result, err = newGenerator(WithExclusion(nil)).Run(testCtx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(defIDs(result.PotentialSalvage)).To(ContainElement(bannedGear.ID))
		})
	})

	Context("when a unit fails", func() {
		It("should isolate a panicking capability and continue with the next unit", func() {
			broken := &core.ComponentDef{ID: "Gear_Broken", Capabilities: []any{panicDestroyer{}}}
			first := mount(mechWith("chassisdef_urbanmech_UM-R60", false), broken, core.CenterTorso)
			second := mount(mechWith("chassisdef_wolverine_WVR-6R", true), mediumLaser, core.RightArm)

			req := request(testutil.NewSequence(0.1))
			req.LostUnits = []*core.UnitResult{{Mech: first}, {Mech: second}}

			result, err := newGenerator().Run(testCtx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(recorder.failures).To(Equal([]string{metrics.StageClassify}))
			Expect(defIDs(result.PotentialSalvage)).To(Equal([]string{"chassisdef_wolverine_WVR-6R", mediumLaser.ID}))
			Expect(result.FinalSalvageCount).To(Equal(4))
			Expect(result.Phase).To(Equal(PhaseDone))
		})

		It("should keep parts and restore constants when loot collection fails", func() {
			m := mechWith("chassisdef_atlas_AS7-D", true, core.CenterTorso)
			mount(m, heatSink, core.LeftTorso)
			m.Inventory = append(m.Inventory, &core.ComponentRef{ComponentDefID: "Gear_Missing", MountedLocation: core.RightArm})
			mount(m, mediumLaser, core.LeftArm)

			req := request(testutil.NewSequence())
			req.LostUnits = []*core.UnitResult{{Mech: m}}
			before := constants

			result, err := newGenerator().Run(testCtx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(recorder.failures).To(Equal([]string{metrics.StageLoot}))
			Expect(defIDs(result.ForcedSalvage)).To(Equal([]string{"chassisdef_atlas_AS7-D", heatSink.ID}))
			Expect(cmp.Diff(before, constants)).To(BeEmpty())
			Expect(contract.FinalDifficulty).To(Equal(6))
		})

		It("should restore constants when the suppressed path panics", func() {
			m := mount(mechWith("chassisdef_atlas_AS7-D", true, core.CenterTorso), rarePPC, core.RightArm)
			req := request(panicRandom{})
			req.LostUnits = []*core.UnitResult{{Mech: m}}
			before := constants

			result, err := newGenerator().Run(testCtx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(recorder.failures).To(Equal([]string{metrics.StageLoot}))
			Expect(defIDs(result.ForcedSalvage)).To(Equal([]string{"chassisdef_atlas_AS7-D"}))
			Expect(cmp.Diff(before, constants)).To(BeEmpty())
			Expect(contract.FinalDifficulty).To(Equal(6))
		})

		It("should return budget errors with the partial result", func() {
			contract.Outcome = "Stalemate"
			vehicle := &core.VehicleDef{ChassisID: "vehicledef_SCHREK", Inventory: []*core.ComponentRef{{ComponentDefID: heatSink.ID, Def: heatSink}}}
			req := request(testutil.NewSequence())
			req.EnemyVehicles = []*core.VehicleDef{vehicle}

			result, err := newGenerator().Run(testCtx, req)
			Expect(err).To(HaveOccurred())
			Expect(result.Ran).To(BeTrue())
			Expect(result.Phase).To(Equal(PhaseComputeBudget))
			Expect(defIDs(result.PotentialSalvage)).To(Equal([]string{heatSink.ID}))
			Expect(recorder.runs).To(Equal([]string{metrics.RunFailed}))
		})
	})

	Describe("withSuppressedRarity", func() {
		It("should zero rarity and difficulty inside and restore them after a panic", func() {
			before := constants
			r := &run{Generator: newGenerator(), logger: logr.Discard(), contract: contract, constants: &constants}

			func() {
				defer func() { _ = recover() }()
				r.withSuppressedRarity(func() {
					Expect(constants.RareWeaponChance).To(BeZero())
					Expect(constants.RareUpgradeChance).To(BeZero())
					Expect(constants.VeryRareWeaponChance).To(BeZero())
					Expect(constants.VeryRareUpgradeChance).To(BeZero())
					Expect(contract.FinalDifficulty).To(BeZero())
					Expect(constants.DestroyedMechRecoveryChance).To(Equal(before.DestroyedMechRecoveryChance))
					panic("boom")
				})
			}()

			Expect(cmp.Diff(before, constants)).To(BeEmpty())
			Expect(contract.FinalDifficulty).To(Equal(6))
		})
	})

	Describe("draw order", func() {
		It("should draw for lost units, then enemy mechs, then vehicles", func() {
			settings.OverrideRecoveryChance = true
			lost := mount(mechWith("chassisdef_griffin_GRF-1N", true), rarePPC, core.RightArm)
			enemy := mount(mechWith("chassisdef_shadowhawk_SHD-2H", true), rarePPC, core.LeftArm)
			vehicle := &core.VehicleDef{ChassisID: "vehicledef_MANTICORE", Inventory: []*core.ComponentRef{{ComponentDefID: rarePPC.ID, Def: rarePPC}}}

			rng := testutil.NewSequence(0.1, 0.9, 0.2, 0.7)
			req := request(rng)
			req.LostUnits = []*core.UnitResult{{Mech: lost}}
			req.EnemyMechs = []*core.UnitResult{{Mech: enemy}}
			req.EnemyVehicles = []*core.VehicleDef{vehicle}

			result, err := newGenerator().Run(testCtx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(rng.Calls).To(Equal(4))
			Expect(defIDs(result.PotentialSalvage)).To(Equal([]string{
				"chassisdef_griffin_GRF-1N", "chassisdef_shadowhawk_SHD-2H", rarePPC.ID,
			}))
		})
	})

	Describe("determinism", func() {
		build := func() (Request, *config.SalvageConstants) {
			k := scenarioConstants()
			var lost, enemies []*core.UnitResult
			for i, chassis := range []string{"chassisdef_atlas_AS7-D", "chassisdef_catapult_CPLT-C1", "chassisdef_jagermech_JM6-S"} {
				m := mechWith(chassis, true, core.ChassisLocation(i))
				mount(m, rarePPC, core.RightArm)
				mount(m, mediumLaser, core.LeftArm)
				mount(m, heatSink, core.RightTorso)
				lost = append(lost, &core.UnitResult{Mech: m, Pilot: core.Pilot{Ejected: i%2 == 0}})
				e := mechWith(chassis, i != 1, core.ChassisLocation(i+4))
				mount(e, rarePPC, core.CenterTorso)
				enemies = append(enemies, &core.UnitResult{Mech: e, Pilot: core.Pilot{Incapacitated: i == 1}})
			}
			return Request{
				Contract:   victoryContract(),
				Simulation: &Simulation{Constants: &k, Random: rand.New(rand.NewPCG(42, 1024))},
				LostUnits:  lost,
				EnemyMechs: enemies,
			}, &k
		}

		It("should produce identical results for the same seed", func() {
			settings.OverrideRecoveryChance = true
			settings.OverrideMechPartCalculation = true

			reqA, kA := build()
			reqB, _ := build()
			a, err := newGenerator().Run(testCtx, reqA)
			Expect(err).NotTo(HaveOccurred())
			b, err := newGenerator().Run(testCtx, reqB)
			Expect(err).NotTo(HaveOccurred())

			Expect(cmp.Diff(a, b)).To(BeEmpty())
			Expect(cmp.Diff(scenarioConstants(), *kA)).To(BeEmpty())
		})
	})

	Describe("NewGenerator", func() {
		It("should reject invalid settings", func() {
			settings.CenterTorsoDestroyedParts = 0
			_, err := NewGenerator(settings)
			Expect(err).To(HaveOccurred())
		})

		It("should reject a request without a contract", func() {
			_, err := newGenerator().Run(testCtx, Request{Simulation: &Simulation{Constants: &constants, Random: testutil.NewSequence()}})
			Expect(err).To(MatchError(errNoContract))
		})
	})

	Describe("Phase", func() {
		It("should name every phase", func() {
			names := map[string]bool{}
			for p := PhaseInit; p <= PhaseAborted; p++ {
				Expect(p.String()).NotTo(HavePrefix("Phase("))
				names[p.String()] = true
			}
			Expect(names).To(HaveLen(int(PhaseAborted) + 1))
			Expect(Phase(99).String()).To(Equal("Phase(99)"))
		})
	})
})
