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

package salvage

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/customcomponents/salvage-engine/internal/collector"
	"github.com/customcomponents/salvage-engine/internal/engines/budget"
	"github.com/customcomponents/salvage-engine/internal/engines/common"
	"github.com/customcomponents/salvage-engine/internal/engines/recovery"
	"github.com/customcomponents/salvage-engine/internal/engines/yield"
	"github.com/customcomponents/salvage-engine/internal/logging"
	"github.com/customcomponents/salvage-engine/internal/metrics"
	"github.com/customcomponents/salvage-engine/pkg/config"
	"github.com/customcomponents/salvage-engine/pkg/core"
)

// Option configures a Generator.
type Option func(*Generator)

// WithRecorder sets the metrics recorder. The default discards events.
func WithRecorder(r metrics.Recorder) Option {
	return func(g *Generator) {
		if r != nil {
			g.recorder = r
		}
	}
}

// WithExclusion sets the predicate the potential pool is filtered with.
// The default is collector.Blacklisted; nil disables exclusion.
func WithExclusion(excluded collector.Excluder) Option {
	return func(g *Generator) {
		g.excluded = excluded
	}
}

// Generator runs salvage generation under one settings bundle.
// A Generator is immutable and may serve concurrent runs of distinct requests.
type Generator struct {
	settings config.Settings
	recovery recovery.Policy
	yield    yield.Calculator
	recorder metrics.Recorder
	excluded collector.Excluder
}

// NewGenerator validates settings and builds the policies they select.
func NewGenerator(settings config.Settings, opts ...Option) (*Generator, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	policy, err := recovery.New(recovery.StrategyFor(&settings), &settings)
	if err != nil {
		return nil, err
	}
	calc, err := yield.New(yield.StrategyFor(&settings), &settings)
	if err != nil {
		return nil, err
	}
	g := &Generator{
		settings: settings,
		recovery: policy,
		yield:    calc,
		recorder: metrics.NoopRecorder{},
		excluded: collector.Blacklisted,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// run holds the state of a single Run call.
type run struct {
	*Generator
	logger    logr.Logger
	contract  *core.Contract
	constants *config.SalvageConstants
	rng       core.Random
	result    *Result
}

// Run generates the salvage of req.
//
// Without simulation state the run is rejected with ErrNoSimulation and a
// Result whose Ran is false. Budget failures are returned together with the
// partial result.
func (g *Generator) Run(ctx context.Context, req Request) (*Result, error) {
	logger := logging.LoggerFrom(ctx).WithValues("run", uuid.NewString())

	if req.Simulation == nil || req.Simulation.Constants == nil || req.Simulation.Random == nil {
		logger.Info("No active simulation, salvage generation aborted")
		g.recorder.RunFinished(metrics.RunAborted)
		return &Result{Phase: PhaseAborted}, ErrNoSimulation
	}
	if req.Contract == nil {
		g.recorder.RunFinished(metrics.RunFailed)
		return nil, errNoContract
	}

	logger = logger.WithValues("contract", req.Contract.Name)
	ctx = logging.IntoContext(ctx, logger)

	r := &run{
		Generator: g,
		logger:    logger,
		contract:  req.Contract,
		constants: req.Simulation.Constants,
		rng:       req.Simulation.Random,
		result:    &Result{Ran: true, Phase: PhaseInit},
	}
	logger.Info("Generating salvage",
		"lostUnits", len(req.LostUnits),
		"enemyMechs", len(req.EnemyMechs),
		"enemyVehicles", len(req.EnemyVehicles))

	var potential core.SalvagePool

	r.enter(PhaseClassifyLostUnits)
	for _, unit := range req.LostUnits {
		r.isolate(metrics.StageClassify, unitName(unit), func() error {
			return r.lostUnit(ctx, unit, &potential)
		})
	}

	r.enter(PhaseClassifyEnemyUnits)
	for _, unit := range req.EnemyMechs {
		r.isolate(metrics.StageClassify, unitName(unit), func() error {
			return r.enemyMech(ctx, unit, &potential)
		})
	}

	r.enter(PhaseClassifyVehicles)
	for _, vehicle := range req.EnemyVehicles {
		if vehicle == nil {
			continue
		}
		before := len(potential)
		r.isolate(metrics.StageLoot, vehicle.DisplayName(), func() error {
			return collector.CollectVehicle(ctx, &potential, vehicle, r.lootInput())
		})
		r.recorder.EntriesAdded(metrics.PoolPotential, len(potential)-before)
	}

	r.enter(PhaseComputeBudget)
	r.result.PotentialSalvage = collector.Filter(potential, g.excluded)
	b, err := budget.Compute(budget.Input{
		Outcome:          req.Contract.Outcome,
		LostCount:        len(req.LostUnits),
		SalvagePotential: req.Contract.SalvagePotential,
		PercentageShare:  req.Contract.PercentageContractSalvage,
	}, r.constants)
	if err != nil {
		g.recorder.RunFinished(metrics.RunFailed)
		return r.result, fmt.Errorf("computing salvage budget: %w", err)
	}
	r.result.FinalSalvageCount = b.FinalCount
	r.result.FinalPrioritySalvageCount = b.PriorityCount
	g.recorder.BudgetComputed(b.FinalCount, b.PriorityCount)

	r.enter(PhaseDone)
	g.recorder.RunFinished(metrics.RunCompleted)
	logger.Info("Salvage generated",
		"potentialEntries", len(r.result.PotentialSalvage),
		"forcedEntries", len(r.result.ForcedSalvage),
		"lostMechs", len(r.result.LostMechs),
		"finalSalvageCount", b.FinalCount,
		"prioritySalvageCount", b.PriorityCount)
	return r.result, nil
}

func (r *run) enter(p Phase) {
	r.result.Phase = p
	r.logger.V(logging.DEBUG).Info("Entering phase", "phase", p.String())
}

func (r *run) lostUnit(ctx context.Context, unit *core.UnitResult, potential *core.SalvagePool) error {
	if unit == nil || unit.Mech == nil {
		return fmt.Errorf("lost unit has no mech")
	}
	if !common.IsDestroyed(unit.Mech, &r.settings) {
		r.logger.V(logging.DEBUG).Info("Lost unit not destroyed, skipped", "mech", unit.Mech.DisplayName())
		return nil
	}

	outcome := r.recovery.Resolve(ctx, unit, r.constants, r.rng)
	r.recorder.RecoveryRolled(outcome.String())
	if outcome == recovery.Recovered {
		r.salvageMech(ctx, unit.Mech, potential, metrics.PoolPotential)
		return nil
	}

	r.result.LostMechs = append(r.result.LostMechs, unit.Mech)
	if r.settings.SalvageUnrecoveredMech {
		r.salvageMech(ctx, unit.Mech, potential, metrics.PoolPotential)
		return nil
	}
	r.withSuppressedRarity(func() {
		r.salvageMech(ctx, unit.Mech, &r.result.ForcedSalvage, metrics.PoolForced)
	})
	return nil
}

func (r *run) enemyMech(ctx context.Context, unit *core.UnitResult, potential *core.SalvagePool) error {
	if unit == nil || unit.Mech == nil {
		return fmt.Errorf("enemy unit has no mech")
	}
	if !unit.Pilot.Incapacitated && !unit.Pilot.Ejected && !common.IsDestroyed(unit.Mech, &r.settings) {
		r.logger.V(logging.DEBUG).Info("Enemy mech still combat capable, skipped", "mech", unit.Mech.DisplayName())
		return nil
	}
	r.salvageMech(ctx, unit.Mech, potential, metrics.PoolPotential)
	return nil
}

// salvageMech adds parts and then component loot of mech to pool. The two
// steps fail independently.
func (r *run) salvageMech(ctx context.Context, mech *core.MechDef, pool *core.SalvagePool, poolName string) {
	before := len(*pool)
	name := mech.DisplayName()

	r.isolate(metrics.StageParts, name, func() error {
		n, err := r.yield.Parts(mech, r.constants)
		if err != nil {
			return err
		}
		r.logger.V(logging.DEBUG).Info("Mech parts", "mech", name, "parts", n, "pool", poolName)
		return yield.AddMechParts(pool, mech, n)
	})
	r.isolate(metrics.StageLoot, name, func() error {
		return collector.CollectMech(ctx, pool, mech, r.lootInput())
	})

	r.recorder.EntriesAdded(poolName, len(*pool)-before)
}

// lootInput reads the constants and difficulty at call time so that the
// suppressed values apply inside withSuppressedRarity.
func (r *run) lootInput() collector.LootInput {
	return collector.LootInput{
		Constants:             r.constants,
		Difficulty:            r.contract.FinalDifficulty,
		Random:                r.rng,
		SuppressIfCTDestroyed: r.settings.NoLootCTDestroyed,
	}
}
