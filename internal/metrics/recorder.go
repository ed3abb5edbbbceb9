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

// Package metrics records salvage generation activity.
package metrics

// Label values for Recorder calls.
const (
	RunCompleted = "completed"
	RunAborted   = "aborted"
	RunFailed    = "failed"

	PoolPotential = "potential"
	PoolForced    = "forced"

	StageClassify = "classify"
	StageParts    = "parts"
	StageLoot     = "loot"
)

// Recorder receives salvage generation events.
// Implementations must be safe for concurrent use by multiple runs.
type Recorder interface {
	// RunFinished records the end of a run with one of the Run* results.
	RunFinished(result string)

	// RecoveryRolled records the outcome of a recovery roll.
	RecoveryRolled(outcome string)

	// UnitFailed records a unit step that failed and was isolated.
	UnitFailed(stage string)

	// EntriesAdded records n salvage entries added to one of the Pool* pools.
	EntriesAdded(pool string, n int)

	// BudgetComputed records the final and priority salvage counts of a run.
	BudgetComputed(final, priority int)
}

// NoopRecorder discards all events.
type NoopRecorder struct{}

func (NoopRecorder) RunFinished(string) {}
func (NoopRecorder) RecoveryRolled(string) {}
func (NoopRecorder) UnitFailed(string) {}
func (NoopRecorder) EntriesAdded(string, int) {}
func (NoopRecorder) BudgetComputed(int, int) {}
