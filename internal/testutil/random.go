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

// Package testutil provides deterministic collaborators for tests.
package testutil

// Sequence is a core.Random that replays a fixed list of draws and counts how
// many were taken. Once exhausted it keeps returning the last draw, or 0 when
// the list is empty.
type Sequence struct {
	Draws []float64
	Calls int
}

// NewSequence returns a Sequence replaying draws.
func NewSequence(draws ...float64) *Sequence {
	return &Sequence{Draws: draws}
}

// Float64 returns the next draw.
func (s *Sequence) Float64() float64 {
	defer func() { s.Calls++ }()
	if len(s.Draws) == 0 {
		return 0
	}
	if s.Calls < len(s.Draws) {
		return s.Draws[s.Calls]
	}
	return s.Draws[len(s.Draws)-1]
}

// Remaining reports how many scripted draws have not been taken.
func (s *Sequence) Remaining() int {
	if s.Calls >= len(s.Draws) {
		return 0
	}
	return len(s.Draws) - s.Calls
}
