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

package config

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
	"k8s.io/utils/ptr"

	"github.com/customcomponents/salvage-engine/internal/logging"
	"github.com/customcomponents/salvage-engine/pkg/config"
)

// DefaultProfileKey is the profile every other profile is merged over.
const DefaultProfileKey = "default"

// SalvageProfile is a named set of overrides of the salvage settings.
// Unset fields inherit from the default profile, then from config.DefaultSettings.
type SalvageProfile struct {
	// Algorithm selection. Pointers allow a profile to inherit the default.
	OverrideRecoveryChance      *bool `yaml:"overrideRecoveryChance,omitempty" json:"overrideRecoveryChance,omitempty"`
	OverrideMechPartCalculation *bool `yaml:"overrideMechPartCalculation,omitempty" json:"overrideMechPartCalculation,omitempty"`
	NoLootCTDestroyed           *bool `yaml:"noLootCTDestroyed,omitempty" json:"noLootCTDestroyed,omitempty"`
	CheckCriticalComponent      *bool `yaml:"checkCriticalComponent,omitempty" json:"checkCriticalComponent,omitempty"`
	SalvageUnrecoveredMech      *bool `yaml:"salvageUnrecoveredMech,omitempty" json:"salvageUnrecoveredMech,omitempty"`
	LegacyPartWeighting         *bool `yaml:"legacyPartWeighting,omitempty" json:"legacyPartWeighting,omitempty"`

	// Weighted recovery parameters
	HeadRecoveryPenalty  float64 `yaml:"headRecoveryPenalty,omitempty" json:"headRecoveryPenalty,omitempty"`
	TorsoRecoveryPenalty float64 `yaml:"torsoRecoveryPenalty,omitempty" json:"torsoRecoveryPenalty,omitempty"`
	LimbRecoveryPenalty  float64 `yaml:"limbRecoveryPenalty,omitempty" json:"limbRecoveryPenalty,omitempty"`
	EjectRecoveryBonus   float64 `yaml:"ejectRecoveryBonus,omitempty" json:"ejectRecoveryBonus,omitempty"`

	// Weighted part yield parameters
	SalvageArmWeight          float64 `yaml:"salvageArmWeight,omitempty" json:"salvageArmWeight,omitempty"`
	SalvageHeadWeight         float64 `yaml:"salvageHeadWeight,omitempty" json:"salvageHeadWeight,omitempty"`
	SalvageLegWeight          float64 `yaml:"salvageLegWeight,omitempty" json:"salvageLegWeight,omitempty"`
	SalvageTorsoWeight        float64 `yaml:"salvageTorsoWeight,omitempty" json:"salvageTorsoWeight,omitempty"`
	CenterTorsoDestroyedParts int     `yaml:"centerTorsoDestroyedParts,omitempty" json:"centerTorsoDestroyedParts,omitempty"`
}

// ProfileData holds parsed profiles by lower-case name.
type ProfileData map[string]SalvageProfile

// Validate checks the profile applied over the stock settings.
func (p *SalvageProfile) Validate() error {
	s := p.Apply(config.DefaultSettings())
	return s.Validate()
}

// Apply returns base with every field set in p overridden.
func (p SalvageProfile) Apply(base config.Settings) config.Settings {
	out := base
	setBool := func(dst *bool, src *bool) {
		*dst = ptr.Deref(src, *dst)
	}
	setFloat := func(dst *float64, src float64) {
		if src != 0 {
			*dst = src
		}
	}
	setBool(&out.OverrideRecoveryChance, p.OverrideRecoveryChance)
	setBool(&out.OverrideMechPartCalculation, p.OverrideMechPartCalculation)
	setBool(&out.NoLootCTDestroyed, p.NoLootCTDestroyed)
	setBool(&out.CheckCriticalComponent, p.CheckCriticalComponent)
	setBool(&out.SalvageUnrecoveredMech, p.SalvageUnrecoveredMech)
	setBool(&out.LegacyPartWeighting, p.LegacyPartWeighting)
	setFloat(&out.HeadRecoveryPenalty, p.HeadRecoveryPenalty)
	setFloat(&out.TorsoRecoveryPenalty, p.TorsoRecoveryPenalty)
	setFloat(&out.LimbRecoveryPenalty, p.LimbRecoveryPenalty)
	setFloat(&out.EjectRecoveryBonus, p.EjectRecoveryBonus)
	setFloat(&out.SalvageArmWeight, p.SalvageArmWeight)
	setFloat(&out.SalvageHeadWeight, p.SalvageHeadWeight)
	setFloat(&out.SalvageLegWeight, p.SalvageLegWeight)
	setFloat(&out.SalvageTorsoWeight, p.SalvageTorsoWeight)
	if p.CenterTorsoDestroyedParts != 0 {
		out.CenterTorsoDestroyedParts = p.CenterTorsoDestroyedParts
	}
	return out
}

// merge returns p with every field set in override replacing it.
func (p SalvageProfile) merge(override SalvageProfile) SalvageProfile {
	result := p
	for _, b := range []struct {
		dst **bool
		src *bool
	}{
		{&result.OverrideRecoveryChance, override.OverrideRecoveryChance},
		{&result.OverrideMechPartCalculation, override.OverrideMechPartCalculation},
		{&result.NoLootCTDestroyed, override.NoLootCTDestroyed},
		{&result.CheckCriticalComponent, override.CheckCriticalComponent},
		{&result.SalvageUnrecoveredMech, override.SalvageUnrecoveredMech},
		{&result.LegacyPartWeighting, override.LegacyPartWeighting},
	} {
		if b.src != nil {
			*b.dst = b.src
		}
	}
	for _, f := range []struct {
		dst *float64
		src float64
	}{
		{&result.HeadRecoveryPenalty, override.HeadRecoveryPenalty},
		{&result.TorsoRecoveryPenalty, override.TorsoRecoveryPenalty},
		{&result.LimbRecoveryPenalty, override.LimbRecoveryPenalty},
		{&result.EjectRecoveryBonus, override.EjectRecoveryBonus},
		{&result.SalvageArmWeight, override.SalvageArmWeight},
		{&result.SalvageHeadWeight, override.SalvageHeadWeight},
		{&result.SalvageLegWeight, override.SalvageLegWeight},
		{&result.SalvageTorsoWeight, override.SalvageTorsoWeight},
	} {
		if f.src != 0 {
			*f.dst = f.src
		}
	}
	if override.CenterTorsoDestroyedParts != 0 {
		result.CenterTorsoDestroyedParts = override.CenterTorsoDestroyedParts
	}
	return result
}

// ParseProfiles parses salvage profiles from a map of YAML documents keyed by
// profile name. The "default" key holds the defaults for all profiles.
// Entries that fail to parse or validate are logged and skipped.
func ParseProfiles(ctx context.Context, data map[string]string) ProfileData {
	logger := logging.LoggerFrom(ctx)
	out := make(ProfileData)
	if data == nil {
		return out
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		var profile SalvageProfile
		if err := yaml.Unmarshal([]byte(data[key]), &profile); err != nil {
			logger.Info("Failed to parse salvage profile, skipping", "key", key, "error", err.Error())
			continue
		}
		if err := profile.Validate(); err != nil {
			logger.Info("Invalid salvage profile, skipping", "key", key, "error", err.Error())
			continue
		}

		name := strings.ToLower(key)
		if _, exists := out[name]; exists {
			logger.Info("Duplicate salvage profile name - first key wins", "profile", name, "duplicateKey", key)
			continue
		}
		out[name] = profile
	}

	logger.V(logging.DEBUG).Info("Parsed salvage profiles", "profileCount", len(out))
	return out
}

// GetProfile returns the effective profile for name, merged over the defaults.
func (data ProfileData) GetProfile(name string) SalvageProfile {
	defaults := data[DefaultProfileKey]
	profile, ok := data[strings.ToLower(name)]
	if !ok {
		return defaults
	}
	return defaults.merge(profile)
}

// Has reports whether a profile called name was parsed.
func (data ProfileData) Has(name string) bool {
	_, ok := data[strings.ToLower(name)]
	return ok
}

// Names returns the sorted profile names.
func (data ProfileData) Names() []string {
	names := make([]string, 0, len(data))
	for k := range data {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ResolveSettings returns the settings of the named profile. An empty name
// selects the default profile; any other unknown name is an error.
func (data ProfileData) ResolveSettings(name string) (config.Settings, error) {
	if name != "" && !strings.EqualFold(name, DefaultProfileKey) && !data.Has(name) {
		return config.Settings{}, fmt.Errorf("unknown salvage profile %q, known profiles: %v", name, data.Names())
	}
	s := data.GetProfile(name).Apply(config.DefaultSettings())
	if err := s.Validate(); err != nil {
		return config.Settings{}, fmt.Errorf("profile %q: %w", name, err)
	}
	return s, nil
}
