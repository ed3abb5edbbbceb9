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
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/customcomponents/salvage-engine/pkg/config"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SALVAGE"

// flagKeys maps configuration keys to the command-line flags bound to them.
var flagKeys = map[string]string{
	"profile":  "profile",
	"logLevel": "log-level",
}

// FileConfig is the salvage engine configuration file.
//
//	profile: hardcore
//	logLevel: debug
//	constants:
//	  destroyedMechRecoveryChance: 0.6
//	profiles:
//	  default: |
//	    overrideRecoveryChance: true
//	  hardcore: |
//	    noLootCTDestroyed: true
type FileConfig struct {
	Profile   string                  `yaml:"profile"`
	LogLevel  string                  `yaml:"logLevel"`
	Constants config.SalvageConstants `yaml:"constants"`
	// Profiles holds one YAML document per profile name.
	Profiles map[string]string `yaml:"profiles"`
}

// Load reads the configuration from the file at path (optional), SALVAGE_*
// environment variables and flags, in increasing order of precedence.
// Constants missing from every source keep their stock values.
func Load(path string, flags *pflag.FlagSet) (*FileConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("profile", "")
	v.SetDefault("logLevel", "info")
	if err := setConstantDefaults(v); err != nil {
		return nil, err
	}

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := &FileConfig{}
	if err := v.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "yaml"
	}); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Constants.Validate(); err != nil {
		return nil, fmt.Errorf("invalid salvage constants: %w", err)
	}
	return cfg, nil
}

// setConstantDefaults registers every constant so that environment variables
// can override keys absent from the file.
func setConstantDefaults(v *viper.Viper) error {
	raw, err := yaml.Marshal(config.DefaultSalvageConstants())
	if err != nil {
		return fmt.Errorf("encoding default constants: %w", err)
	}
	defaults := map[string]any{}
	if err := yaml.Unmarshal(raw, &defaults); err != nil {
		return fmt.Errorf("decoding default constants: %w", err)
	}
	for k, val := range defaults {
		v.SetDefault("constants."+k, val)
	}
	return nil
}
