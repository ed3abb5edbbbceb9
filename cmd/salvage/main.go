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

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"

	"github.com/customcomponents/salvage-engine/api/v1alpha1"
	internalconfig "github.com/customcomponents/salvage-engine/internal/config"
	"github.com/customcomponents/salvage-engine/internal/engagement"
	"github.com/customcomponents/salvage-engine/internal/logging"
	"github.com/customcomponents/salvage-engine/internal/metrics"
	"github.com/customcomponents/salvage-engine/internal/salvage"
)

type options struct {
	configPath     string
	engagementPath string
	outputPath     string
	seed           uint64
	printMetrics   bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "salvage:", err)
		os.Exit(1)
	}
}

func newFlagSet(opts *options) *pflag.FlagSet {
	fs := pflag.NewFlagSet("salvage", pflag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "Path to the salvage configuration file.")
	fs.StringVar(&opts.engagementPath, "engagement", "-", "Path to the Engagement document, or - for stdin.")
	fs.StringVar(&opts.outputPath, "output", "-", "Path the Engagement with its status is written to, or - for stdout.")
	fs.Uint64Var(&opts.seed, "seed", 0, "Random seed. Zero picks one from the clock.")
	fs.BoolVar(&opts.printMetrics, "print-metrics", false, "Print run metrics in the Prometheus text format after the document.")
	fs.String("profile", "", "Name of the settings profile to apply.")
	fs.String("log-level", "info", "Log level: error, info, debug or trace.")
	return fs
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	opts := &options{}
	fs := newFlagSet(opts)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := internalconfig.Load(opts.configPath, fs)
	if err != nil {
		return err
	}
	logger, err := logging.NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	ctx = logging.IntoContext(ctx, logger)
	setupLog := logger.WithName("setup")

	settings, err := internalconfig.ParseProfiles(ctx, cfg.Profiles).ResolveSettings(cfg.Profile)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	recorder, err := metrics.NewPrometheusRecorder(registry)
	if err != nil {
		return err
	}
	gen, err := salvage.NewGenerator(settings, salvage.WithRecorder(recorder))
	if err != nil {
		return err
	}

	eng, err := readEngagement(opts.engagementPath, stdin)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	setupLog.Info("Generating salvage", "engagement", eng.Name, "profile", cfg.Profile, "seed", seed)

	constants := cfg.Constants
	sim := &salvage.Simulation{
		Constants: &constants,
		Random:    rand.New(rand.NewPCG(seed, seed)),
	}
	now := metav1.Now()
	req, err := engagement.ToRequest(eng, sim)
	if err != nil {
		setupLog.Error(err, "Engagement could not be converted", "engagement", eng.Name)
		engagement.ApplyConversionError(eng, err, now)
	} else {
		result, runErr := gen.Run(ctx, req)
		if runErr != nil {
			setupLog.Error(runErr, "Salvage generation failed", "engagement", eng.Name)
		}
		engagement.ApplyResult(eng, result, runErr, now)
	}

	if err := writeEngagement(opts.outputPath, stdout, eng); err != nil {
		return err
	}
	if opts.printMetrics {
		return metrics.WriteText(stdout, registry)
	}
	return nil
}

func readEngagement(path string, stdin io.Reader) (*v1alpha1.Engagement, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading engagement: %w", err)
	}
	eng := &v1alpha1.Engagement{}
	if err := yaml.UnmarshalStrict(raw, eng); err != nil {
		return nil, fmt.Errorf("decoding engagement: %w", err)
	}
	if eng.Kind != "" && eng.Kind != v1alpha1.EngagementKind {
		return nil, fmt.Errorf("unexpected kind %q, want %s", eng.Kind, v1alpha1.EngagementKind)
	}
	return eng, nil
}

func writeEngagement(path string, stdout io.Writer, eng *v1alpha1.Engagement) error {
	eng.APIVersion = v1alpha1.GroupVersion.String()
	eng.Kind = v1alpha1.EngagementKind
	out, err := yaml.Marshal(eng)
	if err != nil {
		return fmt.Errorf("encoding engagement: %w", err)
	}
	if path == "-" {
		_, err = stdout.Write(out)
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
