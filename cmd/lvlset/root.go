// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlset/catalog"
	"github.com/katalvlaran/lvlset/config"
	"github.com/katalvlaran/lvlset/memo"
)

// app carries the state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	configPath string
	funcName   string
	output     string
	logLevel   string

	cfg      config.Config
	logger   *slog.Logger
	engine   *memo.Engine
	registry *catalog.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{registry: catalog.Builtins()}

	root := &cobra.Command{
		Use:          "lvlset",
		Short:        "Riemann and level-set (Lebesgue) views of scalar functions",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML file with engine defaults")
	pf.StringVarP(&a.funcName, "func", "f", "linear", "built-in function name (see lvlset list)")
	pf.StringVarP(&a.output, "output", "o", "", "output format: yaml or json")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		a.listCmd(),
		a.riemannCmd(),
		a.measureCmd(),
		a.slicesCmd(),
		a.layerCakeCmd(),
		a.probeCmd(),
		a.curveCmd(),
		a.integrateCmd(),
		a.crossCheckCmd(),
	)

	return root
}

// setup loads the config, applies flag overrides and builds the logger and engine.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.output != "" {
		cfg.Output = a.output
	}
	if a.logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(a.logLevel)); err != nil {
			return fmt.Errorf("%w: log-level: %w", config.ErrInvalidConfig, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: "15:04:05",
	}))
	a.engine = memo.New(cfg.CacheTTL, a.logger, memo.WithTolerance(cfg.Tolerance))
	a.logger.Debug("configuration loaded",
		"path", a.configPath, "samples", cfg.Samples, "rule", cfg.Rule, "output", cfg.Output)

	return nil
}

// spec resolves --func and refuses functions the engines must not sample.
func (a *app) spec() (catalog.FunctionSpec, error) {
	s, err := a.registry.Lookup(a.funcName)
	if err != nil {
		return s, fmt.Errorf("%w (available: %v)", err, a.registry.Names())
	}
	if err := s.Validate(); err != nil {
		if errors.Is(err, catalog.ErrNonDeterministic) && s.Note != "" {
			a.logger.Warn(s.Note, "function", s.Name)
		}

		return s, err
	}

	return s, nil
}

// samples picks the x-resolution: an explicit flag wins, then the configured
// resolution policy applied to the configured sample count.
func (a *app) samples(cmd *cobra.Command, flagValue int) int {
	if cmd.Flags().Changed("samples") {
		return flagValue
	}

	return a.cfg.Resolution.Count(a.cfg.Samples)
}

// emit writes v to the command's stdout in the configured format.
func (a *app) emit(cmd *cobra.Command, v any) error {
	w := cmd.OutOrStdout()
	if a.cfg.Output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
