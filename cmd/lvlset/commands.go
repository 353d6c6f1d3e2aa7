// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlset/catalog"
	"github.com/katalvlaran/lvlset/lebesgue"
	"github.com/katalvlaran/lvlset/levelset"
	"github.com/katalvlaran/lvlset/riemann"
	"github.com/katalvlaran/lvlset/sampler"
)

// listEntry is one row of `lvlset list`.
type listEntry struct {
	Name          string         `json:"name" yaml:"name"`
	Domain        sampler.Domain `json:"domain" yaml:"domain"`
	ValueRange    sampler.Domain `json:"valueRange" yaml:"valueRange"`
	Deterministic bool           `json:"deterministic" yaml:"deterministic"`
	Integral      *float64       `json:"integral,omitempty" yaml:"integral,omitempty"`
	Note          string         `json:"note,omitempty" yaml:"note,omitempty"`
}

type riemannReport struct {
	Function   string              `json:"function" yaml:"function"`
	Rule       riemann.Rule        `json:"rule" yaml:"rule"`
	Partitions int                 `json:"partitions" yaml:"partitions"`
	Dx         float64             `json:"dx" yaml:"dx"`
	Sum        float64             `json:"sum" yaml:"sum"`
	Exact      *float64            `json:"exact,omitempty" yaml:"exact,omitempty"`
	Rectangles []riemann.Rectangle `json:"rectangles,omitempty" yaml:"rectangles,omitempty"`
}

type measureReport struct {
	Function   string  `json:"function" yaml:"function"`
	Threshold  float64 `json:"threshold" yaml:"threshold"`
	Samples    int     `json:"samples" yaml:"samples"`
	Superlevel float64 `json:"superlevel" yaml:"superlevel"`
}

type integralReport struct {
	Function     string   `json:"function" yaml:"function"`
	MeasureCurve float64  `json:"measureCurve" yaml:"measureCurve"`
	Signed       float64  `json:"signed" yaml:"signed"`
	Exact        *float64 `json:"exact,omitempty" yaml:"exact,omitempty"`
}

type crossCheckReport struct {
	Function   string              `json:"function" yaml:"function"`
	Comparison lebesgue.Comparison `json:"comparison" yaml:"comparison"`
	Tolerance  float64             `json:"tolerance" yaml:"tolerance"`
	Agrees     bool                `json:"agrees" yaml:"agrees"`
}

func exact(s catalog.FunctionSpec) *float64 {
	if !s.HasIntegral {
		return nil
	}
	v := s.Integral

	return &v
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			specs := a.registry.All()
			out := make([]listEntry, 0, len(specs))
			for _, s := range specs {
				out = append(out, listEntry{
					Name:          s.Name,
					Domain:        s.Domain,
					ValueRange:    s.ValueRange,
					Deterministic: s.Deterministic,
					Integral:      exact(s),
					Note:          s.Note,
				})
			}

			return a.emit(cmd, out)
		},
	}
}

func (a *app) riemannCmd() *cobra.Command {
	var (
		partitions int
		rule       string
		resolution string
		rectangles bool
	)
	cmd := &cobra.Command{
		Use:   "riemann",
		Short: "Left, right or midpoint Riemann sum over the function's domain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.spec()
			if err != nil {
				return err
			}
			n, r, res := a.cfg.Partitions, a.cfg.Rule, a.cfg.Resolution
			if cmd.Flags().Changed("partitions") {
				n = partitions
			}
			if cmd.Flags().Changed("rule") {
				if r, err = riemann.ParseRule(rule); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("resolution") {
				if res, err = sampler.ParseResolution(resolution); err != nil {
					return err
				}
			}

			result, err := a.engine.RiemannSum(s, n, r, res, rectangles)
			if err != nil {
				return err
			}
			a.logger.Info("riemann sum", "function", s.Name, "rule", result.Rule, "n", result.Partitions, "sum", result.Sum)

			return a.emit(cmd, riemannReport{
				Function:   s.Name,
				Rule:       result.Rule,
				Partitions: result.Partitions,
				Dx:         result.Dx,
				Sum:        result.Sum,
				Exact:      exact(s),
				Rectangles: result.Rectangles,
			})
		},
	}
	f := cmd.Flags()
	f.IntVarP(&partitions, "partitions", "n", 10, "number of equal partitions")
	f.StringVarP(&rule, "rule", "r", "left", "left, right or midpoint")
	f.StringVar(&resolution, "resolution", "standard", "standard or fine (fine uses 1000 partitions)")
	f.BoolVar(&rectangles, "rectangles", false, "include the rectangle list")

	return cmd
}

func (a *app) measureCmd() *cobra.Command {
	var (
		threshold float64
		samples   int
	)
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Measure of {x : f(x) > t}",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.spec()
			if err != nil {
				return err
			}
			n := a.samples(cmd, samples)
			m, err := a.engine.Superlevel(s, threshold, n)
			if err != nil {
				return err
			}

			return a.emit(cmd, measureReport{Function: s.Name, Threshold: threshold, Samples: n, Superlevel: m})
		},
	}
	cmd.Flags().Float64VarP(&threshold, "threshold", "t", 0, "threshold t")
	cmd.Flags().IntVar(&samples, "samples", levelset.DefaultSamples, "x-resolution")
	_ = cmd.MarkFlagRequired("threshold")

	return cmd
}

// bandFlags are shared by slices and layercake.
type bandFlags struct {
	levels  int
	samples int
	lo, hi  float64
}

func (b *bandFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVarP(&b.levels, "levels", "l", 8, "number of bands")
	f.IntVar(&b.samples, "samples", levelset.DefaultSamples, "x-resolution")
	f.Float64Var(&b.lo, "lo", 0, "value range lower bound (default: function's range)")
	f.Float64Var(&b.hi, "hi", 0, "value range upper bound (default: function's range)")
}

func (b *bandFlags) resolve(a *app, cmd *cobra.Command, s catalog.FunctionSpec) (vr sampler.Domain, levels, samples int) {
	vr = s.ValueRange
	if cmd.Flags().Changed("lo") {
		vr.Lo = b.lo
	}
	if cmd.Flags().Changed("hi") {
		vr.Hi = b.hi
	}
	levels = a.cfg.Levels
	if cmd.Flags().Changed("levels") {
		levels = b.levels
	}

	return vr, levels, a.samples(cmd, b.samples)
}

func (a *app) slicesCmd() *cobra.Command {
	var b bandFlags
	cmd := &cobra.Command{
		Use:   "slices",
		Short: "Disjoint horizontal bands and the x-segments where f falls in each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.spec()
			if err != nil {
				return err
			}
			vr, levels, samples := b.resolve(a, cmd, s)
			out, err := a.engine.LevelSlices(s, vr, levels, samples)
			if err != nil {
				return err
			}

			return a.emit(cmd, out)
		},
	}
	b.register(cmd)

	return cmd
}

func (a *app) layerCakeCmd() *cobra.Command {
	var b bandFlags
	cmd := &cobra.Command{
		Use:   "layercake",
		Short: "Nested super-level bands f(x) ≥ yLower",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.spec()
			if err != nil {
				return err
			}
			vr, levels, samples := b.resolve(a, cmd, s)
			out, err := a.engine.LayerCake(s, vr, levels, samples)
			if err != nil {
				return err
			}

			return a.emit(cmd, out)
		},
	}
	b.register(cmd)

	return cmd
}

func (a *app) probeCmd() *cobra.Command {
	var (
		t, dt   float64
		samples int
	)
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Single slice of f(x) ≥ t",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.spec()
			if err != nil {
				return err
			}
			out, err := a.engine.SliceAt(s, t, dt, a.samples(cmd, samples))
			if err != nil {
				return err
			}

			return a.emit(cmd, out)
		},
	}
	cmd.Flags().Float64VarP(&t, "height", "t", 0, "probe height t")
	cmd.Flags().Float64Var(&dt, "dt", 0.05, "band thickness")
	cmd.Flags().IntVar(&samples, "samples", levelset.DefaultSamples, "x-resolution")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}

func (a *app) curveCmd() *cobra.Command {
	var (
		steps   int
		samples int
	)
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Measure curve t ↦ μ{f > t} over the value range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.spec()
			if err != nil {
				return err
			}
			n := a.cfg.CurveSteps
			if cmd.Flags().Changed("steps") {
				n = steps
			}
			out, err := a.engine.MeasureCurve(s, s.ValueRange, n, a.samples(cmd, samples))
			if err != nil {
				return err
			}

			return a.emit(cmd, out)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", lebesgue.DefaultCurveSteps, "threshold steps")
	cmd.Flags().IntVar(&samples, "samples", levelset.DefaultSamples, "x-resolution")

	return cmd
}

func (a *app) integrateCmd() *cobra.Command {
	var samples int
	cmd := &cobra.Command{
		Use:   "integrate",
		Short: "Integral of the measure curve, unsigned and signed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.spec()
			if err != nil {
				return err
			}
			n := a.samples(cmd, samples)
			unsigned, err := a.engine.IntegrateMeasureCurve(s, s.ValueRange, n)
			if err != nil {
				return err
			}
			signed, err := a.engine.SignedIntegral(s, s.ValueRange, n)
			if err != nil {
				return err
			}

			return a.emit(cmd, integralReport{Function: s.Name, MeasureCurve: unsigned, Signed: signed, Exact: exact(s)})
		},
	}
	cmd.Flags().IntVar(&samples, "samples", levelset.DefaultSamples, "x-resolution")

	return cmd
}

func (a *app) crossCheckCmd() *cobra.Command {
	var (
		tol     float64
		samples int
	)
	cmd := &cobra.Command{
		Use:   "crosscheck",
		Short: "Compare the layer-cake integral with a fine midpoint Riemann sum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.spec()
			if err != nil {
				return err
			}
			cmp, err := lebesgue.CrossCheck(cmd.Context(), s.Fn, s.Domain, s.ValueRange,
				lebesgue.WithSamples(a.samples(cmd, samples)))
			if err != nil {
				return err
			}
			agrees := cmp.Agrees(tol)
			if !agrees {
				a.logger.Warn("estimates disagree", "function", s.Name, "relativeError", cmp.RelativeError, "tolerance", tol)
			}

			return a.emit(cmd, crossCheckReport{Function: s.Name, Comparison: cmp, Tolerance: tol, Agrees: agrees})
		},
	}
	cmd.Flags().Float64Var(&tol, "tol", 0.01, "relative tolerance")
	cmd.Flags().IntVar(&samples, "samples", levelset.DefaultSamples, "x-resolution")

	return cmd
}
