// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/lvlset/sampler"
)

// builtinIDPrefix keeps built-in identities stable across processes so cached
// results stay addressable; ad-hoc specs get UUIDs instead.
const builtinIDPrefix = "builtin:"

// Builtins returns a fresh registry holding the standard test functions.
// It panics if two built-ins share a name.
func Builtins() *Registry {
	return mustRegistry(builtinSpecs())
}

func mustRegistry(specs []FunctionSpec) *Registry {
	r := NewRegistry()
	for _, s := range specs {
		if err := r.Register(s); err != nil {
			panic(fmt.Sprintf("catalog: built-in %q: %v", s.Name, err))
		}
	}

	return r
}

func builtin(name, note string, d, vr sampler.Domain, fn sampler.Func, integral float64) FunctionSpec {
	return FunctionSpec{
		ID:            builtinIDPrefix + name,
		Name:          name,
		Note:          note,
		Domain:        d,
		ValueRange:    vr,
		Fn:            fn,
		Deterministic: true,
		HasIntegral:   true,
		Integral:      integral,
	}
}

func builtinSpecs() []FunctionSpec {
	unit := sampler.Domain{Lo: 0, Hi: 1}

	return []FunctionSpec{
		builtin("linear", "f(x) = 2x", unit, sampler.Domain{Lo: 0, Hi: 2.2},
			func(x float64) float64 { return 2 * x }, 1),
		builtin("square", "f(x) = x²", unit, unit,
			func(x float64) float64 { return x * x }, 1.0/3.0),
		builtin("sine", "f(x) = sin x over half a period", sampler.Domain{Lo: 0, Hi: math.Pi}, unit,
			math.Sin, 2),
		builtin("wave", "f(x) = sin x over a full period; signed parts cancel",
			sampler.Domain{Lo: 0, Hi: 2 * math.Pi}, sampler.Domain{Lo: -1, Hi: 1},
			math.Sin, 0),
		builtin("step", "f(x) = 1 for x ≥ 0.5, else 0", unit, unit,
			func(x float64) float64 {
				if x >= 0.5 {
					return 1
				}

				return 0
			}, 0.5),
		builtin("cubic", "f(x) = x³ − x; negative on (0, 1)", sampler.Domain{Lo: -1, Hi: 2},
			sampler.Domain{Lo: -0.5, Hi: 6},
			func(x float64) float64 { return x*x*x - x }, 2.25),
		builtin("constant", "f(x) = 0.6", unit, unit,
			func(float64) float64 { return 0.6 }, 0.6),
		{
			ID:   builtinIDPrefix + "dirichlet",
			Name: "dirichlet",
			Note: "1 on rationals, 0 on irrationals. Not Riemann integrable (upper and lower " +
				"sums differ by 1 for every partition); Lebesgue integral 0 because the rationals " +
				"have measure zero. The proxy below draws a random 0/1 per call and is never sampled.",
			Domain:        unit,
			ValueRange:    unit,
			Fn:            func(float64) float64 { return float64(rand.IntN(2)) },
			Deterministic: false,
			HasIntegral:   true,
			Integral:      0,
		},
	}
}
