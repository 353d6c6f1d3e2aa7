// SPDX-License-Identifier: MIT

// Package catalog is a registry of named test functions (FunctionSpec) for the
// sampling engines: a domain, a suggested value range, the function itself and,
// where one exists, its closed-form integral.
//
// The engines never depend on catalog; it is the "surrounding system" that
// feeds them. Specs carry an ID so callers can memoize results by
// (function identity, domain, parameters).
//
// Determinism:
//
//	Every engine assumes f is pure. Dirichlet's proxy is not (it draws a random
//	0/1 per call), so it is registered with Deterministic=false and
//	Validate rejects it with ErrNonDeterministic. It stays in the registry for
//	its theory-only Note and must not be routed through Riemann or Lebesgue
//	sampling.
package catalog
