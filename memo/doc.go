// SPDX-License-Identifier: MIT

// Package memo caches engine results by (function identity, domain, parameters).
//
// The engines are pure, so a result computed once for a given key is valid
// forever; memo keeps them in a github.com/patrickmn/go-cache store with a
// TTL to bound memory. This separates "what is computed" from "when it is
// recomputed": a presentation layer can call Engine on every redraw and only
// pays for parameter changes.
//
// Guarantees:
//
//   - Specs are validated first; non-deterministic specs (catalog.ErrNonDeterministic)
//     are rejected and never cached.
//   - Errors are never cached.
//   - Returned slices are deep copies; callers own them and may mutate freely.
//   - Engine is safe for concurrent use.
package memo
