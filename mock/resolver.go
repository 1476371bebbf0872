// Package mock provides test doubles for gitwebhl interfaces.
package mock

import (
	"github.com/fwojciec/gitwebhl"
)

// Compile-time interface verification.
var _ gitwebhl.Resolver = (*Resolver)(nil)

// Resolver is a mock implementation of gitwebhl.Resolver.
type Resolver struct {
	ResolveFn func(page gitwebhl.Page) gitwebhl.Decision
}

func (r *Resolver) Resolve(page gitwebhl.Page) gitwebhl.Decision {
	return r.ResolveFn(page)
}
