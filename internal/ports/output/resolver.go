package output

import (
	"context"

	"i18nsync/internal/domain/entities"
)

// Resolver decides conflicts raised by the mergers. Resolve blocks until a
// decision is available; a returned error aborts the merge.
type Resolver interface {
	Resolve(ctx context.Context, c entities.Conflict) (entities.Decision, error)
}

// ResolverFunc adapts a plain function to a Resolver.
type ResolverFunc func(ctx context.Context, c entities.Conflict) (entities.Decision, error)

func (f ResolverFunc) Resolve(ctx context.Context, c entities.Conflict) (entities.Decision, error) {
	return f(ctx, c)
}
