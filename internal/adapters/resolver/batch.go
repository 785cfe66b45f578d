// Package resolver provides the conflict resolvers the CLI can plug into the
// mergers: fixed policies for batch runs and an interactive prompt.
package resolver

import (
	"context"
	"errors"
	"fmt"

	"i18nsync/internal/domain/entities"
	"i18nsync/internal/ports/output"
)

// ErrExhausted is returned by a Sequence resolver asked for more decisions
// than it holds.
var ErrExhausted = errors.New("resolver: no decision left")

// Fixed always answers with the same decision.
type Fixed struct {
	Decision entities.Decision
}

var _ output.Resolver = Fixed{}

func (f Fixed) Resolve(ctx context.Context, c entities.Conflict) (entities.Decision, error) {
	return f.Decision, nil
}

// AlwaysNew prefers the incoming translation.
func AlwaysNew() Fixed { return Fixed{Decision: entities.UseNew()} }

// AlwaysOld keeps the stored translation.
func AlwaysOld() Fixed { return Fixed{Decision: entities.UseOld()} }

// Sequence hands out decisions in order and records every conflict it saw.
// It is not safe for concurrent use; mergers are sequential.
type Sequence struct {
	decisions []entities.Decision
	Seen      []entities.Conflict
}

var _ output.Resolver = (*Sequence)(nil)

func NewSequence(decisions ...entities.Decision) *Sequence {
	return &Sequence{decisions: decisions}
}

func (s *Sequence) Resolve(ctx context.Context, c entities.Conflict) (entities.Decision, error) {
	s.Seen = append(s.Seen, c)
	if len(s.Seen) > len(s.decisions) {
		return entities.Decision{}, fmt.Errorf("%w after %d conflicts", ErrExhausted, len(s.decisions))
	}
	return s.decisions[len(s.Seen)-1], nil
}

// ForStrategy maps a strategy name from the command line to a batch
// resolver. "prompt" is handled by the caller since it needs a terminal.
func ForStrategy(name string) (output.Resolver, error) {
	switch name {
	case "new":
		return AlwaysNew(), nil
	case "old":
		return AlwaysOld(), nil
	default:
		return nil, fmt.Errorf("unknown conflict strategy %q (want prompt, new or old)", name)
	}
}
