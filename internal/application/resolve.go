package application

import (
	"context"

	log "github.com/sirupsen/logrus"

	"i18nsync/internal/domain"
	"i18nsync/internal/domain/entities"
	"i18nsync/internal/ports/output"
)

// resolveConflict asks r for a decision and returns the value it selects.
// keep is false when the resolver chose Skip.
func resolveConflict(ctx context.Context, r output.Resolver, c entities.Conflict, rep *entities.Report) (value string, keep bool, err error) {
	rep.Conflicts++
	d, err := r.Resolve(ctx, c)
	if err != nil {
		return "", false, &domain.ResolverError{Conflict: c, Err: err}
	}
	log.WithFields(log.Fields{
		"original": c.Original,
		"language": c.Language,
		"decision": d.Kind.String(),
	}).Debug("conflict resolved")

	value, keep = d.Apply(c)
	if !keep {
		rep.Skipped++
	}
	return value, keep, nil
}
