package cli

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"i18nsync/internal/adapters/resolver"
	"i18nsync/internal/application"
	"i18nsync/internal/domain/entities"
	"i18nsync/internal/infrastructure/csvtable"
	"i18nsync/internal/infrastructure/filesystem"
	"i18nsync/internal/infrastructure/po"
	"i18nsync/internal/ports/output"
)

// paths are the per-run inputs given on the command line.
type paths struct {
	catalogs []string
	table    string
}

func (a *App) newPoToCsvCommand() *cobra.Command {
	var p paths
	cmd := &cobra.Command{
		Use:   "potocsv",
		Short: "Merge .po catalogs into one table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPoToCsv(cmd.Context(), p)
		},
	}
	cmd.Flags().StringSliceVar(&p.catalogs, "po", nil, "catalog file, repeatable; the language is the file name without .po")
	return cmd
}

func (a *App) newCsvToPoCommand() *cobra.Command {
	var p paths
	cmd := &cobra.Command{
		Use:   "csvtopo",
		Short: "Merge a table back into .po catalogs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCsvToPo(cmd.Context(), p)
		},
	}
	cmd.Flags().StringSliceVar(&p.catalogs, "po", nil, "catalog file, repeatable; the language is the file name without .po")
	cmd.Flags().StringVar(&p.table, "csv", "", "table file (default <input-dir>/<table-file>)")
	return cmd
}

func (a *App) runPoToCsv(ctx context.Context, p paths) error {
	store, svc, err := a.service(p)
	if err != nil {
		return err
	}
	catalogs, err := store.CatalogPaths()
	if err != nil {
		return err
	}

	writeSection(a.out, a.msg("section.potocsv", nil))
	writeInfo(a.out, a.msg("info.cwd", nil), a.cfg.WorkDir)
	writeInfo(a.out, a.msg("info.catalogs", nil), "")
	writeList(a.out, catalogs)
	writeInfo(a.out, a.msg("info.output", nil), store.OutputDir())

	rep, err := svc.PoToCsv(ctx)
	if err != nil {
		return err
	}
	a.done(rep, filepath.Join(store.OutputDir(), a.cfg.TableFile))
	return nil
}

func (a *App) runCsvToPo(ctx context.Context, p paths) error {
	store, svc, err := a.service(p)
	if err != nil {
		return err
	}
	catalogs, err := store.CatalogPaths()
	if err != nil {
		return err
	}

	writeSection(a.out, a.msg("section.csvtopo", nil))
	writeInfo(a.out, a.msg("info.cwd", nil), a.cfg.WorkDir)
	writeInfo(a.out, a.msg("info.table", nil), store.TablePath())
	writeInfo(a.out, a.msg("info.catalogs", nil), "")
	writeList(a.out, catalogs)
	writeInfo(a.out, a.msg("info.output", nil), store.OutputDir())

	rep, err := svc.CsvToPo(ctx)
	if err != nil {
		return err
	}
	a.done(rep, store.OutputDir())
	return nil
}

// service builds the store and the conversion service for one run.
func (a *App) service(p paths) (*filesystem.Store, *application.ConvertService, error) {
	res, err := a.resolver()
	if err != nil {
		return nil, nil, err
	}
	store := filesystem.NewStore(filesystem.Options{
		WorkDir:      a.cfg.WorkDir,
		InputDir:     a.cfg.InputDir,
		OutputDir:    a.cfg.OutputDir,
		TableFile:    a.cfg.TableFile,
		CatalogPaths: p.catalogs,
		TablePath:    p.table,
	})
	svc := application.NewConvertService(
		store,
		po.NewCodec(),
		csvtable.NewCodec(a.cfg.DelimiterRune()),
		res,
	)
	return store, svc, nil
}

func (a *App) resolver() (output.Resolver, error) {
	if a.cfg.Strategy == "prompt" {
		return resolver.NewPrompt(a.in, a.out, a.t, a.cfg.Locale), nil
	}
	return resolver.ForStrategy(a.cfg.Strategy)
}

func (a *App) done(rep entities.Report, path string) {
	writeInfo(a.out, a.msg("info.output_file", map[string]any{"Path": path}), "")
	writeInfo(a.out, a.msg("info.summary", map[string]any{
		"Rows":      strconv.Itoa(rep.Rows),
		"Added":     strconv.Itoa(rep.Added),
		"Updated":   strconv.Itoa(rep.Updated),
		"Conflicts": strconv.Itoa(rep.Conflicts),
		"Skipped":   strconv.Itoa(rep.Skipped),
	}), "")
}

func (a *App) msg(key string, data map[string]any) string {
	return a.t.T(a.cfg.Locale, key, data)
}
