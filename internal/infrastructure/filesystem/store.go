package filesystem

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"i18nsync/internal/domain"
	"i18nsync/internal/ports/output"
)

const catalogExt = ".po"

// replacementChar is what the decoder substitutes for bytes it cannot read.
var replacementChar = []byte("\uFFFD")

var _ output.TranslationStore = (*Store)(nil)

// Options locate the inputs and outputs of a conversion. Relative paths are
// resolved against WorkDir.
type Options struct {
	// Fs defaults to the operating system's file system.
	Fs afero.Fs

	WorkDir   string
	InputDir  string
	OutputDir string
	TableFile string

	// Explicit inputs replace discovery under InputDir when set.
	CatalogPaths []string
	TablePath    string
}

// Store is the on-disk TranslationStore: catalogs are <lang>.po files, the
// table is a single delimited file.
type Store struct {
	fs   afero.Fs
	opts Options
}

func NewStore(opts Options) *Store {
	afs := opts.Fs
	if afs == nil {
		afs = afero.NewOsFs()
	}
	return &Store{fs: afs, opts: opts}
}

func (s *Store) abs(path string) string {
	if filepath.IsAbs(path) || s.opts.WorkDir == "" {
		return path
	}
	return filepath.Join(s.opts.WorkDir, path)
}

// CatalogPaths returns the catalog files a conversion would read.
func (s *Store) CatalogPaths() ([]string, error) {
	if len(s.opts.CatalogPaths) > 0 {
		out := make([]string, len(s.opts.CatalogPaths))
		for i, p := range s.opts.CatalogPaths {
			out[i] = s.abs(p)
		}
		return out, nil
	}
	matches, err := afero.Glob(s.fs, filepath.Join(s.abs(s.opts.InputDir), "*"+catalogExt))
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

// TablePath returns the table file a conversion would read.
func (s *Store) TablePath() string {
	if s.opts.TablePath != "" {
		return s.abs(s.opts.TablePath)
	}
	return filepath.Join(s.abs(s.opts.InputDir), s.opts.TableFile)
}

// OutputDir returns the folder outputs are written to.
func (s *Store) OutputDir() string {
	return s.abs(s.opts.OutputDir)
}

// LanguageKey derives a catalog's language key from its file name.
func LanguageKey(path string) string {
	return strings.TrimSuffix(filepath.Base(path), catalogExt)
}

func (s *Store) DiscoverCatalogs(ctx context.Context) ([]output.CatalogSource, error) {
	paths, err := s.CatalogPaths()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %s", domain.ErrNoCatalogs, catalogExt, s.abs(s.opts.InputDir))
	}

	out := make([]output.CatalogSource, 0, len(paths))
	for _, p := range paths {
		data, err := s.readText(p)
		if err != nil {
			return nil, err
		}
		out = append(out, output.CatalogSource{Language: LanguageKey(p), Name: filepath.Base(p), Data: data})
	}
	return out, nil
}

func (s *Store) DiscoverTable(ctx context.Context) ([]byte, error) {
	p := s.TablePath()
	data, err := s.readText(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s does not exist", domain.ErrNoTable, p)
	}
	return data, err
}

func (s *Store) WriteCatalog(ctx context.Context, language string, data []byte) error {
	return s.write(language+catalogExt, data)
}

func (s *Store) WriteTable(ctx context.Context, data []byte) error {
	return s.write(s.opts.TableFile, data)
}

func (s *Store) write(name string, data []byte) error {
	dir := s.OutputDir()
	info, err := s.fs.Stat(dir)
	if err != nil {
		return fmt.Errorf("output folder: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("output folder %s is not a directory", dir)
	}

	path := filepath.Join(dir, name)
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	log.WithFields(log.Fields{"path": path, "bytes": len(data)}).Debug("file written")
	return nil
}

// readText reads a file and decodes it to UTF-8, honouring a UTF-8 or UTF-16
// byte order mark. Input the decoder would have to patch with U+FFFD, such as
// a Latin-1 file, is rejected.
func (s *Store) readText(path string) ([]byte, error) {
	raw, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if bytes.Count(decoded, replacementChar) > bytes.Count(raw, replacementChar) {
		return nil, &domain.ParseError{Source: path, Reason: "text is not valid UTF-8 or UTF-16"}
	}
	log.WithFields(log.Fields{"path": path, "bytes": len(raw)}).Debug("file read")
	return decoded, nil
}
