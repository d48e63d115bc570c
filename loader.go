package balancesheet

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Setup creates the directories if they do not exist.
func Setup(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory %q: %w", dir, err)
		}
	}
	return nil
}

// ListInputs returns the names of the regular files in dir, sorted.
//
// Sub directories are ignored. It fails with ErrNoInputFiles if there is none.
func ListInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not list %q: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoInputFiles, dir)
	}
	slices.Sort(files)
	return files, nil
}

// OpenExport reads and decodes the export file at path.
func OpenExport(path string) (*Export, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open export file %q: %w", path, err)
	}
	defer f.Close()

	e, err := DecodeExport(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode export file %q: %w", path, err)
	}
	return e, nil
}

// SaveReport writes the report to the file name in dir, and returns its path.
func SaveReport(dir, name string, r *Report) (string, error) {
	if name == "" {
		return "", fmt.Errorf("cannot save report with an empty name")
	}
	if err := Setup(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error opening report file %q for writing: %w", path, err)
	}
	if err := EncodeReport(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("error writing report file %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("error closing report file %q: %w", path, err)
	}
	return path, nil
}

// LoadReports decodes the report files concurrently. Reports are returned in
// the order of paths.
func LoadReports(ctx context.Context, paths ...string) ([]*Report, error) {
	reports := make([]*Report, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := loadReportFile(path)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// loadReportFile opens and decodes a report from a given file path.
func loadReportFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open report file %q: %w", path, err)
	}
	defer f.Close()

	r, err := DecodeReport(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode report file %q: %w", path, err)
	}
	return r, nil
}
