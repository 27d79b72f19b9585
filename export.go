package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

type exportTarget struct {
	filename string
	backend  Backend
}

// Export renders page into dir for static hosting: index.html, page.json,
// the static directory under dir/static and the CV file at the site root.
func Export(ctx context.Context, dir string, page Page, cvPath, staticDir string) error {
	assets := filepath.Join(dir, "static")
	copyStatic, err := checkStaticDir(staticDir, assets)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	targets := []exportTarget{
		{filename: "index.html", backend: NewHTMLBackend()},
		{filename: "page.json", backend: JSONBackend{}},
	}
	for _, t := range targets {
		var buf bytes.Buffer
		if err := t.backend.Render(ctx, &buf, page); err != nil {
			return fmt.Errorf("render %s: %w", t.filename, err)
		}
		if err := os.WriteFile(filepath.Join(dir, t.filename), buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", t.filename, err)
		}
		log.Info().Str("file", t.filename).Int("bytes", buf.Len()).Msg("exported")
	}

	if !copyStatic {
		return nil
	}
	if err := copyAssets(staticDir, assets); err != nil {
		return err
	}

	name, ok := cvFileName(cvPath)
	if !ok {
		return nil
	}
	cv, err := os.ReadFile(filepath.Join(staticDir, name))
	if errors.Is(err, fs.ErrNotExist) {
		// The page links it regardless; a missing CV only shows up as a 404.
		log.Warn().Str("file", name).Msg("cv not found in static directory")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read cv: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), cv, 0o644); err != nil {
		return fmt.Errorf("write cv: %w", err)
	}
	return nil
}

// checkStaticDir reports whether there are assets to copy into dst. Source
// and destination may be the same directory but must not nest.
func checkStaticDir(src, dst string) (bool, error) {
	info, err := os.Stat(src)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn().Str("dir", src).Msg("static directory missing, skipping assets")
		return false, nil
	case err != nil:
		return false, fmt.Errorf("stat static directory: %w", err)
	case !info.IsDir():
		return false, fmt.Errorf("static path %s is not a directory", src)
	}

	absSrc, err := filepath.Abs(src)
	if err != nil {
		return false, fmt.Errorf("resolve static directory: %w", err)
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return false, fmt.Errorf("resolve %s: %w", dst, err)
	}
	if within(absSrc, absDst) || within(absDst, absSrc) {
		return false, fmt.Errorf("static directory %s overlaps export target %s", absSrc, absDst)
	}
	return true, nil
}

// copyAssets replaces dst with a copy of src. The copy is staged next to dst
// and renamed into place, so a failed copy leaves the previous assets alone.
func copyAssets(src, dst string) error {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return fmt.Errorf("resolve static directory: %w", err)
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", dst, err)
	}
	if absSrc == absDst {
		log.Info().Str("dir", absSrc).Msg("static directory already in place")
		return nil
	}

	tmp, err := os.MkdirTemp(filepath.Dir(absDst), ".static-*")
	if err != nil {
		return fmt.Errorf("stage static assets: %w", err)
	}
	defer os.RemoveAll(tmp)
	if err := os.Chmod(tmp, 0o755); err != nil {
		return fmt.Errorf("stage static assets: %w", err)
	}

	if err := os.CopyFS(tmp, os.DirFS(absSrc)); err != nil {
		return fmt.Errorf("copy static assets: %w", err)
	}
	if err := os.RemoveAll(absDst); err != nil {
		return fmt.Errorf("clear %s: %w", dst, err)
	}
	if err := os.Rename(tmp, absDst); err != nil {
		return fmt.Errorf("move static assets into place: %w", err)
	}
	return nil
}

// within reports whether path lies strictly under base.
func within(path, base string) bool {
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == "." {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
