// Package walker discovers candidate files under a root directory. It walks
// the tree in lexical order, keeps only files a fragment extractor
// understands, and honors .gitignore patterns collected from the tree.
package walker

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/leapstack-labs/locklint/pkg/extract"
	"github.com/leapstack-labs/locklint/pkg/scan"
)

// Directories never descended into, ignored or not.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
}

// Options configures a discovery walk.
type Options struct {
	Root             string
	RespectGitignore bool
	Logger           *slog.Logger
}

// Discover walks the root and returns every candidate file with its content,
// in deterministic lexical order. Unreadable files are logged and skipped;
// only a failure to walk the tree itself is an error.
func Discover(opts Options) ([]scan.File, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var matcher gitignore.Matcher
	if opts.RespectGitignore {
		patterns, err := gitignore.ReadPatterns(osfs.New(opts.Root), nil)
		if err != nil {
			logger.Warn("reading gitignore patterns", "root", opts.Root, "error", err)
		} else if len(patterns) > 0 {
			matcher = gitignore.NewMatcher(patterns)
		}
	}

	var files []scan.File
	err := filepath.WalkDir(opts.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(opts.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			if matcher != nil && matcher.Match(strings.Split(rel, "/"), true) {
				return filepath.SkipDir
			}
			return nil
		}

		if extract.Detect(rel) == extract.FormatUnknown {
			return nil
		}
		if matcher != nil && matcher.Match(strings.Split(rel, "/"), false) {
			logger.Debug("skipping ignored file", "path", rel)
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("skipping unreadable file", "path", rel, "error", err)
			return nil
		}

		files = append(files, scan.File{Path: rel, Content: string(content)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", opts.Root, err)
	}

	logger.Debug("discovery complete", "root", opts.Root, "files", len(files))
	return files, nil
}
