// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package files

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ErrNoMatch is returned when a glob argument matches nothing.
var ErrNoMatch = errors.Base("pattern matched no files")

// 📋 Options control how arguments are expanded
type Options struct {
	Recursive      bool     // descend into sub-directories
	Extensions     []string // lowercase ".ext" kept when walking directories; empty keeps all
	IgnorePatterns []string // doublestar patterns matched against slash paths
}

// 🔎 Expand turns command arguments into the list of files to edit.
//
// Plain paths that are not directories pass through untouched, even when they
// do not exist, so the batch can report them. Directories and glob patterns
// are expanded. Order follows the arguments and duplicates are dropped.
func Expand(ctx context.Context, args []string, opts Options) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	var out []string
	seen := make(map[string]bool)
	add := func(path string) {
		if seen[path] || opts.ignored(path) {
			return
		}
		seen[path] = true
		out = append(out, path)
	}

	for _, arg := range args {
		info, statErr := os.Stat(arg)
		switch {
		case statErr == nil && info.IsDir():
			found, err := walkDir(arg, opts)
			if err != nil {
				return nil, errors.Errorf("expanding directory %s: %w", arg, err)
			}
			logger.Debug().Str("dir", arg).Int("files", len(found)).Msg("expanded directory")
			for _, f := range found {
				add(f)
			}
		case statErr != nil && isPattern(arg):
			matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly(), doublestar.WithNoFollow())
			if err != nil {
				return nil, errors.Errorf("expanding pattern %s: %w", arg, err)
			}
			if len(matches) == 0 {
				return nil, errors.Errorf("%w: %s", ErrNoMatch, arg)
			}
			logger.Debug().Str("pattern", arg).Int("files", len(matches)).Msg("expanded pattern")
			for _, f := range matches {
				add(f)
			}
		default:
			add(arg)
		}
	}

	return out, nil
}

func isPattern(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

func walkDir(root string, opts Options) ([]string, error) {
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && !opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || !opts.wantExt(path) {
			return nil
		}
		found = append(found, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (o Options) wantExt(path string) bool {
	if len(o.Extensions) == 0 {
		return true
	}
	return slices.Contains(o.Extensions, strings.ToLower(filepath.Ext(path)))
}

func (o Options) ignored(path string) bool {
	slashed := filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, pattern := range o.IgnorePatterns {
		if ok, _ := doublestar.Match(pattern, slashed); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
