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


package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse decodes data over the defaults
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// hasExt reports whether filename ends in one of exts, ignoring case.
func hasExt(filename string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// 📚 Config represents the complete configuration
type Config struct {
	Concurrency    int      `json:"concurrency" yaml:"concurrency" toml:"concurrency" env:"EXIFCHDATE_CONCURRENCY" env-description:"files processed at once"`
	ExiftoolPath   string   `json:"exiftool_path" yaml:"exiftool_path" toml:"exiftool_path" env:"EXIFCHDATE_EXIFTOOL" env-description:"exiftool binary to run"`
	ReadTag        string   `json:"read_tag" yaml:"read_tag" toml:"read_tag" env:"EXIFCHDATE_READ_TAG" env-description:"tag holding the original timestamp"`
	WriteTags      []string `json:"write_tags" yaml:"write_tags" toml:"write_tags" env:"EXIFCHDATE_WRITE_TAGS" env-description:"tags set to the new timestamp"`
	DryRun         bool     `json:"dry_run" yaml:"dry_run" toml:"dry_run" env:"EXIFCHDATE_DRY_RUN" env-description:"compute but do not write"`
	Journal        string   `json:"journal" yaml:"journal" toml:"journal" env:"EXIFCHDATE_JOURNAL" env-description:"bbolt file recording every edit"`
	Recursive      bool     `json:"recursive" yaml:"recursive" toml:"recursive" env:"EXIFCHDATE_RECURSIVE" env-description:"descend into sub-directories"`
	Extensions     []string `json:"extensions" yaml:"extensions" toml:"extensions" env:"EXIFCHDATE_EXTENSIONS" env-description:"file extensions picked from directories"`
	IgnorePatterns []string `json:"ignore_patterns" yaml:"ignore_patterns" toml:"ignore_patterns" env:"EXIFCHDATE_IGNORE" env-description:"glob patterns of files to leave alone"`
}

// DefaultExtensions are the image types exiftool can date.
var DefaultExtensions = []string{
	".jpg", ".jpeg", ".png", ".tif", ".tiff", ".webp", ".heic", ".heif",
	".cr2", ".cr3", ".nef", ".arw", ".dng", ".orf", ".rw2", ".pef", ".raf", ".sr2",
}

// 🏭 Default returns the configuration used when nothing else is set
func Default() *Config {
	return &Config{
		Concurrency:  runtime.NumCPU(),
		ExiftoolPath: "exiftool",
		ReadTag:      "DateTimeOriginal",
		WriteTags:    []string{"DateTimeOriginal", "CreateDate", "ModifyDate"},
		Extensions:   append([]string(nil), DefaultExtensions...),
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🔎 Discover returns the first config file found in dir, or "" when none exists
func Discover(dir string) string {
	for _, name := range []string{".exifchdate.yaml", ".exifchdate.yml", ".exifchdate.json", ".exifchdate.hcl", ".exifchdate.toml"} {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if cfg.Concurrency < 1 {
		return errors.Errorf("concurrency must be at least 1, got %d", cfg.Concurrency)
	}
	if strings.TrimSpace(cfg.ExiftoolPath) == "" {
		return errors.Errorf("exiftool_path is required")
	}
	if strings.TrimSpace(cfg.ReadTag) == "" {
		return errors.Errorf("read_tag is required")
	}
	if len(cfg.WriteTags) == 0 {
		return errors.Errorf("write_tags must name at least one tag")
	}
	for i, tag := range cfg.WriteTags {
		if strings.TrimSpace(tag) == "" {
			return errors.Errorf("write_tags[%d] is empty", i)
		}
	}
	for _, pattern := range cfg.IgnorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	// Normalise extensions to ".ext"
	for i, ext := range cfg.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.Extensions[i] = ext
	}

	return nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	mode := "write"
	if cfg.DryRun {
		mode = "dry-run"
	}
	return fmt.Sprintf("%s -%s -> %s (concurrency %d, %s)",
		cfg.ExiftoolPath, cfg.ReadTag, strings.Join(cfg.WriteTags, ","), cfg.Concurrency, mode)
}
