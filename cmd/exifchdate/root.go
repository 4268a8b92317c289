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


package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/exifchdate/pkg/config"
	"github.com/walteh/exifchdate/pkg/exiftool"
	"github.com/walteh/exifchdate/pkg/files"
	"github.com/walteh/exifchdate/pkg/journal"
	"github.com/walteh/exifchdate/pkg/log"
	"github.com/walteh/exifchdate/pkg/operation"
	"github.com/walteh/exifchdate/pkg/status"
)

// usageError marks mistakes in how the command was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// 🎛️ rootOpts holds flag values and the seams tests replace
type rootOpts struct {
	out       io.Writer
	errOut    io.Writer
	newRunner func(binary string) exiftool.Runner

	// Flags
	configFile  string
	envFile     string
	debug       bool
	journal     string
	concurrency int
	dryRun      bool
	recursive   bool
	exiftool    string
}

func newRootOpts(out, errOut io.Writer) *rootOpts {
	return &rootOpts{
		out:    out,
		errOut: errOut,
		newRunner: func(binary string) exiftool.Runner {
			return exiftool.NewExecRunner(binary)
		},
	}
}

// 🏃 run executes the command line and returns the process exit status.
//
// Only invocation and configuration problems fail the process; files that
// could not be edited are reported and still exit 0.
func run(ctx context.Context, args []string, o *rootOpts) int {
	root := newRootCmd(o)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}

	fmt.Fprintf(o.errOut, "%s %v\n", color.RedString("Error:"), err)
	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(o.errOut)
		fmt.Fprint(o.errOut, cmd.UsageString())
	}
	return 1
}

func newRootCmd(o *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exifchdate [flags] <day> <month> [year] <file>...",
		Short: "Set the date of many photos at once, keeping each photo's time of day",
		Long: `exifchdate rewrites the date part of DateTimeOriginal, CreateDate and
ModifyDate with exiftool, keeping every file's own time of day and UTC offset.

  <day>    day number   (1-31)
  <month>  month number (1-12)
  [year]   optional four-digit year (if omitted each file keeps its year)
  <file…>  image files, directories or glob patterns to modify`,
		Example: `  exifchdate 14 5 2024 IMG_0001.jpg IMG_0002.jpg
  exifchdate -n 1 1 'trip/**/*.jpg'
  exifchdate -r --journal edits.db 3 9 ./scans`,
		Args: func(cmd *cobra.Command, args []string) error {
			if _, err := ParseArgs(args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if o.debug {
				level = zerolog.DebugLevel
			}
			logger := log.New(o.errOut, o.errOut, level)
			cmd.SetContext(log.NewContext(cmd.Context(), logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runEdit(cmd, args)
		},
	}

	cmd.SetOut(o.out)
	cmd.SetErr(o.errOut)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	cmd.SetUsageTemplate(cmd.UsageTemplate() + "\n" + config.EnvHelp() + "\n")

	addRootFlags(cmd, o)

	cmd.AddCommand(
		newHistoryCmd(o),
		newVersionCmd(o),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *rootOpts) {
	cmd.PersistentFlags().StringVarP(&o.configFile, "config", "c", "", "config file path (default: .exifchdate.{yaml,yml,json,hcl,toml} if present)")
	cmd.PersistentFlags().StringVar(&o.envFile, "env-file", "", "load EXIFCHDATE_* variables from this file")
	cmd.PersistentFlags().StringVar(&o.journal, "journal", "", "bbolt file recording every written edit")
	cmd.PersistentFlags().BoolVarP(&o.debug, "debug", "d", false, "enable debug logging")

	cmd.Flags().IntVarP(&o.concurrency, "concurrency", "j", 0, "files processed at once (default: number of CPUs)")
	cmd.Flags().BoolVarP(&o.dryRun, "dry-run", "n", false, "show the new timestamps without writing them")
	cmd.Flags().BoolVarP(&o.recursive, "recursive", "r", false, "descend into sub-directories")
	cmd.Flags().StringVar(&o.exiftool, "exiftool", "", "exiftool binary to run (default: exiftool)")
}

// ⚙️ loadConfig merges defaults, the config file, the environment and flags
func (o *rootOpts) loadConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	path := o.configFile
	if path == "" {
		path = config.Discover(".")
	}
	if path != "" {
		loaded, err := config.Load(ctx, path)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if err := config.ApplyEnv(ctx, cfg, o.envFile); err != nil {
		return nil, errors.Errorf("applying environment: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("concurrency") {
		cfg.Concurrency = o.concurrency
	}
	if flags.Changed("exiftool") {
		cfg.ExiftoolPath = o.exiftool
	}
	if flags.Changed("dry-run") {
		cfg.DryRun = o.dryRun
	}
	if flags.Changed("recursive") {
		cfg.Recursive = o.recursive
	}
	if flags.Changed("journal") {
		cfg.Journal = o.journal
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("config", cfg.String()).Msg("configuration loaded")

	return cfg, nil
}

// 🚀 runEdit expands the inputs and runs one batch over them
func (o *rootOpts) runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := log.FromContext(ctx)

	req, err := ParseArgs(args)
	if err != nil {
		return &usageError{err: err}
	}

	cfg, err := o.loadConfig(ctx, cmd)
	if err != nil {
		return err
	}

	targets, err := files.Expand(ctx, req.Files, files.Options{
		Recursive:      cfg.Recursive,
		Extensions:     cfg.Extensions,
		IgnorePatterns: cfg.IgnorePatterns,
	})
	if err != nil {
		return errors.Errorf("expanding files: %w", err)
	}
	if len(targets) == 0 {
		return &usageError{err: errors.New("no image files supplied")}
	}

	runner := o.newRunner(cfg.ExiftoolPath)
	if lp, ok := runner.(interface{ LookPath() (string, error) }); ok {
		if _, err := lp.LookPath(); err != nil {
			logger.Warningf("%s was not found; files will be skipped as unreadable", cfg.ExiftoolPath)
		}
	}
	gateway := exiftool.NewGateway(runner,
		exiftool.WithReadTag(cfg.ReadTag),
		exiftool.WithWriteTags(cfg.WriteTags...),
	)

	runID := uuid.NewString()
	observers := []operation.Observer{status.NewReporter(o.out, o.errOut, cfg.ReadTag)}
	if cfg.Journal != "" && !cfg.DryRun {
		j, err := journal.Open(ctx, cfg.Journal)
		if err != nil {
			return errors.Errorf("opening journal: %w", err)
		}
		defer j.Close()
		observers = append(observers, j.Observer(runID))
	}

	batch, err := operation.NewRunner(operation.Options{
		Gateway:     gateway,
		Concurrency: cfg.Concurrency,
		DryRun:      cfg.DryRun,
		Observers:   observers,
		Logger:      logger.Zerolog(),
	})
	if err != nil {
		return errors.Errorf("creating runner: %w", err)
	}

	mode := "setting"
	if cfg.DryRun {
		mode = "previewing"
	}
	logger.Header(fmt.Sprintf("%s %s on %d files", mode, req.Edit, len(targets)))

	start := time.Now()
	outcomes := batch.RunBatch(ctx, targets, req.Edit)

	summary := status.Summarize(outcomes)
	summary.RunID = runID
	summary.Elapsed = time.Since(start)
	if err := status.PrintSummary(o.errOut, summary); err != nil {
		logger.Warningf("printing summary: %v", err)
	}

	return nil
}
