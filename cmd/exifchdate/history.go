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
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/exifchdate/pkg/journal"
)

func newHistoryCmd(o *rootOpts) *cobra.Command {
	var runID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List edits recorded in the journal",
		Long: `History prints every timestamp written while a journal was enabled,
oldest first, with the value each file had before the edit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := o.loadConfig(ctx, cmd)
			if err != nil {
				return err
			}
			if cfg.Journal == "" {
				return &usageError{err: errors.New("history needs --journal or a journal in the config")}
			}

			j, err := journal.Open(ctx, cfg.Journal)
			if err != nil {
				return errors.Errorf("opening journal: %w", err)
			}
			defer j.Close()

			entries, err := j.Entries(ctx, runID)
			if err != nil {
				return errors.Errorf("listing journal: %w", err)
			}

			return printHistory(o.out, entries)
		},
	}

	cmd.Flags().StringVar(&runID, "run", "", "only show edits from this run ID")

	return cmd
}

// 📜 printHistory renders journal entries as a table
func printHistory(w io.Writer, entries []journal.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "no edits recorded")
		return err
	}

	data := pterm.TableData{{"#", "time", "run", "file", "original", "updated"}}
	for _, e := range entries {
		data = append(data, []string{
			strconv.FormatUint(e.Seq, 10),
			e.Time.Local().Format(time.DateTime),
			e.RunID,
			e.File,
			e.Original,
			e.Updated,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(w).Render(); err != nil {
		return errors.Errorf("rendering history: %w", err)
	}
	return nil
}
