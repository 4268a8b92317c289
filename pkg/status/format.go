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


package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/walteh/exifchdate/pkg/operation"
)

// 🎯 FormatOutcome renders the console line for one outcome.
//
// toErr reports whether the line belongs on stderr. readTag names the tag the
// original timestamp was read from.
func FormatOutcome(o operation.Outcome, readTag string) (line string, toErr bool) {
	switch o.Kind {
	case operation.KindSuccess:
		if !o.Written {
			return fmt.Sprintf("%s %s: %s", color.CyanString("🔍"), o.File, FormatDiff(o.Original, o.Updated)), false
		}
		return fmt.Sprintf("%s %s → %s", color.GreenString("✅"), o.File, color.GreenString(o.Updated)), false
	case operation.KindSkippedUnreadable:
		return color.YellowString("⚠️  Could not read %s from '%s'. Skipping.", readTag, o.File), true
	case operation.KindSkippedMalformed:
		return color.YellowString("⚠️  Unexpected %s format in '%s'. Skipping.", readTag, o.File), true
	case operation.KindWriteFailed:
		return color.RedString("❌ Failed to write EXIF for '%s': %s", o.File, reason(o.Err)), true
	case operation.KindCrashed:
		return color.New(color.FgRed, color.Bold).Sprintf("💥 Worker for '%s' crashed: %s", o.File, reason(o.Err)), true
	default:
		return fmt.Sprintf("❓ %s: %s", o.File, o.Kind), true
	}
}

// 📝 FormatDiff shows the character changes between two timestamps,
// deletions as [-x-] and insertions as {+y+}.
func FormatDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString(color.RedString("[-%s-]", d.Text))
		case diffmatchpatch.DiffInsert:
			b.WriteString(color.GreenString("{+%s+}", d.Text))
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

func reason(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
