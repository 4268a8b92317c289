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
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/exifchdate/pkg/operation"
)

func TestFormatOutcome(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name      string
		outcome   operation.Outcome
		want      string
		wantToErr bool
	}{
		{
			name: "written",
			outcome: operation.Outcome{
				File: "a.jpg", Kind: operation.KindSuccess,
				Original: "2023:01:01 10:00:00", Updated: "2024:05:14 10:00:00", Written: true,
			},
			want: "✅ a.jpg → 2024:05:14 10:00:00",
		},
		{
			name: "dry_run",
			outcome: operation.Outcome{
				File: "a.jpg", Kind: operation.KindSuccess,
				Original: "2023:01:01 10:00:00", Updated: "2023:01:02 10:00:00",
			},
			want: "🔍 a.jpg: 2023:01:0[-1-]{+2+} 10:00:00",
		},
		{
			name:      "unreadable",
			outcome:   operation.Outcome{File: "b.jpg", Kind: operation.KindSkippedUnreadable},
			want:      "⚠️  Could not read DateTimeOriginal from 'b.jpg'. Skipping.",
			wantToErr: true,
		},
		{
			name:      "malformed",
			outcome:   operation.Outcome{File: "c.jpg", Kind: operation.KindSkippedMalformed, Original: "garbage"},
			want:      "⚠️  Unexpected DateTimeOriginal format in 'c.jpg'. Skipping.",
			wantToErr: true,
		},
		{
			name:      "write_failed",
			outcome:   operation.Outcome{File: "d.jpg", Kind: operation.KindWriteFailed, Err: errors.New("exit status 1")},
			want:      "❌ Failed to write EXIF for 'd.jpg': exit status 1",
			wantToErr: true,
		},
		{
			name:      "crashed",
			outcome:   operation.Outcome{File: "e.jpg", Kind: operation.KindCrashed, Err: errors.New("worker panicked: boom")},
			want:      "💥 Worker for 'e.jpg' crashed: worker panicked: boom",
			wantToErr: true,
		},
		{
			name:      "crashed_without_error",
			outcome:   operation.Outcome{File: "f.jpg", Kind: operation.KindCrashed},
			want:      "💥 Worker for 'f.jpg' crashed: unknown error",
			wantToErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, toErr := FormatOutcome(tt.outcome, "DateTimeOriginal")
			assert.Equal(t, tt.want, got, "line should match")
			assert.Equal(t, tt.wantToErr, toErr, "stream should match")
		})
	}
}

func TestFormatDiff(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name   string
		before string
		after  string
		want   string
	}{
		{
			name:   "identical",
			before: "2023:01:01 10:00:00",
			after:  "2023:01:01 10:00:00",
			want:   "2023:01:01 10:00:00",
		},
		{
			name:   "day_changed",
			before: "2023:01:01 10:00:00",
			after:  "2023:01:02 10:00:00",
			want:   "2023:01:0[-1-]{+2+} 10:00:00",
		},
		{
			name:   "from_empty",
			before: "",
			after:  "2024:05:14",
			want:   "{+2024:05:14+}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDiff(tt.before, tt.after), "diff should match")
		})
	}
}

func TestReporter(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var out, errOut bytes.Buffer
	r := NewReporter(&out, &errOut, "CreateDate")
	ctx := context.Background()

	r.Observe(ctx, operation.Outcome{File: "a.jpg", Kind: operation.KindSuccess, Updated: "2024:05:14 10:00:00", Written: true})
	r.Observe(ctx, operation.Outcome{File: "b.jpg", Kind: operation.KindSkippedUnreadable})

	assert.Equal(t, "✅ a.jpg → 2024:05:14 10:00:00\n", out.String(), "stdout should hold the success")
	assert.Equal(t, "⚠️  Could not read CreateDate from 'b.jpg'. Skipping.\n", errOut.String(), "stderr should hold the skip")
	assert.Equal(t, 1, r.Count(operation.KindSuccess), "success count should match")
	assert.Equal(t, 1, r.Count(operation.KindSkippedUnreadable), "unreadable count should match")
	assert.Equal(t, 0, r.Count(operation.KindCrashed), "crashed count should be zero")
}

func TestReporterConcurrentLinesStayWhole(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var out, errOut bytes.Buffer
	r := NewReporter(&out, &errOut, "DateTimeOriginal")

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Observe(context.Background(), operation.Outcome{File: "same.jpg", Kind: operation.KindSuccess, Updated: "2024:05:14 10:00:00", Written: true})
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, n, "every outcome should print one line")
	for _, line := range lines {
		assert.Equal(t, "✅ same.jpg → 2024:05:14 10:00:00", line, "lines should not interleave")
	}
	assert.Equal(t, n, r.Count(operation.KindSuccess), "count should match")
}

func TestSummarize(t *testing.T) {
	s := Summarize([]operation.Outcome{
		{File: "a", Kind: operation.KindSuccess, Written: true},
		{File: "b", Kind: operation.KindSuccess},
		{File: "c", Kind: operation.KindSkippedMalformed},
		{File: "d", Kind: operation.KindWriteFailed},
		{File: "e", Kind: operation.KindCrashed},
	})

	assert.Equal(t, 5, s.Total, "total should match")
	assert.Equal(t, 1, s.Written, "written should match")
	assert.Equal(t, 2, s.Counts[operation.KindSuccess], "successes should match")
	assert.Equal(t, 0, s.Counts[operation.KindSkippedUnreadable], "unreadable should be zero")
	assert.Equal(t, 3, s.Failed(), "failed should match")
}

func TestPrintSummary(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	s := Summarize([]operation.Outcome{
		{File: "a", Kind: operation.KindSuccess, Written: true},
		{File: "b", Kind: operation.KindWriteFailed},
	})
	s.RunID = "4b1f0c3e-run"
	s.Elapsed = 1500 * time.Millisecond

	var buf bytes.Buffer
	require.NoError(t, PrintSummary(&buf, s), "printing should succeed")

	got := buf.String()
	for _, want := range []string{"outcome", "success", "write_failed", "written", "total", "4b1f0c3e-run", "1.5s"} {
		assert.Contains(t, got, want, "summary should mention %q", want)
	}
	assert.NotContains(t, got, "crashed", "empty kinds should be left out")
}
