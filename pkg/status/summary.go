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
	"io"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/exifchdate/pkg/operation"
)

// 📊 Summary totals a finished batch
type Summary struct {
	RunID   string
	Elapsed time.Duration
	Total   int
	Written int
	Counts  map[operation.Kind]int
}

// 🧮 Summarize tallies outcomes by kind
func Summarize(outcomes []operation.Outcome) Summary {
	s := Summary{
		Total:  len(outcomes),
		Counts: make(map[operation.Kind]int, len(operation.Kinds())),
	}
	for _, o := range outcomes {
		s.Counts[o.Kind]++
		if o.Written {
			s.Written++
		}
	}
	return s
}

// Failed returns the number of files that did not succeed.
func (s Summary) Failed() int {
	return s.Total - s.Counts[operation.KindSuccess]
}

// 🖨️ PrintSummary renders the summary as a table
func PrintSummary(w io.Writer, s Summary) error {
	data := pterm.TableData{{"outcome", "files"}}
	for _, kind := range operation.Kinds() {
		if n := s.Counts[kind]; n > 0 {
			data = append(data, []string{kind.String(), strconv.Itoa(n)})
		}
	}
	data = append(data,
		[]string{"written", strconv.Itoa(s.Written)},
		[]string{"total", strconv.Itoa(s.Total)},
	)
	if s.RunID != "" {
		data = append(data, []string{"run", s.RunID})
	}
	data = append(data, []string{"elapsed", s.Elapsed.Round(time.Millisecond).String()})

	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).WithWriter(w).Render(); err != nil {
		return errors.Errorf("rendering summary: %w", err)
	}
	return nil
}
