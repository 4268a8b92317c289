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
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/walteh/exifchdate/pkg/operation"
)

var _ operation.Observer = (*Reporter)(nil)

// 📢 Reporter prints one line per finished file.
//
// It is safe for concurrent use; lines from different files never interleave.
type Reporter struct {
	out     io.Writer
	errOut  io.Writer
	readTag string

	mu     sync.Mutex
	counts map[operation.Kind]int
}

// 🏭 NewReporter creates a reporter writing successes to out and problems to errOut
func NewReporter(out, errOut io.Writer, readTag string) *Reporter {
	return &Reporter{
		out:     out,
		errOut:  errOut,
		readTag: readTag,
		counts:  make(map[operation.Kind]int),
	}
}

// Observe implements operation.Observer.
func (r *Reporter) Observe(ctx context.Context, o operation.Outcome) {
	line, toErr := FormatOutcome(o, r.readTag)

	r.mu.Lock()
	r.counts[o.Kind]++
	if toErr {
		fmt.Fprintln(r.errOut, line)
	} else {
		fmt.Fprintln(r.out, line)
	}
	r.mu.Unlock()

	event := zerolog.Ctx(ctx).Debug()
	if o.Err != nil {
		event = event.Err(o.Err)
	}
	event.
		Str("file", o.File).
		Stringer("kind", o.Kind).
		Str("original", o.Original).
		Str("updated", o.Updated).
		Bool("written", o.Written).
		Msg("file finished")
}

// Count returns how many outcomes of kind have been reported so far.
func (r *Reporter) Count(kind operation.Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.counts[kind]
}
