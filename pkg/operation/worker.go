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


package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/exifchdate/pkg/timestamp"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Gateway reads and writes the capture timestamp of a file.
type Gateway interface {
	ReadOriginal(ctx context.Context, file string) (string, error)
	WriteTimestamp(ctx context.Context, file, value string) error
}

// 👷 Worker moves a single file to a new date.
type Worker struct {
	gateway Gateway
	dryRun  bool
}

// NewWorker creates a worker. With dryRun set nothing is written.
func NewWorker(gateway Gateway, dryRun bool) *Worker {
	return &Worker{gateway: gateway, dryRun: dryRun}
}

// 📄 Process reads, transforms and writes back the timestamp of file.
//
// The slot taken from limiter is released on every return path. Failures are
// reported in the Outcome and never returned or panicked.
func (w *Worker) Process(ctx context.Context, file string, edit timestamp.DateEdit, limiter Limiter) Outcome {
	if err := limiter.Acquire(ctx); err != nil {
		return Outcome{File: file, Kind: KindCrashed, Err: errors.Errorf("acquiring slot: %w", err)}
	}
	defer limiter.Release()

	logger := zerolog.Ctx(ctx).With().Str("file", file).Logger()

	original, err := w.gateway.ReadOriginal(ctx, file)
	if err != nil {
		logger.Debug().Err(err).Msg("skipping unreadable file")
		return Outcome{File: file, Kind: KindSkippedUnreadable, Err: err}
	}

	updated, err := timestamp.Transform(original, edit)
	if err != nil {
		logger.Debug().Err(err).Str("original", original).Msg("skipping malformed timestamp")
		return Outcome{File: file, Kind: KindSkippedMalformed, Original: original, Err: err}
	}

	if w.dryRun {
		logger.Debug().Str("original", original).Str("updated", updated).Msg("dry run, not writing")
		return Outcome{File: file, Kind: KindSuccess, Original: original, Updated: updated}
	}

	if err := w.gateway.WriteTimestamp(ctx, file, updated); err != nil {
		logger.Debug().Err(err).Str("updated", updated).Msg("write failed")
		return Outcome{File: file, Kind: KindWriteFailed, Original: original, Updated: updated, Err: err}
	}

	logger.Debug().Str("original", original).Str("updated", updated).Msg("timestamp written")
	return Outcome{File: file, Kind: KindSuccess, Original: original, Updated: updated, Written: true}
}
