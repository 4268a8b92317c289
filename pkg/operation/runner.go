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
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/exifchdate/pkg/timestamp"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 👀 Observer is told about each Outcome as soon as its file is done.
//
// Observers are called from many goroutines at once.
type Observer interface {
	Observe(ctx context.Context, outcome Outcome)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, outcome Outcome)

func (f ObserverFunc) Observe(ctx context.Context, outcome Outcome) {
	f(ctx, outcome)
}

// 🔧 Options configures a Runner
type Options struct {
	// Gateway reads and writes timestamps
	Gateway Gateway
	// Concurrency is the most files processed at once
	Concurrency int
	// DryRun computes new timestamps without writing them
	DryRun bool
	// Observers receive every Outcome as it completes
	Observers []Observer
	// Logger is attached to the batch context when set
	Logger *zerolog.Logger
}

// 🏃 Runner fans a batch of files out to workers
type Runner struct {
	worker      *Worker
	concurrency int
	observers   []Observer
	logger      *zerolog.Logger
}

// 🏗️ NewRunner creates a new runner
func NewRunner(opts Options) (*Runner, error) {
	if opts.Gateway == nil {
		return nil, errors.Errorf("gateway is required")
	}
	if opts.Concurrency < 1 {
		return nil, errors.Errorf("concurrency must be at least 1, got %d", opts.Concurrency)
	}
	return &Runner{
		worker:      NewWorker(opts.Gateway, opts.DryRun),
		concurrency: opts.Concurrency,
		observers:   opts.Observers,
		logger:      opts.Logger,
	}, nil
}

// Concurrency returns the slot count used for each batch.
func (r *Runner) Concurrency() int {
	return r.concurrency
}

// 🏃 RunBatch processes every file and returns one Outcome per file.
//
// All files are dispatched at once; the limiter decides how many make
// progress. RunBatch returns only after every worker has finished. Cancelling
// ctx does not stop workers that were already dispatched.
func (r *Runner) RunBatch(ctx context.Context, files []string, edit timestamp.DateEdit) []Outcome {
	ctx = context.WithoutCancel(ctx)
	if r.logger != nil {
		ctx = r.logger.WithContext(ctx)
	}
	logger := zerolog.Ctx(ctx)

	start := time.Now()
	logger.Debug().
		Int("files", len(files)).
		Int("concurrency", r.concurrency).
		Str("edit", edit.String()).
		Msg("starting batch")

	limiter := NewLimiter(r.concurrency)
	outcomes := make([]Outcome, len(files))

	var g errgroup.Group
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			outcomes[i] = r.processFile(ctx, file, edit, limiter)
			r.notify(ctx, outcomes[i])
			return nil
		})
	}
	_ = g.Wait()

	logger.Debug().
		Int("files", len(files)).
		Dur("elapsed", time.Since(start)).
		Msg("batch complete")

	return outcomes
}

// ⚡ processFile runs one worker, turning a panic into a crashed Outcome.
func (r *Runner) processFile(ctx context.Context, file string, edit timestamp.DateEdit, limiter Limiter) (outcome Outcome) {
	defer func() {
		if p := recover(); p != nil {
			zerolog.Ctx(ctx).Error().Str("file", file).Interface("panic", p).Msg("worker crashed")
			outcome = Outcome{File: file, Kind: KindCrashed, Err: errors.Errorf("worker panicked: %v", p)}
		}
	}()
	return r.worker.Process(ctx, file, edit, limiter)
}

func (r *Runner) notify(ctx context.Context, outcome Outcome) {
	for _, o := range r.observers {
		func() {
			defer func() {
				if p := recover(); p != nil {
					zerolog.Ctx(ctx).Error().Str("file", outcome.File).Interface("panic", p).Msg("observer crashed")
				}
			}()
			o.Observe(ctx, outcome)
		}()
	}
}
