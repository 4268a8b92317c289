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

	"golang.org/x/sync/semaphore"
)

// 🚦 Limiter bounds how many workers hold a slot at once.
type Limiter interface {
	// Acquire blocks until a slot is free or ctx is done.
	Acquire(ctx context.Context) error
	// Release returns a slot taken by Acquire.
	Release()
}

type semaphoreLimiter struct {
	sem *semaphore.Weighted
}

// NewLimiter returns a Limiter with capacity slots.
func NewLimiter(capacity int) Limiter {
	return &semaphoreLimiter{sem: semaphore.NewWeighted(int64(capacity))}
}

func (l *semaphoreLimiter) Acquire(ctx context.Context) error {
	return l.sem.Acquire(ctx, 1)
}

func (l *semaphoreLimiter) Release() {
	l.sem.Release(1)
}
