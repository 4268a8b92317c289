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


package exiftool

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// DefaultBinary is looked up on PATH when no explicit tool path is configured.
const DefaultBinary = "exiftool"

// 📦 Result holds what a finished tool invocation produced.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the tool exited with status 0.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// 🔌 Runner runs the metadata tool with a list of arguments.
//
// A returned error means the tool could not be run at all. A tool that ran and
// failed is reported through the exit code.
type Runner interface {
	// Output runs the tool and captures stdout and stderr.
	Output(ctx context.Context, args ...string) (*Result, error)

	// Status runs the tool with stdout and stderr discarded.
	Status(ctx context.Context, args ...string) (int, error)
}

// 🛠️ ExecRunner runs a local binary with os/exec.
//
// Processes are not bound to ctx: once started they run to completion.
type ExecRunner struct {
	Binary string
}

// NewExecRunner returns a runner for binary, or for DefaultBinary when empty.
func NewExecRunner(binary string) *ExecRunner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &ExecRunner{Binary: binary}
}

// LookPath reports whether the runner's binary can be found.
func (r *ExecRunner) LookPath() (string, error) {
	path, err := exec.LookPath(r.Binary)
	if err != nil {
		return "", errors.Errorf("looking up %s: %w", r.Binary, err)
	}
	return path, nil
}

func (r *ExecRunner) Output(ctx context.Context, args ...string) (*Result, error) {
	cmd := exec.Command(r.Binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	zerolog.Ctx(ctx).Trace().Strs("args", cmd.Args).Msg("running tool")

	code, err := exitCode(cmd.Run())
	if err != nil {
		return nil, errors.Errorf("running %s: %w", r.Binary, err)
	}

	return &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: code,
	}, nil
}

func (r *ExecRunner) Status(ctx context.Context, args ...string) (int, error) {
	cmd := exec.Command(r.Binary, args...)

	zerolog.Ctx(ctx).Trace().Strs("args", cmd.Args).Msg("running tool")

	code, err := exitCode(cmd.Run())
	if err != nil {
		return -1, errors.Errorf("running %s: %w", r.Binary, err)
	}
	return code, nil
}

// exitCode separates "ran and exited non-zero" from "could not run".
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
