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
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrUnreadable means no usable timestamp could be read from a file.
	ErrUnreadable = errors.Base("timestamp unreadable")

	// ErrWriteFailed means the tool did not manage to write the new timestamp.
	ErrWriteFailed = errors.Base("timestamp write failed")
)

// Default tag names.
const (
	TagDateTimeOriginal = "DateTimeOriginal"
	TagCreateDate       = "CreateDate"
	TagModifyDate       = "ModifyDate"
)

// DefaultWriteTags are the tags set to the new timestamp on every write.
var DefaultWriteTags = []string{TagDateTimeOriginal, TagCreateDate, TagModifyDate}

// 🔧 Gateway reads and writes capture timestamps through a Runner.
type Gateway struct {
	runner    Runner
	readTag   string
	writeTags []string
}

// GatewayOption customises a Gateway.
type GatewayOption func(*Gateway)

// WithReadTag sets the tag read by ReadOriginal.
func WithReadTag(tag string) GatewayOption {
	return func(g *Gateway) {
		if tag != "" {
			g.readTag = tag
		}
	}
}

// WithWriteTags sets the tags written by WriteTimestamp.
func WithWriteTags(tags ...string) GatewayOption {
	return func(g *Gateway) {
		if len(tags) > 0 {
			g.writeTags = append([]string(nil), tags...)
		}
	}
}

// 🏭 NewGateway creates a gateway over runner.
func NewGateway(runner Runner, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		runner:    runner,
		readTag:   TagDateTimeOriginal,
		writeTags: append([]string(nil), DefaultWriteTags...),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ReadTag returns the tag this gateway reads.
func (g *Gateway) ReadTag() string {
	return g.readTag
}

// ReadArgs builds the tool arguments for reading file's raw timestamp.
func (g *Gateway) ReadArgs(file string) []string {
	// -s three times prints the bare value without the tag name
	return []string{"-" + g.readTag, "-s", "-s", "-s", file}
}

// WriteArgs builds the tool arguments for overwriting file in place.
func (g *Gateway) WriteArgs(file, value string) []string {
	args := make([]string, 0, len(g.writeTags)+2)
	args = append(args, "-overwrite_original")
	for _, tag := range g.writeTags {
		args = append(args, "-"+tag+"="+value)
	}
	return append(args, file)
}

// 📖 ReadOriginal returns the raw capture timestamp of file.
func (g *Gateway) ReadOriginal(ctx context.Context, file string) (string, error) {
	res, err := g.runner.Output(ctx, g.ReadArgs(file)...)
	if err != nil {
		return "", errors.Errorf("%w: %s", ErrUnreadable, err.Error())
	}

	if !res.Success() {
		zerolog.Ctx(ctx).Debug().
			Str("file", file).
			Int("exit_code", res.ExitCode).
			Bytes("stderr", res.Stderr).
			Msg("read exited non-zero")
		return "", errors.Errorf("%w: exit status %d", ErrUnreadable, res.ExitCode)
	}

	if !utf8.Valid(res.Stdout) {
		return "", errors.Errorf("%w: output is not valid UTF-8", ErrUnreadable)
	}

	value := strings.TrimSpace(string(res.Stdout))
	if value == "" {
		return "", errors.Errorf("%w: no %s value", ErrUnreadable, g.readTag)
	}

	return value, nil
}

// ✍️ WriteTimestamp sets every write tag of file to value in one invocation.
func (g *Gateway) WriteTimestamp(ctx context.Context, file, value string) error {
	code, err := g.runner.Status(ctx, g.WriteArgs(file, value)...)
	if err != nil {
		return errors.Errorf("%w: %s", ErrWriteFailed, err.Error())
	}
	if code != 0 {
		return errors.Errorf("%w: exiftool returned non-zero status %d", ErrWriteFailed, code)
	}
	return nil
}
