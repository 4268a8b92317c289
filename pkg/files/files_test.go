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


package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func setupTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, rel := range []string{
		"a.jpg",
		"b.JPEG",
		"notes.txt",
		"sub/c.jpg",
		"sub/deep/d.heic",
		"sub/.thumbnails/e.jpg",
	} {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755), "creating dir should succeed")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644), "creating file should succeed")
	}
	return root
}

func TestExpand(t *testing.T) {
	root := setupTree(t)
	p := func(rel string) string { return filepath.Join(root, filepath.FromSlash(rel)) }
	images := []string{".jpg", ".jpeg", ".heic"}

	tests := []struct {
		name    string
		args    []string
		opts    Options
		want    []string
		wantErr error
	}{
		{
			name: "explicit_files_pass_through",
			args: []string{p("notes.txt"), p("a.jpg")},
			want: []string{p("notes.txt"), p("a.jpg")},
		},
		{
			name: "missing_file_passes_through",
			args: []string{p("gone.jpg")},
			want: []string{p("gone.jpg")},
		},
		{
			name: "duplicates_dropped",
			args: []string{p("a.jpg"), p("a.jpg")},
			want: []string{p("a.jpg")},
		},
		{
			name: "directory_top_level_only",
			args: []string{root},
			opts: Options{Extensions: images},
			want: []string{p("a.jpg"), p("b.JPEG")},
		},
		{
			name: "directory_recursive",
			args: []string{root},
			opts: Options{Recursive: true, Extensions: images},
			want: []string{p("a.jpg"), p("b.JPEG"), p("sub/.thumbnails/e.jpg"), p("sub/c.jpg"), p("sub/deep/d.heic")},
		},
		{
			name: "directory_recursive_with_ignore",
			args: []string{root},
			opts: Options{Recursive: true, Extensions: images, IgnorePatterns: []string{"**/.thumbnails/**"}},
			want: []string{p("a.jpg"), p("b.JPEG"), p("sub/c.jpg"), p("sub/deep/d.heic")},
		},
		{
			name: "directory_without_extension_filter",
			args: []string{root},
			want: []string{p("a.jpg"), p("b.JPEG"), p("notes.txt")},
		},
		{
			name: "glob_pattern",
			args: []string{filepath.Join(root, "**", "*.jpg")},
			want: []string{p("a.jpg"), p("sub/.thumbnails/e.jpg"), p("sub/c.jpg")},
		},
		{
			name: "ignore_by_base_name",
			args: []string{p("a.jpg"), p("notes.txt")},
			opts: Options{IgnorePatterns: []string{"*.txt"}},
			want: []string{p("a.jpg")},
		},
		{
			name:    "glob_without_matches",
			args:    []string{filepath.Join(root, "*.png")},
			wantErr: ErrNoMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(context.Background(), tt.args, tt.opts)
			if tt.wantErr != nil {
				require.Error(t, err, "expansion should fail")
				assert.True(t, errors.Is(err, tt.wantErr), "error should wrap %v", tt.wantErr)
				return
			}
			require.NoError(t, err, "expansion should succeed")
			assert.ElementsMatch(t, tt.want, got, "files should match")
		})
	}
}

func TestExpandKeepsArgumentOrder(t *testing.T) {
	root := setupTree(t)
	first := filepath.Join(root, "sub", "c.jpg")
	second := filepath.Join(root, "a.jpg")

	got, err := Expand(context.Background(), []string{first, second}, Options{})
	require.NoError(t, err, "expansion should succeed")
	assert.Equal(t, []string{first, second}, got, "order should follow the arguments")
}
