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


package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return hasExt(filename, ".hcl")
}

// 📝 Parse parses the config from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "config.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_write_tags": cty.ListVal([]cty.Value{
				cty.StringVal("DateTimeOriginal"),
				cty.StringVal("CreateDate"),
				cty.StringVal("ModifyDate"),
			}),
		},
	}

	// Define HCL schema; nil means "not set"
	type hclConfig struct {
		Concurrency    *int     `hcl:"concurrency,optional"`
		ExiftoolPath   *string  `hcl:"exiftool_path,optional"`
		ReadTag        *string  `hcl:"read_tag,optional"`
		WriteTags      []string `hcl:"write_tags,optional"`
		DryRun         *bool    `hcl:"dry_run,optional"`
		Journal        *string  `hcl:"journal,optional"`
		Recursive      *bool    `hcl:"recursive,optional"`
		Extensions     []string `hcl:"extensions,optional"`
		IgnorePatterns []string `hcl:"ignore_patterns,optional"`
	}

	var hclCfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Overlay onto defaults
	cfg := Default()
	if hclCfg.Concurrency != nil {
		cfg.Concurrency = *hclCfg.Concurrency
	}
	if hclCfg.ExiftoolPath != nil {
		cfg.ExiftoolPath = *hclCfg.ExiftoolPath
	}
	if hclCfg.ReadTag != nil {
		cfg.ReadTag = *hclCfg.ReadTag
	}
	if hclCfg.WriteTags != nil {
		cfg.WriteTags = hclCfg.WriteTags
	}
	if hclCfg.DryRun != nil {
		cfg.DryRun = *hclCfg.DryRun
	}
	if hclCfg.Journal != nil {
		cfg.Journal = *hclCfg.Journal
	}
	if hclCfg.Recursive != nil {
		cfg.Recursive = *hclCfg.Recursive
	}
	if hclCfg.Extensions != nil {
		cfg.Extensions = hclCfg.Extensions
	}
	if hclCfg.IgnorePatterns != nil {
		cfg.IgnorePatterns = hclCfg.IgnorePatterns
	}

	return cfg, nil
}
