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

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🌱 ApplyEnv overlays EXIFCHDATE_* environment variables onto cfg.
//
// When envFile is set it is loaded first; variables already present in the
// process environment win over the file.
func ApplyEnv(ctx context.Context, cfg *Config, envFile string) error {
	if envFile != "" {
		zerolog.Ctx(ctx).Debug().Str("path", envFile).Msg("loading env file")
		if err := godotenv.Load(envFile); err != nil {
			return errors.Errorf("loading env file %s: %w", envFile, err)
		}
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return errors.Errorf("reading environment: %w", err)
	}
	return nil
}

// EnvHelp describes the environment variables understood by ApplyEnv.
func EnvHelp() string {
	header := "Environment variables:"
	help, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return ""
	}
	return help
}
