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


/*
Package config loads exifchdate settings.

	        defaults
	           |
	  +--------v--------+
	  |  config file    |  .yaml .yml .json .hcl .toml
	  +--------+--------+
	           |
	  +--------v--------+
	  |  environment    |  --env-file, then EXIFCHDATE_*
	  +--------+--------+
	           |
	  +--------v--------+
	  |  command flags  |
	  +-----------------+

🎯 Purpose:
- Picks a parser by file extension through the registry
- Rejects unknown keys in every format
- Validates the merged result before the batch starts

🔍 Example:

	cfg, err := config.Load(ctx, ".exifchdate.yaml")
	if err != nil {
		return err
	}
	if err := config.ApplyEnv(ctx, cfg, ""); err != nil {
		return err
	}
*/
package config
