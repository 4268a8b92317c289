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


package main

import (
	"strconv"

	"gitlab.com/tozd/go/errors"

	"github.com/walteh/exifchdate/pkg/timestamp"
)

// 📥 Request is one parsed edit invocation
type Request struct {
	Edit  timestamp.DateEdit
	Files []string
}

// 🔍 ParseArgs reads <day> <month> [year] <file>...
//
// The third argument is taken as the year only when it is exactly four ASCII
// digits; anything else is the first file.
func ParseArgs(args []string) (Request, error) {
	if len(args) < 3 {
		return Request{}, errors.Errorf("expected <day> <month> [year] <file>..., got %d arguments", len(args))
	}

	day, err := strconv.Atoi(args[0])
	if err != nil {
		return Request{}, errors.Errorf("invalid day %q", args[0])
	}
	month, err := strconv.Atoi(args[1])
	if err != nil {
		return Request{}, errors.Errorf("invalid month %q", args[1])
	}

	rest := args[2:]
	year := ""
	if timestamp.IsYear(rest[0]) {
		year = rest[0]
		rest = rest[1:]
	}

	edit, err := timestamp.NewDateEdit(day, month, year)
	if err != nil {
		return Request{}, err
	}

	if len(rest) == 0 {
		return Request{}, errors.Errorf("no image files supplied")
	}

	return Request{Edit: edit, Files: rest}, nil
}
