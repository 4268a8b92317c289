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


package timestamp

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrMalformed is returned when a timestamp does not have the
// "YYYY:MM:DD HH:MM:SS[±HH:MM]" shape.
var ErrMalformed = errors.Base("malformed timestamp")

// 📅 DateEdit is the date every file in a batch is moved to.
//
// Day and Month are two-digit strings. Year is either four digits or empty,
// in which case each file keeps its original year.
type DateEdit struct {
	Day   string
	Month string
	Year  string
}

// 🏭 NewDateEdit validates and zero-pads user input.
func NewDateEdit(day, month int, year string) (DateEdit, error) {
	if day < 1 || day > 31 {
		return DateEdit{}, errors.Errorf("day must be between 1 and 31, got %d", day)
	}
	if month < 1 || month > 12 {
		return DateEdit{}, errors.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year != "" && !IsYear(year) {
		return DateEdit{}, errors.Errorf("year must be exactly four digits, got %q", year)
	}
	return DateEdit{
		Day:   fmt.Sprintf("%02d", day),
		Month: fmt.Sprintf("%02d", month),
		Year:  year,
	}, nil
}

// KeepsYear reports whether the edit leaves each file's year alone.
func (e DateEdit) KeepsYear() bool {
	return e.Year == ""
}

// String returns the edit in the same colon form exiftool uses, with "YYYY"
// standing in for a kept year.
func (e DateEdit) String() string {
	year := e.Year
	if e.KeepsYear() {
		year = "YYYY"
	}
	return fmt.Sprintf("%s:%s:%s", year, e.Month, e.Day)
}

// IsYear reports whether s is exactly four ASCII digits.
func IsYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// 🔄 Transform replaces the date of original with the one in edit.
//
// The time of day and any trailing "+HH:MM" / "-HH:MM" offset are copied
// through untouched. No range checks are done here; that happens when the
// DateEdit is built.
func Transform(original string, edit DateEdit) (string, error) {
	datePart, timeAndTz, ok := strings.Cut(original, " ")
	if !ok {
		return "", errors.Errorf("%w: no space in %q", ErrMalformed, original)
	}

	timePart, tzOffset := timeAndTz, ""
	if idx := strings.IndexAny(timeAndTz, "+-"); idx >= 0 {
		timePart, tzOffset = timeAndTz[:idx], timeAndTz[idx:]
	}

	origYear, _, ok := strings.Cut(datePart, ":")
	if !ok {
		return "", errors.Errorf("%w: no ':' in date %q", ErrMalformed, datePart)
	}

	year := edit.Year
	if year == "" {
		year = origYear
	}

	return fmt.Sprintf("%s:%s:%s %s%s", year, edit.Month, edit.Day, timePart, tzOffset), nil
}
