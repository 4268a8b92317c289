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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

func TestTransform(t *testing.T) {
	tests := []struct {
		name     string
		original string
		edit     DateEdit
		want     string
		wantErr  bool
	}{
		{
			name:     "offset_and_new_year",
			original: "2021:05:17 14:03:22+02:00",
			edit:     DateEdit{Day: "25", Month: "12", Year: "1999"},
			want:     "1999:12:25 14:03:22+02:00",
		},
		{
			name:     "no_offset_keeps_year",
			original: "2021:05:17 14:03:22",
			edit:     DateEdit{Day: "25", Month: "12"},
			want:     "2021:12:25 14:03:22",
		},
		{
			name:     "negative_offset",
			original: "2019:01:02 03:04:05-07:30",
			edit:     DateEdit{Day: "09", Month: "08"},
			want:     "2019:08:09 03:04:05-07:30",
		},
		{
			name:     "subsecond_time_carried_through",
			original: "2020:02:29 23:59:59.123+00:00",
			edit:     DateEdit{Day: "01", Month: "03", Year: "2024"},
			want:     "2024:03:01 23:59:59.123+00:00",
		},
		{
			name:     "no_range_validation",
			original: "2020:02:29 10:00:00",
			edit:     DateEdit{Day: "40", Month: "13"},
			want:     "2020:13:40 10:00:00",
		},
		{
			name:     "garbage",
			original: "garbage",
			edit:     DateEdit{Day: "01", Month: "01"},
			wantErr:  true,
		},
		{
			name:     "empty",
			original: "",
			edit:     DateEdit{Day: "01", Month: "01"},
			wantErr:  true,
		},
		{
			name:     "date_without_colon",
			original: "20210517 14:03:22",
			edit:     DateEdit{Day: "01", Month: "01"},
			wantErr:  true,
		},
		{
			name:     "leading_space",
			original: " 14:03:22",
			edit:     DateEdit{Day: "01", Month: "01"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transform(tt.original, tt.edit)
			if tt.wantErr {
				require.Error(t, err, "transform should fail")
				assert.True(t, errors.Is(err, ErrMalformed), "error should be ErrMalformed")
				assert.Empty(t, got, "no value should be returned on failure")
				return
			}
			require.NoError(t, err, "transform should succeed")
			assert.Equal(t, tt.want, got, "transformed timestamp should match")
		})
	}
}

func TestTransformPreservesTimeAndOffset(t *testing.T) {
	originals := []string{
		"2001:01:01 00:00:00",
		"1987:11:30 12:34:56",
		"2023:07:04 18:00:01+05:30",
		"2023:07:04 06:07:08-03:00",
		"2010:10:10 10:10:10+14:00",
	}
	edits := []DateEdit{
		{Day: "01", Month: "01"},
		{Day: "31", Month: "12", Year: "2000"},
		{Day: "15", Month: "06", Year: "1970"},
	}

	for _, original := range originals {
		_, wantTime, _ := cutTime(original)
		origYear := original[:4]
		for _, edit := range edits {
			got, err := Transform(original, edit)
			require.NoError(t, err, "transform of %q should succeed", original)

			gotYear, gotTime, gotDate := cutTime(got)
			assert.Equal(t, wantTime, gotTime, "time and offset of %q should be preserved", original)
			assert.Equal(t, edit.Month+":"+edit.Day, gotDate[5:], "month and day should be replaced")
			if edit.KeepsYear() {
				assert.Equal(t, origYear, gotYear, "year should be kept")
			} else {
				assert.Equal(t, edit.Year, gotYear, "year should be replaced")
			}

			again, err := Transform(got, edit)
			require.NoError(t, err, "re-applying should succeed")
			assert.Equal(t, got, again, "transform should be idempotent")
		}
	}
}

// cutTime splits a well-formed timestamp into year, time+offset and date.
func cutTime(s string) (year, timeAndTz, date string) {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' {
			return s[:4], s[i+1:], s[:i]
		}
	}
	return "", "", s
}

func TestNewDateEdit(t *testing.T) {
	tests := []struct {
		name        string
		day         int
		month       int
		year        string
		want        DateEdit
		errContains string
	}{
		{
			name:  "pads_day_and_month",
			day:   5,
			month: 3,
			want:  DateEdit{Day: "05", Month: "03"},
		},
		{
			name:  "with_year",
			day:   31,
			month: 12,
			year:  "1999",
			want:  DateEdit{Day: "31", Month: "12", Year: "1999"},
		},
		{
			name:        "day_zero",
			day:         0,
			month:       1,
			errContains: "day must be between 1 and 31",
		},
		{
			name:        "day_too_large",
			day:         32,
			month:       1,
			errContains: "day must be between 1 and 31",
		},
		{
			name:        "month_too_large",
			day:         1,
			month:       13,
			errContains: "month must be between 1 and 12",
		},
		{
			name:        "bad_year",
			day:         1,
			month:       1,
			year:        "99",
			errContains: "year must be exactly four digits",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDateEdit(tt.day, tt.month, tt.year)
			if tt.errContains != "" {
				require.Error(t, err, "NewDateEdit should fail")
				assert.Contains(t, err.Error(), tt.errContains, "error message should match")
				return
			}
			require.NoError(t, err, "NewDateEdit should succeed")
			assert.Equal(t, tt.want, got, "edit should match")
		})
	}
}

func TestIsYear(t *testing.T) {
	assert.True(t, IsYear("1999"), "four digits is a year")
	assert.True(t, IsYear("0000"), "four zeros is a year")
	assert.False(t, IsYear("199"), "three digits is not a year")
	assert.False(t, IsYear("19999"), "five digits is not a year")
	assert.False(t, IsYear("19a9"), "letters are not digits")
	assert.False(t, IsYear("١٩٩٩"), "non-ASCII digits are not accepted")
	assert.False(t, IsYear(""), "empty is not a year")
}

func TestDateEditString(t *testing.T) {
	assert.Equal(t, "YYYY:12:25", DateEdit{Day: "25", Month: "12"}.String(), "kept year should render as YYYY")
	assert.Equal(t, "1999:12:25", DateEdit{Day: "25", Month: "12", Year: "1999"}.String(), "year should render")
}
