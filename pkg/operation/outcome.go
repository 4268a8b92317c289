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

// 📊 Kind classifies how processing of one file ended.
type Kind int

const (
	KindSuccess           Kind = iota // new timestamp computed (and written unless dry run)
	KindSkippedUnreadable             // no usable timestamp could be read
	KindSkippedMalformed              // timestamp had an unexpected shape
	KindWriteFailed                   // the tool failed to write the new value
	KindCrashed                       // the worker goroutine panicked
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindSkippedUnreadable:
		return "skipped_unreadable"
	case KindSkippedMalformed:
		return "skipped_malformed"
	case KindWriteFailed:
		return "write_failed"
	case KindCrashed:
		return "crashed"
	default:
		return "unknown"
	}
}

// Kinds lists every Kind in display order.
func Kinds() []Kind {
	return []Kind{KindSuccess, KindSkippedUnreadable, KindSkippedMalformed, KindWriteFailed, KindCrashed}
}

// 🎯 Outcome is the terminal result for one file.
type Outcome struct {
	File     string // path as given to the batch
	Kind     Kind   // how processing ended
	Original string // timestamp read from the file, if any
	Updated  string // timestamp computed for the file, if any
	Written  bool   // whether Updated was written back
	Err      error  // cause for every non-success kind
}

// Failed reports whether the file did not get a new timestamp.
func (o Outcome) Failed() bool {
	return o.Kind != KindSuccess
}
