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


package journal

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"go.etcd.io/bbolt"

	"github.com/walteh/exifchdate/pkg/operation"
)

// EditsBucketName holds one record per written edit, keyed by sequence.
const EditsBucketName = "edits"

// 📝 Entry is one recorded edit
type Entry struct {
	Seq      uint64    `json:"-"`
	RunID    string    `json:"run_id"`
	File     string    `json:"file"`
	Original string    `json:"original"`
	Updated  string    `json:"updated"`
	Time     time.Time `json:"time"`
}

// 📚 Journal records written edits so originals can be recovered
type Journal struct {
	db  *bbolt.DB
	now func() time.Time
}

// 🏭 Open opens (or creates) the journal at path
func Open(ctx context.Context, path string) (*Journal, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Errorf("opening journal %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(EditsBucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Errorf("creating edits bucket: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", path).Msg("journal opened")

	return &Journal{db: db, now: time.Now}, nil
}

// Close releases the journal file.
func (j *Journal) Close() error {
	if err := j.db.Close(); err != nil {
		return errors.Errorf("closing journal: %w", err)
	}
	return nil
}

// 💾 Record appends an entry, stamping Time when it is unset
func (j *Journal) Record(ctx context.Context, e Entry) error {
	if e.Time.IsZero() {
		e.Time = j.now().UTC()
	}

	err := j.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(EditsBucketName))
		if bucket == nil {
			return errors.Errorf("bucket %s not found", EditsBucketName)
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return errors.Errorf("allocating sequence: %w", err)
		}

		data, err := json.Marshal(e)
		if err != nil {
			return errors.Errorf("encoding entry: %w", err)
		}

		return bucket.Put(seqKey(seq), data)
	})
	if err != nil {
		return errors.Errorf("recording edit for %s: %w", e.File, err)
	}
	return nil
}

// 📖 Entries returns recorded edits in order, only those of runID when set
func (j *Journal) Entries(ctx context.Context, runID string) ([]Entry, error) {
	var entries []Entry

	err := j.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(EditsBucketName))
		if bucket == nil {
			return errors.Errorf("bucket %s not found", EditsBucketName)
		}

		return bucket.ForEach(func(k, v []byte) error {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return errors.Errorf("decoding entry %x: %w", k, err)
			}
			if runID != "" && e.RunID != runID {
				return nil
			}
			e.Seq = binary.BigEndian.Uint64(k)
			entries = append(entries, e)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Errorf("reading journal: %w", err)
	}

	return entries, nil
}

// 👀 Observer records every written success of run runID.
//
// Recording failures are logged; they never change the outcome of the file.
func (j *Journal) Observer(runID string) operation.Observer {
	return operation.ObserverFunc(func(ctx context.Context, o operation.Outcome) {
		if o.Kind != operation.KindSuccess || !o.Written {
			return
		}
		err := j.Record(ctx, Entry{
			RunID:    runID,
			File:     o.File,
			Original: o.Original,
			Updated:  o.Updated,
		})
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("file", o.File).Msg("journal write failed")
		}
	})
}

func seqKey(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}
