// This file is part of Trifade.
//
// Trifade is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Trifade is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Trifade.  If not, see <https://www.gnu.org/licenses/>.

package database

import (
	"errors"
	"io/fs"
	"os"

	"github.com/jetsetilly/trifade/curated"
	"gopkg.in/yaml.v3"
)

// arbitrary maximum number of entries.
const maxEntries = 1000

// Activity is used to specify the type of activity that will be performed
// during the database session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Sentinel errors.
const (
	NotAvailable = "database: file not available: %s"
	KeyNotFound  = "database: key not available: %d"
)

// record is how an entry is stored in the database file.
type record struct {
	Key    int      `yaml:"key"`
	ID     string   `yaml:"id"`
	Fields []string `yaml:"fields,flow"`
}

// Session keeps track of a database session.
type Session struct {
	path     string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession starts/initialises a new DB session. The init function is
// called before the database file is read. It should register the entry
// types with RegisterEntryType().
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	if init != nil {
		if err := init(db); err != nil {
			return nil, curated.Errorf("database: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && activity == ActivityCreating {
			return db, nil
		}
		return nil, curated.Errorf(NotAvailable, path)
	}

	var records []record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, curated.Errorf("database: %v", err)
	}

	for _, r := range records {
		des, ok := db.entryTypes[r.ID]
		if !ok {
			return nil, curated.Errorf("database: unrecognised entry type: %s", r.ID)
		}
		if _, ok := db.entries[r.Key]; ok {
			return nil, curated.Errorf("database: duplicate key: %d", r.Key)
		}
		ent, err := des(r.Key, r.Fields)
		if err != nil {
			return nil, curated.Errorf("database: entry %d: %v", r.Key, err)
		}
		db.entries[r.Key] = ent
	}

	return db, nil
}

// EndSession closes the database session. The database file is written if
// commitChanges is true and the session was not started with ActivityReading.
func (db *Session) EndSession(commitChanges bool) error {
	if !commitChanges || db.activity == ActivityReading {
		return nil
	}

	records := make([]record, 0, len(db.entries))
	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]
		fields, err := ent.Serialise()
		if err != nil {
			return curated.Errorf("database: %v", err)
		}
		records = append(records, record{
			Key:    key,
			ID:     ent.ID(),
			Fields: fields,
		})
	}

	data, err := yaml.Marshal(records)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	if err := os.WriteFile(db.path, data, 0o644); err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}
