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

// Package database is a very simple way of storing structured and arbitrary
// entry types in a flat file. Entries are stored as a YAML list.
//
// Use of a database requires starting a "session". We do this with the
// StartSession() function, coupled with an EndSession() once we're done. For
// example (error handling removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
//	defer db.EndSession(true)
//
// The first argument is the path to the database file. The second argument is
// a description of the type of activity that will be happening during the
// session. ActivityCreating will create the database if it does not already
// exist. Otherwise it is treated the same as ActivityModifying. A database
// started with ActivityReading is never written.
//
// The third argument is the initialisation function. The database can store
// arbitrary entry types and the initialisation function tells the database
// which entry types it should expect:
//
//	func initDBSession(db *database.Session) error {
//		return db.RegisterEntryType("foo", deserialiseFoo)
//	}
//
// The deserialise function is called for every entry of that type as part of
// the StartSession() function. Any error from the deserialise function causes
// StartSession() to fail.
//
//	func deserialiseFoo(key int, fields []string) (database.Entry, error) {
//		ent := &fooEntry{}
//		ent.foo = fields[0]
//		return ent, nil
//	}
package database
