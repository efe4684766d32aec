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

package regression

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/trifade/curated"
	"github.com/jetsetilly/trifade/database"
)

// Sentinel errors.
const (
	RegressionFailed = "regression: %d tests failed"
	InvalidKey       = "regression: invalid key: %s"
)

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag indicates that the result of the regression should be recorded
	// rather than compared.
	//
	// msg is the string that is to be printed while the regression is running.
	// returns the success of the regression and, on failure, a description of
	// the failure
	regress(newRegression bool, output io.Writer, msg string) (bool, string, error)
}

// when starting a database session we need to register what entries we will
// find in the database
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(digestEntryType, deserialiseDigestEntry)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer, dbFile string) error {
	db, err := database.StartSession(dbFile, database.ActivityReading, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd adds a new regression entry to the database.
func RegressAdd(output io.Writer, dbFile string, reg Regressor) error {
	db, err := database.StartSession(dbFile, database.ActivityCreating, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	msg := fmt.Sprintf("adding: %s", reg)
	_, _, err = reg.regress(true, output, msg)
	if err != nil {
		db.EndSession(false)
		return err
	}

	key, err := db.Add(reg)
	if err != nil {
		db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	fmt.Fprintf(output, "\radded: %03d %s\n", key, reg)

	if err := db.EndSession(true); err != nil {
		return curated.Errorf("regression: %v", err)
	}
	return nil
}

// RegressDelete removes an entry from the regression database. The user is
// asked for confirmation with the confirmation reader.
func RegressDelete(output io.Writer, confirmation io.Reader, dbFile string, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf(InvalidKey, key)
	}

	db, err := database.StartSession(dbFile, database.ActivityModifying, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	reg, err := db.Get(v)
	if err != nil {
		db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", reg)

	confirm := make([]byte, 32)
	n, err := confirmation.Read(confirm)
	if err != nil && n == 0 {
		db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	if confirm[0] != 'y' && confirm[0] != 'Y' {
		return db.EndSession(false)
	}

	if err := db.Delete(v); err != nil {
		db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}
	fmt.Fprintf(output, "deleted test #%s from regression database\n", key)

	if err := db.EndSession(true); err != nil {
		return curated.Errorf("regression: %v", err)
	}
	return nil
}

// RegressRun runs the regression tests with the specified keys. If no keys
// are given then every regression test in the database is run. Returns an
// error if any regression test fails.
func RegressRun(output io.Writer, dbFile string, verbose bool, keys []string) error {
	db, err := database.StartSession(dbFile, database.ActivityReading, initDBSession)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(false)

	keyList := make([]int, 0, len(keys))
	for _, k := range keys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf(InvalidKey, k)
		}
		keyList = append(keyList, v)
	}

	numSucceed := 0
	numFail := 0
	numErrors := 0

	onSelect := func(key int, ent database.Entry) error {
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: database contains an entry that is not a regression test")
		}

		msg := fmt.Sprintf("running: %03d %s", key, reg)
		ok, failm, err := reg.regress(false, output, msg)

		// clear the running message
		fmt.Fprintf(output, "\r%s\r", strings.Repeat(" ", len(msg)))

		switch {
		case err != nil:
			numErrors++
			fmt.Fprintf(output, "error: %03d %s: %v\n", key, reg, err)
		case !ok:
			numFail++
			fmt.Fprintf(output, "failure: %03d %s: %s\n", key, reg, failm)
		default:
			numSucceed++
			if verbose {
				fmt.Fprintf(output, "succeed: %03d %s\n", key, reg)
			}
		}

		return nil
	}

	if _, err := db.SelectKeys(onSelect, keyList...); err != nil {
		return curated.Errorf("regression: %v", err)
	}

	fmt.Fprintf(output, "regression tests: %d succeed, %d fail", numSucceed, numFail)
	if numErrors > 0 {
		fmt.Fprintf(output, ", %d errors", numErrors)
	}
	fmt.Fprintln(output)

	if numFail+numErrors > 0 {
		return curated.Errorf(RegressionFailed, numFail+numErrors)
	}
	return nil
}
