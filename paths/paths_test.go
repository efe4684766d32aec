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


package paths

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/trifade/test"
)

func TestResourcePath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	test.ExpectSuccess(t, os.Mkdir(baseResourcePath, 0700))

	test.ExpectEquality(t, ResourcePath("foo/bar", "baz"), filepath.Join(".trifade", "foo", "bar", "baz"))
	test.ExpectEquality(t, ResourcePath("foo/bar", ""), filepath.Join(".trifade", "foo", "bar"))
	test.ExpectEquality(t, ResourcePath("", "baz"), filepath.Join(".trifade", "baz"))
	test.ExpectEquality(t, ResourcePath("", ""), ".trifade")
}

func TestMkResourceDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	test.ExpectSuccess(t, os.Mkdir(baseResourcePath, 0700))

	pth, err := MkResourceDir("regression", "db")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".trifade", "regression", "db"))

	info, err := os.Stat(filepath.Join(".trifade", "regression"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename(n, "wav", "sim", "wav"), "wav_sim_20240305_070809.wav")
	test.ExpectEquality(t, uniqueFilename(n, "trace", "  ", ".vcd"), "trace_20240305_070809.vcd")
	test.ExpectEquality(t, uniqueFilename(n, "trace", "", ""), "trace_20240305_070809")
}
