package tester

import (
	"io/fs"
	"os"
	"path/filepath"

	"axlab.dev/vvvm/util"
)

// Temporary directory populated with source files for a test.
type TestDir struct {
	path string
}

func (dir TestDir) Delete() {
	os.RemoveAll(dir.path)
}

func (dir TestDir) DirPath() string {
	return dir.path
}

// Absolute path of a file given relative to the directory.
func (dir TestDir) Path(name string) string {
	return filepath.Join(dir.path, filepath.FromSlash(name))
}

// Creates a temporary directory with one file per entry of `files`, keyed by
// slash separated relative path. File contents are normalized with
// `util.Text`, so they can be written as indented raw strings.
func MakeDir(pattern string, files map[string]string) TestDir {
	return util.Try(TryMakeDir(pattern, files))
}

func TryMakeDir(pattern string, files map[string]string) (TestDir, error) {
	path, err := os.MkdirTemp("", pattern)
	if err != nil {
		return TestDir{}, err
	}

	dir := TestDir{path: path}
	for name, text := range files {
		file := dir.Path(name)
		if err := os.MkdirAll(filepath.Dir(file), fs.ModePerm); err != nil {
			dir.Delete()
			return TestDir{}, err
		}
		if err := os.WriteFile(file, []byte(util.Text(text)), 0o644); err != nil {
			dir.Delete()
			return TestDir{}, err
		}
	}
	return dir, nil
}
