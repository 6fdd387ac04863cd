// Package snapshot compares values against JSON files kept in testdata
package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// Dir is where snapshot files are read from and written to
var Dir = "testdata"

// Validate compares obj, encoded as indented JSON, with the snapshot <Dir>/<name>.json.
// If the snapshot does not exist it is written and the check passes.
func Validate(t *testing.T, name string, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	filename := filepath.Join(Dir, name+".json")
	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot %s: %v", filename, err)
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			t.Fatalf("could not read snapshot %s: %v", filename, err)
		}

		write(t, filename, objJSON)
		return true
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func write(t *testing.T, filename string, b []byte) {
	t.Helper()

	logrus.WithField("filename", filename).Info("writing snapshot file")
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatalf("could not create snapshot dir: %v", err)
	}

	if err := os.WriteFile(filename, append(b, '\n'), 0644); err != nil {
		t.Fatalf("could not write snapshot %s: %v", filename, err)
	}
}
