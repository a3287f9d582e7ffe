// Package testutil holds helpers shared by the simmer test suites
package testutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
)

const fixtureDir = "testdata"

// GoldenTest produces output to be compared with testdata/<name>.golden.
// A nil output means no golden file may exist for name.
type GoldenTest interface {
	Output() (output []byte, name string)
}

// CompareGoldenFile checks the output of tc against its golden file. Golden
// files are kept with LF line endings (see .gitattributes), so CRLF output is
// normalised before comparing.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	output, name := tc.Output()

	if output == nil {
		f := filepath.Join(fixtureDir, name+".golden")

		if _, err := os.Stat(f); !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("expected no output, but golden file exists: %s", f)
		}

		return
	}

	g := goldie.New(t, goldie.WithFixtureDir(fixtureDir))
	g.Assert(t, name, bytes.ReplaceAll(output, []byte("\r\n"), []byte("\n")))
}

// CopyFile copies src to dst, replacing dst if it exists.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying file: %w", err)
	}

	return out.Close()
}
