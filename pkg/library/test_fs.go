package library

import (
	"bufio"
	"os"
	"strings"
	"testing"
	"testing/fstest"
)

// MediaFSFromFile builds a MapFS from a file listing one relative path per line.
// Blank lines and lines starting with # are ignored.
func MediaFSFromFile(t *testing.T, path string) (fstest.MapFS, []string) {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("couldn't open file: %v", err)
	}
	defer f.Close()

	testfs := fstest.MapFS{}
	paths := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		testfs[line] = &fstest.MapFile{}
		paths = append(paths, line)
	}

	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}

	return testfs, paths
}
