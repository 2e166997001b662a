package format_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/pseudomuto/flakefmt/pkg/format"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestGoldenFiles(t *testing.T) {
	testdataDir := "testdata"

	// Find all *.in.sql files
	matches, err := filepath.Glob(filepath.Join(testdataDir, "*.in.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "No *.in.sql files found in testdata directory")

	for _, inputFile := range matches {
		// "example.in.sql" -> "example.sql"
		outputName := strings.TrimSuffix(filepath.Base(inputFile), ".in.sql") + ".sql"

		t.Run(outputName, func(t *testing.T) {
			inputSQL, err := os.ReadFile(inputFile)
			require.NoError(t, err, "Failed to read input file %s", inputFile)

			result := formatSQL(t, Defaults, string(inputSQL))
			golden.Assert(t, result, outputName)

			// Golden output is already formatted
			require.Equal(t, result, formatSQL(t, Defaults, result))
		})
	}
}
