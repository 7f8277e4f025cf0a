package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/specialistvlad/treehouse/internal/visitor"
	"github.com/stretchr/testify/require"
)

// AssertWelcomed checks that the visitor was let into the tree house.
func AssertWelcomed(t *testing.T, result *HarnessResult, name string) {
	t.Helper()
	require.Contains(t, result.Output, fmt.Sprintf("Welcome to the tree house, %s\n", name),
		"expected %q to be welcomed", name)
}

// AssertNotWelcomed checks that no welcome line was printed for the visitor.
func AssertNotWelcomed(t *testing.T, result *HarnessResult, name string) {
	t.Helper()
	require.NotContains(t, result.Output, fmt.Sprintf("Welcome to the tree house, %s\n", name),
		"did not expect %q to be welcomed", name)
}

// AssertFinalNames checks the names in the registry after the run, in order.
func AssertFinalNames(t *testing.T, result *HarnessResult, names ...string) {
	t.Helper()
	require.NotNil(t, result.App, "app was not created: %v", result.Err)

	var got []string
	for _, v := range result.App.Registry().All() {
		got = append(got, v.Name)
	}
	require.Equal(t, names, got)
}

// FindVisitor returns the first registry entry with the given name.
func FindVisitor(t *testing.T, result *HarnessResult, name string) visitor.Visitor {
	t.Helper()
	require.NotNil(t, result.App, "app was not created: %v", result.Err)

	v, ok := result.App.Registry().Lookup(name)
	require.True(t, ok, "visitor %q not found", name)
	return v
}

// FinalDump returns the part of the output after the final list header.
func FinalDump(t *testing.T, result *HarnessResult) string {
	t.Helper()
	const header = "The final list of visitors:\n"
	idx := strings.Index(result.Output, header)
	require.NotEqual(t, -1, idx, "final list was not printed")
	return result.Output[idx+len(header):]
}
