package actions

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeActionMergesSubtree(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	err := MergeAction(newTestContext(runner), MergeOptions{Ref: "lib/master"})

	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"merge", "-s", "subtree", "lib/master"},
	}, runner.calls)
}

func TestMergeActionRequiresRef(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	err := MergeAction(newTestContext(runner), MergeOptions{})

	require.EqualError(t, err, "Remote/branch reference required.")
	require.Empty(t, runner.calls)
}
