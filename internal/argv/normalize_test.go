package argv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tokens   []string
		expected []string
	}{
		{
			name:     "plain tokens pass through",
			tokens:   []string{"pull", "vendor/lib", "master"},
			expected: []string{"pull", "vendor/lib", "master"},
		},
		{
			name:     "combined short options are split",
			tokens:   []string{"-ab"},
			expected: []string{"-a", "-b"},
		},
		{
			name:     "longer clusters split one letter per token",
			tokens:   []string{"-abc"},
			expected: []string{"-a", "-b", "-c"},
		},
		{
			name:     "single short option is kept as is",
			tokens:   []string{"-h"},
			expected: []string{"-h"},
		},
		{
			name:     "long option with value is split at the first equals",
			tokens:   []string{"--prefix=vendor/lib"},
			expected: []string{"--prefix", "vendor/lib"},
		},
		{
			name:     "value may itself contain an equals sign",
			tokens:   []string{"--filter=key=value"},
			expected: []string{"--filter", "key=value"},
		},
		{
			name:     "long option with empty value yields an empty token",
			tokens:   []string{"--prefix="},
			expected: []string{"--prefix", ""},
		},
		{
			name:     "long option without value passes through",
			tokens:   []string{"--debug"},
			expected: []string{"--debug"},
		},
		{
			name:     "nameless long option is not split",
			tokens:   []string{"--=x"},
			expected: []string{"--=x"},
		},
		{
			name:     "lone dash passes through",
			tokens:   []string{"-"},
			expected: []string{"-"},
		},
		{
			name:     "double dash ends rewriting",
			tokens:   []string{"add", "--", "-ab", "--x=y"},
			expected: []string{"add", "--", "-ab", "--x=y"},
		},
		{
			name:     "rewriting applies before the double dash",
			tokens:   []string{"-ab", "--", "-cd"},
			expected: []string{"-a", "-b", "--", "-cd"},
		},
		{
			name:     "empty stream",
			tokens:   nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, Normalize(tt.tokens, Options{}))
		})
	}
}

func TestNormalizeValueShorts(t *testing.T) {
	t.Parallel()

	opts := Options{ValueShorts: map[rune]bool{'b': true}}

	tests := []struct {
		name     string
		tokens   []string
		expected []string
	}{
		{
			name:     "trailing characters become the option value",
			tokens:   []string{"-abc"},
			expected: []string{"-a", "-b", "c"},
		},
		{
			name:     "value consumes the whole remainder",
			tokens:   []string{"-abcd"},
			expected: []string{"-a", "-b", "cd"},
		},
		{
			name:     "value letter last in the cluster takes no inline value",
			tokens:   []string{"-ab", "value"},
			expected: []string{"-a", "-b", "value"},
		},
		{
			name:     "value letter leading the cluster consumes the rest",
			tokens:   []string{"-bac"},
			expected: []string{"-b", "ac"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, Normalize(tt.tokens, opts))
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	tokens := []string{"-ab", "--x=y"}
	Normalize(tokens, Options{})
	require.Equal(t, []string{"-ab", "--x=y"}, tokens)
}
