package transport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestParseRankSizeOK(t *testing.T) {
	rank, size, err := parseRankSize(lookupFrom(map[string]string{
		EnvRank: "2",
		EnvSize: "4",
	}))
	require.NoError(t, err)
	require.Equal(t, 2, rank)
	require.Equal(t, 4, size)
}

func TestParseRankSizeMissing(t *testing.T) {
	_, _, err := parseRankSize(lookupFrom(nil))
	require.Error(t, err)
}

func TestParseRankSizeNotAnInt(t *testing.T) {
	_, _, err := parseRankSize(lookupFrom(map[string]string{
		EnvRank: "not-a-number",
		EnvSize: "4",
	}))
	require.Error(t, err)
}
