package transport

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cast"
)

// Environment variable names the launcher publishes.
const (
	EnvRank = "MIMPI_RANK"
	EnvSize = "MIMPI_SIZE"
)

// File descriptor bases the launcher wires channels at.
const (
	ReaderBaseFd = 20
	WriterBaseFd = 40
)

var (
	envOnce sync.Once
	envRank int
	envSize int
	envErr  error
)

// RankSizeFromEnv reads and caches MIMPI_RANK/MIMPI_SIZE at first use.
// Subsequent calls return the cached values regardless of further
// environment changes.
func RankSizeFromEnv() (rank, size int, err error) {
	envOnce.Do(func() {
		envRank, envSize, envErr = parseRankSize(os.LookupEnv)
	})
	return envRank, envSize, envErr
}

// parseRankSize coerces the raw environment strings with spf13/cast the way
// a config loader normalizes untyped input rather than hand-rolling strconv
// branches. Split out from RankSizeFromEnv so tests can exercise parsing
// without fighting the process-wide sync.Once cache.
func parseRankSize(lookup func(string) (string, bool)) (rank, size int, err error) {
	rawRank, okRank := lookup(EnvRank)
	rawSize, okSize := lookup(EnvSize)
	if !okRank || !okSize {
		return 0, 0, fmt.Errorf("transport: %s/%s not set in environment", EnvRank, EnvSize)
	}

	rank, err = cast.ToIntE(rawRank)
	if err != nil {
		return 0, 0, fmt.Errorf("transport: invalid %s: %w", EnvRank, err)
	}

	size, err = cast.ToIntE(rawSize)
	if err != nil {
		return 0, 0, fmt.Errorf("transport: invalid %s: %w", EnvSize, err)
	}

	return rank, size, nil
}
