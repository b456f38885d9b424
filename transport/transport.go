// Package transport acquires the per-peer byte channels MIMPI runs on top
// of. The launcher (out of scope here) forks N worker processes and wires
// a dedicated unidirectional channel between every ordered pair,
// inherited at a well-known file descriptor offset per peer; this package
// turns that inherited-descriptor contract into io.Reader/io.Writer pairs,
// plus an in-memory Loopback transport used by tests and the bundled demo
// in place of a real multi-process launch.
package transport

import (
	"io"
	"os"
	"strconv"
)

// Peers holds, for every rank other than self, the inbound reader and
// outbound writer to that peer. Index Rank (self) is unused.
type Peers struct {
	Rank, Size int
	Readers    []io.ReadCloser
	Writers    []io.WriteCloser
}

// FromInheritedFds builds Peers for a launched worker process: rank and
// size from the environment, and one inbound/outbound file descriptor
// pair per peer at ReaderBaseFd+peer / WriterBaseFd+peer.
func FromInheritedFds() (*Peers, error) {
	rank, size, err := RankSizeFromEnv()
	if err != nil {
		return nil, err
	}

	p := &Peers{
		Rank:    rank,
		Size:    size,
		Readers: make([]io.ReadCloser, size),
		Writers: make([]io.WriteCloser, size),
	}

	for peer := 0; peer < size; peer++ {
		if peer == rank {
			continue
		}
		p.Readers[peer] = os.NewFile(uintptr(ReaderBaseFd+peer), fdName("r", peer))
		p.Writers[peer] = os.NewFile(uintptr(WriterBaseFd+peer), fdName("w", peer))
	}

	return p, nil
}

func fdName(kind string, peer int) string {
	return "mimpi-" + kind + "-" + strconv.Itoa(peer)
}

// NewLoopback builds Peers for every rank in a single process, connected
// pairwise with in-memory io.Pipes, for tests and the demo in
// cmd/mimpi-demo. Returns one *Peers per rank.
func NewLoopback(size int) []*Peers {
	// one unidirectional pipe per ordered pair (src -> dst)
	type link struct {
		r io.ReadCloser
		w io.WriteCloser
	}
	links := make(map[[2]int]link, size*(size-1))
	for src := 0; src < size; src++ {
		for dst := 0; dst < size; dst++ {
			if src == dst {
				continue
			}
			r, w := io.Pipe()
			links[[2]int{src, dst}] = link{r: r, w: w}
		}
	}

	out := make([]*Peers, size)
	for rank := 0; rank < size; rank++ {
		p := &Peers{
			Rank:    rank,
			Size:    size,
			Readers: make([]io.ReadCloser, size),
			Writers: make([]io.WriteCloser, size),
		}
		for peer := 0; peer < size; peer++ {
			if peer == rank {
				continue
			}
			p.Readers[peer] = links[[2]int{peer, rank}].r
			p.Writers[peer] = links[[2]int{rank, peer}].w
		}
		out[rank] = p
	}
	return out
}
