// A basic demo driving a few mimpi ranks over the in-memory loopback
// transport, in place of a real launcher forking N worker processes.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/mracinowski-go/mimpi"
	"github.com/mracinowski-go/mimpi/transport"
)

var (
	opt_size   = flag.Int("size", 4, "number of simulated ranks")
	opt_detect = flag.Bool("detect", false, "enable deadlock detection")
)

func main() {
	flag.Parse()
	if *opt_size < 2 {
		fmt.Fprintln(os.Stderr, "mimpi-demo: -size must be >= 2")
		os.Exit(1)
	}

	peers := transport.NewLoopback(*opt_size)
	worlds := make([]*mimpi.World, *opt_size)
	for r, p := range peers {
		w, err := mimpi.Init(mimpi.Options{DeadlockDetection: *opt_detect, Peers: p})
		if err != nil {
			fmt.Fprintf(os.Stderr, "mimpi-demo: rank %d init: %v\n", r, err)
			os.Exit(1)
		}
		worlds[r] = w
	}

	var wg sync.WaitGroup
	recvs := make([][]byte, *opt_size)
	for r, w := range worlds {
		wg.Add(1)
		go func(r int, w *mimpi.World) {
			defer wg.Done()
			runRank(r, w, recvs)
		}(r, w)
	}
	wg.Wait()

	for r, recv := range recvs {
		fmt.Printf("rank %d: reduced = %v\n", r, recv)
	}
}

// runRank runs every collective this library offers, once each, as a
// smoke-test sequence: Barrier, Bcast from rank 0, then Reduce(SUM) to
// rank 0.
func runRank(rank int, w *mimpi.World, recvs [][]byte) {
	defer func() {
		if err := w.Finalize(); err != nil {
			fmt.Fprintf(os.Stderr, "rank %d finalize: %v\n", rank, err)
		}
	}()

	if st := w.Barrier(); st != mimpi.Success {
		fmt.Fprintf(os.Stderr, "rank %d barrier: %s\n", rank, st)
		return
	}

	buf := make([]byte, 4)
	if rank == 0 {
		copy(buf, []byte{1, 2, 3, 4})
	}
	if st := w.Bcast(buf, len(buf), 0); st != mimpi.Success {
		fmt.Fprintf(os.Stderr, "rank %d bcast: %s\n", rank, st)
		return
	}

	recv := make([]byte, len(buf))
	if st := w.Reduce(buf, recv, len(buf), mimpi.Sum, 0); st != mimpi.Success {
		fmt.Fprintf(os.Stderr, "rank %d reduce: %s\n", rank, st)
		return
	}
	recvs[rank] = recv
}
