package mimpi

import (
	"github.com/mracinowski-go/mimpi/transport"
	"github.com/rs/zerolog"
)

// Options configures Init, following the exported-struct +
// package-level-default convention used by pipe.Options/
// pipe.DefaultOptions: one place to apply every knob once, rather than a
// long Init argument list.
type Options struct {
	// DeadlockDetection enables the pairwise REQUEST/Outbox protocol. This
	// is assumed symmetric across every rank in the job: callers are
	// responsible for launching every rank with the same value.
	DeadlockDetection bool

	// Peers overrides how channels to every peer are acquired. Nil means
	// transport.FromInheritedFds(), the real launcher contract. Tests and
	// the bundled demo pass a *transport.Peers built by
	// transport.NewLoopback instead.
	Peers *transport.Peers

	// Logger receives structured diagnostics from the runtime, matching
	// how Pipe/Speaker embed a *zerolog.Logger and default to
	// zerolog.Nop() when unset.
	Logger *zerolog.Logger
}

// DefaultOptions returns the zero-value Options: detection disabled,
// channels acquired from the inherited-descriptor launcher contract, and
// diagnostics discarded.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	nop := zerolog.Nop()
	return &nop
}
