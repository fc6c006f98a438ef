package logger

import (
	"context"
	"os"
	"strings"

	"github.com/grindlemire/graft"
	"go.trai.ch/framegraph/internal/core/ports"
)

// NodeID is the graft identifier of the logger.
const NodeID graft.ID = "adapter.logger"

// Env selects the initial log mode, a comma separated list of "json" and "debug".
// Command line flags applied later take precedence.
const Env = "FG_LOG"

// FromEnv creates a Logger configured from the value of Env.
func FromEnv() *Logger {
	l := New()
	for mode := range strings.SplitSeq(os.Getenv(Env), ",") {
		switch strings.TrimSpace(mode) {
		case "json":
			l.SetJSON(true)
		case "debug":
			l.SetVerbose(true)
		}
	}
	return l
}

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return FromEnv(), nil
		},
	})
}
