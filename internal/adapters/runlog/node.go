package runlog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/olymper/internal/core/ports"
)

// NodeID is the unique identifier for the run-log Graft node.
const NodeID graft.ID = "adapter.runlog"

func init() {
	graft.Register(graft.Node[ports.RunLog]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RunLog, error) {
			return New(), nil
		},
	})
}
