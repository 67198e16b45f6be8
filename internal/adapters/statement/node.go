package statement

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/olymper/internal/core/ports"
)

// NodeID is the unique identifier for the statement converter Graft node.
const NodeID graft.ID = "adapter.statement"

func init() {
	graft.Register(graft.Node[ports.StatementConverter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StatementConverter, error) {
			return NewConverter(), nil
		},
	})
}
