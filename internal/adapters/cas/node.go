package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/olymper/internal/core/ports"
)

// NodeID is the unique identifier for the hash cache Graft node.
const NodeID graft.ID = "adapter.hash_cache"

func init() {
	graft.Register(graft.Node[ports.HashCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HashCache, error) {
			return NewStore(), nil
		},
	})
}
