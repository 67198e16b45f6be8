package compiler

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/olymper/internal/adapters/cas"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/olymper/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/olymper/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/olymper/internal/core/ports"
)

// NodeID is the unique identifier for the backend registry Graft node.
const NodeID graft.ID = "engine.compiler"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, cas.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Registry, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}

			cache, err := graft.Dep[ports.HashCache](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewRegistry(runner, cache, log), nil
		},
	})
}
