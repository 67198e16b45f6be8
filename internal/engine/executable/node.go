package executable

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/olymper/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/olymper/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/olymper/internal/engine/compiler"
)

// NodeID is the unique identifier for the program factory Graft node.
const NodeID graft.ID = "engine.executable"

func init() {
	graft.Register(graft.Node[ports.ProgramFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{compiler.NodeID, shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ProgramFactory, error) {
			registry, err := graft.Dep[*compiler.Registry](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(registry, runner, log), nil
		},
	})
}
