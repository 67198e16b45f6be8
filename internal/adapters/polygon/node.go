package polygon

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/olymper/internal/adapters/fs"
	"go.trai.ch/olymper/internal/adapters/logger"
	"go.trai.ch/olymper/internal/adapters/scaffold"
	"go.trai.ch/olymper/internal/core/ports"
)

// NodeID is the unique identifier for the Polygon importer Graft node.
const NodeID graft.ID = "adapter.polygon"

func init() {
	graft.Register(graft.Node[ports.PackageImporter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.CopierNodeID, fs.ResolverNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.PackageImporter, error) {
			copier, err := graft.Dep[*fs.Copier](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[*fs.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewImporter(copier, resolver, scaffold.New(), log), nil
		},
	})
}
