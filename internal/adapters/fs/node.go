package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/olymper/internal/core/ports"
)

const (
	WalkerNodeID   graft.ID = "adapter.fs.walker"
	CopierNodeID   graft.ID = "adapter.fs.copier"
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	VerifierNodeID graft.ID = "adapter.fs.verifier"
	FilesNodeID    graft.ID = "adapter.fs.files"
)

func init() {
	// Walker Node (Concrete implementation needed by Copier)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[*Copier]{
		ID:        CopierNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (*Copier, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewCopier(walker), nil
		},
	})

	graft.Register(graft.Node[*Resolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Resolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[*Verifier]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Verifier, error) {
			return NewVerifier(), nil
		},
	})

	graft.Register(graft.Node[ports.Files]{
		ID:        FilesNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{CopierNodeID},
		Run: func(ctx context.Context) (ports.Files, error) {
			copier, err := graft.Dep[*Copier](ctx)
			if err != nil {
				return nil, err
			}
			return copier, nil
		},
	})
}
