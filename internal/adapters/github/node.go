package github

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/brewtap/internal/core/ports"
)

// NodeID is the unique identifier for the release host factory Graft node.
const NodeID graft.ID = "adapter.github"

func init() {
	graft.Register(graft.Node[ports.ReleaseHostFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReleaseHostFactory, error) {
			return NewFactory(), nil
		},
	})
}
