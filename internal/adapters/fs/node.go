package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/brewtap/internal/core/ports"
)

// NodeID is the unique identifier for the tap store Graft node.
const NodeID graft.ID = "adapter.fs.tap_store"

func init() {
	graft.Register(graft.Node[ports.TapStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TapStore, error) {
			return NewTapStore(), nil
		},
	})
}
