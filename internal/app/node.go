package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/brewtap/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/brewtap/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/brewtap/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/brewtap/internal/adapters/git"       //nolint:depguard // Wired in app layer
	"go.trai.ch/brewtap/internal/adapters/github"    //nolint:depguard // Wired in app layer
	"go.trai.ch/brewtap/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/brewtap/internal/adapters/signature" //nolint:depguard // Wired in app layer
	"go.trai.ch/brewtap/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/brewtap/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			github.NodeID,
			cas.NodeID,
			fs.NodeID,
			git.NodeID,
			signature.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	hosts, err := graft.Dep[ports.ReleaseHostFactory](ctx)
	if err != nil {
		return nil, err
	}

	artifacts, err := graft.Dep[ports.ArtifactStore](ctx)
	if err != nil {
		return nil, err
	}

	tap, err := graft.Dep[ports.TapStore](ctx)
	if err != nil {
		return nil, err
	}

	vcs, err := graft.Dep[ports.VersionControl](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[ports.SignatureVerifier](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, hosts, artifacts, tap, vcs, verifier, tracer, log), nil
}
