// Package cli provides CLI commands for the piste application.
package cli

import (
	gocontext "context"
	"fmt"
	"os"

	"github.com/example/piste/internal/config"
	"github.com/example/piste/internal/ctxutil"
	"github.com/example/piste/internal/wire"
)

// globalActorID stores the configured user for the current CLI invocation.
var globalActorID string

// container holds the services of the current invocation, built on first use.
var container *wire.Container

// workDir returns the directory config is resolved from.
var workDir = os.Getwd

// App returns the service container, building it from the resolved config on first use.
func App() (*wire.Container, error) {
	if container != nil {
		return container, nil
	}

	dir, err := workDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := config.Resolve(dir)
	if err != nil {
		return nil, err
	}

	c, err := wire.Build(gocontext.Background(), cfg, wire.Options{LogOutput: os.Stderr})
	if err != nil {
		return nil, err
	}
	SetContainer(c)
	return c, nil
}

// SetContainer installs c as the current container and takes the actor from its config.
func SetContainer(c *wire.Container) {
	container = c
	globalActorID = ""
	if c != nil && c.Config != nil {
		globalActorID = c.Config.User
	}
}

// Shutdown closes the current container, if one was built.
func Shutdown() error {
	if container == nil {
		return nil
	}
	err := container.Close()
	container = nil
	return err
}

// NewContext creates a context.Background() with the current actor embedded.
// CLI commands should use this instead of context.Background() directly.
func NewContext() gocontext.Context {
	ctx := gocontext.Background()
	if globalActorID != "" {
		return ctxutil.WithActorID(ctx, globalActorID)
	}
	return ctx
}
