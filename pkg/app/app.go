// Package app wires the demo pages into the dashboard shell and mounts the
// shell on the front door.
package app

import (
	"github.com/bosco-l/multipage-dashboard/pkg/dataset"
	"github.com/bosco-l/multipage-dashboard/pkg/frontdoor"
	"github.com/bosco-l/multipage-dashboard/pkg/page"
	"github.com/bosco-l/multipage-dashboard/pkg/pages/linechart"
	"github.com/bosco-l/multipage-dashboard/pkg/pages/scatterplot"
	"github.com/bosco-l/multipage-dashboard/pkg/shell"
	"github.com/pkg/errors"
)

// Application is a fully wired dashboard ready to serve.
type Application struct {
	Dashboard *shell.Shell
	Server    *frontdoor.Server
}

// Pages returns the demo pages in navigation order.
func Pages() []page.Descriptor {
	return []page.Descriptor{
		linechart.Descriptor(dataset.Gapminder()),
		scatterplot.Descriptor(dataset.Iris()),
	}
}

// Build registers the demo pages. The front door mounts the dashboard under
// the shell prefix, whatever prefix serverConfig carries.
func Build(shellConfig shell.Config, serverConfig frontdoor.Config) (*Application, error) {
	dashboard, err := shell.New(shellConfig, Pages()...)
	if err != nil {
		return nil, errors.Wrap(err, "cannot build dashboard")
	}
	serverConfig.Prefix = dashboard.Prefix()
	return &Application{
		Dashboard: dashboard,
		Server:    frontdoor.New(serverConfig, dashboard),
	}, nil
}
