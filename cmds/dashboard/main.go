package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bosco-l/multipage-dashboard/pkg/app"
	"github.com/bosco-l/multipage-dashboard/pkg/conf"
	"github.com/bosco-l/multipage-dashboard/pkg/frontdoor"
	"github.com/bosco-l/multipage-dashboard/pkg/logger"
	"github.com/bosco-l/multipage-dashboard/pkg/shell"
	"github.com/bosco-l/multipage-dashboard/pkg/utils/errutil"
	"github.com/bosco-l/multipage-dashboard/pkg/visualization"
	"github.com/sirupsen/logrus"
)

const readyTimeout = 5 * time.Second

func main() {
	// Setup conf.
	conf.SetAppName("dashboard")
	conf.SetHelp(`Multi-page charting dashboard. Serves a plain landing page at / and the dashboard
with a life expectancy line chart and an iris 3D scatter plot under the dashboard prefix.`)

	// Parse CLI.
	errutil.Check(conf.ParseFlags())
	logger.Initialize(conf.AppName(), conf.LogLevel(), os.Stderr)
	logrus.Debugf("Configuration:\n%s", conf.Dump())

	application, err := app.Build(shell.DefaultConfig(), frontdoor.DefaultConfig())
	errutil.CheckWithContext(err, "cannot start dashboard")
	server := application.Server

	for _, url := range server.URLs() {
		fmt.Println(url)
	}
	table, err := visualization.PagesTable(application.Dashboard.Pages(), server.PageURLs())
	errutil.Check(err)
	table.Draw(os.Stdout)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	served := make(chan error, 1)
	go func() { served <- server.ListenAndServe() }()
	go func() {
		if !server.Ready(readyTimeout) {
			logrus.Warnf("Dashboard not reachable on %s after %s", server.Addr(), readyTimeout)
		}
	}()

	select {
	case err := <-served:
		errutil.Check(err)
	case sig := <-stop:
		logrus.Infof("Received %s, shutting down", sig)
		errutil.Warn(server.Shutdown(context.Background()), "shutdown")
		errutil.Check(<-served)
	}
}
