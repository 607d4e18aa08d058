// Command pixelgrid-server serves a pixel-art drawing session over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/example/pixelgrid/internal/app"
	"github.com/example/pixelgrid/internal/config"
	"github.com/example/pixelgrid/internal/server"
)

func main() {
	settingsPath := flag.String("config", config.DefaultPath, "settings file")
	flag.Parse()

	if err := config.LoadEnvFile(); err != nil {
		logrus.WithError(err).Warn("could not load .env, using environment only")
	}
	settings, err := config.Load(*settingsPath)
	log := settings.Logger()
	if err != nil {
		log.WithError(err).Warn("settings not loaded, using defaults")
	}
	if log.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	entry := logrus.NewEntry(log)
	ctrl, err := app.NewController(settings.Grid(), entry)
	if err != nil {
		log.WithError(err).Fatal("could not build grid")
	}
	if !settings.ShowGridLines() {
		if err := ctrl.Dispatch(app.ToggleGridLines{}); err != nil {
			log.WithError(err).Warn("could not hide grid lines")
		}
	}
	if err := ctrl.Dispatch(app.SelectColor{Name: settings.Color}); err != nil {
		log.WithError(err).Warn("configured color ignored")
	}

	srv := &http.Server{Addr: settings.Server.Addr, Handler: server.New(ctrl, entry).Router()}
	go func() {
		log.WithField("addr", srv.Addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
	log.Info("server exiting")
}
