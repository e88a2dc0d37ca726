package main

import (
	"fmt"

	"github.com/clawdock/clawdock/internal/activity"
	"github.com/clawdock/clawdock/internal/config"
	handlerhttp "github.com/clawdock/clawdock/internal/handler/http"
	"github.com/clawdock/clawdock/internal/logger"
	"github.com/clawdock/clawdock/internal/server"
	"github.com/clawdock/clawdock/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("admin")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	activityLog := activity.NewFileLog(cfg.Activity.LogDir, cfg.Activity.LogEnabled(), log)
	services := service.NewServices(activityLog, buildVersion, log)
	handler := handlerhttp.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Admin, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("address", cfg.Admin.HTTPAddress).Msg("admin API starting")
	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
