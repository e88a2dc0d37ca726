package main

import (
	"context"
	"fmt"

	"github.com/clawdock/clawdock/internal/activity"
	"github.com/clawdock/clawdock/internal/catalog"
	"github.com/clawdock/clawdock/internal/config"
	"github.com/clawdock/clawdock/internal/logger"
	"github.com/clawdock/clawdock/internal/synth"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("synthesizer")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", redacted(cfg)).Msg("received configs")

	if cfg.Upstream.Version != "" && !catalog.ValidateVersionFormat(cfg.Upstream.Version) {
		log.Warn().Str("version", cfg.Upstream.Version).Msg("upstream version has unexpected format")
	}

	synthesizer := synth.NewSynthesizer(catalog.Default(), log)
	result, err := synthesizer.Synthesize(cfg.Upstream.Selector, synthInputs(cfg))
	if err != nil {
		log.Fatal().Err(err).Msg("error synthesizing configuration")
	}

	if upstream, err := catalog.GetUpstream(result.Family); err == nil {
		log.Info().
			Str("family", string(upstream.Name)).
			Str("repository", upstream.GitHubURL()).
			Str("cli", upstream.CLIName).
			Msg(upstream.Description)
	}

	recordRun(cfg, result, log)
}

// synthInputs maps the merged config onto the flat input set the schema
// builders consume.
func synthInputs(cfg *config.Config) synth.Inputs {
	return synth.Inputs{
		Credentials:      cfg.Providers.Credentials(),
		PrimaryModel:     cfg.Agent.PrimaryModel,
		Workspace:        cfg.Agent.Workspace,
		StateDir:         cfg.StateDir,
		GatewayHost:      cfg.Gateway.Host,
		GatewayPort:      cfg.Gateway.Port,
		GatewayBind:      cfg.Gateway.Bind,
		Temperature:      cfg.Agent.Temperature,
		TelegramBotToken: cfg.Channels.TelegramBotToken,
		WebhookEnabled:   cfg.Channels.WebhookEnabled,
		BrowserCDPURL:    cfg.Channels.BrowserCDPURL,
	}
}

// recordRun appends a config_change entry to the activity log. Failures
// here never fail the run — the configuration is already on disk.
func recordRun(cfg *config.Config, result synth.Result, log *logger.Logger) {
	activityLog := activity.NewFileLog(cfg.Activity.LogDir, cfg.Activity.LogEnabled(), log)

	details := map[string]string{
		"family": string(result.Family),
		"format": string(result.Format),
	}
	if result.Written {
		details["path"] = result.Path
	}

	if _, err := activityLog.Record(context.Background(), "system", "config_change", "cli", details); err != nil {
		log.Warn().Err(err).Msg("could not record synthesis activity")
	}
}

// redacted returns a copy of the config with credential material blanked
// out, so the startup debug line never leaks secrets into logs.
func redacted(cfg *config.Config) config.Config {
	clean := *cfg
	clean.Providers = config.Providers{}
	clean.Channels.TelegramBotToken = ""
	return clean
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
