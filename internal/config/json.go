package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Upstream struct {
		Selector string `json:"selector"`
		Version  string `json:"version"`
	} `json:"upstream,omitempty"`

	Providers struct {
		Anthropic  string `json:"anthropic"`
		OpenAI     string `json:"openai"`
		OpenRouter string `json:"openrouter"`
		Gemini     string `json:"gemini"`
		DeepSeek   string `json:"deepseek"`
		Moonshot   string `json:"moonshot"`
	} `json:"providers,omitempty"`

	Agent struct {
		PrimaryModel string  `json:"primary_model"`
		Workspace    string  `json:"workspace"`
		Temperature  float64 `json:"temperature"`
	} `json:"agent,omitempty"`

	Gateway struct {
		Host string `json:"host"`
		Port int    `json:"port"`
		Bind string `json:"bind"`
	} `json:"gateway,omitempty"`

	Channels struct {
		TelegramBotToken string `json:"telegram_bot_token"`
		WebhookEnabled   bool   `json:"webhook_enabled"`
		BrowserCDPURL    string `json:"browser_cdp_url"`
	} `json:"channels,omitempty"`

	Activity struct {
		LogDir  string `json:"log_dir"`
		Enabled *bool  `json:"enabled"`
	} `json:"activity,omitempty"`

	Admin struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"admin,omitempty"`

	StateDir string `json:"state_dir"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &Config{
		Upstream: Upstream{
			Selector: jsonCfg.Upstream.Selector,
			Version:  jsonCfg.Upstream.Version,
		},
		Providers: Providers{
			Anthropic:  jsonCfg.Providers.Anthropic,
			OpenAI:     jsonCfg.Providers.OpenAI,
			OpenRouter: jsonCfg.Providers.OpenRouter,
			Gemini:     jsonCfg.Providers.Gemini,
			DeepSeek:   jsonCfg.Providers.DeepSeek,
			Moonshot:   jsonCfg.Providers.Moonshot,
		},
		Agent: Agent{
			PrimaryModel: jsonCfg.Agent.PrimaryModel,
			Workspace:    jsonCfg.Agent.Workspace,
			Temperature:  jsonCfg.Agent.Temperature,
		},
		Gateway: Gateway{
			Host: jsonCfg.Gateway.Host,
			Port: jsonCfg.Gateway.Port,
			Bind: jsonCfg.Gateway.Bind,
		},
		Channels: Channels{
			TelegramBotToken: jsonCfg.Channels.TelegramBotToken,
			WebhookEnabled:   jsonCfg.Channels.WebhookEnabled,
			BrowserCDPURL:    jsonCfg.Channels.BrowserCDPURL,
		},
		Activity: Activity{
			LogDir:  jsonCfg.Activity.LogDir,
			Enabled: jsonCfg.Activity.Enabled,
		},
		Admin: Admin{
			HTTPAddress:    jsonCfg.Admin.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Admin.RequestTimeout),
		},
		StateDir:     jsonCfg.StateDir,
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
