package config

import "time"

// Built-in defaults. The gateway values mirror the constants the schema
// builders compare against when deciding whether the gateway was
// overridden.
func defaults() *Config {
	enabled := true
	return &Config{
		Upstream: Upstream{
			Selector: "openclaw",
			Version:  "main",
		},
		Agent: Agent{
			Workspace:   "/data/workspace",
			Temperature: 0.7,
		},
		Gateway: Gateway{
			Host: "127.0.0.1",
			Port: 18789,
			Bind: "loopback",
		},
		Activity: Activity{
			LogDir:  "/data/.openclaw/activity",
			Enabled: &enabled,
		},
		Admin: Admin{
			HTTPAddress:    "0.0.0.0:8888",
			RequestTimeout: 30 * time.Second,
		},
		StateDir: "/data",
	}
}
