package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-upstream gateway family selector (openclaw, picoclaw, ironclaw)
//	-upstream-version upstream source version (tag, branch alias, number)
//	-primary-model compound "provider/model" selector
//	-workspace agent workspace directory
//	-state-dir root directory for family state
//	-activity-dir activity log directory
//	-admin-address admin API address in format [host]:[port]
//	-admin-request-timeout admin API request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *Config {
	var adminAddress NetAddress
	var upstream string
	var upstreamVersion string
	var primaryModel string
	var workspace string
	var stateDir string
	var activityDir string
	var adminRequestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&upstream, "upstream", "", "Gateway family selector")
	flag.StringVar(&upstreamVersion, "upstream-version", "", "Upstream source version")
	flag.StringVar(&primaryModel, "primary-model", "", "Primary model selector (provider/model)")
	flag.StringVar(&workspace, "workspace", "", "Agent workspace directory")
	flag.StringVar(&stateDir, "state-dir", "", "Root directory for family state")
	flag.StringVar(&activityDir, "activity-dir", "", "Activity log directory")
	flag.Var(&adminAddress, "admin-address", "Admin API address host:port")
	flag.DurationVar(&adminRequestTimeout, "admin-request-timeout", 0, "Admin API request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Config{
		Upstream: Upstream{
			Selector: upstream,
			Version:  upstreamVersion,
		},
		Agent: Agent{
			PrimaryModel: primaryModel,
			Workspace:    workspace,
		},
		Activity: Activity{
			LogDir: activityDir,
		},
		Admin: Admin{
			HTTPAddress:    adminAddress.String(),
			RequestTimeout: adminRequestTimeout,
		},
		StateDir:     stateDir,
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
