// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package catalog

import (
	"fmt"
	"strings"
)

// UpstreamType names a supported gateway upstream family.
type UpstreamType string

const (
	UpstreamOpenClaw UpstreamType = "openclaw"
	UpstreamPicoClaw UpstreamType = "picoclaw"
	UpstreamIronClaw UpstreamType = "ironclaw"
)

// Upstream describes one gateway family: where its source lives and how
// it is laid out inside the container image.
type Upstream struct {
	Name          UpstreamType
	GitHubOwner   string
	GitHubRepo    string
	DefaultBranch string
	Description   string
	CLIName       string
	AppDirectory  string
	MJSEntrypoint string
}

// Upstreams returns the supported upstream families in declared order.
func Upstreams() []Upstream {
	return []Upstream{
		{
			Name:          UpstreamOpenClaw,
			GitHubOwner:   "openclaw",
			GitHubRepo:    "openclaw",
			DefaultBranch: "main",
			Description:   "Official OpenClaw - self-hosted AI agent gateway",
			CLIName:       "openclaw",
			AppDirectory:  "/opt/openclaw/app",
			MJSEntrypoint: "openclaw.mjs",
		},
		{
			Name:          UpstreamPicoClaw,
			GitHubOwner:   "sipeed",
			GitHubRepo:    "picoclaw",
			DefaultBranch: "main",
			Description:   "PicoClaw by Sipeed - lightweight AI agent gateway",
			CLIName:       "picoclaw",
			AppDirectory:  "/opt/picoclaw/app",
			MJSEntrypoint: "picoclaw.mjs",
		},
		{
			Name:          UpstreamIronClaw,
			GitHubOwner:   "nearai",
			GitHubRepo:    "ironclaw",
			DefaultBranch: "main",
			Description:   "IronClaw by NEAR AI - AI agent gateway",
			CLIName:       "ironclaw",
			AppDirectory:  "/opt/ironclaw/app",
			MJSEntrypoint: "ironclaw.mjs",
		},
	}
}

// ParseUpstream resolves a raw selector string to an UpstreamType.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseUpstream(value string) (UpstreamType, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	valid := make([]string, 0, 3)
	for _, u := range Upstreams() {
		if string(u.Name) == normalized {
			return u.Name, nil
		}
		valid = append(valid, string(u.Name))
	}
	return "", fmt.Errorf("%w: %q (valid options: %s)", ErrUnknownUpstream, value, strings.Join(valid, ", "))
}

// GetUpstream returns the table row for the given family.
func GetUpstream(name UpstreamType) (Upstream, error) {
	for _, u := range Upstreams() {
		if u.Name == name {
			return u, nil
		}
	}
	return Upstream{}, fmt.Errorf("%w: %q", ErrUnknownUpstream, name)
}

// GitHubURL returns the upstream's repository page.
func (u Upstream) GitHubURL() string {
	return fmt.Sprintf("https://github.com/%s/%s", u.GitHubOwner, u.GitHubRepo)
}

// CloneURL returns the upstream's git clone endpoint.
func (u Upstream) CloneURL() string {
	return u.GitHubURL() + ".git"
}

// CloneCommand renders a shallow git clone command for the given version
// into targetDir. "main" and "latest" resolve to the default branch.
func (u Upstream) CloneCommand(version, targetDir string) string {
	branch := version
	if version == "main" || version == "latest" {
		branch = u.DefaultBranch
	}
	return fmt.Sprintf("git clone --depth 1 --branch %s %s %s", branch, u.CloneURL(), targetDir)
}

// ShouldPatchWorkspace reports whether the family's npm workspace
// dependencies need patching after clone. Only the official OpenClaw
// monorepo ships workspace-relative dependencies.
func (u Upstream) ShouldPatchWorkspace() bool {
	return u.Name == UpstreamOpenClaw
}

// NormalizeVersion maps aliases and family-prefixed tags ("oc_", "pc_",
// "ic_" style snapshots) to the default branch; anything else passes
// through untouched.
func (u Upstream) NormalizeVersion(version string) string {
	if version == "main" || version == "latest" {
		return u.DefaultBranch
	}
	if strings.HasPrefix(version, string(u.Name)+"_") {
		return u.DefaultBranch
	}
	return version
}

// DockerBuildArgs returns the build arguments consumed by the image
// Dockerfile for the given family and version.
func (u Upstream) DockerBuildArgs(version string) map[string]string {
	normalized := u.NormalizeVersion(version)
	return map[string]string{
		"UPSTREAM":         string(u.Name),
		"UPSTREAM_VERSION": normalized,
		"GITHUB_OWNER":     u.GitHubOwner,
		"GITHUB_REPO":      u.GitHubRepo,
		"CLI_NAME":         u.CLIName,
		"APP_DIR":          u.AppDirectory,
	}
}

// ValidateVersionFormat reports whether version looks like something the
// build pipeline can check out: a tag ("v..."), a branch alias, a
// family-prefixed snapshot, or a bare dotted number.
func ValidateVersionFormat(version string) bool {
	if version == "" {
		return false
	}
	for _, prefix := range []string{"v", "main", "latest", "oc_", "pc_", "ic_"} {
		if strings.HasPrefix(version, prefix) {
			return true
		}
	}
	digits := strings.ReplaceAll(version, ".", "")
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
