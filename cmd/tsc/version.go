package main

import (
	"fmt"
	"github.com/hashicorp/go-version"
	"github.com/piercep/thread-safe-collections/pkg/common"
	"github.com/spf13/cobra"
)

var appVersion = "<unknown>"
var appCommit = "<unknown>"
var appCommitDate = "<unknown>"

type AppInfo struct {
	Version    string `yaml:"version" json:"version"`
	Prerelease bool   `yaml:"prerelease" json:"prerelease"`
	Commit     string `yaml:"commit" json:"commit"`
	CommitDate string `yaml:"commit_date" json:"commitDate"`
}

func NewAppInfo() AppInfo {
	result := AppInfo{
		Version:    appVersion,
		Commit:     appCommit,
		CommitDate: appCommitDate,
	}
	if v, err := version.NewVersion(appVersion); err == nil {
		result.Version = v.String()
		result.Prerelease = v.Prerelease() != ""
	}
	return result
}

func (a AppInfo) String() string {
	return fmt.Sprintf("%s %s (commit %s on %s)", common.AppName, a.Version, a.Commit, a.CommitDate)
}

func (c *CLI) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print application details including version",
		Run: func(cmd *cobra.Command, args []string) {
			c.SetOutput("app", NewAppInfo())
			c.Ok("application details printed")
		},
	}
}
