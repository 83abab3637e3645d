package main

import (
	"time"

	"github.com/carlmjohnson/versioninfo"

	"github.com/ergomake/tf/cmd/cli"
)

func main() {
	cli.SetVersionInfo(versioninfo.Version, versioninfo.Revision, versioninfo.LastCommit.Format(time.RFC3339))
	cli.Execute()
}
