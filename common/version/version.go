package version

import (
	"strings"

	"github.com/sirupsen/logrus"
)

var GitCommit string
var Version string

func SetDefaults() {
	if GitCommit == "" {
		GitCommit = ".dev"
	}
	if Version == "" {
		Version = "unknown"
	}

	if !strings.HasPrefix(Version, "v") {
		Version = "v" + Version
	}
}

func Print() {
	SetDefaults()

	logrus.Info("Version: " + Version)
	logrus.Info("Commit: " + GitCommit)
}
