package util

import (
	"fmt"
	"runtime"
)

// 构建时通过 -ldflags "-X prompt-gallery/pkg/util.version=..." 注入
var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

type Version struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

func GetVersion() Version {
	return Version{
		Version:   version,
		GitCommit: gitCommit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func (v Version) String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s %s)", v.Version, v.GitCommit, v.BuildDate, v.GoVersion, v.Platform)
}
