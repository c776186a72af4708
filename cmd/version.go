package cmd

import "fmt"

var (
	Version string
	Commit  string
	BuiltAt string
)

func versionLine() string {
	return fmt.Sprintf("wait-for-url, version %s (commit %s), built at %s", versionOrDev(), Commit, BuiltAt)
}

func versionOrDev() string {
	if Version == "" {
		return "dev"
	}
	return Version
}
