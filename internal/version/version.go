// Package version holds build metadata, set at link time:
//
//	go build -ldflags "-X github.com/doeshing/n8n-ready/internal/version.Version=1.2.0"
package version

var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)
