package version

import "github.com/ericogr/joust-arena/internal/game"

// Overridden at build time with -ldflags "-X .../internal/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

// Info is the build metadata served on /api/version. SaveFormat is the
// layout version written into every saved game.
type Info struct {
	Version    string `json:"version"`
	Commit     string `json:"commit"`
	Date       string `json:"date,omitempty"`
	Dirty      bool   `json:"dirty"`
	SaveFormat int    `json:"save_format"`
}

func Current() Info {
	return Info{
		Version:    Version,
		Commit:     Commit,
		Date:       Date,
		Dirty:      Dirty == "true",
		SaveFormat: game.StateVersion,
	}
}
