// Package version reports the build and recipe format of this binary.
package version

import (
	"runtime"
	"strings"

	"github.com/reglet-dev/ketchlist/internal/domain/entities"
)

// Set by -ldflags "-X" at release time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	Platform     string
	RecipeFormat string
}

// Get returns the version information
func Get() Info {
	return Info{
		Version:      Version,
		Commit:       Commit,
		BuildDate:    BuildDate,
		GoVersion:    runtime.Version(),
		Platform:     runtime.GOOS + "/" + runtime.GOARCH,
		RecipeFormat: entities.RecipeVersion,
	}
}

// String returns the bare version.
func (i Info) String() string {
	return i.Version
}

// Full renders every field on one line. Unknown commit and build date
// are left out.
func (i Info) Full() string {
	parts := []string{i.Version}
	if i.Commit != "" && i.Commit != "unknown" {
		parts = append(parts, "("+i.Commit+")")
	}
	if i.BuildDate != "" && i.BuildDate != "unknown" {
		parts = append(parts, "built "+i.BuildDate)
	}
	parts = append(parts, i.GoVersion, i.Platform, "recipe "+i.RecipeFormat)
	return strings.Join(parts, " ")
}
