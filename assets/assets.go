package assets

import (
	"embed"
	"io/fs"
	"os"

	"github.com/automoto/burrow/shared/zonedata"
)

// ZoneDir is the directory inside Zones holding zone files.
const ZoneDir = "zones"

var (
	//go:embed all:zones
	zoneFS embed.FS
)

// Zones returns the embedded zone files.
func Zones() fs.FS {
	return zoneFS
}

// ZoneProvider returns a provider for the embedded zones, or for zone files
// on disk when dir is set.
func ZoneProvider(dir string) zonedata.Provider {
	if dir != "" {
		return zonedata.NewFSProvider(os.DirFS(dir), ".")
	}
	return zonedata.NewFSProvider(zoneFS, ZoneDir)
}
