package zonedata

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

// Provider fetches zones by id.
type Provider interface {
	Load(ctx context.Context, id string) (*Zone, error)
}

// ErrZoneNotFound is returned when no file exists for a zone id.
var ErrZoneNotFound = errors.New("zone not found")

// FSProvider loads zone<id>.json, falling back to zone<id>.tmx, from Dir
// inside FS.
type FSProvider struct {
	FS  fs.FS
	Dir string
}

// NewFSProvider returns a provider reading from dir inside fsys.
func NewFSProvider(fsys fs.FS, dir string) *FSProvider {
	return &FSProvider{FS: fsys, Dir: dir}
}

func (p *FSProvider) Load(ctx context.Context, id string) (*Zone, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	jsonPath := path.Join(p.Dir, "zone"+id+".json")
	data, err := fs.ReadFile(p.FS, jsonPath)
	switch {
	case err == nil:
		z, err := decodeJSONBytes(data)
		if err != nil {
			return nil, fmt.Errorf("zone %s: %w", jsonPath, err)
		}
		return z, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("read %s: %w", jsonPath, err)
	}

	tmxPath := path.Join(p.Dir, "zone"+id+".tmx")
	if _, err := fs.Stat(p.FS, tmxPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q in %s", ErrZoneNotFound, id, p.Dir)
		}
		return nil, fmt.Errorf("stat %s: %w", tmxPath, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return LoadTMX(p.FS, tmxPath)
}

// MustLoad loads a zone or panics. Intended for embedded assets known to be valid.
func MustLoad(p Provider, id string) *Zone {
	z, err := p.Load(context.Background(), id)
	if err != nil {
		panic(err)
	}
	return z
}
