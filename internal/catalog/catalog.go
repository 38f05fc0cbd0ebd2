// Package catalog resolves content items to their sidecar metadata records.
package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/metafind/metafind/internal/cache"
	"github.com/metafind/metafind/internal/pathutil"
)

const recordCacheSize = 512

// Sidecar describes one metadata file discovered under the data root.
type Sidecar struct {
	// Path is the absolute on-disk location of the sidecar file.
	Path string
	// Rel is the slash-joined path relative to the data root.
	Rel string
	// Dir is the slash-joined logical directory, empty at the root.
	Dir string
}

// Catalog owns the sidecar listing and the known-items set for one data root
// and parses sidecar files into records on demand.
type Catalog struct {
	root          string
	contentSuffix string
	sidecarSuffix string

	sidecars []Sidecar
	known    map[string]struct{}
	records  *cache.Records
}

// New builds a catalog rooted at root and performs the initial scan.
func New(root, contentSuffix, sidecarSuffix string) (*Catalog, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("catalog: data root is not set")
	}

	c := &Catalog{
		root:          pathutil.NormalizePath(root),
		contentSuffix: contentSuffix,
		sidecarSuffix: sidecarSuffix,
		records:       cache.NewRecords(recordCacheSize),
	}

	if err := c.Scan(); err != nil {
		return nil, err
	}
	return c, nil
}

// Scan rebuilds the sidecar listing and the known-items set from disk.
func (c *Catalog) Scan() error {
	sidecars := make([]Sidecar, 0)
	known := make(map[string]struct{})

	fullSuffix := c.contentSuffix + c.sidecarSuffix

	err := filepath.WalkDir(c.root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		rel, err := pathutil.DataRelative(c.root, p)
		if err != nil {
			return err
		}

		switch {
		case strings.HasSuffix(rel, fullSuffix):
			dir := path.Dir(rel)
			if dir == "." {
				dir = ""
			}
			sidecars = append(sidecars, Sidecar{Path: p, Rel: rel, Dir: dir})
		case strings.HasSuffix(rel, c.contentSuffix):
			known[strings.TrimSuffix(rel, c.contentSuffix)] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("catalog: scanning %s: %w", c.root, err)
	}

	sort.Slice(sidecars, func(i, j int) bool {
		return sidecars[i].Rel < sidecars[j].Rel
	})

	c.sidecars = sidecars
	c.known = known
	return nil
}

// Sidecars returns the scanned sidecar listing in path order.
func (c *Catalog) Sidecars() []Sidecar {
	return c.sidecars
}

// KnownItems returns the set of content-item identifiers present in the store.
func (c *Catalog) KnownItems() map[string]struct{} {
	return c.known
}

func (c *Catalog) ContentSuffix() string { return c.contentSuffix }
func (c *Catalog) SidecarSuffix() string { return c.sidecarSuffix }

// ContentPath returns the on-disk location of the content file for an item id.
func (c *Catalog) ContentPath(id string) string {
	return filepath.Join(c.root, filepath.FromSlash(id)+c.contentSuffix)
}

func (c *Catalog) sidecarPath(id string) string {
	return filepath.Join(c.root, filepath.FromSlash(id)+c.contentSuffix+c.sidecarSuffix)
}

// Record returns the metadata record for the given item id. The boolean is
// false when the item has no readable sidecar.
func (c *Catalog) Record(id string) (Record, bool) {
	p := c.sidecarPath(id)

	info, err := os.Stat(p)
	if err != nil {
		return Record{}, false
	}

	if cached, hit := c.records.Get(p, info.ModTime()); hit {
		return cached.(Record), true
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return Record{}, false
	}

	rec, err := parseRecord(data)
	if err != nil {
		// A malformed sidecar disqualifies the item rather than failing
		// the surrounding search or index pass.
		return Record{}, false
	}

	c.records.Put(p, info.ModTime(), rec)
	return rec, true
}

// Field returns the value of one field for an item, or the empty string when
// the item or field is absent.
func (c *Catalog) Field(id, name string) string {
	rec, ok := c.Record(id)
	if !ok {
		return ""
	}
	return rec.Value(name)
}
