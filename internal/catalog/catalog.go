// Package catalog holds the static, session-immutable content the wheel
// navigates: the ordered track list, the projects and the content pages.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Track is one entry of the fixed track list.
type Track struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Artist  string `yaml:"artist"`
	MediaID string `yaml:"media_id,omitempty"`
}

// Ref is the reference handed to a media backend.
func (t Track) Ref() string {
	if t.MediaID != "" {
		return t.MediaID
	}
	return t.ID
}

// Project links to an external repository.
type Project struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Page is the body of a content tab.
type Page struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Catalog is the static content supplied at start-up.
type Catalog struct {
	Tracks   []Track         `yaml:"tracks"`
	Projects []Project       `yaml:"projects"`
	Pages    map[string]Page `yaml:"pages"`
}

// ErrNoMatch is returned by Find when no track matches the query.
var ErrNoMatch = errors.New("no matching track")

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from a YAML file. An empty path yields the default.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate rejects catalogs with missing or duplicate identifiers.
func (c *Catalog) Validate() error {
	seen := make(map[string]struct{}, len(c.Tracks))
	for i, t := range c.Tracks {
		if strings.TrimSpace(t.ID) == "" {
			return fmt.Errorf("track %d: missing id", i)
		}
		if strings.TrimSpace(t.Title) == "" {
			return fmt.Errorf("track %s: missing title", t.ID)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("track %s: duplicate id", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	for i, p := range c.Projects {
		if strings.TrimSpace(p.ID) == "" {
			return fmt.Errorf("project %d: missing id", i)
		}
		if strings.TrimSpace(p.URL) == "" {
			return fmt.Errorf("project %s: missing url", p.ID)
		}
	}
	return nil
}

// Len is the number of tracks.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Tracks)
}

// At returns the track at index i.
func (c *Catalog) At(i int) (Track, bool) {
	if c == nil || i < 0 || i >= len(c.Tracks) {
		return Track{}, false
	}
	return c.Tracks[i], true
}

// IndexOf returns the catalog position of a track id, or -1.
func (c *Catalog) IndexOf(id string) int {
	if c == nil {
		return -1
	}
	for i, t := range c.Tracks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Artists lists distinct artists in order of first appearance.
func (c *Catalog) Artists() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []string
	for _, t := range c.Tracks {
		if _, ok := seen[t.Artist]; ok {
			continue
		}
		seen[t.Artist] = struct{}{}
		out = append(out, t.Artist)
	}
	return out
}

// AllTracks returns a copy of the track list.
func (c *Catalog) AllTracks() []Track {
	if c == nil {
		return nil
	}
	dup := make([]Track, len(c.Tracks))
	copy(dup, c.Tracks)
	return dup
}

// TracksBy returns the tracks of one artist in catalog order. The match is
// exact, so an empty artist selects tracks that have none.
func (c *Catalog) TracksBy(artist string) []Track {
	if c == nil {
		return nil
	}
	var out []Track
	for _, t := range c.Tracks {
		if t.Artist == artist {
			out = append(out, t)
		}
	}
	return out
}

// Page returns the content page for a tab id.
func (c *Catalog) Page(tab string) (Page, bool) {
	if c == nil || c.Pages == nil {
		return Page{}, false
	}
	p, ok := c.Pages[tab]
	return p, ok
}

// Find returns the track whose "title artist" best matches query.
func (c *Catalog) Find(query string) (Track, error) {
	query = strings.TrimSpace(query)
	if query == "" || c.Len() == 0 {
		return Track{}, ErrNoMatch
	}
	targets := make([]string, len(c.Tracks))
	for i, t := range c.Tracks {
		targets[i] = t.Title + " " + t.Artist
	}
	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	if len(ranks) == 0 {
		return Track{}, fmt.Errorf("%w: %q", ErrNoMatch, query)
	}
	sort.Sort(ranks)
	return c.Tracks[ranks[0].OriginalIndex], nil
}
