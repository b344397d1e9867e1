package menu

import "github.com/atomicstack/clickwheel/internal/catalog"

// Content tab identifiers, in the order directional clicks cycle them.
const (
	TabHome       = "home"
	TabAbout      = "about"
	TabBlog       = "blog"
	TabResume     = "resume"
	TabNowPlaying = "now-playing"
)

var titles = map[Kind]string{
	Main:             "Menu",
	Submenu:          "Me",
	Projects:         "Projects",
	MusicRoot:        "Music",
	MusicArtists:     "Artists",
	MusicArtistSongs: "Songs",
	NowPlaying:       "Now Playing",
}

// parents is the fixed back-navigation table. MusicArtistSongs is resolved
// from its songs context in Parent.
var parents = map[Kind]Kind{
	Projects:     Submenu,
	Submenu:      Main,
	MusicArtists: MusicRoot,
	MusicRoot:    Main,
}

// Parent returns the level goBack pops to. Main has no parent.
func Parent(l Level) (Level, bool) {
	switch l.Kind {
	case Main:
		return Level{}, false
	case MusicArtistSongs:
		if l.Songs.All {
			return At(MusicRoot), true
		}
		return At(MusicArtists), true
	case NowPlaying:
		return Level{Kind: MusicArtistSongs, Songs: l.Songs}, true
	}
	parent, ok := parents[l.Kind]
	if !ok {
		return Level{}, false
	}
	return At(parent), true
}

// UnknownArtist labels tracks that carry no artist.
const UnknownArtist = "Unknown Artist"

// ArtistLabel is the display name of an artist.
func ArtistLabel(artist string) string {
	if artist == "" {
		return UnknownArtist
	}
	return artist
}

// Title is the header shown above a level.
func Title(l Level) string {
	if l.Kind == MusicArtistSongs && !l.Songs.All {
		return ArtistLabel(l.Songs.Artist)
	}
	if t, ok := titles[l.Kind]; ok {
		return t
	}
	return l.Kind.String()
}

// Registry resolves item lists for levels from the static catalog.
type Registry struct {
	catalog *catalog.Catalog
}

// NewRegistry builds a registry over cat.
func NewRegistry(cat *catalog.Catalog) *Registry {
	return &Registry{catalog: cat}
}

// Catalog exposes the backing catalog.
func (r *Registry) Catalog() *catalog.Catalog {
	return r.catalog
}

// Items returns the ordered entries of a level. NowPlaying has none.
func (r *Registry) Items(l Level) []Item {
	switch l.Kind {
	case Main:
		return []Item{
			{ID: TabHome, Label: "Home", Action: ShowContent{Tab: TabHome}},
			{ID: "me", Label: "Me", Action: NavigateTo{Level: At(Submenu)}},
			{ID: "music", Label: "Music", Action: NavigateTo{Level: At(MusicRoot)}},
		}
	case Submenu:
		return []Item{
			{ID: TabAbout, Label: "About Me", Action: ShowContent{Tab: TabAbout}},
			{ID: "projects", Label: "Projects", Action: NavigateTo{Level: At(Projects)}},
			{ID: TabBlog, Label: "Blog", Action: ShowContent{Tab: TabBlog}},
			{ID: TabResume, Label: "Resume", Action: ShowContent{Tab: TabResume}},
		}
	case Projects:
		if r.catalog == nil {
			return nil
		}
		items := make([]Item, 0, len(r.catalog.Projects))
		for _, p := range r.catalog.Projects {
			items = append(items, Item{ID: p.ID, Label: p.Label, Action: OpenExternal{URL: p.URL}})
		}
		return items
	case MusicRoot:
		return []Item{
			{ID: "all-songs", Label: "All Songs", Action: NavigateTo{Level: AllSongs()}},
			{ID: "artists", Label: "Artists", Action: NavigateTo{Level: At(MusicArtists)}},
		}
	case MusicArtists:
		artists := r.catalog.Artists()
		items := make([]Item, 0, len(artists))
		for _, artist := range artists {
			items = append(items, Item{ID: "artist:" + artist, Label: ArtistLabel(artist), Action: NavigateTo{Level: SongsOf(artist)}})
		}
		return items
	case MusicArtistSongs:
		tracks := r.catalog.AllTracks()
		if !l.Songs.All {
			tracks = r.catalog.TracksBy(l.Songs.Artist)
		}
		items := make([]Item, 0, len(tracks))
		for _, t := range tracks {
			items = append(items, Item{ID: t.ID, Label: t.Title, Action: SelectTrack{TrackID: t.ID}})
		}
		return items
	default:
		return nil
	}
}

// Tabs lists the content tabs reachable by directional clicks, in order.
func Tabs() []string {
	return []string{TabHome, TabAbout, TabBlog, TabResume}
}

// Owner returns the level whose list contains a content tab.
func Owner(tab string) (Level, bool) {
	switch tab {
	case TabHome:
		return At(Main), true
	case TabAbout, TabBlog, TabResume:
		return At(Submenu), true
	}
	return Level{}, false
}

// IndexOf returns the position of id within items, or -1.
func IndexOf(items []Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
