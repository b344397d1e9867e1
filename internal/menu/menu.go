package menu

import "fmt"

// Kind tags a menu level.
type Kind int

const (
	Main Kind = iota
	Submenu
	Projects
	MusicRoot
	MusicArtists
	MusicArtistSongs
	NowPlaying
)

var kindNames = map[Kind]string{
	Main:             "main",
	Submenu:          "submenu",
	Projects:         "projects",
	MusicRoot:        "music",
	MusicArtists:     "music-artists",
	MusicArtistSongs: "music-artist-songs",
	NowPlaying:       "now-playing",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Terminal reports whether the level has no item list.
func (k Kind) Terminal() bool {
	return k == NowPlaying
}

// SongsSource records how a song list was entered: All for "All Songs",
// otherwise the artist whose songs are listed. Artist may be empty for
// tracks without one.
type SongsSource struct {
	All    bool
	Artist string
}

// Level is one node of the navigation hierarchy. Songs is only meaningful for
// MusicArtistSongs.
type Level struct {
	Kind  Kind
	Songs SongsSource
}

// At builds a level without songs context.
func At(kind Kind) Level {
	return Level{Kind: kind}
}

// SongsOf builds the song list level for an artist.
func SongsOf(artist string) Level {
	return Level{Kind: MusicArtistSongs, Songs: SongsSource{Artist: artist}}
}

// AllSongs builds the song list level for the whole catalog.
func AllSongs() Level {
	return Level{Kind: MusicArtistSongs, Songs: SongsSource{All: true}}
}

func (l Level) String() string {
	if l.Kind == MusicArtistSongs {
		if l.Songs.All {
			return l.Kind.String() + "[all]"
		}
		return l.Kind.String() + "[" + l.Songs.Artist + "]"
	}
	return l.Kind.String()
}

// Item is a selectable menu entry.
type Item struct {
	ID     string
	Label  string
	Action Action
}

// Action is what selecting an item does. The set of implementations is closed.
type Action interface {
	action()
}

// NavigateTo enters another level.
type NavigateTo struct {
	Level Level
}

// OpenExternal opens a link outside the widget.
type OpenExternal struct {
	URL string
}

// SelectTrack loads a track into the player and shows Now Playing.
type SelectTrack struct {
	TrackID string
}

// ShowContent hides the menu and shows a content tab.
type ShowContent struct {
	Tab string
}

func (NavigateTo) action()   {}
func (OpenExternal) action() {}
func (SelectTrack) action()  {}
func (ShowContent) action()  {}
