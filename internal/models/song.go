package models

import "time"

type Song struct {
	ID             string    `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Singer         string    `json:"singer" db:"singer"`
	Composer       *string   `json:"composer,omitempty" db:"composer"`
	Album          *string   `json:"album,omitempty" db:"album"`
	YoutubeLink    *string   `json:"youtube_link,omitempty" db:"youtube_link"`
	SpotifyLink    *string   `json:"spotify_link,omitempty" db:"spotify_link"`
	AppleMusicLink *string   `json:"apple_music_link,omitempty" db:"apple_music_link"`
	ReleaseDate    *Date     `json:"release_date,omitempty" db:"release_date"`
	Genre          *string   `json:"genre,omitempty" db:"genre"`
	CoverArtURL    *string   `json:"cover_art_url,omitempty" db:"cover_art_url"`
	Lyrics         *string   `json:"lyrics,omitempty" db:"lyrics"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

type CreateSongRequest struct {
	Title          string  `json:"title"`
	Singer         string  `json:"singer"`
	Composer       *string `json:"composer,omitempty"`
	Album          *string `json:"album,omitempty"`
	YoutubeLink    *string `json:"youtube_link,omitempty"`
	SpotifyLink    *string `json:"spotify_link,omitempty"`
	AppleMusicLink *string `json:"apple_music_link,omitempty"`
	ReleaseDate    *Date   `json:"release_date,omitempty"`
	Genre          *string `json:"genre,omitempty"`
	CoverArtURL    *string `json:"cover_art_url,omitempty"`
	Lyrics         *string `json:"lyrics,omitempty"`
}

// UpdateSongRequest carries a partial update: nil fields are left untouched.
// A field sent as JSON null decodes to nil as well, so null and absent are
// equivalent and neither clears a stored value.
type UpdateSongRequest struct {
	Title          *string `json:"title,omitempty"`
	Singer         *string `json:"singer,omitempty"`
	Composer       *string `json:"composer,omitempty"`
	Album          *string `json:"album,omitempty"`
	YoutubeLink    *string `json:"youtube_link,omitempty"`
	SpotifyLink    *string `json:"spotify_link,omitempty"`
	AppleMusicLink *string `json:"apple_music_link,omitempty"`
	ReleaseDate    *Date   `json:"release_date,omitempty"`
	Genre          *string `json:"genre,omitempty"`
	CoverArtURL    *string `json:"cover_art_url,omitempty"`
	Lyrics         *string `json:"lyrics,omitempty"`
}

// SongFilter holds the optional list/count criteria. Text fields match as
// case-insensitive substrings; ReleaseYear matches the year of release_date
// exactly. All present criteria combine with AND.
type SongFilter struct {
	Title       *string
	Singer      *string
	Album       *string
	Composer    *string
	Genre       *string
	ReleaseYear *int
}

// SongList is the paginated envelope returned by the list endpoint.
// TotalCount reports all records matching the filter, ignoring pagination.
type SongList struct {
	TotalCount int    `json:"total_count"`
	Songs      []Song `json:"songs"`
}
