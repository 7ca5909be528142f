package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/RishikeshSreekumar/vibevault/internal/models"
)

// ErrNotFound signals that no song with the requested id exists.
var ErrNotFound = errors.New("song not found")

const songColumns = `id, title, singer, composer, album, youtube_link, spotify_link,
	apple_music_link, release_date, genre, cover_art_url, lyrics, created_at, updated_at`

type DB struct {
	*sql.DB
}

func New(dsn string) (*DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	log.Info("Database connection established")
	return &DB{db}, nil
}

// EnsureSchema creates the songs table if it does not exist yet. Real schema
// evolution is out of scope; this only bootstraps a fresh database.
func (db *DB) EnsureSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS songs (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			singer TEXT NOT NULL,
			composer TEXT,
			album TEXT,
			youtube_link TEXT,
			spotify_link TEXT,
			apple_music_link TEXT,
			release_date DATE,
			genre TEXT,
			cover_art_url TEXT,
			lyrics TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("error creating schema: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSong(row rowScanner) (*models.Song, error) {
	var song models.Song
	err := row.Scan(
		&song.ID, &song.Title, &song.Singer, &song.Composer, &song.Album,
		&song.YoutubeLink, &song.SpotifyLink, &song.AppleMusicLink,
		&song.ReleaseDate, &song.Genre, &song.CoverArtURL, &song.Lyrics,
		&song.CreatedAt, &song.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &song, nil
}

// CreateSong inserts a new song with a server-generated id and timestamps.
func (db *DB) CreateSong(req *models.CreateSongRequest) (*models.Song, error) {
	query := `
		INSERT INTO songs (id, title, singer, composer, album, youtube_link, spotify_link,
			apple_music_link, release_date, genre, cover_art_url, lyrics, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING ` + songColumns

	song, err := scanSong(db.QueryRow(query,
		uuid.NewString(), req.Title, req.Singer, req.Composer, req.Album,
		req.YoutubeLink, req.SpotifyLink, req.AppleMusicLink,
		req.ReleaseDate, req.Genre, req.CoverArtURL, req.Lyrics,
	))
	if err != nil {
		return nil, fmt.Errorf("error creating song: %w", err)
	}
	return song, nil
}

// GetSong retrieves a song by id.
func (db *DB) GetSong(id string) (*models.Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs WHERE id = $1`

	song, err := scanSong(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting song: %w", err)
	}
	return song, nil
}

// ListSongs returns the filtered page of songs ordered by title ascending.
func (db *DB) ListSongs(filter *models.SongFilter, skip, limit int) ([]models.Song, error) {
	clause, args := filterClause(filter)
	query := fmt.Sprintf(`SELECT %s FROM songs WHERE 1=1%s ORDER BY title ASC OFFSET $%d LIMIT $%d`,
		songColumns, clause, len(args)+1, len(args)+2)
	args = append(args, skip, limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing songs: %w", err)
	}
	defer rows.Close()

	var songs []models.Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning song: %w", err)
		}
		songs = append(songs, *song)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error listing songs: %w", err)
	}
	return songs, nil
}

// CountSongs returns the number of songs matching the filter, ignoring
// pagination.
func (db *DB) CountSongs(filter *models.SongFilter) (int, error) {
	clause, args := filterClause(filter)
	query := `SELECT COUNT(*) FROM songs WHERE 1=1` + clause

	var count int
	if err := db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting songs: %w", err)
	}
	return count, nil
}

// UpdateSong applies the non-nil fields of req to the song with the given id
// and refreshes updated_at. The write is a single statement.
func (db *DB) UpdateSong(id string, req *models.UpdateSongRequest) (*models.Song, error) {
	query := `UPDATE songs SET updated_at = NOW()`
	args := []interface{}{}
	set := func(column string, value interface{}) {
		args = append(args, value)
		query += fmt.Sprintf(", %s = $%d", column, len(args))
	}

	if req.Title != nil {
		set("title", *req.Title)
	}
	if req.Singer != nil {
		set("singer", *req.Singer)
	}
	if req.Composer != nil {
		set("composer", *req.Composer)
	}
	if req.Album != nil {
		set("album", *req.Album)
	}
	if req.YoutubeLink != nil {
		set("youtube_link", *req.YoutubeLink)
	}
	if req.SpotifyLink != nil {
		set("spotify_link", *req.SpotifyLink)
	}
	if req.AppleMusicLink != nil {
		set("apple_music_link", *req.AppleMusicLink)
	}
	if req.ReleaseDate != nil {
		set("release_date", *req.ReleaseDate)
	}
	if req.Genre != nil {
		set("genre", *req.Genre)
	}
	if req.CoverArtURL != nil {
		set("cover_art_url", *req.CoverArtURL)
	}
	if req.Lyrics != nil {
		set("lyrics", *req.Lyrics)
	}

	args = append(args, id)
	query += fmt.Sprintf(" WHERE id = $%d RETURNING %s", len(args), songColumns)

	song, err := scanSong(db.QueryRow(query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating song: %w", err)
	}
	return song, nil
}

// DeleteSong removes a song and returns it as it existed before deletion.
func (db *DB) DeleteSong(id string) (*models.Song, error) {
	query := `DELETE FROM songs WHERE id = $1 RETURNING ` + songColumns

	song, err := scanSong(db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error deleting song: %w", err)
	}
	return song, nil
}
