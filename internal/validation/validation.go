// Package validation checks request payload shapes before they reach the
// database. URL-typed fields must be well-formed absolute http(s) URLs; text
// content is otherwise taken as-is.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/RishikeshSreekumar/vibevault/internal/models"
)

var (
	ErrTitleRequired  = errors.New("title is required")
	ErrSingerRequired = errors.New("singer is required")
	ErrInvalidURL     = errors.New("must be a well-formed absolute URL")
)

var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
}

// URL reports whether raw is an absolute http or https URL with a host.
func URL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return ErrInvalidURL
	}
	if !allowedSchemes[strings.ToLower(parsed.Scheme)] || parsed.Host == "" {
		return ErrInvalidURL
	}
	return nil
}

// Create validates a create payload: title and singer must be present and
// non-empty, URL fields must parse when supplied.
func Create(req *models.CreateSongRequest) error {
	if req.Title == "" {
		return ErrTitleRequired
	}
	if req.Singer == "" {
		return ErrSingerRequired
	}
	return urlFields(map[string]*string{
		"youtube_link":     req.YoutubeLink,
		"spotify_link":     req.SpotifyLink,
		"apple_music_link": req.AppleMusicLink,
		"cover_art_url":    req.CoverArtURL,
	})
}

// Update validates a partial update payload. Supplied title or singer values
// must be non-empty since a persisted record never has an empty one.
func Update(req *models.UpdateSongRequest) error {
	if req.Title != nil && *req.Title == "" {
		return ErrTitleRequired
	}
	if req.Singer != nil && *req.Singer == "" {
		return ErrSingerRequired
	}
	return urlFields(map[string]*string{
		"youtube_link":     req.YoutubeLink,
		"spotify_link":     req.SpotifyLink,
		"apple_music_link": req.AppleMusicLink,
		"cover_art_url":    req.CoverArtURL,
	})
}

func urlFields(fields map[string]*string) error {
	for name, value := range fields {
		if value == nil {
			continue
		}
		if err := URL(*value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
