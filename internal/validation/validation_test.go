package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RishikeshSreekumar/vibevault/internal/models"
	"github.com/RishikeshSreekumar/vibevault/internal/validation"
)

func strptr(s string) *string { return &s }

func TestURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"https", "https://youtube.com/watch?v=abc123", false},
		{"http", "http://example.com/cover.png", false},
		{"no scheme", "not-a-url", true},
		{"relative", "/watch?v=abc123", true},
		{"missing host", "https://", true},
		{"ftp scheme", "ftp://example.com/file", true},
		{"javascript scheme", "javascript:alert(1)", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.URL(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, validation.ErrInvalidURL)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	valid := models.CreateSongRequest{
		Title:       "Blue Moon",
		Singer:      "Billie Holiday",
		YoutubeLink: strptr("https://youtube.com/watch?v=abc"),
	}
	require.NoError(t, validation.Create(&valid))

	missingTitle := valid
	missingTitle.Title = ""
	assert.ErrorIs(t, validation.Create(&missingTitle), validation.ErrTitleRequired)

	missingSinger := valid
	missingSinger.Singer = ""
	assert.ErrorIs(t, validation.Create(&missingSinger), validation.ErrSingerRequired)

	badLink := valid
	badLink.YoutubeLink = strptr("not-a-url")
	err := validation.Create(&badLink)
	require.ErrorIs(t, err, validation.ErrInvalidURL)
	assert.Contains(t, err.Error(), "youtube_link")

	badCover := valid
	badCover.CoverArtURL = strptr("::::")
	assert.ErrorIs(t, validation.Create(&badCover), validation.ErrInvalidURL)
}

func TestUpdate(t *testing.T) {
	assert.NoError(t, validation.Update(&models.UpdateSongRequest{}))

	assert.NoError(t, validation.Update(&models.UpdateSongRequest{
		Album:       strptr("Lady in Satin"),
		SpotifyLink: strptr("https://open.spotify.com/track/xyz"),
	}))

	assert.ErrorIs(t, validation.Update(&models.UpdateSongRequest{Title: strptr("")}), validation.ErrTitleRequired)
	assert.ErrorIs(t, validation.Update(&models.UpdateSongRequest{Singer: strptr("")}), validation.ErrSingerRequired)

	err := validation.Update(&models.UpdateSongRequest{AppleMusicLink: strptr("itunes://bad")})
	require.ErrorIs(t, err, validation.ErrInvalidURL)
	assert.Contains(t, err.Error(), "apple_music_link")
}
