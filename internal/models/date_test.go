package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RishikeshSreekumar/vibevault/internal/models"
)

func TestDateJSONRoundTrip(t *testing.T) {
	date := models.NewDate(2020, time.January, 1)

	encoded, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"2020-01-01"`, string(encoded))

	var decoded models.Date
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.True(t, decoded.Equal(date.Time))
}

func TestDateUnmarshalRejectsBadInput(t *testing.T) {
	var d models.Date
	assert.Error(t, json.Unmarshal([]byte(`"01/02/2020"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"2020-13-40"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`""`), &d))
	// The quoted string "null" is not the JSON null token.
	assert.Error(t, json.Unmarshal([]byte(`"null"`), &d))
}

func TestDateUnmarshalNullIsNoOp(t *testing.T) {
	d := models.NewDate(2020, time.January, 1)
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.Equal(t, "2020-01-01", d.String())
}

func TestParseDate(t *testing.T) {
	d, err := models.ParseDate("2021-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2021-06-01", d.String())
	assert.Equal(t, 2021, d.Year())

	_, err = models.ParseDate("June 1st 2021")
	assert.Error(t, err)
}

func TestSongJSONShape(t *testing.T) {
	release := models.NewDate(2020, time.January, 1)
	album := "Lady in Satin"
	song := models.Song{
		ID:          "6a2f3a7e-1d7c-4b3e-9f52-0f6f9f0c2a11",
		Title:       "Blue Moon",
		Singer:      "Billie Holiday",
		Album:       &album,
		ReleaseDate: &release,
		CreatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	encoded, err := json.Marshal(song)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &m))
	assert.Equal(t, "Blue Moon", m["title"])
	assert.Equal(t, "2020-01-01", m["release_date"])
	// Absent optional fields are omitted, not sent as null.
	assert.NotContains(t, m, "composer")
	assert.NotContains(t, m, "youtube_link")
}
