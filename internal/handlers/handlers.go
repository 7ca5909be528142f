package handlers

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/RishikeshSreekumar/vibevault/internal/auth"
	"github.com/RishikeshSreekumar/vibevault/internal/database"
	"github.com/RishikeshSreekumar/vibevault/internal/models"
	"github.com/RishikeshSreekumar/vibevault/internal/validation"
)

const defaultLimit = 100

// SongStore is the repository the handlers run against. database.DB is the
// real implementation; tests substitute an in-memory one.
type SongStore interface {
	GetSong(id string) (*models.Song, error)
	ListSongs(filter *models.SongFilter, skip, limit int) ([]models.Song, error)
	CountSongs(filter *models.SongFilter) (int, error)
	CreateSong(req *models.CreateSongRequest) (*models.Song, error)
	UpdateSong(id string, req *models.UpdateSongRequest) (*models.Song, error)
	DeleteSong(id string) (*models.Song, error)
}

type Handler struct {
	store SongStore
}

func New(store SongStore) *Handler {
	return &Handler{store: store}
}

// Register mounts all routes. Write endpoints go through the admin guard;
// reads are public.
func Register(app *fiber.App, h *Handler, guard *auth.Guard) {
	app.Get("/", h.Root)

	songs := app.Group("/songs")
	songs.Get("/", h.ListSongs)
	songs.Get("/:id", h.GetSong)
	songs.Post("/", guard.Require(), h.CreateSong)
	songs.Put("/:id", guard.Require(), h.UpdateSong)
	songs.Delete("/:id", guard.Require(), h.DeleteSong)
}

func (h *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Welcome to the VibeVault Song Directory API!"})
}

// ListSongs returns a filtered, paginated page of songs plus the total count
// of records matching the filter.
func (h *Handler) ListSongs(c *fiber.Ctx) error {
	skip, err := queryNonNegative(c, "skip", 0)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	limit, err := queryNonNegative(c, "limit", defaultLimit)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	filter, err := queryFilter(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	songs, err := h.store.ListSongs(filter, skip, limit)
	if err != nil {
		log.Error("Error listing songs", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve songs"})
	}

	total, err := h.store.CountSongs(filter)
	if err != nil {
		log.Error("Error counting songs", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve songs"})
	}

	if songs == nil {
		songs = []models.Song{}
	}
	return c.JSON(models.SongList{TotalCount: total, Songs: songs})
}

// GetSong retrieves a song by id.
func (h *Handler) GetSong(c *fiber.Ctx) error {
	id, err := songID(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	song, err := h.store.GetSong(id)
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Song not found"})
	}
	if err != nil {
		log.Error("Error getting song", "id", id, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve song"})
	}
	return c.JSON(song)
}

// CreateSong creates a new song entry.
func (h *Handler) CreateSong(c *fiber.Ctx) error {
	var req models.CreateSongRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Create(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	song, err := h.store.CreateSong(&req)
	if err != nil {
		log.Error("Error creating song", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create song"})
	}
	return c.Status(fiber.StatusCreated).JSON(song)
}

// UpdateSong applies a partial update to an existing song.
func (h *Handler) UpdateSong(c *fiber.Ctx) error {
	id, err := songID(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var req models.UpdateSongRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Update(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	song, err := h.store.UpdateSong(id, &req)
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Song not found"})
	}
	if err != nil {
		log.Error("Error updating song", "id", id, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update song"})
	}
	return c.JSON(song)
}

// DeleteSong removes a song and returns it as it existed before deletion.
func (h *Handler) DeleteSong(c *fiber.Ctx) error {
	id, err := songID(c)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	song, err := h.store.DeleteSong(id)
	if errors.Is(err, database.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Song not found"})
	}
	if err != nil {
		log.Error("Error deleting song", "id", id, "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete song"})
	}
	return c.JSON(song)
}

func songID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", errors.New("invalid song ID: must be a UUID")
	}
	return id, nil
}

func queryNonNegative(c *fiber.Ctx, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, errors.New(name + " must be a non-negative integer")
	}
	return value, nil
}

func queryFilter(c *fiber.Ctx) (*models.SongFilter, error) {
	filter := &models.SongFilter{}

	text := func(name string) *string {
		if value := c.Query(name); value != "" {
			return &value
		}
		return nil
	}
	filter.Title = text("title")
	filter.Singer = text("singer")
	filter.Album = text("album")
	filter.Composer = text("composer")
	filter.Genre = text("genre")

	if raw := c.Query("release_year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("release_year must be an integer")
		}
		filter.ReleaseYear = &year
	}

	return filter, nil
}
