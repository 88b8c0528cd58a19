package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/trentd187/golf-handicap/internal/models"
)

// Handicap indexes outside this range are rejected. Plus handicaps are stored
// as negative numbers.
const (
	minHandicapIndex = -10.0
	maxHandicapIndex = 54.0
)

// PlayerResponse is one roster entry.
type PlayerResponse struct {
	Name          string   `json:"name"`
	Gender        string   `json:"gender"`
	HandicapIndex *float64 `json:"hi"` // null for a player without an index
}

// UpdateIndexRequest is the JSON body for PUT /api/v1/players/:name/index.
type UpdateIndexRequest struct {
	HandicapIndex *float64 `json:"hi"`
}

func playerResponse(p *models.Player) PlayerResponse {
	return PlayerResponse{
		Name:          p.Name,
		Gender:        string(p.Gender),
		HandicapIndex: p.HandicapIndex,
	}
}

// GetPlayers returns a handler for GET /api/v1/players, the roster sorted by name.
func GetPlayers(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var players []models.Player
		if err := db.Order("name").Find(&players).Error; err != nil {
			slog.Error("failed to list players", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch players",
			})
		}

		response := make([]PlayerResponse, 0, len(players))
		for i := range players {
			response = append(response, playerResponse(&players[i]))
		}
		return c.JSON(response)
	}
}

// UpdatePlayerIndex returns a handler for PUT /api/v1/players/:name/index.
// It writes a new handicap index back to the roster so the next calculation
// picks it up. Sending {"hi": null} clears the index.
func UpdatePlayerIndex(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")

		var req UpdateIndexRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
		if hi := req.HandicapIndex; hi != nil && (*hi < minHandicapIndex || *hi > maxHandicapIndex) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "hi must be between -10 and 54",
			})
		}

		var player models.Player
		if err := db.Where("name = ?", name).First(&player).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "player not found",
				})
			}
			slog.Error("failed to load player", "player", name, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch player",
			})
		}

		// Update with a map so a nil index is written as NULL rather than skipped.
		if err := db.Model(&player).Updates(map[string]interface{}{"handicap_index": req.HandicapIndex}).Error; err != nil {
			slog.Error("failed to update handicap index", "player", name, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to update player",
			})
		}
		player.HandicapIndex = req.HandicapIndex

		return c.JSON(playerResponse(&player))
	}
}
