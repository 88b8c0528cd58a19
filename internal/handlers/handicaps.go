package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trentd187/golf-handicap/internal/handicap"
	"github.com/trentd187/golf-handicap/internal/models"
)

// FormatResponse describes one competition format for the format picker.
type FormatResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CalculateRequest is the JSON body for POST /api/v1/handicaps.
//
// Players are listed in the order they play: for pair formats, players 1 and 2
// are partners, 3 and 4 are partners, and so on. For foursomes match-play,
// players 1 and 2 play against players 3 and 4.
type CalculateRequest struct {
	CourseID  string         `json:"course_id"`
	MenTee    string         `json:"men_tee"`    // Optional; defaults to the course's first men's tee
	LadiesTee string         `json:"ladies_tee"` // Optional; defaults to the course's first ladies' tee
	Format    string         `json:"format"`     // Optional; defaults to the configured default format
	Players   []PlayerSelect `json:"players"`
}

// PlayerSelect names a roster player. HandicapIndex, when present, is used
// for this calculation instead of the roster value.
type PlayerSelect struct {
	Name          string   `json:"name"`
	HandicapIndex *float64 `json:"hi"`
}

// RowResponse is the result for one player.
type RowResponse struct {
	Name                   string   `json:"name"`
	Gender                 string   `json:"gender"`
	Tee                    string   `json:"tee"`
	CourseHandicap         *float64 `json:"course_handicap"`
	PlayingHandicap        *float64 `json:"playing_handicap"`         // Unrounded; null when it can't be computed
	PlayingHandicapDisplay string   `json:"playing_handicap_display"` // Rounded to a whole stroke; "" when null
	Explanation            string   `json:"explanation"`
}

// CalculateResponse is the full handicap sheet for one calculation.
type CalculateResponse struct {
	Format    string        `json:"format"`
	CourseID  string        `json:"course_id"`
	Course    string        `json:"course"`
	MenTee    string        `json:"men_tee"`
	LadiesTee string        `json:"ladies_tee"`
	Rows      []RowResponse `json:"rows"`
}

// GetFormats handles GET /api/v1/formats.
func GetFormats(c *fiber.Ctx) error {
	formats := handicap.Formats()
	response := make([]FormatResponse, 0, len(formats))
	for _, f := range formats {
		response = append(response, FormatResponse{Name: f.String(), Description: f.Description()})
	}
	return c.JSON(response)
}

// CalculateHandicaps returns a handler for POST /api/v1/handicaps.
//
// The flow mirrors a recalculation on the score card:
//  1. Load the course and pick the men's and ladies' tees
//  2. Look up each named player on the roster (gender and handicap index)
//  3. Build one row per player in request order and compute course handicaps
//  4. Allocate playing handicaps for the format
//
// Nothing is stored; every call works from fresh rows.
func CalculateHandicaps(db *gorm.DB, defaultFormat handicap.Format) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CalculateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}

		format := defaultFormat
		if req.Format != "" {
			parsed, err := handicap.ParseFormat(req.Format)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			format = parsed
		}

		if len(req.Players) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "at least one player is required",
			})
		}

		courseID, err := uuid.Parse(req.CourseID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid course ID",
			})
		}
		course, err := loadCourse(db, courseID)
		if err != nil {
			return courseLookupError(c, err)
		}
		menTee := course.SelectTee(models.TeeGenderMens, req.MenTee)
		ladiesTee := course.SelectTee(models.TeeGenderLadies, req.LadiesTee)

		players, err := rosterPlayers(db, req.Players)
		if err != nil {
			var unknown unknownPlayerError
			if errors.As(err, &unknown) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			slog.Error("failed to load roster", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch players",
			})
		}

		rows, err := handicap.Calculate(format, players, menTee.Handicap(), ladiesTee.Handicap())
		if err != nil {
			// Calculate only fails on caller input: an incomplete player or a bad format.
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		response := CalculateResponse{
			Format:    format.String(),
			CourseID:  course.ID.String(),
			Course:    course.Name,
			MenTee:    teeName(menTee),
			LadiesTee: teeName(ladiesTee),
			Rows:      make([]RowResponse, 0, len(rows)),
		}
		for _, r := range rows {
			response.Rows = append(response.Rows, RowResponse{
				Name:                   r.Name,
				Gender:                 string(r.Gender),
				Tee:                    rowTeeName(r),
				CourseHandicap:         r.CH,
				PlayingHandicap:        r.PH,
				PlayingHandicapDisplay: r.Display(),
				Explanation:            r.Explanation(),
			})
		}
		return c.JSON(response)
	}
}

type unknownPlayerError struct {
	name string
}

func (e unknownPlayerError) Error() string {
	return "unknown player: " + e.name
}

// rosterPlayers resolves the selected names against the roster, keeping the
// request order. A name may appear more than once.
func rosterPlayers(db *gorm.DB, selected []PlayerSelect) ([]handicap.Player, error) {
	names := make([]string, 0, len(selected))
	for _, s := range selected {
		names = append(names, s.Name)
	}

	var roster []models.Player
	if err := db.Where("name IN ?", names).Find(&roster).Error; err != nil {
		return nil, err
	}
	byName := make(map[string]*models.Player, len(roster))
	for i := range roster {
		byName[roster[i].Name] = &roster[i]
	}

	players := make([]handicap.Player, 0, len(selected))
	for _, s := range selected {
		p, ok := byName[s.Name]
		if !ok {
			return nil, unknownPlayerError{name: s.Name}
		}
		hp := p.Handicap()
		if s.HandicapIndex != nil {
			hp.HandicapIndex = s.HandicapIndex
		}
		players = append(players, hp)
	}
	return players, nil
}

func teeName(t *models.Tee) string {
	if t == nil {
		return ""
	}
	return t.Name
}

func rowTeeName(r *handicap.PlayerRow) string {
	if r.Tee == nil {
		return ""
	}
	return r.Tee.Name
}
