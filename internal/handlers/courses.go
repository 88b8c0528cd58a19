// Package handlers contains HTTP route handler functions for the handicap API.
// This file handles the course reference data: club search, the courses at a
// club, and a single course with its tees.
//
// Each exported function follows the "handler factory" pattern: it takes a *gorm.DB
// and returns a fiber.Handler, so the database is injected without globals.
package handlers

import (
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trentd187/golf-handicap/internal/models"
)

// maxClubMatches caps the club search suggestions.
const maxClubMatches = 10

// TeeResponse is one set of tees as sent to clients.
type TeeResponse struct {
	Name         string  `json:"name"`
	SlopeRating  int     `json:"slope_rating"`
	CourseRating float64 `json:"course_rating"`
	Par          int     `json:"par"`
}

// CourseResponse is a course with its tees split by gender, in display order.
type CourseResponse struct {
	ID         string        `json:"id"`
	ClubName   string        `json:"club_name"`
	Name       string        `json:"name"`
	MenTees    []TeeResponse `json:"men_tees"`
	LadiesTees []TeeResponse `json:"ladies_tees"`
}

func teeResponses(tees []models.Tee) []TeeResponse {
	out := make([]TeeResponse, 0, len(tees))
	for _, t := range tees {
		out = append(out, TeeResponse{
			Name:         t.Name,
			SlopeRating:  t.SlopeRating,
			CourseRating: t.CourseRating,
			Par:          t.Par,
		})
	}
	return out
}

func courseResponse(c *models.Course) CourseResponse {
	return CourseResponse{
		ID:         c.ID.String(),
		ClubName:   c.ClubName,
		Name:       c.Name,
		MenTees:    teeResponses(c.TeesFor(models.TeeGenderMens)),
		LadiesTees: teeResponses(c.TeesFor(models.TeeGenderLadies)),
	}
}

// SearchClubs returns a handler for GET /api/v1/clubs?prefix=...
// It lists up to ten club names starting with prefix, ignoring case.
func SearchClubs(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		prefix := strings.ToLower(strings.TrimSpace(c.Query("prefix")))

		var clubs []string
		if err := db.Model(&models.Course{}).Distinct("club_name").Pluck("club_name", &clubs).Error; err != nil {
			slog.Error("failed to list clubs", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch clubs",
			})
		}
		sort.Strings(clubs)

		matches := make([]string, 0, maxClubMatches)
		for _, club := range clubs {
			if strings.HasPrefix(strings.ToLower(club), prefix) {
				matches = append(matches, club)
				if len(matches) == maxClubMatches {
					break
				}
			}
		}
		return c.JSON(matches)
	}
}

// GetCourses returns a handler for GET /api/v1/courses?club=...
// With a club name it lists that club's courses; without one it lists every course.
func GetCourses(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := db.Preload("Tees").Order("club_name, name")
		if club := c.Query("club"); club != "" {
			query = query.Where("club_name = ?", club)
		}

		var courses []models.Course
		if err := query.Find(&courses).Error; err != nil {
			slog.Error("failed to list courses", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to fetch courses",
			})
		}

		response := make([]CourseResponse, 0, len(courses))
		for i := range courses {
			response = append(response, courseResponse(&courses[i]))
		}
		return c.JSON(response)
	}
}

// GetCourse returns a handler for GET /api/v1/courses/:id.
func GetCourse(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid course ID",
			})
		}

		course, err := loadCourse(db, id)
		if err != nil {
			return courseLookupError(c, err)
		}
		return c.JSON(courseResponse(course))
	}
}

// loadCourse fetches a course with its tees preloaded.
func loadCourse(db *gorm.DB, id uuid.UUID) (*models.Course, error) {
	var course models.Course
	if err := db.Preload("Tees").First(&course, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func courseLookupError(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "course not found",
		})
	}
	slog.Error("failed to load course", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "failed to fetch course",
	})
}
