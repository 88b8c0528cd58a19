// Package models defines the data structures (models) that map to database tables.
// GORM uses these structs to generate SQL queries and map database rows back to Go values.
// The struct field tags (the backtick strings like `gorm:"..."`) tell GORM how to handle
// each field: its column type, constraints, and relationships.
//
// The data model holds the reference data the handicap engine needs as input:
//   - Courses, grouped by the club that owns them
//   - Tees on each course, rated separately for men and ladies
//   - Players on the roster, each with a gender and a handicap index
//
// Nothing computed by the engine is stored. Course and playing handicaps are
// rebuilt from these tables on every request.
package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/trentd187/golf-handicap/internal/handicap"
)

// TeeGender indicates which gender a set of tees is rated for.
// The stored values are the same "M" / "F" codes the handicap engine uses,
// so a tee's gender converts to handicap.Gender without a lookup table.
type TeeGender string

const (
	TeeGenderMens   TeeGender = "M"
	TeeGenderLadies TeeGender = "F"
)

// --- Models ---
// GORM uses the struct name (snake_cased and pluralized) as the table name by
// default: Course -> courses, Tee -> tees, Player -> players.
//
// Primary keys are generated in BeforeCreate rather than by a database default
// so the same models work against Postgres in production and SQLite in tests.

// Course represents a golf course. Several courses can share a club
// (e.g. "Old Course" and "New Course" at the same club).
type Course struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClubName  string    `gorm:"not null;index"` // Used for the club search on the course picker
	Name      string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Tees      []Tee `gorm:"foreignKey:CourseID"` // One-to-many: a course has many sets of tees
}

// Tee represents one set of tee boxes on a course (e.g., "Blue", "White", "Red").
// Each tee set has its own course rating, slope and par, the inputs to the course handicap.
// Tee names are unique per course and gender (idx_course_tee).
type Tee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourseID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_course_tee"`
	Name         string    `gorm:"not null;uniqueIndex:idx_course_tee"`
	Gender       TeeGender `gorm:"type:varchar(1);not null;uniqueIndex:idx_course_tee"`
	CourseRating float64   `gorm:"type:decimal(4,1);not null"` // Expected score for a scratch golfer (e.g., 72.4)
	SlopeRating  int       `gorm:"not null"`                   // 55–155; 113 is a course of standard difficulty
	Par          int       `gorm:"not null"`
	SortOrder    int       `gorm:"not null;default:0"` // Display order within the course; the first tee is the default
}

// Player is one person on the roster.
// HandicapIndex is a pointer because a new player may not have an index yet.
type Player struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"uniqueIndex;not null"`
	Gender        TeeGender `gorm:"type:varchar(1)"`
	HandicapIndex *float64  `gorm:"type:decimal(4,1)"` // WHS handicap index (e.g., 14.2); plus handicaps are negative
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BeforeCreate assigns a UUID primary key if one hasn't been set.
func (c *Course) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// BeforeCreate assigns a UUID primary key if one hasn't been set.
func (t *Tee) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// BeforeCreate assigns a UUID primary key if one hasn't been set.
func (p *Player) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TeesFor returns the course's tees for one gender in display order.
func (c *Course) TeesFor(g TeeGender) []Tee {
	var out []Tee
	for _, t := range c.Tees {
		if t.Gender == g {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// SelectTee finds the named tee for a gender. When the name is empty or
// doesn't match, the first tee for that gender is used; nil means the course
// has no tees for that gender at all.
func (c *Course) SelectTee(g TeeGender, name string) *Tee {
	tees := c.TeesFor(g)
	for i := range tees {
		if tees[i].Name == name {
			return &tees[i]
		}
	}
	if len(tees) > 0 {
		return &tees[0]
	}
	return nil
}

// Handicap converts the stored tee into the engine's tee type.
// A nil tee converts to nil.
func (t *Tee) Handicap() *handicap.Tee {
	if t == nil {
		return nil
	}
	return &handicap.Tee{
		Name:         t.Name,
		Gender:       handicap.Gender(t.Gender),
		SlopeRating:  t.SlopeRating,
		CourseRating: t.CourseRating,
		Par:          t.Par,
	}
}

// Handicap converts the roster entry into the engine's player type.
func (p *Player) Handicap() handicap.Player {
	return handicap.Player{
		Name:          p.Name,
		Gender:        handicap.Gender(p.Gender),
		HandicapIndex: p.HandicapIndex,
	}
}
