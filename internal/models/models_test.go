package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trentd187/golf-handicap/internal/handicap"
)

func testCourse() *Course {
	return &Course{
		ClubName: "Royal Oak",
		Name:     "Championship",
		Tees: []Tee{
			{Name: "Yellow", Gender: TeeGenderMens, SlopeRating: 125, CourseRating: 70.1, Par: 71, SortOrder: 2},
			{Name: "Red", Gender: TeeGenderLadies, SlopeRating: 125, CourseRating: 73.1, Par: 72, SortOrder: 1},
			{Name: "White", Gender: TeeGenderMens, SlopeRating: 130, CourseRating: 72.5, Par: 71, SortOrder: 1},
		},
	}
}

func TestCourseTeesFor(t *testing.T) {
	c := testCourse()

	men := c.TeesFor(TeeGenderMens)
	require.Len(t, men, 2)
	assert.Equal(t, "White", men[0].Name)
	assert.Equal(t, "Yellow", men[1].Name)

	assert.Len(t, c.TeesFor(TeeGenderLadies), 1)
}

func TestCourseSelectTee(t *testing.T) {
	c := testCourse()

	assert.Equal(t, "Yellow", c.SelectTee(TeeGenderMens, "Yellow").Name)
	assert.Equal(t, "White", c.SelectTee(TeeGenderMens, "").Name)
	assert.Equal(t, "White", c.SelectTee(TeeGenderMens, "Black").Name)
	// Tee names are per gender: "Red" is not a men's tee.
	assert.Equal(t, "White", c.SelectTee(TeeGenderMens, "Red").Name)

	empty := &Course{Name: "Pitch and putt"}
	assert.Nil(t, empty.SelectTee(TeeGenderLadies, ""))
}

func TestTeeHandicap(t *testing.T) {
	tee := Tee{Name: "White", Gender: TeeGenderMens, SlopeRating: 130, CourseRating: 72.5, Par: 71}
	assert.Equal(t, &handicap.Tee{
		Name:         "White",
		Gender:       handicap.GenderMale,
		SlopeRating:  130,
		CourseRating: 72.5,
		Par:          71,
	}, tee.Handicap())

	var none *Tee
	assert.Nil(t, none.Handicap())
}

func TestPlayerHandicap(t *testing.T) {
	idx := 7.4
	p := Player{Name: "Beth", Gender: TeeGenderLadies, HandicapIndex: &idx}
	got := p.Handicap()
	assert.Equal(t, "Beth", got.Name)
	assert.Equal(t, handicap.GenderFemale, got.Gender)
	assert.Equal(t, &idx, got.HandicapIndex)
	assert.NoError(t, got.Validate())
}

func TestBeforeCreateAssignsID(t *testing.T) {
	c := &Course{}
	require.NoError(t, c.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, c.ID)

	fixed := uuid.New()
	p := &Player{ID: fixed}
	require.NoError(t, p.BeforeCreate(nil))
	assert.Equal(t, fixed, p.ID)

	tee := &Tee{}
	require.NoError(t, tee.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, tee.ID)
}
