package handicap

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrIncompletePlayer is returned for a roster entry that lacks a name,
// a gender or a handicap index.
var ErrIncompletePlayer = errors.New("incomplete player")

// Player is one roster entry.
type Player struct {
	Name          string
	Gender        Gender
	HandicapIndex *float64
}

// Validate reports ErrIncompletePlayer when p cannot be given a handicap.
// An index of zero is a valid index.
func (p Player) Validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: missing name", ErrIncompletePlayer)
	case !p.Gender.Valid():
		return fmt.Errorf("%w: %s has no gender", ErrIncompletePlayer, p.Name)
	case p.HandicapIndex == nil:
		return fmt.Errorf("%w: %s has no handicap index", ErrIncompletePlayer, p.Name)
	}
	return nil
}

// PlayerRow is one roster slot for a single calculation.
// Rows are rebuilt for every calculation and never reused across calls.
type PlayerRow struct {
	Player
	Tee *Tee

	// CH and PH are nil when they cannot be computed.
	CH *float64
	PH *float64

	// Trace holds the "show your working" lines: the course handicap
	// derivation first, then the playing handicap derivation.
	Trace []string
}

// NewRow selects the tee for p by gender and computes its course handicap.
// A player whose gender is not M or F gets no tee and therefore no CH.
func NewRow(p Player, men, ladies *Tee) *PlayerRow {
	var tee *Tee
	switch p.Gender {
	case GenderMale:
		tee = men
	case GenderFemale:
		tee = ladies
	}

	return &PlayerRow{
		Player: p,
		Tee:    tee,
		CH:     tee.CourseHandicap(p.HandicapIndex),
		Trace:  explainCH(p, tee),
	}
}

// Explanation joins the trace into the text shown when a player asks how
// their handicap was worked out.
func (r *PlayerRow) Explanation() string {
	return strings.Join(r.Trace, "\n")
}

// Display is the playing handicap as shown to players.
func (r *PlayerRow) Display() string {
	return DisplayPH(r.PH)
}

// Calculate builds one row per player, in order, and allocates playing
// handicaps for format. Every player must pass Validate.
func Calculate(format Format, players []Player, men, ladies *Tee) ([]*PlayerRow, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	rows := make([]*PlayerRow, 0, len(players))
	for i, p := range players {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("player %d: %w", i+1, err)
		}
		rows = append(rows, NewRow(p, men, ladies))
	}

	if err := CalculatePH(format, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// RoundPH rounds a playing handicap to the nearest whole stroke. Halves round
// up towards positive infinity, so a plus handicap of -2.5 shows as -2, the
// same as the score card has always shown it.
func RoundPH(ph float64) int {
	return int(math.Floor(ph + 0.5))
}

// DisplayPH formats a playing handicap for presentation. A nil handicap
// displays as the empty string.
func DisplayPH(ph *float64) string {
	if ph == nil {
		return ""
	}
	return strconv.Itoa(RoundPH(*ph))
}

// dp4 formats a computed value to four decimal places.
func dp4(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// trim formats an input value with no trailing zeros.
func trim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
