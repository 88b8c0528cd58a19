// Package handicap implements the handicap-allowance engine: course handicaps
// from a handicap index and tee ratings, and playing handicaps from course
// handicaps and the competition format.
//
// Everything in this package is pure. Nothing is read from the database or
// the network, and no state survives between calls, so the same engine backs
// both the HTTP service and the phcalc command-line tool.
package handicap

import (
	"errors"
	"fmt"
)

// Format is the competition format selected for a round.
// The set of formats is closed: only the constants below are accepted.
type Format string

const (
	FormatGeneralPlay        Format = "General play"
	FormatIndividual         Format = "Individual"
	FormatBetterBall         Format = "4B better-ball"
	FormatFoursomes          Format = "Foursomes"
	FormatGreensomes         Format = "Greensomes"
	FormatSinglesMatchPlay   Format = "2B match-play"
	FormatFourBallMatchPlay  Format = "4B match-play"
	FormatFoursomesMatchPlay Format = "Foursomes match-play"
)

// ErrUnknownFormat is returned when a format string is not one of the eight
// supported formats.
var ErrUnknownFormat = errors.New("unknown competition format")

// formats lists every supported format in the order they are offered to users.
var formats = []Format{
	FormatGeneralPlay,
	FormatIndividual,
	FormatBetterBall,
	FormatFoursomes,
	FormatGreensomes,
	FormatSinglesMatchPlay,
	FormatFourBallMatchPlay,
	FormatFoursomesMatchPlay,
}

var descriptions = map[Format]string{
	FormatGeneralPlay:        "Each player gets 100% of their course handicap",
	FormatIndividual:         "Each player gets 95% of their course handicap",
	FormatBetterBall:         "Each player gets 85% of their course handicap",
	FormatFoursomes:          "Team handicap is the sum of 50% of the course handicap for each player",
	FormatGreensomes:         "Team handicap is the sum of 60% course handicap for the lower plus 40% course handicap for the higher",
	FormatSinglesMatchPlay:   "The highest handicapped player gets 100% of the difference in course handicaps",
	FormatFourBallMatchPlay:  "Each player gets 90% of the difference between their course handicap and the course handicap of the lowest handicapped player",
	FormatFoursomesMatchPlay: "Team handicap is 50% of the difference in the sum of the course handicaps for each player in the team",
}

// Formats returns all supported formats. The returned slice is a copy.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat converts the exact literal used by hosts into a Format.
// Matching is case-sensitive; anything else yields ErrUnknownFormat.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
	return f, nil
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	_, ok := descriptions[f]
	return ok
}

// Description is the one-line allowance summary shown next to the format picker.
func (f Format) Description() string {
	return descriptions[f]
}

func (f Format) String() string {
	return string(f)
}
