package handicap

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used when deciding whether two course handicaps
// (or team totals) are equal. Values whose difference is at most Epsilon tie.
const Epsilon = 1e-3

// Allowance percentages applied to course handicaps (or to differences between
// them) for each format.
const (
	individualAllowance     = 0.95
	betterBallAllowance     = 0.85
	foursomesAllowance      = 0.5
	greensomesLowAllowance  = 0.6
	greensomesHiAllowance   = 0.4
	fourBallMatchAllowance  = 0.9
	foursomesMatchAllowance = 0.5
)

// allocation is the result of a rule for one row.
type allocation struct {
	ph    *float64
	lines []string
}

// rule maps the course handicaps of every row, in order, to one allocation
// per row. Rules never look at anything but the course handicaps.
type rule func(chs []*float64) []allocation

// rules is the closed set of allocation rules, one per format. A format with
// no entry here is rejected by CalculatePH rather than ignored.
var rules = map[Format]rule{
	FormatGeneralPlay:        scaled(FormatGeneralPlay, 1),
	FormatIndividual:         scaled(FormatIndividual, individualAllowance),
	FormatBetterBall:         scaled(FormatBetterBall, betterBallAllowance),
	FormatFoursomes:          paired(foursomes),
	FormatGreensomes:         paired(greensomes),
	FormatSinglesMatchPlay:   paired(singlesMatch),
	FormatFourBallMatchPlay:  fourBallMatch,
	FormatFoursomesMatchPlay: foursomesMatch,
}

// CalculatePH sets the playing handicap of every row for format and appends
// the derivation to each row's trace. Rows keep their order and identity.
//
// An unknown format returns ErrUnknownFormat and leaves the rows untouched.
func CalculatePH(format Format, rows []*PlayerRow) error {
	apply, ok := rules[format]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	chs := make([]*float64, len(rows))
	for i, r := range rows {
		chs[i] = r.CH
	}

	for i, a := range apply(chs) {
		rows[i].PH = a.ph
		rows[i].Trace = append(rows[i].Trace, a.lines...)
	}
	return nil
}

// given records a playing handicap and closes the trace with the rounded value.
func given(ph float64, lines ...string) allocation {
	return allocation{
		ph:    &ph,
		lines: append(lines, fmt.Sprintf("Playing handicap = %s, rounded %d", dp4(ph), RoundPH(ph))),
	}
}

// withheld records that no playing handicap could be worked out. The PH stays
// nil and the trace says why, so the explanation never ends silently.
func withheld(reason string) allocation {
	return allocation{lines: []string{"Playing handicap unavailable: " + reason}}
}

// percent renders an allowance factor as a whole percentage for the trace,
// e.g. 0.95 becomes "95%".
func percent(f float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(f*100)))
}

// tied reports whether two course handicaps count as equal. A gap of exactly
// Epsilon is still a tie; anything larger is a real difference.
func tied(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// scaled applies a flat allowance to each player independently.
func scaled(format Format, allowance float64) rule {
	return func(chs []*float64) []allocation {
		out := make([]allocation, len(chs))
		for i, ch := range chs {
			if ch == nil {
				out[i] = withheld("no course handicap")
				continue
			}
			out[i] = given(allowance*(*ch),
				fmt.Sprintf("%s: PH = %s x CH = %s x %s", format, percent(allowance), trim(allowance), dp4(*ch)))
		}
		return out
	}
}

// paired runs score over partners (0,1), (2,3), ... A pair with a missing
// course handicap, or a row left without a partner, gets no playing handicap.
func paired(score func(a, b float64) (allocation, allocation)) rule {
	return func(chs []*float64) []allocation {
		out := make([]allocation, len(chs))
		pairs, unpaired := Pairs(len(chs))
		for _, p := range pairs {
			a, b := chs[p[0]], chs[p[1]]
			if a == nil || b == nil {
				out[p[0]] = withheld(fmt.Sprintf("pair %d is missing a course handicap", p[0]/2+1))
				out[p[1]] = out[p[0]]
				continue
			}
			out[p[0]], out[p[1]] = score(*a, *b)
		}
		for _, i := range unpaired {
			out[i] = withheld("no partner")
		}
		return out
	}
}

func foursomes(a, b float64) (allocation, allocation) {
	th := foursomesAllowance * (a + b)
	line := fmt.Sprintf("Foursomes: team handicap = %s x (%s + %s) = %s",
		percent(foursomesAllowance), dp4(a), dp4(b), dp4(th))
	return given(th, line), given(th, line)
}

func greensomes(a, b float64) (allocation, allocation) {
	lo, hi := math.Min(a, b), math.Max(a, b)
	th := greensomesLowAllowance*lo + greensomesHiAllowance*hi
	line := fmt.Sprintf("Greensomes: team handicap = %s x %s (lower) + %s x %s (higher) = %s",
		percent(greensomesLowAllowance), dp4(lo), percent(greensomesHiAllowance), dp4(hi), dp4(th))
	return given(th, line), given(th, line)
}

func singlesMatch(a, b float64) (allocation, allocation) {
	if tied(a, b) {
		line := fmt.Sprintf("2B match-play: course handicaps tied (%s v %s), no strokes given", dp4(a), dp4(b))
		return given(0, line), given(0, line)
	}

	receiver := func(self, other float64) allocation {
		return given(math.Abs(self-other),
			fmt.Sprintf("2B match-play: PH = |%s - %s| = %s", dp4(self), dp4(other), dp4(math.Abs(self-other))))
	}
	giver := func(self, other float64) allocation {
		return given(0, fmt.Sprintf("2B match-play: lower course handicap (%s v %s) plays off 0", dp4(self), dp4(other)))
	}

	if a < b {
		return giver(a, b), receiver(b, a)
	}
	return receiver(a, b), giver(b, a)
}

// fourBallMatch compares every player with a course handicap against the
// lowest course handicap in the whole field, not just within pairs.
func fourBallMatch(chs []*float64) []allocation {
	out := make([]allocation, len(chs))

	var low *float64
	for _, ch := range chs {
		if ch != nil && (low == nil || *ch < *low) {
			low = ch
		}
	}

	for i, ch := range chs {
		switch {
		case ch == nil:
			out[i] = withheld("no course handicap")
		case tied(*ch, *low):
			out[i] = given(0, fmt.Sprintf("4B match-play: lowest course handicap in the field (%s) plays off 0", dp4(*low)))
		default:
			diff := *ch - *low
			out[i] = given(fourBallMatchAllowance*diff,
				fmt.Sprintf("4B match-play: PH = %s x (%s - %s) = %s x %s",
					percent(fourBallMatchAllowance), dp4(*ch), dp4(*low), trim(fourBallMatchAllowance), dp4(diff)))
		}
	}
	return out
}

// foursomesMatch plays rows 0 and 1 against rows 2 and 3. It needs at least
// four course handicaps in the field, and all four of the match players must
// have one. Rows after the fourth take no part in the match.
func foursomesMatch(chs []*float64) []allocation {
	out := make([]allocation, len(chs))

	known := 0
	for _, ch := range chs {
		if ch != nil {
			known++
		}
	}
	if known < 4 {
		for i := range out {
			out[i] = withheld("foursomes match-play needs four players with a course handicap")
		}
		return out
	}

	teams, _ := Chunk(4, 2)
	for _, i := range []int{0, 1, 2, 3} {
		if chs[i] == nil {
			for _, j := range []int{0, 1, 2, 3} {
				out[j] = withheld("a player in the match is missing a course handicap")
			}
			for j := 4; j < len(chs); j++ {
				out[j] = withheld("not part of the foursomes match")
			}
			return out
		}
	}

	total := func(team []int) float64 { return *chs[team[0]] + *chs[team[1]] }
	t1, t2 := total(teams[0]), total(teams[1])
	summary := fmt.Sprintf("Foursomes match-play: team 1 = %s + %s = %s, team 2 = %s + %s = %s",
		dp4(*chs[0]), dp4(*chs[1]), dp4(t1), dp4(*chs[2]), dp4(*chs[3]), dp4(t2))

	switch {
	case tied(t1, t2):
		for _, i := range []int{0, 1, 2, 3} {
			out[i] = given(0, summary, "Team totals tied, no strokes given")
		}
	default:
		diff := math.Abs(t1 - t2)
		th := foursomesMatchAllowance * diff
		lower, higher := teams[0], teams[1]
		if t2 < t1 {
			lower, higher = teams[1], teams[0]
		}
		for _, i := range lower {
			out[i] = given(0, summary, "Lower team plays off 0")
		}
		for _, i := range higher {
			out[i] = given(th, summary,
				fmt.Sprintf("Higher team: PH = %s x %s = %s", percent(foursomesMatchAllowance), dp4(diff), dp4(th)))
		}
	}

	for j := 4; j < len(chs); j++ {
		out[j] = withheld("not part of the foursomes match")
	}
	return out
}
