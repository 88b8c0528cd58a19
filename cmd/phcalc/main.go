// Command phcalc works out course and playing handicaps from the command line.
//
// Players are read as JSON from stdin (or --input):
//
//	[{"name": "Alan", "gender": "M", "hi": 18}, {"name": "Beth", "gender": "F", "hi": 24.1}]
//
// and the tees are given as flags:
//
//	phcalc --format "Foursomes" --men-slope 130 --men-rating 72.5 --men-par 71 \
//	       --ladies-slope 125 --ladies-rating 73.1 --ladies-par 72 < players.json
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/trentd187/golf-handicap/internal/handicap"
)

type options struct {
	Format  string `short:"f" long:"format" default:"General play" description:"competition format"`
	Input   string `short:"i" long:"input" description:"player JSON file (default stdin)"`
	Explain bool   `short:"e" long:"explain" description:"print the working for each player"`
	List    bool   `short:"l" long:"list-formats" description:"list the supported formats and exit"`

	// Rating data is optional; a tee missing any of slope, rating or par is
	// treated as not selected.
	MenTee    string   `long:"men-tee" default:"Men" description:"name of the men's tee"`
	MenSlope  *int     `long:"men-slope" description:"slope rating of the men's tee"`
	MenRating *float64 `long:"men-rating" description:"course rating of the men's tee"`
	MenPar    *int     `long:"men-par" description:"par of the men's tee"`

	LadiesTee    string   `long:"ladies-tee" default:"Ladies" description:"name of the ladies' tee"`
	LadiesSlope  *int     `long:"ladies-slope" description:"slope rating of the ladies' tee"`
	LadiesRating *float64 `long:"ladies-rating" description:"course rating of the ladies' tee"`
	LadiesPar    *int     `long:"ladies-par" description:"par of the ladies' tee"`
}

// inputPlayer is one entry of the JSON roster.
type inputPlayer struct {
	Name   string   `json:"name"`
	Gender string   `json:"gender"`
	HI     *float64 `json:"hi"`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	var opts options
	if _, err := flags.ParseArgs(&opts, args); err != nil {
		return err
	}

	if opts.List {
		for _, f := range handicap.Formats() {
			fmt.Fprintf(stdout, "%-22s %s\n", f, f.Description())
		}
		return nil
	}

	format, err := handicap.ParseFormat(opts.Format)
	if err != nil {
		return err
	}

	in := stdin
	if opts.Input != "" {
		file, err := os.Open(opts.Input)
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}

	var roster []inputPlayer
	if err := json.NewDecoder(in).Decode(&roster); err != nil {
		return fmt.Errorf("invalid player JSON: %w", err)
	}

	players := make([]handicap.Player, 0, len(roster))
	for _, p := range roster {
		players = append(players, handicap.Player{
			Name:          p.Name,
			Gender:        handicap.Gender(p.Gender),
			HandicapIndex: p.HI,
		})
	}

	men := tee(opts.MenTee, handicap.GenderMale, opts.MenSlope, opts.MenRating, opts.MenPar)
	ladies := tee(opts.LadiesTee, handicap.GenderFemale, opts.LadiesSlope, opts.LadiesRating, opts.LadiesPar)

	rows, err := handicap.Calculate(format, players, men, ladies)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s\n\n", format)
	fmt.Fprintf(stdout, "%-16s %-8s %9s %4s\n", "Player", "Tee", "CH", "PH")
	for _, r := range rows {
		fmt.Fprintf(stdout, "%-16s %-8s %9s %4s\n", r.Name, teeName(r.Tee), courseHandicap(r.CH), r.Display())
	}

	if opts.Explain {
		for _, r := range rows {
			fmt.Fprintf(stdout, "\n%s\n", r.Explanation())
		}
	}
	return nil
}

// tee returns nil unless slope, rating and par were all given, which leaves
// players of that gender without a course handicap.
func tee(name string, g handicap.Gender, slope *int, rating *float64, par *int) *handicap.Tee {
	if slope == nil || rating == nil || par == nil {
		return nil
	}
	return &handicap.Tee{Name: name, Gender: g, SlopeRating: *slope, CourseRating: *rating, Par: *par}
}

func teeName(t *handicap.Tee) string {
	if t == nil {
		return "-"
	}
	return t.Name
}

func courseHandicap(ch *float64) string {
	if ch == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *ch)
}
