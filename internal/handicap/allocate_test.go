package handicap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowsWithCH builds bare rows carrying only a course handicap.
func rowsWithCH(chs ...*float64) []*PlayerRow {
	rows := make([]*PlayerRow, len(chs))
	for i, ch := range chs {
		rows[i] = &PlayerRow{CH: ch}
	}
	return rows
}

func phs(rows []*PlayerRow) []*float64 {
	out := make([]*float64, len(rows))
	for i, r := range rows {
		out[i] = r.PH
	}
	return out
}

func assertPH(t *testing.T, want []*float64, rows []*PlayerRow) {
	t.Helper()
	require.Len(t, rows, len(want))
	for i := range want {
		if want[i] == nil {
			assert.Nil(t, rows[i].PH, "row %d", i)
			continue
		}
		if assert.NotNil(t, rows[i].PH, "row %d", i) {
			assert.InDelta(t, *want[i], *rows[i].PH, 1e-9, "row %d", i)
		}
	}
}

func TestCalculatePH_Scaled(t *testing.T) {
	tests := []struct {
		format Format
		want   float64
	}{
		{FormatGeneralPlay, 22.2084},
		{FormatIndividual, 0.95 * 22.2084},
		{FormatBetterBall, 0.85 * 22.2084},
	}
	for _, tc := range tests {
		t.Run(string(tc.format), func(t *testing.T) {
			rows := rowsWithCH(f(22.2084), nil)
			require.NoError(t, CalculatePH(tc.format, rows))
			assertPH(t, []*float64{f(tc.want), nil}, rows)
		})
	}

	t.Run("general play is exact", func(t *testing.T) {
		rows := rowsWithCH(f(22.2084))
		require.NoError(t, CalculatePH(FormatGeneralPlay, rows))
		assert.Equal(t, 22.2084, *rows[0].PH)
	})

	t.Run("individual example", func(t *testing.T) {
		rows := rowsWithCH(f(22.2084))
		require.NoError(t, CalculatePH(FormatIndividual, rows))
		assert.InDelta(t, 21.0980, *rows[0].PH, 1e-4)
	})
}

func TestCalculatePH_Foursomes(t *testing.T) {
	rows := rowsWithCH(f(10), f(13), f(20), f(7))
	require.NoError(t, CalculatePH(FormatFoursomes, rows))
	assertPH(t, []*float64{f(11.5), f(11.5), f(13.5), f(13.5)}, rows)
}

func TestCalculatePH_Greensomes(t *testing.T) {
	rows := rowsWithCH(f(20), f(10), f(5), f(5))
	require.NoError(t, CalculatePH(FormatGreensomes, rows))
	// 0.6 x 10 + 0.4 x 20 = 14
	assertPH(t, []*float64{f(14), f(14), f(5), f(5)}, rows)
}

func TestCalculatePH_SinglesMatchPlay(t *testing.T) {
	t.Run("higher player receives the difference", func(t *testing.T) {
		rows := rowsWithCH(f(10), f(14), f(9), f(3.5))
		require.NoError(t, CalculatePH(FormatSinglesMatchPlay, rows))
		assertPH(t, []*float64{f(0), f(4), f(5.5), f(0)}, rows)
	})

	t.Run("tie gives no strokes", func(t *testing.T) {
		rows := rowsWithCH(f(12), f(12))
		require.NoError(t, CalculatePH(FormatSinglesMatchPlay, rows))
		assertPH(t, []*float64{f(0), f(0)}, rows)
		assert.Contains(t, rows[0].Explanation(), "tied")
	})

	t.Run("near tie within epsilon", func(t *testing.T) {
		rows := rowsWithCH(f(12), f(12+Epsilon/2))
		require.NoError(t, CalculatePH(FormatSinglesMatchPlay, rows))
		assertPH(t, []*float64{f(0), f(0)}, rows)
	})

	t.Run("gap of exactly epsilon is a tie", func(t *testing.T) {
		rows := rowsWithCH(f(0), f(Epsilon))
		require.NoError(t, CalculatePH(FormatSinglesMatchPlay, rows))
		assertPH(t, []*float64{f(0), f(0)}, rows)
		assert.Contains(t, rows[1].Explanation(), "tied")
	})

	t.Run("difference beyond epsilon", func(t *testing.T) {
		rows := rowsWithCH(f(12+2*Epsilon), f(12))
		require.NoError(t, CalculatePH(FormatSinglesMatchPlay, rows))
		assertPH(t, []*float64{f(2 * Epsilon), f(0)}, rows)
	})
}

func TestCalculatePH_FourBallMatchPlay(t *testing.T) {
	t.Run("whole field against the lowest", func(t *testing.T) {
		rows := rowsWithCH(f(5.0), f(8.0), f(5.0005))
		require.NoError(t, CalculatePH(FormatFourBallMatchPlay, rows))
		assertPH(t, []*float64{f(0), f(2.7), f(0)}, rows)
	})

	t.Run("gap of exactly epsilon ties with the lowest", func(t *testing.T) {
		rows := rowsWithCH(f(Epsilon), f(0), f(3))
		require.NoError(t, CalculatePH(FormatFourBallMatchPlay, rows))
		assertPH(t, []*float64{f(0), f(0), f(2.7)}, rows)
		assert.Contains(t, rows[0].Explanation(), "plays off 0")
	})

	t.Run("missing course handicaps are skipped", func(t *testing.T) {
		rows := rowsWithCH(nil, f(18), f(8), f(12))
		require.NoError(t, CalculatePH(FormatFourBallMatchPlay, rows))
		assertPH(t, []*float64{nil, f(9), f(0), f(3.6)}, rows)
	})

	t.Run("nobody has a course handicap", func(t *testing.T) {
		rows := rowsWithCH(nil, nil)
		require.NoError(t, CalculatePH(FormatFourBallMatchPlay, rows))
		assertPH(t, []*float64{nil, nil}, rows)
	})
}

func TestCalculatePH_FoursomesMatchPlay(t *testing.T) {
	t.Run("lower team plays off zero", func(t *testing.T) {
		rows := rowsWithCH(f(10), f(12), f(14), f(15))
		require.NoError(t, CalculatePH(FormatFoursomesMatchPlay, rows))
		assertPH(t, []*float64{f(0), f(0), f(3.5), f(3.5)}, rows)
	})

	t.Run("second team lower", func(t *testing.T) {
		rows := rowsWithCH(f(14), f(15), f(10), f(12))
		require.NoError(t, CalculatePH(FormatFoursomesMatchPlay, rows))
		assertPH(t, []*float64{f(3.5), f(3.5), f(0), f(0)}, rows)
	})

	t.Run("tied totals", func(t *testing.T) {
		rows := rowsWithCH(f(10), f(15), f(12), f(13))
		require.NoError(t, CalculatePH(FormatFoursomesMatchPlay, rows))
		assertPH(t, []*float64{f(0), f(0), f(0), f(0)}, rows)
	})

	t.Run("fewer than four course handicaps", func(t *testing.T) {
		rows := rowsWithCH(f(10), f(12), f(14), nil)
		require.NoError(t, CalculatePH(FormatFoursomesMatchPlay, rows))
		assertPH(t, []*float64{nil, nil, nil, nil}, rows)
	})

	t.Run("match player missing while field has four", func(t *testing.T) {
		rows := rowsWithCH(f(10), nil, f(14), f(15), f(9))
		require.NoError(t, CalculatePH(FormatFoursomesMatchPlay, rows))
		assertPH(t, []*float64{nil, nil, nil, nil, nil}, rows)
	})

	t.Run("rows after the fourth are not in the match", func(t *testing.T) {
		rows := rowsWithCH(f(10), f(12), f(14), f(15), f(20))
		require.NoError(t, CalculatePH(FormatFoursomesMatchPlay, rows))
		assertPH(t, []*float64{f(0), f(0), f(3.5), f(3.5), nil}, rows)
	})
}

func TestCalculatePH_GroupNullPropagation(t *testing.T) {
	for _, format := range []Format{FormatFoursomes, FormatGreensomes, FormatSinglesMatchPlay} {
		t.Run(string(format), func(t *testing.T) {
			rows := rowsWithCH(f(10), nil, f(8), f(16))
			require.NoError(t, CalculatePH(format, rows))
			assert.Nil(t, rows[0].PH)
			assert.Nil(t, rows[1].PH)
			assert.NotNil(t, rows[2].PH)
			assert.NotNil(t, rows[3].PH)
			assert.Contains(t, rows[0].Explanation(), "pair 1 is missing a course handicap")
		})
	}
}

func TestCalculatePH_OddRowIsUnpaired(t *testing.T) {
	for _, format := range []Format{FormatFoursomes, FormatGreensomes, FormatSinglesMatchPlay} {
		t.Run(string(format), func(t *testing.T) {
			rows := rowsWithCH(f(10), f(12), f(9))
			require.NoError(t, CalculatePH(format, rows))
			assert.NotNil(t, rows[0].PH)
			assert.NotNil(t, rows[1].PH)
			assert.Nil(t, rows[2].PH)
			assert.Contains(t, rows[2].Explanation(), "no partner")
		})
	}
}

func TestCalculatePH_UnknownFormat(t *testing.T) {
	rows := rowsWithCH(f(10))
	rows[0].PH = f(7)
	rows[0].Trace = []string{"before"}

	err := CalculatePH(Format("Texas scramble"), rows)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	assert.Equal(t, 7.0, *rows[0].PH)
	assert.Equal(t, []string{"before"}, rows[0].Trace)
}

func TestCalculatePH_Deterministic(t *testing.T) {
	chs := []*float64{f(10.4), f(17.9), f(3.2), f(25.1), f(12)}
	for _, format := range Formats() {
		t.Run(string(format), func(t *testing.T) {
			first := rowsWithCH(chs...)
			second := rowsWithCH(chs...)
			require.NoError(t, CalculatePH(format, first))
			require.NoError(t, CalculatePH(format, second))
			assert.Equal(t, phs(first), phs(second))
			assert.Equal(t, first[0].Trace, second[0].Trace)

			// Recalculating the same rows gives the same handicaps.
			before := phs(first)
			for _, r := range first {
				r.PH = nil
			}
			require.NoError(t, CalculatePH(format, first))
			assert.Equal(t, before, phs(first))
		})
	}
}

func TestCalculatePH_TraceEndsWithRoundedValue(t *testing.T) {
	rows := rowsWithCH(f(22.2084))
	rows[0].Trace = []string{"CH = 22.2084"}
	require.NoError(t, CalculatePH(FormatIndividual, rows))

	require.Len(t, rows[0].Trace, 3)
	assert.Equal(t, "CH = 22.2084", rows[0].Trace[0])
	assert.Equal(t, "Individual: PH = 95% x CH = 0.95 x 22.2084", rows[0].Trace[1])
	assert.Equal(t, "Playing handicap = 21.0980, rounded 21", rows[0].Trace[2])
}
