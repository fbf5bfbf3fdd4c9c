package baseball

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode(t *testing.T) {
	cases := []struct {
		in      string
		wantErr error
	}{
		{"123", nil},
		{"9876", nil},
		{"10234", nil},
		{" 741 ", nil},
		{"12", ErrCodeLength},
		{"123456", ErrCodeLength},
		{"12a", ErrCodeDigit},
		{"-12", ErrCodeDigit},
		{"012", ErrLeadingZero},
		{"112", ErrRepeatedDigit},
		{"1231", ErrRepeatedDigit},
	}
	for _, tc := range cases {
		c, err := ParseCode(tc.in)
		if tc.wantErr != nil {
			assert.ErrorIs(t, err, tc.wantErr, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, len([]rune(c.String())), c.Len())
	}
}

func TestCodeTextRoundTrip(t *testing.T) {
	var c Code
	require.NoError(t, c.UnmarshalText([]byte("5610")))
	b, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "5610", string(b))
	assert.Equal(t, 6, c.Digit(1))
	assert.Error(t, c.UnmarshalText([]byte("5510")))
}

func TestScoreScenario(t *testing.T) {
	secret := MustParseCode("741")
	guess := MustParseCode("123")
	assert.Equal(t, Outcome{Strikes: 0, Balls: 1}, Score(guess, secret))
}

func TestScoreExamples(t *testing.T) {
	cases := []struct {
		a, b string
		want Outcome
	}{
		{"1234", "1234", Outcome{4, 0}},
		{"1234", "4321", Outcome{0, 4}},
		{"1234", "5678", Outcome{0, 0}},
		{"1234", "1243", Outcome{2, 2}},
		{"10234", "12340", Outcome{1, 4}},
		{"456", "465", Outcome{1, 2}},
	}
	for _, tc := range cases {
		got := Score(MustParseCode(tc.a), MustParseCode(tc.b))
		assert.Equal(t, tc.want, got, "%s vs %s", tc.a, tc.b)
	}
}

func TestScoreIdentityAndBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := MinDigits; n <= MaxDigits; n++ {
		space := Space(n)
		for _, a := range space {
			require.Equal(t, Outcome{Strikes: n}, Score(a, a), a.String())
		}
		for i := 0; i < 2000; i++ {
			a := space[rng.Intn(len(space))]
			b := space[rng.Intn(len(space))]
			o := Score(a, b)
			require.GreaterOrEqual(t, o.Balls, 0)
			require.LessOrEqual(t, o.Strikes+o.Balls, n)
			require.Equal(t, o, Score(b, a), "%s vs %s", a, b)
			if a != b {
				require.False(t, o.Solved(n))
			}
		}
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "2S1B", Outcome{Strikes: 2, Balls: 1}.String())
}
