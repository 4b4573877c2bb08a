package feedback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tobyheywood/wordguess/internal/model"
)

func verdicts(s string) [model.WordLength]model.Verdict {
	// shorthand: G=green, O=orange, X=gray
	var out [model.WordLength]model.Verdict
	for i, c := range s {
		switch c {
		case 'G':
			out[i] = model.VerdictGreen
		case 'O':
			out[i] = model.VerdictOrange
		default:
			out[i] = model.VerdictGray
		}
	}
	return out
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		guess  string
		secret string
		want   string
	}{
		{"exact match is all green", "APPLE", "APPLE", "GGGGG"},
		{"single displaced letter", "CRUMB", "TIGER", "XOXXX"},
		{"disjoint words", "MOSSY", "TRAIN", "XXXXX"},
		{"displaced letters", "LEMON", "MELON", "OGOGG"},
		{"positional match wins over displaced", "LLAMA", "ALARM", "XGGOO"},
		{"repeated guess letter single in secret", "GEESE", "BEGIN", "OGXXX"},
		{"repeated secret letter", "ERASE", "SPEED", "OXXOO"},
		{"lowercase input normalized", "apple", "APPLE", "GGGGG"},
		{"mixed case secret normalized", "APPLE", "apPLe", "GGGGG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.guess, tt.secret)
			assert.Equal(t, verdicts(tt.want), got)
		})
	}
}

func TestEvaluateGreenCountMatchesPositionalMatches(t *testing.T) {
	pairs := [][2]string{
		{"APPLE", "APPLE"},
		{"APPLE", "AMPLE"},
		{"LLAMA", "ALARM"},
		{"EERIE", "LEVEE"},
		{"QUEUE", "QUEEN"},
		{"ROBOT", "BOOST"},
	}

	for _, p := range pairs {
		guess, secret := p[0], p[1]
		got := Evaluate(guess, secret)

		expected := 0
		for i := 0; i < model.WordLength; i++ {
			if guess[i] == secret[i] {
				expected++
			}
		}

		actual := 0
		for _, v := range got {
			if v == model.VerdictGreen {
				actual++
			}
		}
		assert.Equal(t, expected, actual, "green count for %s vs %s", guess, secret)
	}
}

func TestEvaluateNeverOvercountsLetters(t *testing.T) {
	// Green+orange for a given letter never exceeds its count in the secret
	pairs := [][2]string{
		{"GEESE", "BEGIN"},
		{"EERIE", "LEVEE"},
		{"LLAMA", "ALARM"},
		{"SASSY", "BRASS"},
		{"MAMMA", "MADAM"},
	}

	for _, p := range pairs {
		guess, secret := p[0], p[1]
		got := Evaluate(guess, secret)

		awarded := map[byte]int{}
		for i, v := range got {
			if v == model.VerdictGreen || v == model.VerdictOrange {
				awarded[guess[i]]++
			}
		}

		inSecret := map[byte]int{}
		for i := 0; i < model.WordLength; i++ {
			inSecret[secret[i]]++
		}

		for letter, n := range awarded {
			assert.LessOrEqual(t, n, inSecret[letter],
				"letter %c overcounted for %s vs %s", letter, guess, secret)
		}
	}
}

func TestEvaluateLeftmostOrangeWins(t *testing.T) {
	// Two Es in the guess, one non-positional E in the secret: only the
	// leftmost E scores orange, the second is exhausted.
	got := Evaluate("SPEED", "ABIDE")
	assert.Equal(t, model.VerdictOrange, got[2])
	assert.Equal(t, model.VerdictGray, got[3])
}

func TestValidateShape(t *testing.T) {
	assert.NoError(t, ValidateShape("APPLE"))
	assert.NoError(t, ValidateShape("apple"))

	for _, bad := range []string{"", "APPL", "APPLES", "APP1E", "AP PL", "APPLÉ"} {
		assert.ErrorIs(t, ValidateShape(bad), model.ErrInvalidGuess, "input %q", bad)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "APPLE", Normalize("apple"))
	assert.Equal(t, strings.ToUpper("gUeSs"), Normalize("gUeSs"))
}
