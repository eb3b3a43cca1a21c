package customization

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestConstrainText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty", raw: "", want: ""},
		{name: "single line kept", raw: "hello", want: "hello"},
		{name: "three lines kept", raw: "a\nb\nc", want: "a\nb\nc"},
		{name: "fourth line dropped", raw: "line1\nline2\nline3\nline4", want: "line1\nline2\nline3"},
		{name: "trailing newline after third line dropped", raw: "a\nb\nc\n", want: "a\nb\nc"},
		{name: "newline on third line kept", raw: "a\nb\n", want: "a\nb\n"},
		{name: "character cap", raw: strings.Repeat("x", 150), want: strings.Repeat("x", 120)},
		{name: "multibyte counted as runes", raw: strings.Repeat("é", 121), want: strings.Repeat("é", 120)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ConstrainText(tc.raw))
		})
	}
}

func TestConstrainTextInvariantHoldsAcrossEdits(t *testing.T) {
	t.Parallel()

	paste := strings.Repeat("print me please\n", 20)
	form := NewForm(DefaultDefaults())

	// Simulate typing followed by a long multi-line paste, one rune at a time.
	current := ""
	for _, r := range "hi\nthere" + paste {
		current = form.SetText(current + string(r))
		require.LessOrEqual(t, LineCount(current), MaxTextLines)
		require.LessOrEqual(t, utf8.RuneCountInString(current), MaxTextChars)
	}

	pasted := form.SetText(paste + paste)
	require.LessOrEqual(t, LineCount(pasted), MaxTextLines)
	require.LessOrEqual(t, utf8.RuneCountInString(pasted), MaxTextChars)
}

func TestConstrainTextIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "a\nb\nc\nd\ne", strings.Repeat("long line ", 30), "x\n\n\n\n"}
	for _, in := range inputs {
		once := ConstrainText(in)
		require.Equal(t, once, ConstrainText(once))
	}
}
