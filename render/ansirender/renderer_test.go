package ansirender

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/grindlemire/go-tuit"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// put writes s into row y of t starting at column 0, one rune per cell.
func put(t tuit.TerminalMut, y int, s string, style tuit.Style) {
	x := 0
	for _, r := range s {
		if c := t.CellMut(x, y); c != nil {
			*c = tuit.NewCell(r, style)
		}
		x++
	}
}

// rows splits inline output into lines with escape sequences removed.
func rows(out string) []string {
	lines := strings.Split(strings.TrimSuffix(out, "\r\n"), "\r\n")
	for i, l := range lines {
		lines[i] = ansi.Strip(l)
	}
	return lines
}

func TestRender_InlineText(t *testing.T) {
	term := tuit.NewConstantSize(5, 2)
	put(term, 0, "hello", tuit.NewStyle())
	put(term, 1, "world", tuit.NewStyle())

	var buf bytes.Buffer
	require.NoError(t, New(&buf, Inline()).Render(term))

	assert.Equal(t, []string{"hello", "world"}, rows(buf.String()))
}

func TestRender_PositionsEachRow(t *testing.T) {
	term := tuit.NewConstantSize(5, 2)
	put(term, 0, "hello", tuit.NewStyle())
	put(term, 1, "world", tuit.NewStyle())

	var buf bytes.Buffer
	require.NoError(t, New(&buf).Render(term))
	out := buf.String()

	assert.Contains(t, out, "\x1b[1;1H")
	assert.Contains(t, out, "\x1b[2;1H")
	assert.Contains(t, out, "\x1b[2J")
	assert.Equal(t, "helloworld", ansi.Strip(out))

	// The screen is only cleared on the first frame.
	r := New(&buf)
	require.NoError(t, r.Render(term))
	buf.Reset()
	require.NoError(t, r.Render(term))
	assert.NotContains(t, buf.String(), "\x1b[2J")
	assert.Equal(t, "helloworld", ansi.Strip(buf.String()))
}

func TestRender_StyleSequences(t *testing.T) {
	type tc struct {
		style tuit.Style
		want  string
	}

	tests := map[string]tc{
		"rgb foreground":     {style: tuit.NewStyle().Foreground(tuit.Rgb24(255, 0, 0)), want: "\x1b[0;38;2;255;0;0m"},
		"ansi16 background":  {style: tuit.NewStyle().BgAnsi4(tuit.Blue), want: "\x1b[0;44m"},
		"bright foreground":  {style: tuit.NewStyle().FgAnsi4(tuit.BrightCyan), want: "\x1b[0;96m"},
		"ansi256 foreground": {style: tuit.NewStyle().Foreground(tuit.Ansi256(200)), want: "\x1b[0;38;5;200m"},
		"bold":               {style: tuit.NewStyle().Bold(), want: "\x1b[0;1m"},
		"faint":              {style: tuit.NewStyle().Weight(200), want: "\x1b[0;2m"},
		"underline and swap": {style: tuit.NewStyle().Underlined().Inverted(), want: "\x1b[0;4;7m"},
		"bold with both":     {style: tuit.NewStyle().Bold().FgAnsi4(tuit.Black).BgAnsi4(tuit.Yellow), want: "\x1b[0;1;30;43m"},
		"plain resets only":  {style: tuit.NewStyle(), want: "\x1b[0m"},
		"explicit off":       {style: tuit.Style{Invert: tuit.Off}, want: "\x1b[0m"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			term := tuit.NewConstantSize(1, 1)
			put(term, 0, "x", tt.style)

			var buf bytes.Buffer
			require.NoError(t, New(&buf, Inline()).Render(term))
			assert.Contains(t, buf.String(), tt.want+"x")
		})
	}
}

func TestRender_ProfileDowngrade(t *testing.T) {
	term := tuit.NewConstantSize(2, 1)
	put(term, 0, "ab", tuit.NewStyle().Foreground(tuit.Rgb24(255, 0, 0)).BgAnsi4(tuit.Green))

	type tc struct {
		profile termenv.Profile
		absent  []string
		present []string
	}

	tests := map[string]tc{
		"truecolor keeps rgb": {
			profile: termenv.TrueColor,
			present: []string{"38;2;255;0;0", ";42"},
		},
		"ansi256 uses the palette": {
			profile: termenv.ANSI256,
			present: []string{"38;5;"},
			absent:  []string{"38;2;"},
		},
		"ansi uses sixteen colours": {
			profile: termenv.ANSI,
			present: []string{";42"},
			absent:  []string{"38;2;", "38;5;"},
		},
		"ascii drops colour": {
			profile: termenv.Ascii,
			present: []string{"\x1b[0mab"},
			absent:  []string{"38;", ";42"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			r := New(&buf, Inline(), WithProfile(tt.profile))
			require.Equal(t, tt.profile, r.Profile())
			require.NoError(t, r.Render(term))

			out := buf.String()
			for _, s := range tt.present {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
			assert.Equal(t, []string{"ab"}, rows(out))
		})
	}
}

func TestRender_OnlyEmitsStyleChanges(t *testing.T) {
	red := tuit.NewStyle().Foreground(tuit.Rgb24(255, 0, 0))
	term := tuit.NewConstantSize(4, 1)
	put(term, 0, "aaab", red)
	term.CellMut(3, 0).Style = tuit.NewStyle()

	var buf bytes.Buffer
	require.NoError(t, New(&buf, Inline()).Render(term))
	out := buf.String()

	assert.Equal(t, 1, strings.Count(out, "38;2;255;0;0"))
	assert.Contains(t, out, "\x1b[0;38;2;255;0;0maaa\x1b[0mb")
}

func TestRender_TerminalDefaultStyle(t *testing.T) {
	term := tuit.NewConstantSize(2, 1)
	term.SetDefaultStyle(tuit.NewStyle().FgAnsi4(tuit.Red))
	put(term, 0, "ab", tuit.NewStyle())
	term.CellMut(1, 0).Style = tuit.NewStyle().FgAnsi4(tuit.Green)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, Inline()).Render(term))

	assert.Contains(t, buf.String(), "\x1b[0;31ma\x1b[0;32mb")
}

func TestRender_CharacterWidths(t *testing.T) {
	type tc struct {
		width int
		runes []rune
		want  string
	}

	tests := map[string]tc{
		"wide rune covers next cell": {width: 3, runes: []rune{'世', 'x', 'a'}, want: "世a"},
		"wide rune at the edge":      {width: 2, runes: []rune{'a', '世'}, want: "a "},
		"zero rune":                  {width: 3, runes: []rune{'a', 0, 'b'}, want: "a b"},
		"control character":          {width: 2, runes: []rune{'\n', 'b'}, want: " b"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			term := tuit.NewConstantSize(tt.width, 1)
			for x, r := range tt.runes {
				term.CellMut(x, 0).Character = r
			}

			var buf bytes.Buffer
			require.NoError(t, New(&buf, Inline()).Render(term))
			assert.Equal(t, []string{tt.want}, rows(buf.String()))
		})
	}
}

type failingWriter struct{}

var errBroken = errors.New("broken pipe")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errBroken
}

func TestRender_WriteErrorIsIo(t *testing.T) {
	err := New(failingWriter{}).Render(tuit.NewConstantSize(2, 2))

	require.Error(t, err)
	assert.ErrorIs(t, err, tuit.ErrIo)
	assert.ErrorIs(t, err, errBroken)

	// Display leaves an io error as is.
	err = tuit.Display(tuit.NewConstantSize(1, 1), New(failingWriter{}))
	assert.ErrorIs(t, err, tuit.ErrIo)
	assert.NotErrorIs(t, err, tuit.ErrRender)
}

func TestRenderer_AltScreenAndCursor(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, WithAltScreen(), WithHiddenCursor())

	require.NoError(t, r.Close())
	assert.Empty(t, buf.String(), "Close before Render should write nothing")

	require.NoError(t, r.Render(tuit.NewConstantSize(1, 1)))
	assert.True(t, strings.HasPrefix(buf.String(), "\x1b[?1049h\x1b[?25l"))

	buf.Reset()
	require.NoError(t, r.Close())
	assert.Equal(t, "\x1b[?25h\x1b[?1049l", buf.String())
}

func TestParseProfile(t *testing.T) {
	type tc struct {
		name    string
		want    termenv.Profile
		wantErr bool
	}

	tests := map[string]tc{
		"truecolor":  {name: "truecolor", want: termenv.TrueColor},
		"mixed case": {name: " ANSI256 ", want: termenv.ANSI256},
		"ansi":       {name: "ansi", want: termenv.ANSI},
		"ascii":      {name: "ascii", want: termenv.Ascii},
		"unknown":    {name: "sepia", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseProfile(tt.name, &bytes.Buffer{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, ProfileName(got)))
		})
	}
}

func TestParseProfile_AutoOnBufferIsAscii(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")
	t.Setenv("NO_COLOR", "")
	got, err := ParseProfile("auto", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, termenv.Ascii, got)
}

func mustParse(t *testing.T, name string) termenv.Profile {
	t.Helper()
	p, err := ParseProfile(name, &bytes.Buffer{})
	require.NoError(t, err)
	return p
}
