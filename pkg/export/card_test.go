package export

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/notepad/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"one two", "three"}, Wrap("one two three", 8))
	assert.Equal(t, []string{"line 1", "", "line 3"}, Wrap("line 1\n\nline 3", 20))
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, Wrap("abcdefghij", 4))
	assert.Equal(t, []string{"a", "b"}, Wrap("a\r\nb", 10))
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#2e3b4e")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x2e, 0x3b, 0x4e, 0xff}, c)

	c, err = ParseHexColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, c)

	for _, bad := range []string{"", "2e3b4e", "#zzzzzz", "#12345"} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestStamp(t *testing.T) {
	created := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)
	n := core.Note{CreatedAt: created}
	assert.Equal(t, "Created: Jan 2, 2025, 3:04:05 PM", Stamp(n, time.UTC))

	updated := created.Add(time.Hour)
	n.UpdatedAt = &updated
	assert.True(t, strings.HasPrefix(Stamp(n, time.UTC), "Updated: Jan 2, 2025, 4:04:05 PM"))
}

func TestRasterize_Scale(t *testing.T) {
	bg := color.RGBA{0x2e, 0x3b, 0x4e, 0xff}
	card := NewCard(core.Note{Title: "Title", Content: "a\nb\nc"}, core.DefaultTeams[0], "", bg, time.UTC)

	base := card.Render()
	scaled, err := Rasterize(card, CaptureScale)
	require.NoError(t, err)

	assert.Equal(t, base.Bounds().Dx()*2, scaled.Bounds().Dx())
	assert.Equal(t, base.Bounds().Dy()*2, scaled.Bounds().Dy())

	// Inside the border the card is painted with the background color.
	assert.Equal(t, bg, scaled.RGBAAt(8, scaled.Bounds().Dy()/2+1))

	_, err = Rasterize(card, 0)
	assert.Error(t, err)
}

func TestRender_GrowsWithContent(t *testing.T) {
	bg := color.RGBA{A: 0xff}
	short := NewCard(core.Note{Title: "t", Content: "one"}, core.Team{}, "", bg, time.UTC).Render()
	long := NewCard(core.Note{Title: "t", Content: "one\ntwo\nthree"}, core.Team{}, "", bg, time.UTC).Render()

	assert.Greater(t, long.Bounds().Dy(), short.Bounds().Dy())
}
