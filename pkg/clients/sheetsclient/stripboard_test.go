package sheetsclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBoard() *PublishedStripboard {
	return &PublishedStripboard{
		Title: "Night Shift - Fri Mar 06 2026",
		Days: []PublishedDay{
			{
				Day:        1,
				Date:       "Fri Mar 06 2026",
				CrewSize:   19,
				TotalHours: 5.5,
				Strips: []PublishedStrip{
					{SceneNumber: "1", Set: "INT. KITCHEN", TimeOfDay: "DAY", Eighths: "1 2/8", Hours: 2.5, Cast: "anna, ben", Color: "white"},
					{SceneNumber: "2", Set: "INT. KITCHEN", TimeOfDay: "NIGHT", Eighths: "7/8", Hours: 3, Cast: "anna", Color: "blue"},
				},
			},
			{
				Day:        2,
				Date:       "Mon Mar 09 2026",
				CrewSize:   21,
				TotalHours: 4,
				Strips: []PublishedStrip{
					{SceneNumber: "3", Set: "EXT. STREET", TimeOfDay: "DAY", Eighths: "1", Hours: 4, Cast: "ben", Color: "mauve"},
				},
			},
		},
	}
}

func TestStripboardRows(t *testing.T) {
	rows := StripboardRows(testBoard())

	require.Len(t, rows, 8)
	assert.Empty(t, rows[0])
	assert.Empty(t, rows[1])
	assert.Equal(t, stripboardHeader, rows[2])

	assert.Equal(t, []interface{}{1, "Fri Mar 06 2026", "1", "INT. KITCHEN", "DAY", "1 2/8", 2.5, "anna, ben", ""}, rows[3])
	assert.Equal(t, []interface{}{1, "Fri Mar 06 2026", "2", "INT. KITCHEN", "NIGHT", "7/8", 3.0, "anna", ""}, rows[4])
	assert.Equal(t, []interface{}{1, "Fri Mar 06 2026", "END OF DAY 1", "", "", "", 5.5, "", 19}, rows[5])
	assert.Equal(t, "3", rows[6][2])
	assert.Equal(t, "END OF DAY 2", rows[7][2])
	assert.Equal(t, 21, rows[7][8])

	for _, row := range rows[3:] {
		assert.Len(t, row, len(stripboardHeader))
	}
}

func TestStripboardRows_Empty(t *testing.T) {
	rows := StripboardRows(&PublishedStripboard{Title: "Empty"})
	require.Len(t, rows, 3)
	assert.Equal(t, stripboardHeader, rows[2])
}

func TestColorRequests(t *testing.T) {
	requests := colorRequests(42, testBoard())

	// Reset, three strips and two end-of-day banners
	require.Len(t, requests, 6)

	reset := requests[0].RepeatCell
	require.NotNil(t, reset)
	assert.Equal(t, int64(42), reset.Range.SheetId)
	assert.Zero(t, reset.Range.EndRowIndex)

	expected := []struct {
		row   int64
		color string
	}{
		{3, "white"},
		{4, "blue"},
		{6, "white"}, // unknown colors fall back to white
	}
	byRow := map[int64]*struct{ red, green, blue float64 }{}
	for _, req := range requests[1:] {
		rc := req.RepeatCell
		require.NotNil(t, rc)
		assert.Equal(t, "userEnteredFormat.backgroundColor", rc.Fields)
		assert.Equal(t, rc.Range.StartRowIndex+1, rc.Range.EndRowIndex)
		assert.Equal(t, int64(len(stripboardHeader)), rc.Range.EndColumnIndex)
		bg := rc.Cell.UserEnteredFormat.BackgroundColor
		byRow[rc.Range.StartRowIndex] = &struct{ red, green, blue float64 }{bg.Red, bg.Green, bg.Blue}
	}

	for _, e := range expected {
		got, ok := byRow[e.row]
		require.True(t, ok, "row %d", e.row)
		want := stripColors[e.color]
		assert.Equal(t, want.Red, got.red)
		assert.Equal(t, want.Green, got.green)
		assert.Equal(t, want.Blue, got.blue)
	}

	for _, banner := range []int64{5, 7} {
		got, ok := byRow[banner]
		require.True(t, ok)
		assert.Equal(t, endOfDayColor.Red, got.red)
	}
}
