package sheetsclient

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// headerRowIndex is the zero-based row of the column header; the two rows above stay empty
const headerRowIndex = 2

var stripboardHeader = []interface{}{"Day", "Date", "Scene", "Set", "Time", "Eighths", "Hours", "Cast", "Crew"}

// PublishedStrip is one scene row on the published board
type PublishedStrip struct {
	SceneNumber string
	Set         string // e.g. "INT. KITCHEN"
	TimeOfDay   string
	Eighths     string
	Hours       float64
	Cast        string
	Color       string // strip color name, e.g. "yellow"
}

// PublishedDay is one shoot day on the published board
type PublishedDay struct {
	Day        int
	Date       string // Format: "Mon Jan 02 2006"
	CrewSize   int
	TotalHours float64
	Strips     []PublishedStrip
}

// PublishedStripboard is the complete board written to a tab
type PublishedStripboard struct {
	Title string
	Days  []PublishedDay
}

// stripColors are the conventional strip colors as sheet RGB values
var stripColors = map[string]*sheets.Color{
	"white":  {Red: 1, Green: 1, Blue: 1},
	"yellow": {Red: 1, Green: 0.95, Blue: 0.4},
	"blue":   {Red: 0.62, Green: 0.77, Blue: 1},
	"green":  {Red: 0.6, Green: 0.88, Blue: 0.6},
	"pink":   {Red: 1, Green: 0.76, Blue: 0.86},
	"orange": {Red: 1, Green: 0.8, Blue: 0.5},
}

var endOfDayColor = &sheets.Color{Red: 0.8, Green: 0.8, Blue: 0.8}

// PublishStripboard writes the board to a tab named after its title, creating the
// tab if needed. An existing tab is cleared first, so re-publishing a plan
// replaces the previous board.
func (c *Client) PublishStripboard(ctx context.Context, spreadsheetID string, board *PublishedStripboard) error {
	tabTitle := board.Title
	if tabTitle == "" {
		return fmt.Errorf("stripboard title is required")
	}

	sheetID, exists, err := c.findSheet(ctx, spreadsheetID, tabTitle)
	if err != nil {
		return err
	}

	if exists {
		_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, tabTitle, &sheets.ClearValuesRequest{}).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("failed to clear existing tab: %w", err)
		}
	} else {
		sheetID, err = c.CreateSheet(ctx, spreadsheetID, tabTitle)
		if err != nil {
			return fmt.Errorf("failed to create tab: %w", err)
		}
	}

	valueRange := &sheets.ValueRange{
		Values: StripboardRows(board),
	}

	_, err = c.service.Spreadsheets.Values.Update(
		spreadsheetID,
		fmt.Sprintf("%s!A1", tabTitle),
		valueRange,
	).ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write stripboard: %w", err)
	}

	if _, err := c.batchUpdate(ctx, spreadsheetID, colorRequests(sheetID, board)); err != nil {
		return fmt.Errorf("failed to color strips: %w", err)
	}

	return nil
}

// StripboardRows lays the board out as sheet rows: two empty rows, the header,
// then each day's strips followed by an end-of-day banner
func StripboardRows(board *PublishedStripboard) [][]interface{} {
	rows := [][]interface{}{
		{}, // Row 1 (empty)
		{}, // Row 2 (empty)
		stripboardHeader,
	}

	for _, day := range board.Days {
		for _, strip := range day.Strips {
			rows = append(rows, []interface{}{
				day.Day,
				day.Date,
				strip.SceneNumber,
				strip.Set,
				strip.TimeOfDay,
				strip.Eighths,
				strip.Hours,
				strip.Cast,
				"",
			})
		}
		rows = append(rows, []interface{}{
			day.Day,
			day.Date,
			fmt.Sprintf("END OF DAY %d", day.Day),
			"",
			"",
			"",
			day.TotalHours,
			"",
			day.CrewSize,
		})
	}

	return rows
}

// colorRequests resets the tab background and paints each row in its strip color
func colorRequests(sheetID int64, board *PublishedStripboard) []*sheets.Request {
	width := int64(len(stripboardHeader))
	requests := []*sheets.Request{
		backgroundRequest(&sheets.GridRange{SheetId: sheetID}, stripColors["white"]),
	}

	row := int64(headerRowIndex + 1)
	for _, day := range board.Days {
		for _, strip := range day.Strips {
			color, ok := stripColors[strip.Color]
			if !ok {
				color = stripColors["white"]
			}
			requests = append(requests, backgroundRequest(rowRange(sheetID, row, width), color))
			row++
		}
		requests = append(requests, backgroundRequest(rowRange(sheetID, row, width), endOfDayColor))
		row++
	}

	return requests
}

func rowRange(sheetID, row, width int64) *sheets.GridRange {
	return &sheets.GridRange{
		SheetId:          sheetID,
		StartRowIndex:    row,
		EndRowIndex:      row + 1,
		StartColumnIndex: 0,
		EndColumnIndex:   width,
	}
}

func backgroundRequest(gridRange *sheets.GridRange, color *sheets.Color) *sheets.Request {
	return &sheets.Request{
		RepeatCell: &sheets.RepeatCellRequest{
			Range: gridRange,
			Cell: &sheets.CellData{
				UserEnteredFormat: &sheets.CellFormat{
					BackgroundColor: color,
				},
			},
			Fields: "userEnteredFormat.backgroundColor",
		},
	}
}
