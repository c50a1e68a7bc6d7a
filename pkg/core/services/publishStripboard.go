package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/varunisrani/thinkaiback-sub000/pkg/clients/sheetsclient"
	"github.com/varunisrani/thinkaiback-sub000/pkg/core/schedule"
)

const publishedDateFormat = "Mon Jan 02 2006"

// StripboardPublisher defines the sheets operation needed to publish a stripboard
type StripboardPublisher interface {
	PublishStripboard(ctx context.Context, spreadsheetID string, board *sheetsclient.PublishedStripboard) error
}

// PublishStripboard writes a plan's stripboard to the given spreadsheet
func PublishStripboard(ctx context.Context, publisher StripboardPublisher, logger *zap.Logger, spreadsheetID string, plan *schedule.Plan) (*sheetsclient.PublishedStripboard, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("stripboard spreadsheet id is not configured")
	}
	if plan.TotalDays() == 0 {
		return nil, fmt.Errorf("plan %s has no shoot days to publish", plan.ID)
	}

	board := BuildPublishedStripboard(plan)

	logger.Debug("Publishing stripboard",
		zap.String("spreadsheet_id", spreadsheetID),
		zap.String("tab", board.Title),
		zap.Int("days", len(board.Days)))

	if err := publisher.PublishStripboard(ctx, spreadsheetID, board); err != nil {
		return nil, fmt.Errorf("failed to publish stripboard: %w", err)
	}

	logger.Info("Stripboard published", zap.String("tab", board.Title))
	return board, nil
}

// BuildPublishedStripboard converts a plan's stripboard into sheet form. The tab is
// titled after the production and its date range.
func BuildPublishedStripboard(plan *schedule.Plan) *sheetsclient.PublishedStripboard {
	board := &sheetsclient.PublishedStripboard{
		Days: make([]sheetsclient.PublishedDay, 0, len(plan.Stripboard)),
	}

	for _, day := range plan.Stripboard {
		published := sheetsclient.PublishedDay{
			Day:        day.Day,
			Date:       day.Date.Format(publishedDateFormat),
			CrewSize:   day.CrewSize,
			TotalHours: day.TotalHours,
			Strips:     make([]sheetsclient.PublishedStrip, 0, len(day.Strips)),
		}
		for _, strip := range day.Strips {
			published.Strips = append(published.Strips, sheetsclient.PublishedStrip{
				SceneNumber: strip.SceneNumber,
				Set:         fmt.Sprintf("%s. %s", strip.Location.Type, strip.Location.Name),
				TimeOfDay:   string(strip.TimeOfDay),
				Eighths:     strip.Eighths,
				Hours:       strip.Hours,
				Cast:        strings.Join(strip.Cast, ", "),
				Color:       string(strip.Color),
			})
		}
		board.Days = append(board.Days, published)
	}

	title := plan.Title
	if title == "" {
		title = "Stripboard"
	}
	if n := len(board.Days); n > 0 {
		title = fmt.Sprintf("%s %s - %s", title, board.Days[0].Date, board.Days[n-1].Date)
	}
	board.Title = title

	return board
}
