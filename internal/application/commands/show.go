package commands

import (
	"context"
	"fmt"

	"vibegraph/internal/application"
	"vibegraph/internal/domain"
	"vibegraph/internal/ports"
)

// DayDetail is the drill-down view of a single day
type DayDetail struct {
	Date    string
	Summary domain.DailySummary
	Records []domain.ActivityRecord
}

// ShowDayCommand returns the records for one day
type ShowDayCommand struct {
	docs ports.DocumentReader
	Date string
}

// NewShowDayCommand creates a new ShowDayCommand
func NewShowDayCommand(docs ports.DocumentReader, date string) *ShowDayCommand {
	return &ShowDayCommand{
		docs: docs,
		Date: date,
	}
}

// Validate checks the requested date
func (c *ShowDayCommand) Validate() error {
	return application.ValidateDate("date", c.Date)
}

// Execute runs the show day command
func (c *ShowDayCommand) Execute(ctx context.Context) (*DayDetail, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	doc, err := c.docs.Load(ctx)
	if err != nil {
		return nil, err
	}

	summary, ok := doc.DailyContributions[c.Date]
	if !ok {
		return nil, fmt.Errorf("no activity on %s: %w", c.Date, application.ErrNotFound)
	}

	return &DayDetail{
		Date:    c.Date,
		Summary: summary,
		Records: doc.RecordsOn(c.Date),
	}, nil
}

// ShowRecordCommand looks a single record up by id
type ShowRecordCommand struct {
	docs     ports.DocumentReader
	RecordID string
}

// NewShowRecordCommand creates a new ShowRecordCommand
func NewShowRecordCommand(docs ports.DocumentReader, recordID string) *ShowRecordCommand {
	return &ShowRecordCommand{
		docs:     docs,
		RecordID: recordID,
	}
}

// Execute runs the show record command
func (c *ShowRecordCommand) Execute(ctx context.Context) (*domain.ActivityRecord, error) {
	if err := application.ValidateRequired("recordID", c.RecordID); err != nil {
		return nil, err
	}

	doc, err := c.docs.Load(ctx)
	if err != nil {
		return nil, err
	}

	r, ok := doc.FindRecord(c.RecordID)
	if !ok {
		return nil, fmt.Errorf("record %s: %w", c.RecordID, application.ErrNotFound)
	}
	return &r, nil
}
