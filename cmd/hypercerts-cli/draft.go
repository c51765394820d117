package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/goliatone/go-hypercerts/pkg/prompt"
	"github.com/goliatone/go-hypercerts/pkg/submission"
)

const dateLayout = "2006-01-02"

// collectDraft walks the user through every submission field. Validation of
// the assembled draft happens afterwards through the schema, so prompts only
// guard against input that cannot be represented at all (unparseable dates).
func collectDraft(ctx context.Context, driver prompt.Driver) (submission.Values, error) {
	draft := submission.NewValues()

	var err error
	if draft.Title, err = driver.Input(ctx, prompt.InputConfig{
		Message: "Title",
		Help:    "Name of the project or unit of work, 50 characters max",
	}); err != nil {
		return submission.Values{}, err
	}

	if draft.Description, err = driver.TextArea(ctx, prompt.TextAreaConfig{
		Message: "Description",
		Help:    "What was done, 10 to 500 characters",
	}); err != nil {
		return submission.Values{}, err
	}

	fields := []struct {
		message string
		target  *string
	}{
		{"Project link", &draft.Link},
		{"Card image URL", &draft.CardImage},
		{"Logo URL", &draft.Logo},
		{"Banner URL", &draft.Banner},
	}
	for _, field := range fields {
		if *field.target, err = driver.Input(ctx, prompt.InputConfig{Message: field.message}); err != nil {
			return submission.Values{}, err
		}
	}

	if draft.Tags, err = driver.Input(ctx, prompt.InputConfig{
		Message: "Tags",
		Help:    "Comma-separated, no empty entries",
	}); err != nil {
		return submission.Values{}, err
	}

	if draft.ProjectStart, err = askDate(ctx, driver, "Project start date", draft.ProjectStart); err != nil {
		return submission.Values{}, err
	}
	if draft.ProjectEnd, err = askDate(ctx, driver, "Project end date", draft.ProjectEnd); err != nil {
		return submission.Values{}, err
	}
	if draft.WorkStart, err = askDate(ctx, driver, "Work start date", draft.WorkStart); err != nil {
		return submission.Values{}, err
	}
	if draft.WorkEnd, err = askDate(ctx, driver, "Work end date", draft.WorkEnd); err != nil {
		return submission.Values{}, err
	}

	if draft.Contributors, err = driver.Input(ctx, prompt.InputConfig{
		Message: "Contributors",
		Help:    "Comma-separated 0x-prefixed Ethereum addresses",
	}); err != nil {
		return submission.Values{}, err
	}

	if draft.AcceptTerms, err = driver.Confirm(ctx, prompt.ConfirmConfig{
		Message: "Do you accept the terms and conditions?",
	}); err != nil {
		return submission.Values{}, err
	}
	if draft.ConfirmContributorsPermission, err = driver.Confirm(ctx, prompt.ConfirmConfig{
		Message: "Do all listed contributors permit this submission?",
	}); err != nil {
		return submission.Values{}, err
	}

	return draft, nil
}

func askDate(ctx context.Context, driver prompt.Driver, message string, fallback time.Time) (time.Time, error) {
	raw, err := driver.Input(ctx, prompt.InputConfig{
		Message:   message,
		Default:   fallback.Format(dateLayout),
		Help:      "YYYY-MM-DD",
		Validator: validDate,
	})
	if err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(dateLayout, strings.TrimSpace(raw), time.UTC)
}

func validDate(raw string) error {
	if _, err := time.ParseInLocation(dateLayout, strings.TrimSpace(raw), time.UTC); err != nil {
		return errors.New("enter a date as YYYY-MM-DD")
	}
	return nil
}
