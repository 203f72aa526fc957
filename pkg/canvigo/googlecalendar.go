package canvigo

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Prefix of every event ID canvigo creates. Lets push and clear target only
// their own events, leaving the users personal events intact. Google event
// IDs only allow base32hex characters, so the assignment ID is appended as
// plain digits.
const eventIDPrefix = "cnv"

type GoogleCalendar struct {
	Service    *calendar.Service
	CalendarID string
}

func NewGoogleCalendar(client *http.Client, calendarID string) (*GoogleCalendar, error) {
	service, err := calendar.NewService(context.Background(), option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("could not create calendar service: %w", err)
	}

	return &GoogleCalendar{
		Service:    service,
		CalendarID: calendarID,
	}, nil
}

// Inserts the chosen assignments as events. Event IDs are derived from the
// assignment ID, so pushing the same assignment twice overwrites the previous
// event instead of duplicating it. Assignments without a due date are skipped.
func (c *GoogleCalendar) AddAssignments(assignments []Assignment) error {
	startTime := time.Now()
	count := 0

	for _, assignment := range assignments {
		if assignment.DueAt == nil {
			continue
		}

		description := fmt.Sprintf("Course: %s", assignment.CourseName)
		if assignment.HTMLURL != "" {
			description += "\n" + assignment.HTMLURL
		}

		due := &calendar.EventDateTime{DateTime: assignment.DueAt.Format(time.RFC3339)}
		event := &calendar.Event{
			Id:          fmt.Sprintf("%s%d", eventIDPrefix, assignment.ID),
			Start:       due,
			End:         due,
			Summary:     assignment.Name,
			Description: description,
			Status:      "confirmed",
		}
		if assignment.HTMLURL != "" {
			event.Source = &calendar.EventSource{Title: assignment.Name, Url: assignment.HTMLURL}
		}

		_, err := c.Service.Events.Insert(c.CalendarID, event).Do()
		if err != nil {
			gErr, ok := err.(*googleapi.Error)
			if !ok || gErr.Code != http.StatusConflict {
				return fmt.Errorf("could not insert event %v: %w", event.Id, err)
			}
			// pushed before - overwrite the existing event
			_, err = c.Service.Events.Update(c.CalendarID, event.Id, event).Do()
			if err != nil {
				return fmt.Errorf("could not update event %v: %w", event.Id, err)
			}
		}
		count++
	}

	if count == 0 {
		log.Printf("Nothing to do. No due assignments were selected.\n")
		return nil
	}

	log.Printf("Added %v assignments to Google Calendar in %v\n", count, time.Since(startTime))
	return nil
}

// Deletes all canvigo events from the Google Calendar.
func (c *GoogleCalendar) Clear() error {
	s := time.Now()
	pageToken := ""
	eventCount := 0

	for {
		req := c.Service.Events.List(c.CalendarID).ShowDeleted(false)
		if pageToken != "" {
			req.PageToken(pageToken)
		}
		r, err := req.Do()
		if err != nil {
			return fmt.Errorf("could not retrieve events: %w", err)
		}

		for _, item := range r.Items {
			if !strings.HasPrefix(item.Id, eventIDPrefix) {
				continue
			}
			err := c.Service.Events.Delete(c.CalendarID, item.Id).Do()
			if err != nil {
				return fmt.Errorf("could not delete event %v: %w", item.Id, err)
			}
			eventCount++
		}

		pageToken = r.NextPageToken
		if pageToken == "" {
			break
		}
	}

	log.Printf("Found and deleted %v events in %v\n", eventCount, time.Since(s))
	return nil
}
