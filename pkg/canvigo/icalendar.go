package canvigo

import (
	"fmt"
	"os"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/mattismoel/canvigo/util"
)

// Builds an iCalendar from the chosen assignments. Assignments without a due
// date cannot be placed on a calendar and are skipped. Canvas' own calendar
// export leaves out the assignment URL, so it is embedded here through the
// URL event property.
func BuildICalendar(assignments []Assignment) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetProductId("-//canvigo//Canvas Assignments//EN")
	cal.SetMethod(ics.MethodPublish)

	for _, assignment := range assignments {
		if assignment.DueAt == nil {
			continue
		}

		due := assignment.DueAt.UTC()
		event := cal.AddEvent(fmt.Sprintf("%d@canvas", assignment.ID))
		event.SetSummary(assignment.Name)
		event.SetStartAt(due)
		event.SetEndAt(due)
		event.SetDtStampTime(time.Now().UTC())
		if assignment.HTMLURL != "" {
			event.SetURL(assignment.HTMLURL)
		}

		description := fmt.Sprintf("Course: %s", assignment.CourseName)
		// Canvas stores descriptions as HTML fragments
		if text := util.HTMLToText(assignment.Description); text != "" {
			description += "\n" + text
		}
		event.SetDescription(description)
	}

	return cal
}

// Writes the calendar to an .ics file at the given path, replacing any
// previous export.
func WriteICalendar(cal *ics.Calendar, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create calendar file: %w", err)
	}
	defer f.Close()

	err = cal.SerializeTo(f)
	if err != nil {
		return fmt.Errorf("could not serialize calendar: %w", err)
	}
	return nil
}
