package canvigo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"
)

// Returns the due date formatted in the users local time zone, or a
// placeholder for assignments without one.
func (a *Assignment) DueDisplay() string {
	if a.DueAt == nil {
		return "No due date"
	}
	return a.DueAt.Local().Format("2006-01-02 15:04 MST")
}

// Returns the single line representation used in the assignment picker.
func (a *Assignment) Label() string {
	return fmt.Sprintf("%s — %s — %s", a.CourseName, a.Name, a.DueDisplay())
}

// Sorts assignments by due date, earliest first. Assignments without a due
// date go last. The sort is stable so the API's ordering is kept for ties.
func SortByDueDate(assignments []Assignment) {
	slices.SortStableFunc(assignments, func(a, b Assignment) int {
		switch {
		case a.DueAt == nil && b.DueAt == nil:
			return 0
		case a.DueAt == nil:
			return 1
		case b.DueAt == nil:
			return -1
		}
		return a.DueAt.Compare(*b.DueAt)
	})
}

// Returns a terminal listing of the assignments, grouped under underlined
// course headings.
func FormatAssignments(assignments []Assignment) string {
	if len(assignments) == 0 {
		return "No assignments found."
	}

	var lines []string
	currentCourse := ""
	for _, assignment := range assignments {
		if assignment.CourseName != currentCourse {
			currentCourse = assignment.CourseName
			lines = append(lines, "", currentCourse, strings.Repeat("-", len([]rune(currentCourse))))
		}
		line := fmt.Sprintf("• %s — %s", assignment.Name, assignment.DueDisplay())
		if assignment.HTMLURL != "" {
			line += fmt.Sprintf(" (%s)", assignment.HTMLURL)
		}
		lines = append(lines, line)
	}
	return strings.TrimPrefix(strings.Join(lines, "\n"), "\n")
}

// Writes the course list in the given format. "json" writes an indented JSON
// document, "plain" writes one display name per line with the term appended
// when known.
func ExportCourses(courses []Course, format string, w io.Writer) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(courses, "", "\t")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "plain":
		for _, course := range courses {
			if course.Term != nil && course.Term.Name != "" {
				fmt.Fprintf(w, "%s (%s)\n", course.DisplayName(), course.Term.Name)
				continue
			}
			fmt.Fprintln(w, course.DisplayName())
		}
		return nil
	}
	return fmt.Errorf("unknown format %q, must be json or plain", format)
}
