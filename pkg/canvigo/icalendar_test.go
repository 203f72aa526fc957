package canvigo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildICalendar(t *testing.T) {
	due := time.Date(2024, 10, 1, 21, 59, 0, 0, time.UTC)
	assignments := []Assignment{
		{
			ID:          11,
			Name:        "Essay",
			CourseName:  "Philosophy",
			DueAt:       &due,
			HTMLURL:     "https://canvas.test/courses/7/assignments/11",
			Description: "<p>Read <b>chapter 3</b></p>",
		},
		{ID: 12, Name: "Draft", CourseName: "Philosophy"}, // no due date
	}

	cal := BuildICalendar(assignments)

	// undated assignments cannot be placed on a calendar
	require.Len(t, cal.Events(), 1)

	serialized := cal.Serialize()
	assert.Contains(t, serialized, "BEGIN:VCALENDAR")
	assert.Contains(t, serialized, "UID:11@canvas")
	assert.Contains(t, serialized, "SUMMARY:Essay")
	assert.Contains(t, serialized, "DTSTART:20241001T215900Z")
	assert.Contains(t, serialized, "DTEND:20241001T215900Z")
	assert.Contains(t, serialized, "URL:https://canvas.test/courses/7/assignments/11")
	assert.Contains(t, serialized, "Course: Philosophy")
	assert.Contains(t, serialized, "Read chapter 3")
	assert.NotContains(t, serialized, "<p>")
}

func TestWriteICalendar(t *testing.T) {
	due := time.Date(2024, 10, 1, 21, 59, 0, 0, time.UTC)
	cal := BuildICalendar([]Assignment{
		{ID: 1, Name: "Quiz", CourseName: "Algebra", DueAt: &due},
	})

	path := filepath.Join(t.TempDir(), "assignments.ics")
	require.NoError(t, WriteICalendar(cal, path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(b)
	assert.True(t, strings.HasPrefix(content, "BEGIN:VCALENDAR"))
	assert.Contains(t, content, "SUMMARY:Quiz")
	assert.Contains(t, content, "END:VCALENDAR")
}
