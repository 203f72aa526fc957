package canvigo

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCoursesFollowsPagination(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/courses", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		if r.URL.Query().Get("page") == "2" {
			// the next URL carries its own parameters
			assert.Empty(t, r.URL.Query().Get("enrollment_state"))
			fmt.Fprint(w, `[{"id": 3, "name": "", "course_code": "BIO-201"}]`)
			return
		}

		assert.Equal(t, "active", r.URL.Query().Get("enrollment_state"))
		assert.Equal(t, "term", r.URL.Query().Get("include[]"))
		w.Header().Set("Link", fmt.Sprintf(`<%s/api/v1/courses?page=2>; rel="next"`, srv.URL))
		fmt.Fprint(w, `[{"id": 1, "name": "Algebra", "term": {"name": "Fall 2024"}}, {"id": 2, "name": "History"}]`)
	}))
	defer srv.Close()

	c := NewCanvas(srv.URL, "test-token")
	courses, err := c.GetCourses()
	require.NoError(t, err)

	require.Len(t, courses, 3)
	assert.Equal(t, "Algebra", courses[0].Name)
	require.NotNil(t, courses[0].Term)
	assert.Equal(t, "Fall 2024", courses[0].Term.Name)
	assert.Equal(t, "BIO-201", courses[2].CourseCode)
}

func TestGetCoursesErrorsOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid access token.", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewCanvas(srv.URL, "bad-token")
	_, err := c.GetCourses()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestGetAssignments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/courses/7/assignments", r.URL.Path)
		assert.Equal(t, "due_at", r.URL.Query().Get("order_by"))
		fmt.Fprint(w, `[
			{"id": 11, "name": "Essay", "due_at": "2024-10-01T21:59:00Z", "html_url": "https://canvas.test/courses/7/assignments/11"},
			{"id": 12, "name": "", "due_at": null}
		]`)
	}))
	defer srv.Close()

	c := NewCanvas(srv.URL, "test-token")
	assignments, err := c.GetAssignments(Course{ID: 7, Name: "Philosophy"})
	require.NoError(t, err)
	require.Len(t, assignments, 2)

	essay := assignments[0]
	assert.Equal(t, "Essay", essay.Name)
	assert.Equal(t, "Philosophy", essay.CourseName)
	assert.Equal(t, "https://canvas.test/courses/7/assignments/11", essay.HTMLURL)
	require.NotNil(t, essay.DueAt)
	assert.Equal(t, time.Date(2024, 10, 1, 21, 59, 0, 0, time.UTC), essay.DueAt.UTC())

	// untitled assignments get a placeholder name, missing due dates stay nil
	assert.Equal(t, "Untitled", assignments[1].Name)
	assert.Nil(t, assignments[1].DueAt)
}

func TestCollectAssignments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/courses/1/assignments":
			fmt.Fprint(w, `[{"id": 1, "name": "A"}, {"id": 2, "name": "B"}]`)
		case "/api/v1/courses/2/assignments":
			fmt.Fprint(w, `[{"id": 3, "name": "C"}]`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewCanvas(srv.URL, "test-token")
	assignments, err := c.CollectAssignments([]Course{
		{ID: 1, Name: "Algebra"},
		{ID: 2, CourseCode: "HIS-101"},
	})
	require.NoError(t, err)
	require.Len(t, assignments, 3)
	assert.Equal(t, "Algebra", assignments[0].CourseName)
	assert.Equal(t, "HIS-101", assignments[2].CourseName)
}

func TestCourseDisplayName(t *testing.T) {
	tests := []struct {
		course Course
		want   string
	}{
		{Course{ID: 1, Name: "Algebra", CourseCode: "MAT-101"}, "Algebra"},
		{Course{ID: 2, CourseCode: "MAT-101"}, "MAT-101"},
		{Course{ID: 3}, "Course 3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.course.DisplayName())
	}
}

func TestNextLink(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "canvas style header",
			header: `<https://canvas.test/api/v1/courses?page=2&per_page=100>; rel="next",<https://canvas.test/api/v1/courses?page=1&per_page=100>; rel="first"`,
			want:   "https://canvas.test/api/v1/courses?page=2&per_page=100",
		},
		{
			name:   "comma in next url",
			header: `<https://canvas.test/api/v1/courses?page=bookmark:WzEsMl0,a&per_page=100>; rel="next"`,
			want:   "https://canvas.test/api/v1/courses?page=bookmark:WzEsMl0,a&per_page=100",
		},
		{
			name:   "last page",
			header: `<https://canvas.test/api/v1/courses?page=1>; rel="first",<https://canvas.test/api/v1/courses?page=1>; rel="last"`,
			want:   "",
		},
		{
			name:   "empty header",
			header: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextLink(tt.header))
		})
	}
}
