package canvigo

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// A course the user is enrolled in. Only the fields canvigo cares about are
// decoded - the Canvas API returns a lot more.
type Course struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	CourseCode string `json:"course_code"`
	Term       *Term  `json:"term,omitempty"`
}

type Term struct {
	Name string `json:"name"`
}

// Returns a human readable name for the course. Not every Canvas course has a
// name set, so this falls back to the course code and lastly the course ID.
func (c *Course) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	if c.CourseCode != "" {
		return c.CourseCode
	}
	return fmt.Sprintf("Course %d", c.ID)
}

type Assignment struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	DueAt       *time.Time `json:"due_at"`   // nil when the assignment has no due date
	HTMLURL     string     `json:"html_url"` // link to the assignment page on Canvas
	CourseName  string     `json:"-"`
}

type Canvas struct {
	BaseURL string
	Client  *http.Client
}

// Creates a Canvas API client for the given instance URL. All requests are
// authenticated with the users personal access token.
func NewCanvas(baseURL, token string) *Canvas {
	return &Canvas{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Client: &http.Client{
			Transport: &bearerTransport{token: token, base: http.DefaultTransport},
		},
	}
}

type bearerTransport struct {
	token string
	base  http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	authed := req.Clone(req.Context())
	authed.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(authed)
}

// Returns all active courses of the authenticated user. Archived courses are
// hidden by Canvas and are not requested.
func (c *Canvas) GetCourses() ([]Course, error) {
	params := url.Values{
		"enrollment_state": {"active"},
		"per_page":         {"100"},
		"include[]":        {"term"},
	}
	courses, err := getAll[Course](c.Client, c.BaseURL+"/api/v1/courses", params)
	if err != nil {
		return nil, fmt.Errorf("could not get courses: %w", err)
	}
	return courses, nil
}

// Returns all assignments of the given course, ordered by due date by the API.
// A course can hold more assignments than one page fits, so all pages are
// fetched.
func (c *Canvas) GetAssignments(course Course) ([]Assignment, error) {
	params := url.Values{
		"per_page":  {"100"},
		"include[]": {"submission"},
		"order_by":  {"due_at"},
	}
	endpoint := fmt.Sprintf("%s/api/v1/courses/%d/assignments", c.BaseURL, course.ID)
	assignments, err := getAll[Assignment](c.Client, endpoint, params)
	if err != nil {
		return nil, fmt.Errorf("could not get assignments for %q: %w", course.DisplayName(), err)
	}

	for i := range assignments {
		assignments[i].CourseName = course.DisplayName()
		if assignments[i].Name == "" {
			// the odd assignment comes back without a title
			assignments[i].Name = "Untitled"
		}
	}
	return assignments, nil
}

// Fetches the assignments of every chosen course into a single slice.
func (c *Canvas) CollectAssignments(courses []Course) ([]Assignment, error) {
	var assignments []Assignment
	for _, course := range courses {
		courseAssignments, err := c.GetAssignments(course)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, courseAssignments...)
	}
	return assignments, nil
}

// Fetches every page of a paginated Canvas collection. The query parameters
// only apply to the first request - the rel="next" URL carries its own.
func getAll[T any](client *http.Client, rawURL string, params url.Values) ([]T, error) {
	var all []T
	for rawURL != "" {
		requestURL := rawURL
		if len(params) > 0 {
			requestURL += "?" + params.Encode()
		}

		resp, err := client.Get(requestURL)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			return nil, fmt.Errorf("canvas returned %v for %v", resp.Status, rawURL)
		}

		var page []T
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("could not decode response of %v: %w", rawURL, err)
		}
		all = append(all, page...)

		rawURL = NextLink(resp.Header.Get("Link"))
		params = nil
	}
	return all, nil
}

// Returns the URL of the next page from an RFC 8288 Link header, or an empty
// string when the last page has been reached. Targets are read straight from
// their angle brackets, since Canvas bookmark cursors can put unencoded
// commas inside the URL.
func NextLink(header string) string {
	for header != "" {
		start := strings.Index(header, "<")
		if start < 0 {
			break
		}
		end := strings.Index(header[start:], ">")
		if end < 0 {
			break
		}
		target := header[start+1 : start+end]
		header = header[start+end+1:]

		params := header
		if next := strings.Index(header, "<"); next >= 0 {
			params = header[:next]
		}
		if strings.Contains(params, `rel="next"`) {
			return target
		}
	}
	return ""
}
