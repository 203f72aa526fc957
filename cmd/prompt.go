/*
Copyright © 2024 Mattis Møl Kristensen <mattismoel@gmail.com>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattismoel/canvigo/pkg/canvigo"
)

// Reported when the authenticated user has no active courses at all, as
// opposed to the user deselecting everything.
var errNoCourses = errors.New("no courses found")

const (
	exportAll    = "All assignments"
	exportSelect = "Select assignments"
)

// Presents a checkbox list of course names and returns the chosen courses.
func promptCourses(courses []canvigo.Course) ([]canvigo.Course, error) {
	options := make([]string, 0, len(courses))
	for _, course := range courses {
		options = append(options, course.DisplayName())
	}

	var indices []int
	prompt := &survey.MultiSelect{
		Message: "Select courses to include in calendar",
		Options: options,
	}
	err := survey.AskOne(prompt, &indices)
	if err != nil {
		return nil, err
	}

	selected := make([]canvigo.Course, 0, len(indices))
	for _, i := range indices {
		selected = append(selected, courses[i])
	}
	return selected, nil
}

// Asks whether all assignments should be exported or only a chosen subset.
// Selecting a subset is useful when only specific items matter, like an exam.
func promptExportMode() (string, error) {
	mode := exportAll
	prompt := &survey.Select{
		Message: "Export options",
		Options: []string{exportAll, exportSelect},
	}
	err := survey.AskOne(prompt, &mode)
	if err != nil {
		return "", err
	}
	return mode, nil
}

// Presents a checkbox list of assignments and returns the chosen ones.
func promptAssignments(assignments []canvigo.Assignment) ([]canvigo.Assignment, error) {
	if len(assignments) == 0 {
		return nil, nil
	}

	options := make([]string, 0, len(assignments))
	for _, assignment := range assignments {
		options = append(options, assignment.Label())
	}

	var indices []int
	prompt := &survey.MultiSelect{
		Message: "Choose assignments to export",
		Options: options,
	}
	err := survey.AskOne(prompt, &indices)
	if err != nil {
		return nil, err
	}

	selected := make([]canvigo.Assignment, 0, len(indices))
	for _, i := range indices {
		selected = append(selected, assignments[i])
	}
	return selected, nil
}

// Runs the shared selection pipeline of the export and push commands: fetch
// courses, prompt, fetch assignments, print them, and optionally narrow the
// set down. Returns nil when the user selected nothing and errNoCourses when
// there was nothing to select from.
func selectAssignments(c *canvigo.Canvas) ([]canvigo.Assignment, error) {
	courses, err := c.GetCourses()
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, errNoCourses
	}

	selectedCourses, err := promptCourses(courses)
	if err != nil {
		return nil, err
	}
	if len(selectedCourses) == 0 {
		return nil, nil
	}

	assignments, err := c.CollectAssignments(selectedCourses)
	if err != nil {
		return nil, err
	}
	canvigo.SortByDueDate(assignments)

	fmt.Println()
	fmt.Println(canvigo.FormatAssignments(assignments))

	mode, err := promptExportMode()
	if err != nil {
		return nil, err
	}
	if mode == exportSelect {
		assignments, err = promptAssignments(assignments)
		if err != nil {
			return nil, err
		}
	}
	return assignments, nil
}
