package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Returns the value of a required environment variable, or an error naming
// the missing variable.
func RequireEnv(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("missing required environment variable: %v", name)
	}
	return value, nil
}

// Reduces an HTML fragment to its text content with whitespace collapsed.
// Returns the input unchanged if it does not parse as HTML.
func HTMLToText(fragment string) string {
	if strings.TrimSpace(fragment) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return strings.TrimSpace(fragment)
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}
