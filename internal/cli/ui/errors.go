package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// NotFound prints a standardized "not found" message with suggestions and
// a help command, e.g. when an element name is misspelled.
func NotFound(w io.Writer, what, name string, suggestions []string, helpCommand string) {
	header := color.New(color.FgRed, color.Bold)
	header.Fprintf(w, "%s not found: %s\n", what, name)

	if len(suggestions) > 0 {
		fmt.Fprintf(w, "\n  Did you mean: %s?\n", strings.Join(suggestions, ", "))
	}
	if helpCommand != "" {
		fmt.Fprintf(w, "\n  %s %s\n", color.CyanString("->"), helpCommand)
	}
}

// Suggest returns up to three known names close to the given one, by
// shared prefix length.
func Suggest(name string, known []string) []string {
	type scored struct {
		name  string
		score int
	}
	var candidates []scored
	for _, k := range known {
		if s := prefixLen(strings.ToLower(name), strings.ToLower(k)); s > 0 {
			candidates = append(candidates, scored{k, s})
		}
	}
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			if candidates[j].score > candidates[i].score {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			}
		}
	}
	var out []string
	for i := 0; i < len(candidates) && i < 3; i++ {
		out = append(out, candidates[i].name)
	}
	return out
}

func prefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
