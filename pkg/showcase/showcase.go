// Package showcase puts the containers and the algorithms of the module on display.
//
// Every demonstration produces a Section: the lines describing the content,
// followed by a sentence on when the shown container or algorithm is the right choice.
package showcase

import (
	"fmt"
	"io"
	"slices"
)

// Section is one demonstration of the showcase.
type Section struct {
	// Title names the section in logs and tests, it is not part of the written output.
	Title     string
	Body      []string
	Advice    string
	Reference string
}

// Lines returns the printed form of the section.
func (sec Section) Lines() []string {
	lines := slices.Concat(sec.Body, []string{sec.Advice})
	if sec.Reference != "" {
		lines = append(lines, "Further reading: "+sec.Reference)
	}
	return lines
}

// sectionSeparator follows every section in the output.
const sectionSeparator = "\n\n"

// Write prints the sections in order.
func Write(w io.Writer, sections []Section) error {
	for _, sec := range sections {
		for _, line := range sec.Lines() {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, sectionSeparator); err != nil {
			return err
		}
	}
	return nil
}

// Numbers returns the dataset of the slice demonstration and the algorithms.
// Every call returns a fresh copy.
func Numbers() []int {
	return []int{5, 2, 8, 4, 1}
}

func elements(label, rendered string) string {
	return fmt.Sprintf("%s elements: %s", label, rendered)
}
