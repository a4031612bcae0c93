package logviewer

import (
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
)

// FilterOperation combines filter terms.
type FilterOperation int

const (
	FilterAnd FilterOperation = iota
	FilterOr
)

// Page is one log file shown as a tab.
type Page struct {
	Name string

	content   string
	lines     []string
	bookmarks []int

	terms    []string
	op       FilterOperation
	filtered []int
}

func newPage(name, content string) *Page {
	p := &Page{Name: name}
	p.setContent(content)
	return p
}

func (p *Page) setContent(content string) {
	p.content = content
	p.lines = strings.Split(strings.TrimRight(content, "\n"), "\n")
	p.bookmarks = slices.DeleteFunc(p.bookmarks, func(line int) bool { return line >= len(p.lines) })
	p.applyFilter()
}

// Content returns the raw log text.
func (p *Page) Content() string { return p.content }

// Size is the human readable size of the log.
func (p *Page) Size() string { return humanize.Bytes(uint64(len(p.content))) }

// LineCount is the number of lines before filtering.
func (p *Page) LineCount() int { return len(p.lines) }

// Filtered reports whether a filter hides lines.
func (p *Page) Filtered() bool { return p.filtered != nil }

// Lines returns the lines passing the filter.
func (p *Page) Lines() []string {
	if p.filtered == nil {
		return p.lines
	}
	out := make([]string, 0, len(p.filtered))
	for _, i := range p.filtered {
		out = append(out, p.lines[i])
	}
	return out
}

// SetFilter shows only lines matching terms, case-insensitively. No terms
// clears the filter.
func (p *Page) SetFilter(terms []string, op FilterOperation) {
	p.terms = nil
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			p.terms = append(p.terms, strings.ToLower(t))
		}
	}
	p.op = op
	p.applyFilter()
}

func (p *Page) applyFilter() {
	if len(p.terms) == 0 {
		p.filtered = nil
		return
	}
	p.filtered = []int{}
	for i, line := range p.lines {
		if p.matches(strings.ToLower(line)) {
			p.filtered = append(p.filtered, i)
		}
	}
}

func (p *Page) matches(line string) bool {
	contains := func(t string) bool { return strings.Contains(line, t) }
	if p.op == FilterOr {
		return slices.ContainsFunc(p.terms, contains)
	}
	for _, t := range p.terms {
		if !contains(t) {
			return false
		}
	}
	return true
}

// Find returns the first line at or after from (before, when backward)
// containing term, or -1. Lines are indices into the unfiltered log.
func (p *Page) Find(term string, from int, backward bool) int {
	if term == "" {
		return -1
	}
	term = strings.ToLower(term)
	step := 1
	if backward {
		step = -1
	}
	for i := from; i >= 0 && i < len(p.lines); i += step {
		if strings.Contains(strings.ToLower(p.lines[i]), term) {
			return i
		}
	}
	return -1
}

// Bookmarks returns the bookmarked lines in ascending order.
func (p *Page) Bookmarks() []int { return p.bookmarks }

// AddBookmark marks line. Duplicates and out of range lines are ignored.
func (p *Page) AddBookmark(line int) {
	if line < 0 || line >= len(p.lines) {
		return
	}
	i, found := slices.BinarySearch(p.bookmarks, line)
	if found {
		return
	}
	p.bookmarks = slices.Insert(p.bookmarks, i, line)
}

// DeleteBookmark unmarks line.
func (p *Page) DeleteBookmark(line int) {
	if i, found := slices.BinarySearch(p.bookmarks, line); found {
		p.bookmarks = slices.Delete(p.bookmarks, i, i+1)
	}
}

// DeleteAllBookmarks clears every bookmark.
func (p *Page) DeleteAllBookmarks() { p.bookmarks = nil }
