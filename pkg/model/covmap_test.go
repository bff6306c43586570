package model

import (
	"strings"
	"testing"
)

func TestCoverageMapWidth(t *testing.T) {
	// Whatever the span, the bar is always the same width, broken or not.
	spans := [][3]int{
		{1, 1, 1},
		{5, 35, 861},
		{1, 861, 861},
		{400, 500, 861},
		{0, 0, 10},
	}
	for _, s := range spans {
		for _, broken := range []bool{false, true} {
			m := CoverageMap(s[0], s[1], s[2], broken)
			if len(m) != mapWidth {
				t.Errorf("CoverageMap(%d, %d, %d, %v) = %q, width %d", s[0], s[1], s[2], broken, m, len(m))
			}
		}
	}
}

func TestCoverageMapSmallSpan(t *testing.T) {
	// A 30 base hit near the start of an 861 base reference touches the
	// first cell only.
	if got, want := CoverageMap(5, 35, 861, false), "=.............."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCoverageMapFullSpan(t *testing.T) {
	got := CoverageMap(1, 861, 861, false)
	if strings.ContainsRune(got, rune(uncoveredGlyph)) {
		t.Errorf("full span left uncovered cells: %q", got)
	}
}

func TestCoverageMapMiddleSpan(t *testing.T) {
	got := CoverageMap(400, 500, 861, false)
	if strings.HasPrefix(got, "=") || strings.HasSuffix(got, "=") {
		t.Errorf("middle span reached a bar end: %q", got)
	}
	if !strings.Contains(got, "=") {
		t.Errorf("middle span drew nothing: %q", got)
	}
}

func TestCoverageMapGrowsWithSpan(t *testing.T) {
	last := -1
	for end := 1; end <= 861; end += 20 {
		covered := strings.Count(CoverageMap(1, end, 861, false), "=")
		if covered < last {
			t.Fatalf("covered cells shrank at end=%d: %d < %d", end, covered, last)
		}
		last = covered
	}
}

func TestCoverageMapBroken(t *testing.T) {
	got := CoverageMap(1, 861, 861, true)

	if strings.Count(got, string(breakGlyph)) != 1 {
		t.Fatalf("broken bar needs exactly one break: %q", got)
	}
	// One cell gives way to the break marker after the middle cell.
	if idx := strings.IndexByte(got, breakGlyph); idx != mapWidth/2+1 {
		t.Errorf("break sits at %d in %q", idx, got)
	}
	if strings.ContainsRune(got, rune(uncoveredGlyph)) {
		t.Errorf("full span left uncovered cells: %q", got)
	}
}
