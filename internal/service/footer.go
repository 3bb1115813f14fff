package service

import (
	"fmt"
)

// FooterColor is the coarse mastery bucket shown in the footer bar.
type FooterColor int

const (
	Black  FooterColor = iota // unseen
	Red                       // failed and demoted, or halfway through both modes
	Yellow                    // one repetition pending confirmation
	Green                     // mastered
)

func (c FooterColor) String() string {
	switch c {
	case Black:
		return "black"
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	default:
		return fmt.Sprintf("FooterColor(%d)", int(c))
	}
}

// FooterCounts holds the number of items in each bucket, indexed by FooterColor.
type FooterCounts [4]int

// Total returns the sum of all buckets.
func (c FooterCounts) Total() int {
	return c[Black] + c[Red] + c[Yellow] + c[Green]
}

// Segment is one colored run of the footer bar.
type Segment struct {
	Color FooterColor
	Count int
	Width int
}

// Segments splits width proportionally across buckets in Green, Yellow, Red, Black
// order. Black takes whatever width the other segments leave.
func (c FooterCounts) Segments(width int) [4]Segment {
	total := c.Total()
	part := func(color FooterColor) int {
		if total == 0 || width <= 0 {
			return 0
		}
		return c[color] * width / total
	}

	green, yellow, red := part(Green), part(Yellow), part(Red)
	black := max(width-green-yellow-red, 0)

	return [4]Segment{
		{Color: Green, Count: c[Green], Width: green},
		{Color: Yellow, Count: c[Yellow], Width: yellow},
		{Color: Red, Count: c[Red], Width: red},
		{Color: Black, Count: c[Black], Width: black},
	}
}

// FooterView draws the aggregate progress bar.
type FooterView interface {
	DrawFooter(segments [4]Segment)
}

// Footer tracks how many study items sit in each bucket and redraws the bar on
// every change.
type Footer struct {
	counts FooterCounts
	width  int
	view   FooterView
}

// NewFooter creates a footer with count unseen items and renders it.
func NewFooter(count int, width int, view FooterView) *Footer {
	f := &Footer{
		width: width,
		view:  view,
	}
	f.counts[Black] = count
	f.render()
	return f
}

// Move moves one item from one bucket to another.
func (f *Footer) Move(from, to FooterColor) {
	if f.counts[from] <= 0 {
		panic(fmt.Sprintf("footer: moving from empty bucket %s to %s (counts %v)", from, to, f.counts))
	}
	f.counts[from]--
	f.counts[to]++
	f.render()
}

// Resize updates the bar width. Counts are unaffected.
func (f *Footer) Resize(width int) {
	f.width = width
	f.render()
}

// Counts returns a copy of the bucket counts.
func (f *Footer) Counts() FooterCounts {
	return f.counts
}

func (f *Footer) render() {
	if f.view == nil {
		return
	}
	f.view.DrawFooter(f.counts.Segments(f.width))
}
