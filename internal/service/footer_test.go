package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFooterCounts_Segments(t *testing.T) {
	counts := FooterCounts{Black: 2, Green: 1}

	segs := counts.Segments(40)

	assert.Equal(t, Segment{Color: Green, Count: 1, Width: 13}, segs[0])
	assert.Equal(t, Segment{Color: Yellow, Count: 0, Width: 0}, segs[1])
	assert.Equal(t, Segment{Color: Red, Count: 0, Width: 0}, segs[2])
	assert.Equal(t, Segment{Color: Black, Count: 2, Width: 27}, segs[3])
}

func TestFooterCounts_SegmentsFillWidth(t *testing.T) {
	counts := FooterCounts{Black: 3, Red: 5, Yellow: 7, Green: 11}

	for _, width := range []int{1, 7, 26, 80, 133} {
		total := 0
		for _, s := range counts.Segments(width) {
			total += s.Width
		}
		assert.Equal(t, width, total, "width %d", width)
	}
}

func TestFooterCounts_SegmentsEmpty(t *testing.T) {
	segs := FooterCounts{}.Segments(10)
	assert.Equal(t, 10, segs[3].Width)
	assert.Equal(t, 0, segs[0].Width)
}

func TestFooter_Move(t *testing.T) {
	view := &recordingView{}
	f := NewFooter(3, 30, view)

	require.Len(t, view.draws, 1)
	assert.Equal(t, FooterCounts{Black: 3}, f.Counts())

	f.Move(Black, Yellow)
	f.Move(Yellow, Green)
	f.Move(Black, Red)

	assert.Equal(t, FooterCounts{Black: 1, Red: 1, Green: 1}, f.Counts())
	assert.Equal(t, 3, f.Counts().Total())
	assert.Len(t, view.draws, 4)
	assert.Equal(t, 10, view.draws[3][0].Width)
}

func TestFooter_MoveFromEmptyPanics(t *testing.T) {
	f := NewFooter(1, 10, nil)

	assert.PanicsWithValue(t,
		"footer: moving from empty bucket red to green (counts [1 0 0 0])",
		func() { f.Move(Red, Green) },
	)
}

func TestFooter_Resize(t *testing.T) {
	view := &recordingView{}
	f := NewFooter(2, 10, view)

	f.Resize(50)

	require.Len(t, view.draws, 2)
	assert.Equal(t, 50, view.draws[1][3].Width)
	assert.Equal(t, FooterCounts{Black: 2}, f.Counts())
}
