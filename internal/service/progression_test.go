package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flashdeck/flashdeck/internal/domain/entities"
)

func TestFirstStudyType(t *testing.T) {
	st, ok := FirstStudyType(matchingOnly)
	assert.True(t, ok)
	assert.Equal(t, Matching0, st)

	st, ok = FirstStudyType(textOnly)
	assert.True(t, ok)
	assert.Equal(t, Text0, st)

	st, ok = FirstStudyType(bothModes)
	assert.True(t, ok)
	assert.Equal(t, Matching0, st)

	_, ok = FirstStudyType(entities.RecallSettings{})
	assert.False(t, ok)
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name      string
		from      StudyType
		rs        entities.RecallSettings
		want      StudyType
		wantColor FooterColor
		wantOK    bool
	}{
		{name: "matching first", from: Matching0, rs: matchingOnly, want: Matching1, wantColor: Yellow, wantOK: true},
		{name: "matching repeat", from: Matching1, rs: matchingOnly, wantColor: Green},
		{name: "text first", from: Text0, rs: textOnly, want: Text1, wantColor: Yellow, wantOK: true},
		{name: "text repeat", from: Text1, rs: textOnly, wantColor: Green},
		{name: "both matching", from: Matching0, rs: bothModes, want: Text0, wantColor: Red, wantOK: true},
		{name: "both text", from: Text0, rs: bothModes, want: Text1, wantColor: Yellow, wantOK: true},
		{name: "both repeat", from: Text1, rs: bothModes, wantColor: Green},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, color, ok := Progress(tt.from, tt.rs)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantColor, color)
			if tt.wantOK {
				assert.Equal(t, tt.want, next)
			}
		})
	}
}

func TestRegress(t *testing.T) {
	tests := []struct {
		name      string
		from      StudyType
		rs        entities.RecallSettings
		want      StudyType
		wantColor FooterColor
		wantOK    bool
	}{
		{name: "matching entry", from: Matching0, rs: matchingOnly},
		{name: "matching repeat", from: Matching1, rs: matchingOnly, want: Matching0, wantColor: Black, wantOK: true},
		{name: "text entry", from: Text0, rs: textOnly},
		{name: "text repeat", from: Text1, rs: textOnly, want: Text0, wantColor: Black, wantOK: true},
		{name: "both entry", from: Matching0, rs: bothModes},
		{name: "both text", from: Text0, rs: bothModes, want: Matching0, wantColor: Black, wantOK: true},
		{name: "both repeat", from: Text1, rs: bothModes, want: Text0, wantColor: Red, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev, color, ok := Regress(tt.from, tt.rs)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, prev)
				assert.Equal(t, tt.wantColor, color)
			}
		})
	}
}

func TestProgress_CallsToMaster(t *testing.T) {
	tests := []struct {
		name string
		rs   entities.RecallSettings
		want int
	}{
		{name: "matching", rs: matchingOnly, want: 2},
		{name: "text", rs: textOnly, want: 2},
		{name: "both", rs: bothModes, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _ := FirstStudyType(tt.rs)
			calls := 0
			for {
				calls++
				next, _, ok := Progress(st, tt.rs)
				if !ok {
					break
				}
				assert.True(t, st.Less(next), "%s then %s", st, next)
				st = next
			}
			assert.Equal(t, tt.want, calls)
		})
	}
}

func TestProgress_RejectsStageOutsideSettings(t *testing.T) {
	assert.PanicsWithValue(t,
		"bad progression: text(false) with matching = true and text = false",
		func() { Progress(Text0, matchingOnly) },
	)
	assert.Panics(t, func() { Regress(Matching1, bothModes) })
	assert.Panics(t, func() { ColorOf(Matching0, entities.RecallSettings{}) })
}

func TestColorOf(t *testing.T) {
	assert.Equal(t, Black, ColorOf(Matching0, bothModes))
	assert.Equal(t, Red, ColorOf(Text0, bothModes))
	assert.Equal(t, Yellow, ColorOf(Text1, bothModes))
	assert.Equal(t, Black, ColorOf(Text0, textOnly))
}

func TestStudyType_Less(t *testing.T) {
	assert.True(t, Matching0.Less(Matching1))
	assert.True(t, Matching1.Less(Text0))
	assert.True(t, Text0.Less(Text1))
	assert.False(t, Text1.Less(Text0))
	assert.False(t, Text0.Less(Text0))
}
