package timesheet

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daxhub/timeclock-go/internal/domain/timesheet"
)

func at(hour, min int) time.Time {
	return time.Date(2026, time.August, 12, hour, min, 0, 0, time.UTC)
}

func TestDeriveEvents(t *testing.T) {
	t.Parallel()

	workEnd := at(17, 0)
	breakEnd := at(12, 30)
	intervals := []timesheet.RawInterval{
		{ID: uuid.New(), Type: timesheet.ActionWork, Start: at(9, 0), End: &workEnd},
		{ID: uuid.New(), Type: timesheet.ActionBreak, Start: at(12, 0), End: &breakEnd},
	}

	events := deriveEvents(intervals, time.UTC)

	require.Len(t, events, 4)
	assert.Equal(t, eventIn, events[0].kind)
	assert.Equal(t, eventBreakStart, events[1].kind)
	assert.Equal(t, eventBreakEnd, events[2].kind)
	assert.Equal(t, eventOut, events[3].kind)
}

func TestDeriveEvents_OpenIntervalHasNoEndEvent(t *testing.T) {
	t.Parallel()

	intervals := []timesheet.RawInterval{
		{ID: uuid.New(), Type: timesheet.ActionWork, Start: at(9, 0)},
	}

	events := deriveEvents(intervals, time.UTC)

	require.Len(t, events, 1)
	assert.Equal(t, eventIn, events[0].kind)
}

func TestValidateSequence_LegalDay(t *testing.T) {
	t.Parallel()

	events := []timeEvent{
		{kind: eventIn, at: at(9, 0)},
		{kind: eventBreakStart, at: at(12, 0)},
		{kind: eventBreakEnd, at: at(12, 30)},
		{kind: eventOut, at: at(17, 0)},
		{kind: eventIn, at: at(18, 0)},
		{kind: eventOut, at: at(20, 0)},
	}

	assert.Empty(t, validateSequence(events))
}

func TestValidateSequence_IllegalTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		events []timeEvent
		kind   string
	}{
		{
			name: "duplicate clock in",
			events: []timeEvent{
				{kind: eventIn, at: at(9, 0)},
				{kind: eventIn, at: at(10, 0)},
			},
			kind: timesheet.ErrKindDuplicateAction,
		},
		{
			name: "break started while clocked out",
			events: []timeEvent{
				{kind: eventIn, at: at(9, 0)},
				{kind: eventOut, at: at(10, 0)},
				{kind: eventBreakStart, at: at(11, 0)},
			},
			kind: timesheet.ErrKindBreakWithoutIn,
		},
		{
			name: "break ended without a start",
			events: []timeEvent{
				{kind: eventIn, at: at(9, 0)},
				{kind: eventBreakEnd, at: at(12, 30)},
			},
			kind: timesheet.ErrKindBreakEndNoStart,
		},
		{
			name: "clocked out during a break",
			events: []timeEvent{
				{kind: eventIn, at: at(9, 0)},
				{kind: eventBreakStart, at: at(12, 0)},
				{kind: eventOut, at: at(17, 0)},
			},
			kind: timesheet.ErrKindOutDuringBreak,
		},
		{
			name: "clocked in after a break end",
			events: []timeEvent{
				{kind: eventBreakStart, at: at(12, 0)},
				{kind: eventBreakEnd, at: at(12, 30)},
				{kind: eventIn, at: at(13, 0)},
			},
			kind: timesheet.ErrKindInWhileClockedIn,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			errs := validateSequence(tt.events)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.kind, errs[0].Kind)
		})
	}
}

func TestValidateSequence_ErrorCarriesPriorActionContext(t *testing.T) {
	t.Parallel()

	errs := validateSequence([]timeEvent{
		{kind: eventIn, at: at(9, 0)},
		{kind: eventIn, at: at(10, 0)},
	})

	require.Len(t, errs, 1)
	assert.Equal(t, "In 09:00 AM", errs[0].PriorAction)
	assert.Equal(t, "20260812", errs[0].LinkDate)
	assert.Equal(t, "Aug 12, 2026 09:00 AM", errs[0].Timestamp)
}

func TestValidateSequence_EmptyAndSingle(t *testing.T) {
	t.Parallel()

	assert.Empty(t, validateSequence(nil))
	assert.Empty(t, validateSequence([]timeEvent{{kind: eventIn, at: at(9, 0)}}))
}
