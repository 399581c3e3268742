package timesheet

import (
	"sort"
	"time"

	"github.com/daxhub/timeclock-go/internal/domain/timesheet"
)

// eventKind is one discrete boundary of a raw interval.
type eventKind int

const (
	eventIn eventKind = iota
	eventOut
	eventBreakStart
	eventBreakEnd
)

func (k eventKind) label() string {
	switch k {
	case eventIn:
		return "In"
	case eventOut:
		return "Out"
	case eventBreakStart:
		return "Begin Break"
	case eventBreakEnd:
		return "End Break"
	}
	return "Error"
}

type timeEvent struct {
	kind eventKind
	at   time.Time
}

// deriveEvents flattens intervals into the discrete clock events the sequence
// rules are written against: a work interval contributes a clock-in and, when
// closed, a clock-out; a break interval a break-start and break-end. Events
// are returned in chronological order in the employee's display timezone.
func deriveEvents(intervals []timesheet.RawInterval, loc *time.Location) []timeEvent {
	var events []timeEvent
	for _, iv := range intervals {
		startKind, endKind := eventIn, eventOut
		if iv.Type == timesheet.ActionBreak {
			startKind, endKind = eventBreakStart, eventBreakEnd
		}
		events = append(events, timeEvent{kind: startKind, at: iv.Start.In(loc)})
		if iv.End != nil {
			events = append(events, timeEvent{kind: endKind, at: iv.End.In(loc)})
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].at.Before(events[j].at)
	})
	return events
}

// validateSequence walks one employee's chronological event stream and flags
// every illegal transition. The legal pairs are in→(break-start|out),
// break-start→break-end, break-end→out and out→in. Findings are diagnostics;
// the caller still aggregates the employee's hours.
func validateSequence(events []timeEvent) []timesheet.SequenceError {
	var errs []timesheet.SequenceError

	record := func(kind string, prior timeEvent) {
		errs = append(errs, timesheet.SequenceError{
			Kind:        kind,
			PriorAction: prior.kind.label() + " " + prior.at.Format("03:04 PM"),
			LinkDate:    prior.at.Format("20060102"),
			Timestamp:   prior.at.Format("Jan 02, 2006 03:04 PM"),
		})
	}

	for i := 1; i < len(events); i++ {
		prev, cur := events[i-1], events[i]
		switch {
		case cur.kind == prev.kind:
			record(timesheet.ErrKindDuplicateAction, prev)
		case cur.kind == eventBreakStart && prev.kind != eventIn:
			record(timesheet.ErrKindBreakWithoutIn, prev)
		case cur.kind == eventBreakEnd && prev.kind != eventBreakStart:
			record(timesheet.ErrKindBreakEndNoStart, prev)
		case cur.kind == eventOut && prev.kind == eventBreakStart:
			record(timesheet.ErrKindOutDuringBreak, prev)
		case cur.kind == eventIn && prev.kind != eventOut:
			record(timesheet.ErrKindInWhileClockedIn, prev)
		}
	}
	return errs
}
