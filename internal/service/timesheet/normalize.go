package timesheet

import (
	"sort"
	"time"

	"github.com/daxhub/timeclock-go/internal/domain/timesheet"
	"github.com/daxhub/timeclock-go/internal/pkg/hours"
)

const secondsInHour = 3600

// Annotations attached to actions whose boundaries were synthesized.
const (
	annotationMidnightSplit = "(Midnight Split)"
	annotationPredictedEnd  = "(Midnight Split With Predicted End Date)"
)

// normalizer converts one employee's raw intervals into a chronological list
// of same-calendar-day actions in the employee's display timezone.
type normalizer struct {
	loc  *time.Location
	now  time.Time // current instant, already in loc
	fmtr hours.Formatter

	// autoInserted is latched when any boundary had to be synthesized.
	autoInserted bool
}

// normalize applies the boundary rules in order: recorded end on the same
// local day, recorded end past local midnight (split in two), end inferred
// from the next same-type interval, and finally open intervals closed at the
// current instant or at the end of their start day.
func (n *normalizer) normalize(intervals []timesheet.RawInterval) []timesheet.NormalizedAction {
	var actions []timesheet.NormalizedAction

	for i, iv := range intervals {
		start := iv.Start.In(n.loc)

		if iv.End != nil {
			end := iv.End.In(n.loc)
			if sameDay(start, end) {
				actions = append(actions, n.entry(iv, start, end, "", false, false, iv.TotalSeconds))
			} else {
				actions = append(actions,
					n.entry(iv, start, endOfDay(start), annotationMidnightSplit, false, true, nil),
					n.entry(iv, startOfDay(end), end, annotationMidnightSplit, true, false, nil))
				n.autoInserted = true
			}
			continue
		}

		// Open interval: the next interval of the same type marks where this
		// one must have ended.
		var inferred time.Time
		for j := i + 1; j < len(intervals); j++ {
			if intervals[j].Type == iv.Type {
				inferred = intervals[j].Start.In(n.loc)
				break
			}
		}

		switch {
		case !inferred.IsZero() && sameDay(start, inferred):
			actions = append(actions, n.entry(iv, start, inferred, "", false, true, iv.TotalSeconds))
			n.autoInserted = true

		case !inferred.IsZero():
			actions = append(actions,
				n.entry(iv, start, endOfDay(start), annotationMidnightSplit, false, true, nil),
				n.entry(iv, startOfDay(inferred), inferred, annotationMidnightSplit, true, true, nil))
			n.autoInserted = true

		case sameDay(start, n.now):
			// Still-open shift from today: close it at the current instant
			// without flagging the report.
			actions = append(actions, n.entry(iv, start, n.now, "", false, true, nil))

		default:
			// Stale open shift from an earlier day: close the start day and
			// predict a second action running up to the current instant.
			actions = append(actions,
				n.entry(iv, start, endOfDay(start), annotationPredictedEnd, false, true, nil),
				n.entry(iv, startOfDay(n.now), n.now, annotationPredictedEnd, true, true, nil))
			n.autoInserted = true
		}
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Start.Before(actions[j].Start)
	})
	return actions
}

func (n *normalizer) entry(iv timesheet.RawInterval, start, end time.Time, annotation string, tempStart, tempEnd bool, totalSeconds *float64) timesheet.NormalizedAction {
	hrs := end.Sub(start).Hours()
	if totalSeconds != nil && *totalSeconds > 0 {
		// The source already computed this duration; trust it over End-Start.
		hrs = *totalSeconds / secondsInHour
	}
	total := n.fmtr.ActionTotal(hrs)

	return timesheet.NormalizedAction{
		SourceID:     iv.ID,
		Type:         iv.Type,
		Start:        start,
		End:          end,
		FirstAction:  startLabel(iv.Type) + " " + start.Format("03:04 PM"),
		SecondAction: endLabel(iv.Type) + " " + end.Format("03:04 PM"),
		Comment:      iv.Comment,
		Annotation:   annotation,
		TempStart:    tempStart,
		TempEnd:      tempEnd,
		Total:        total,
		StrTotal:     n.fmtr.String(total),
	}
}

func startLabel(t timesheet.ActionType) string {
	if t == timesheet.ActionBreak {
		return "Start Break"
	}
	return "In"
}

func endLabel(t timesheet.ActionType) string {
	if t == timesheet.ActionBreak {
		return "End Break"
	}
	return "Out"
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
