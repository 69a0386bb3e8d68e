package attendance

import (
	"sort"
	"time"
)

// SortPunches returns a copy of punches ordered by timestamp ascending.
// The input slice is left untouched.
func SortPunches(punches []Punch) []Punch {
	sorted := make([]Punch, len(punches))
	copy(sorted, punches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// CalculateWorkMinutes pairs each OUT with the nearest preceding unmatched IN
// and sums the floored whole-minute gaps. An OUT with no pending IN and a
// trailing unmatched IN both contribute zero. Because the sequence is sorted
// first, the result is independent of input order.
func CalculateWorkMinutes(punches []Punch) int {
	sorted := SortPunches(punches)

	total := 0
	var pendingIn *time.Time
	for _, p := range sorted {
		switch p.Type {
		case PunchIn:
			ts := p.Timestamp
			pendingIn = &ts
		case PunchOut:
			if pendingIn != nil {
				total += int(p.Timestamp.Sub(*pendingIn).Minutes())
				pendingIn = nil
			}
		}
	}
	return total
}

// HasMissedPunch reports whether the day's sequence is incomplete: no punches
// at all, an OUT first, an IN last, or two adjacent punches of the same type.
// A complete day alternates IN/OUT starting with IN and ending with OUT.
func HasMissedPunch(punches []Punch) bool {
	if len(punches) == 0 {
		return true
	}
	sorted := SortPunches(punches)

	if sorted[0].Type == PunchOut {
		return true
	}
	if sorted[len(sorted)-1].Type == PunchIn {
		return true
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Type == sorted[i-1].Type {
			return true
		}
	}
	return false
}

// ApplyFirstLast folds a new punch into an existing sequence under the
// FIRST_LAST policy: the day keeps at most one IN (the earliest) and one OUT
// (the latest submitted).
func ApplyFirstLast(existing []Punch, incoming Punch) []Punch {
	var ins, outs []Punch
	for _, p := range existing {
		if p.Type == PunchIn {
			ins = append(ins, p)
		} else {
			outs = append(outs, p)
		}
	}

	var result []Punch
	switch incoming.Type {
	case PunchIn:
		keep := incoming
		if len(ins) > 0 {
			keep = earliest(ins)
		}
		result = append(result, keep)
		result = append(result, outs...)
	case PunchOut:
		result = append(result, ins...)
		result = append(result, incoming)
	}
	return result
}

func earliest(punches []Punch) Punch {
	min := punches[0]
	for _, p := range punches[1:] {
		if p.Timestamp.Before(min.Timestamp) {
			min = p
		}
	}
	return min
}
