// SPDX-License-Identifier: MIT

package toll

import "time"

const (
	// WindowLength is the span of one toll window in seconds (15 minutes).
	WindowLength = 15 * secondsPerMinute

	// WindowsPerDay is the number of windows starting on one day.
	WindowsPerDay = secondsPerDay / WindowLength

	// WindowsPerWeek is the number of windows per edge per week (672).
	WindowsPerWeek = 7 * WindowsPerDay
)

// WeekOrder lists the days of the canonical week, Monday first.
var WeekOrder = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// Window is one contiguous interval of the canonical week.
type Window struct {
	StartDay time.Weekday
	Start    Clock
	EndDay   time.Weekday
	End      Clock
}

// week is the precomputed canonical week, shared read-only.
var week = buildWeek()

// Week returns the 672 windows covering Monday 00:00:00 through Sunday
// 23:59:59. Each window starts where the previous one ended; the final
// window ends at Sunday 23:59:59 instead of rolling over into Monday.
// The slice is a fresh copy.
func Week() []Window {
	return append([]Window(nil), week[:]...)
}

// buildWeek enumerates (day, slot) pairs; no datetime stepping is involved.
func buildWeek() [WindowsPerWeek]Window {
	var w [WindowsPerWeek]Window
	for d, day := range WeekOrder {
		for slot := 0; slot < WindowsPerDay; slot++ {
			k := d*WindowsPerDay + slot
			w[k] = Window{
				StartDay: day,
				Start:    Clock(slot * WindowLength),
				EndDay:   day,
				End:      Clock((slot + 1) * WindowLength),
			}
			if slot == WindowsPerDay-1 { // 23:45 window ends at midnight of next day
				w[k].End = 0
				if d+1 < len(WeekOrder) {
					w[k].EndDay = WeekOrder[d+1]
				} else {
					w[k].End = EndOfDay
				}
			}
		}
	}

	return w
}
