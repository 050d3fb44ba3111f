// Package parser converts schedule text (structured key-value lines or the
// legacy arrow grammar) into day plans. Input is frequently AI-generated, so
// unparsable lines are skipped rather than failing the whole parse.
package parser

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/planner"
	"github.com/julianstephens/studylit/internal/timeutil"
)

var clock12Re = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])?$`)

// ParseSchedule parses free text describing one or more days of blocks. The
// structured grammar is tried across all lines first; the legacy grammar is
// used only when no structured line matched at all. Plans are returned sorted
// by date with blocks sorted, indexed, and stats computed.
func ParseSchedule(text, referenceDate string) []models.DayPlan {
	lines := strings.Split(text, "\n")

	groups := parseStructured(lines, referenceDate)
	if len(groups) == 0 {
		groups = parseLegacy(lines, referenceDate)
	}
	if len(groups) == 0 {
		return nil
	}

	plans := make([]models.DayPlan, 0, len(groups))
	for date, blocks := range groups {
		plan := models.DayPlan{Date: date, Blocks: blocks}
		for i := range plan.Blocks {
			plan.Blocks[i].Date = date
		}
		planner.Recalculate(&plan)
		plans = append(plans, plan)
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Date < plans[j].Date })
	return plans
}

// parseClock12 converts an "h:mm" string with an optional AM/PM suffix to
// minutes from midnight. Returns -1 on malformed input.
func parseClock12(s string) int {
	m := clock12Re.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return -1
	}
	hour, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	if min > 59 {
		return -1
	}
	switch strings.ToLower(m[3]) {
	case "pm":
		if hour != 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}
	if hour > 23 {
		return -1
	}
	return hour*60 + min
}

// span computes start/end clock strings and a duration for a pair of minute
// offsets. An end before its start is assumed to cross midnight: the extra day
// counts toward the duration only, never toward reassigning the date.
func span(startMin, endMin int) (start, end string, duration int) {
	duration = endMin - startMin
	if duration < 0 {
		duration += 24 * 60
	}
	return timeutil.FormatClock(startMin), timeutil.FormatClock(endMin), duration
}
