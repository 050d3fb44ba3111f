package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/timeutil"
)

var (
	legacyHeaderRe = regexp.MustCompile(`(?i)^\s*DAY\s*-?\s*(\d+)\s*$`)
	legacyLineRe   = regexp.MustCompile(
		`^\s*(\d{1,2}:\d{2}\s*(?:[AaPp][Mm])?)\s*-\s*(\d{1,2}:\d{2}\s*(?:[AaPp][Mm])?)\s*->\s*(\S+)(?:\s+(.*?))?\s*(?:\((\d+)\s*-\s*(\d+)\))?\s*$`)
)

// parseLegacy handles the older "HH:MM - HH:MM -> Action Detail (start-end)"
// grammar. "DAY n" header lines advance the day offset: DAY 1 is the reference
// date itself. Lines before any header land on the reference date.
func parseLegacy(lines []string, referenceDate string) map[string][]models.Block {
	groups := make(map[string][]models.Block)
	currentDate := referenceDate

	for _, line := range lines {
		if m := legacyHeaderRe.FindStringSubmatch(line); m != nil {
			dayIdx, _ := strconv.Atoi(m[1])
			resolved, err := timeutil.AddDays(referenceDate, dayIdx-1)
			if err != nil {
				continue
			}
			currentDate = resolved
			continue
		}

		m := legacyLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		startMin := parseClock12(m[1])
		endMin := parseClock12(m[2])
		if startMin < 0 || endMin < 0 {
			continue
		}
		start, end, duration := span(startMin, endMin)

		action := m[3]
		detail := strings.TrimSpace(m[4])
		title := action
		if detail != "" {
			title = action + " " + detail
		}

		block := models.Block{
			ID:                     uuid.NewString(),
			Date:                   currentDate,
			PlannedStartTime:       start,
			PlannedEndTime:         end,
			PlannedDurationMinutes: duration,
			Type:                   legacyBlockType(action),
			Title:                  title,
			Status:                 models.BlockNotStarted,
		}

		if m[5] != "" && m[6] != "" {
			videoStart, _ := strconv.Atoi(m[5])
			videoEnd, _ := strconv.Atoi(m[6])
			block.Tasks = []models.Task{{
				Type:   models.TaskTypeVideo,
				Detail: detail,
				Meta: models.TaskMeta{
					VideoMinStart: videoStart,
					VideoMinEnd:   videoEnd,
					Speed:         inferSpeed(videoEnd-videoStart, duration),
				},
			}}
		}

		groups[currentDate] = append(groups[currentDate], block)
	}

	if len(groups) == 0 {
		return nil
	}
	return groups
}

func legacyBlockType(action string) models.BlockType {
	a := strings.ToLower(action)
	switch {
	case strings.Contains(a, "watch"):
		return models.BlockTypeVideo
	case strings.Contains(a, "revise"), strings.Contains(a, "review"):
		return models.BlockTypeRevisionFA
	default:
		return models.BlockTypeMixed
	}
}

// inferSpeed derives a playback speed from the ratio of video-content minutes
// to wall-clock minutes, snapped to quarter-speed granularity. Returns 0 when
// either duration is non-positive.
func inferSpeed(videoMinutes, wallMinutes int) float64 {
	if videoMinutes <= 0 || wallMinutes <= 0 {
		return 0
	}
	return math.Round(float64(videoMinutes)/float64(wallMinutes)*4) / 4
}
