package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/timeutil"
)

var (
	structuredRe = regexp.MustCompile(
		`^\s*(?:DATE=(\d{4}-\d{2}-\d{2});\s*)?DAY=(\d+);\s*BLOCK=(\d+);\s*` +
			`START_TIME="([^"]+)";\s*END_TIME="([^"]+)";\s*TYPE=(VIDEO|REVISION|BREAK);\s*` +
			`VIDEO_TITLE="([^"]*)";\s*VIDEO_MIN_START=(\d+);\s*VIDEO_MIN_END=(\d+);?` +
			`(?:\s*SPEED=(\d+(?:\.\d+)?)x)?`)

	breakCommentRe = regexp.MustCompile(
		`^#\s*(.*?)\s*(\d{1,2}:\d{2}\s*(?:[AaPp][Mm])?)\s*[–—-]\s*(\d{1,2}:\d{2}\s*(?:[AaPp][Mm])?)\s*$`)
)

// parseStructured scans all lines for the structured key-value grammar,
// grouping blocks by resolved date. Break-comment lines attach to the group of
// the nearest structured line (preceding, or following when they lead the
// text). Returns nil when no structured line matched.
func parseStructured(lines []string, referenceDate string) map[string][]models.Block {
	groups := make(map[string][]models.Block)
	currentDate := ""
	var orphanBreaks []models.Block

	for _, line := range lines {
		if m := structuredRe.FindStringSubmatch(line); m != nil {
			date := m[1]
			if date == "" {
				dayIdx, _ := strconv.Atoi(m[2])
				resolved, err := timeutil.AddDays(referenceDate, dayIdx-1)
				if err != nil {
					continue
				}
				date = resolved
			}

			startMin := parseClock12(m[4])
			endMin := parseClock12(m[5])
			if startMin < 0 || endMin < 0 {
				continue
			}
			start, end, duration := span(startMin, endMin)

			blockType := models.BlockTypeMixed
			switch m[6] {
			case "VIDEO":
				blockType = models.BlockTypeVideo
			case "REVISION":
				blockType = models.BlockTypeRevisionFA
			case "BREAK":
				blockType = models.BlockTypeBreak
			}

			minStart, _ := strconv.Atoi(m[8])
			minEnd, _ := strconv.Atoi(m[9])
			speed := 0.0
			if m[10] != "" {
				speed, _ = strconv.ParseFloat(m[10], 64)
			}

			block := models.Block{
				ID:                     uuid.NewString(),
				Date:                   date,
				PlannedStartTime:       start,
				PlannedEndTime:         end,
				PlannedDurationMinutes: duration,
				Type:                   blockType,
				Title:                  m[7],
				Status:                 models.BlockNotStarted,
			}
			if blockType == models.BlockTypeVideo {
				block.Tasks = []models.Task{{
					Type:   models.TaskTypeVideo,
					Detail: m[7],
					Meta: models.TaskMeta{
						VideoMinStart: minStart,
						VideoMinEnd:   minEnd,
						Speed:         speed,
					},
				}}
			}

			groups[date] = append(groups[date], block)
			if currentDate == "" && len(orphanBreaks) > 0 {
				groups[date] = append(groups[date], redate(orphanBreaks, date)...)
				orphanBreaks = nil
			}
			currentDate = date
			continue
		}

		if b, ok := parseBreakComment(line); ok {
			if currentDate != "" {
				b.Date = currentDate
				groups[currentDate] = append(groups[currentDate], b)
			} else {
				orphanBreaks = append(orphanBreaks, b)
			}
		}
	}

	if len(groups) == 0 {
		return nil
	}
	return groups
}

// parseBreakComment parses a "# Label HH:MM – HH:MM" line. The separator may
// be an em-dash, en-dash, or hyphen, and times may carry AM/PM suffixes.
func parseBreakComment(line string) (models.Block, bool) {
	m := breakCommentRe.FindStringSubmatch(line)
	if m == nil {
		return models.Block{}, false
	}
	startMin := parseClock12(m[2])
	endMin := parseClock12(m[3])
	if startMin < 0 || endMin < 0 {
		return models.Block{}, false
	}
	start, end, duration := span(startMin, endMin)

	label := strings.TrimSpace(m[1])
	if label == "" {
		label = "Break"
	}
	return models.Block{
		ID:                     uuid.NewString(),
		PlannedStartTime:       start,
		PlannedEndTime:         end,
		PlannedDurationMinutes: duration,
		Type:                   models.BlockTypeBreak,
		Title:                  label,
		Status:                 models.BlockNotStarted,
	}, true
}

func redate(blocks []models.Block, date string) []models.Block {
	for i := range blocks {
		blocks[i].Date = date
	}
	return blocks
}
