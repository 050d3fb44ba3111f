// Package generator turns a day's high-level study plan (videos, revision
// pages, practice targets, breaks) into an ordered list of fixed-duration
// blocks.
package generator

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/internal/timeutil"
)

// chunk is one queued unit of content waiting for a time slot.
type chunk struct {
	blockType   models.BlockType
	title       string
	description string
	tasks       []models.Task
}

// Generate produces the ordered block list for a plan. Content is queued per
// source, video and FA-revision chunks are interleaved strictly alternately,
// practice chunks follow, and configured breaks pre-empt content whenever the
// cursor's next step window reaches them.
func Generate(plan models.DayPlan, blockMinutes int) []models.Block {
	if blockMinutes <= 0 {
		blockMinutes = constants.DefaultBlockMin
	}

	videoChunks := buildVideoChunks(plan.Videos, blockMinutes)
	faChunks := buildRevisionChunks(plan.FAPages, len(videoChunks))
	queue := interleave(videoChunks, faChunks)
	queue = append(queue, buildPracticeChunks(plan.QBank, models.BlockTypeQBank, blockMinutes)...)
	queue = append(queue, buildPracticeChunks(plan.Anki, models.BlockTypeAnki, blockMinutes)...)

	cursor := timeutil.ParseClock(plan.StartTimePlanned)
	if plan.StartTimeActual != "" {
		cursor = timeutil.ParseClock(plan.StartTimeActual)
	}

	breaks := append(models.BreakList{}, plan.Breaks...)
	sort.Slice(breaks, func(i, j int) bool {
		return timeutil.ParseClock(breaks[i].Start) < timeutil.ParseClock(breaks[j].Start)
	})
	usedBreaks := make([]bool, len(breaks))

	var blocks []models.Block
	for len(queue) > 0 && len(blocks) < constants.MaxGeneratedBlocks {
		// A break whose start falls inside the next step window takes the
		// slot. The break keeps its own configured span, not the step's.
		if idx := pendingBreak(breaks, usedBreaks, cursor, blockMinutes); idx >= 0 {
			blocks = append(blocks, breakBlock(plan.Date, breaks[idx]))
			usedBreaks[idx] = true
			cursor = timeutil.ParseClock(breaks[idx].End)
			continue
		}

		c := queue[0]
		queue = queue[1:]
		blocks = append(blocks, models.Block{
			ID:                     uuid.NewString(),
			Date:                   plan.Date,
			PlannedStartTime:       timeutil.FormatClock(cursor),
			PlannedEndTime:         timeutil.FormatClock(cursor + blockMinutes),
			PlannedDurationMinutes: blockMinutes,
			Type:                   c.blockType,
			Title:                  c.title,
			Description:            c.description,
			Tasks:                  c.tasks,
			Status:                 models.BlockNotStarted,
		})
		cursor += blockMinutes
	}

	// Breaks configured at or after the final cursor still belong to the day.
	for i, b := range breaks {
		if usedBreaks[i] || len(blocks) >= constants.MaxGeneratedBlocks {
			continue
		}
		if timeutil.ParseClock(b.Start) >= cursor {
			blocks = append(blocks, breakBlock(plan.Date, b))
		}
	}

	sort.Slice(blocks, func(i, j int) bool {
		return timeutil.ParseClock(blocks[i].PlannedStartTime) < timeutil.ParseClock(blocks[j].PlannedStartTime)
	})

	return blocks
}

func pendingBreak(breaks models.BreakList, used []bool, cursor, step int) int {
	for i, b := range breaks {
		if used[i] {
			continue
		}
		start := timeutil.ParseClock(b.Start)
		if start >= cursor && start < cursor+step {
			return i
		}
	}
	return -1
}

func breakBlock(date string, b models.BreakWindow) models.Block {
	title := b.Label
	if title == "" {
		title = "Break"
	}
	return models.Block{
		ID:                     uuid.NewString(),
		Date:                   date,
		PlannedStartTime:       b.Start,
		PlannedEndTime:         b.End,
		PlannedDurationMinutes: timeutil.ParseClock(b.End) - timeutil.ParseClock(b.Start),
		Type:                   models.BlockTypeBreak,
		Title:                  title,
		Status:                 models.BlockNotStarted,
	}
}

// buildVideoChunks splits each source video into equal watch chunks sized by
// the wall-clock minutes it needs at its playback speed.
func buildVideoChunks(videos models.VideoList, blockMinutes int) []chunk {
	var chunks []chunk
	for _, v := range videos {
		effective := v.EffectiveMinutes()
		if effective <= 0 {
			continue
		}
		parts := ceilDiv(effective, blockMinutes)
		contentStart := v.MinStart
		contentTotal := v.DurationMinutes
		if contentTotal == 0 {
			contentTotal = v.MinEnd - v.MinStart
		}
		perPart := ceilDiv(contentTotal, parts)
		for i := 0; i < parts; i++ {
			segStart := contentStart + i*perPart
			segEnd := segStart + perPart
			if segEnd > contentStart+contentTotal {
				segEnd = contentStart + contentTotal
			}
			title := v.Title
			if parts > 1 {
				title = fmt.Sprintf("%s (%d/%d)", v.Title, i+1, parts)
			}
			chunks = append(chunks, chunk{
				blockType: models.BlockTypeVideo,
				title:     title,
				tasks: []models.Task{{
					Type:   models.TaskTypeVideo,
					Detail: v.Title,
					Meta: models.TaskMeta{
						VideoMinStart: segStart,
						VideoMinEnd:   segEnd,
						Speed:         v.Speed,
					},
				}},
			})
		}
	}
	return chunks
}

// buildRevisionChunks opens one FA-revision opportunity per video chunk and
// deals the configured pages round-robin across those slots.
func buildRevisionChunks(pages models.IntList, slots int) []chunk {
	if slots == 0 || len(pages) == 0 {
		return nil
	}
	dealt := make([][]int, slots)
	for i, page := range pages {
		dealt[i%slots] = append(dealt[i%slots], page)
	}
	var chunks []chunk
	for _, slotPages := range dealt {
		if len(slotPages) == 0 {
			continue
		}
		tasks := make([]models.Task, 0, len(slotPages))
		for _, page := range slotPages {
			tasks = append(tasks, models.Task{
				Type:   models.TaskTypePages,
				Detail: fmt.Sprintf("FA page %d", page),
				Meta:   models.TaskMeta{Page: page},
			})
		}
		chunks = append(chunks, chunk{
			blockType: models.BlockTypeRevisionFA,
			title:     fmt.Sprintf("FA revision (%d pages)", len(slotPages)),
			tasks:     tasks,
		})
	}
	return chunks
}

// buildPracticeChunks splits a practice target into block-sized chunks, items
// divided by ceiling so the final chunk absorbs the remainder.
func buildPracticeChunks(target *models.PracticeTarget, blockType models.BlockType, blockMinutes int) []chunk {
	if target == nil || target.PlannedMinutes <= 0 {
		return nil
	}
	parts := ceilDiv(target.PlannedMinutes, blockMinutes)

	total := target.Questions
	taskType := models.TaskTypeQBank
	noun := "questions"
	if blockType == models.BlockTypeAnki {
		total = target.Cards
		taskType = models.TaskTypeAnki
		noun = "cards"
	}
	perPart := 0
	if total > 0 {
		perPart = ceilDiv(total, parts)
	}

	title := "QBank practice"
	if blockType == models.BlockTypeAnki {
		title = "Anki practice"
	}

	var chunks []chunk
	remaining := total
	for i := 0; i < parts; i++ {
		count := perPart
		if count > remaining {
			count = remaining
		}
		remaining -= count
		meta := models.TaskMeta{}
		if taskType == models.TaskTypeAnki {
			meta.CardCount = count
		} else {
			meta.QuestionCount = count
		}
		chunks = append(chunks, chunk{
			blockType: blockType,
			title:     title,
			tasks: []models.Task{{
				Type:   taskType,
				Detail: fmt.Sprintf("%d %s", count, noun),
				Meta:   meta,
			}},
		})
	}
	return chunks
}

// interleave alternates video and FA-revision chunks strictly (video first),
// draining whichever queue runs longer.
func interleave(videos, revisions []chunk) []chunk {
	out := make([]chunk, 0, len(videos)+len(revisions))
	for i := 0; i < len(videos) || i < len(revisions); i++ {
		if i < len(videos) {
			out = append(out, videos[i])
		}
		if i < len(revisions) {
			out = append(out, revisions[i])
		}
	}
	return out
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
