package constants

const (
	DefaultDayStart = "07:00"
	DefaultDayEnd   = "22:00"
	DefaultBlockMin = 30
	DefaultTimezone = "Local"

	// MaxGeneratedBlocks caps block generation to protect against malformed
	// (often AI-authored) plan input producing runaway loops.
	MaxGeneratedBlocks = 50
)
