package compress

import "fmt"

// Level is a named compression tier selecting a bundle of numeric thresholds.
type Level string

const (
	// LevelNone bypasses the engine entirely.
	LevelNone Level = "none"
	// LevelLight compresses only clearly redundant content.
	LevelLight Level = "light"
	// LevelMedium is the balanced default.
	LevelMedium Level = "medium"
	// LevelHeavy enables the aggressive tier.
	LevelHeavy Level = "heavy"
)

// ParseLevel validates a level name.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelNone, LevelLight, LevelMedium, LevelHeavy:
		return Level(s), nil
	default:
		return "", fmt.Errorf("unknown compression level: %q (want none, light, medium, or heavy)", s)
	}
}

// Config holds the numeric thresholds consumed by every compaction component.
// It is an immutable value built once per run and passed explicitly; nothing
// mutates it mid-run, so it may be shared freely across parallel workers.
type Config struct {
	// MinLinesForCompression skips files below this size in non-aggressive tiers.
	MinLinesForCompression int

	// ImportSummaryThreshold triggers import summarization above this many imports.
	ImportSummaryThreshold int

	// DuplicateThreshold is the owning-file count at which a duplicated chunk
	// qualifies for substitution.
	DuplicateThreshold int

	// MaxLinesToKeep hard-caps any single file's line count.
	MaxLinesToKeep int

	// MaxClassMethodsToShow limits member names listed for a collapsed class.
	MaxClassMethodsToShow int

	// Aggressive enables the heavy-tier passes.
	Aggressive bool
}

// DefaultConfig returns the baseline thresholds used when no level applies.
func DefaultConfig() Config {
	return Config{
		MinLinesForCompression: 15,
		ImportSummaryThreshold: 5,
		DuplicateThreshold:     3,
		MaxLinesToKeep:         500,
		MaxClassMethodsToShow:  3,
		Aggressive:             false,
	}
}

// ConfigForLevel is a pure lookup from a named level to its threshold bundle.
func ConfigForLevel(level Level) Config {
	switch level {
	case LevelLight:
		return Config{
			MinLinesForCompression: 40,
			ImportSummaryThreshold: 10,
			DuplicateThreshold:     8,
			MaxLinesToKeep:         1000,
			MaxClassMethodsToShow:  8,
			Aggressive:             false,
		}
	case LevelMedium:
		return Config{
			MinLinesForCompression: 25,
			ImportSummaryThreshold: 8,
			DuplicateThreshold:     5,
			MaxLinesToKeep:         750,
			MaxClassMethodsToShow:  5,
			Aggressive:             false,
		}
	case LevelHeavy:
		return Config{
			MinLinesForCompression: 5,
			ImportSummaryThreshold: 3,
			DuplicateThreshold:     2,
			MaxLinesToKeep:         300,
			MaxClassMethodsToShow:  2,
			Aggressive:             true,
		}
	default:
		return DefaultConfig()
	}
}
