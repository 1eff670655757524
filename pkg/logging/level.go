package logging

import (
	"os"
	"strings"

	"go.llib.dev/views/pkg/errorkit"
)

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

const ErrInvalidLevel errorkit.Error = "invalid logging level"

type Level string

func (ll Level) String() string { return string(ll) }

var defaultLevel Level = LevelInfo

var levelPriorityMapping = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,

	*new(Level): 1, // zero Level value is considered as LevelInfo
}

func isLevelEnabled(target, level Level) bool {
	return levelPriorityMapping[target] <= levelPriorityMapping[level]
}

// ParseLevel accepts the level names case-insensitively.
func ParseLevel(raw string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := levelPriorityMapping[level]; !ok || level == "" {
		return "", ErrInvalidLevel.F("%q", raw)
	}
	return level, nil
}

// EnvKeyLevel is the environment variable that sets the level of the Default logger.
const EnvKeyLevel = "LOG_LEVEL"

func levelFromEnv() Level {
	raw, ok := os.LookupEnv(EnvKeyLevel)
	if !ok {
		return ""
	}
	level, err := ParseLevel(raw)
	if err != nil {
		return ""
	}
	return level
}
