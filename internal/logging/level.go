package logging

import (
	"bytes"
	"fmt"
	"strings"
)

type Level int

const (
	DEBUG Level = iota + 1
	INFO
	NOTICE
	WARN
	ERROR
	FATAL
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case NOTICE:
		return "NOTICE"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return ""
	}
}

//nolint:gomnd // xterm color codes
func (l Level) color() uint {
	switch l {
	case ERROR, FATAL:
		return 160
	case WARN, NOTICE:
		return 220
	case INFO:
		return 6
	case DEBUG:
		return 8
	default:
		return 37
	}
}

func (l Level) MarshalJSON() ([]byte, error) {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(l.String())
	buffer.WriteString(`"`)

	return buffer.Bytes(), nil
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	for l := DEBUG; l <= FATAL; l++ {
		if strings.EqualFold(strings.TrimSpace(s), l.String()) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
