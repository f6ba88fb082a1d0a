package dataset

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	// ErrEmptyHwInfo is returned when not a single usable field could be recovered from a hardware log
	ErrEmptyHwInfo = errors.New("No usable hardware info fields found")
)

// ParseLscpu extracts a HwInfo from the raw content of a hardware inventory
// log, a concatenation of lscpu and free output. The log format is not
// contractually stable, so every field is parsed defensively: lines that
// don't match a known label and values that fail to parse are skipped, and
// only a log yielding zero usable fields is an error.
func ParseLscpu(rawText string) (hw HwInfo, err error) {

	var coresPerSocket, sockets int64

	scanner := bufio.NewScanner(strings.NewReader(rawText))
	for scanner.Scan() {
		label, value, ok := splitLscpuLine(scanner.Text())
		if !ok {
			continue
		}

		switch strings.ToLower(label) {
		case "architecture":
			hw.Architecture = value
		case "model name":
			hw.CPUModelName = value
		case "model":
			hw.CPUModelNumber = value
		case "cpu family":
			hw.CPUFamily = value
		case "cpu(s)":
			hw.SiblingCount = parseCount(label, value)
		case "core(s) per socket":
			coresPerSocket = parseCount(label, value)
		case "socket(s)":
			sockets = parseCount(label, value)
		case "mem":
			// first column of the free output row holds the total in bytes
			hw.RAMSize = parseCount(label, strings.Fields(value)[0])
		}
	}

	hw.CoreCount = coresPerSocket
	if coresPerSocket > 0 && sockets > 0 {
		hw.CoreCount = coresPerSocket * sockets
	}

	// a missing or truncated cpu(s) row must not break the sibling >= core invariant
	if hw.SiblingCount < hw.CoreCount {
		hw.SiblingCount = hw.CoreCount
	}

	if hw == (HwInfo{}) {
		return hw, ErrEmptyHwInfo
	}

	return hw, nil
}

func splitLscpuLine(line string) (label, value string, ok bool) {
	label, value, ok = strings.Cut(line, ":")
	if !ok {
		return
	}

	label = strings.TrimSpace(label)
	value = strings.TrimSpace(value)

	if label == "" || value == "" {
		return label, value, false
	}

	return label, value, true
}

func parseCount(label, value string) int64 {
	count, err := strconv.ParseInt(value, 10, 64)
	if err != nil || count < 0 {
		log.Debug().Msgf("Ignoring unparseable numeric value %v for hardware log label %v", value, label)
		return 0
	}

	return count
}
