package main

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ValueParser owns the permissive parses shared by the validator, the
// formatter and the computed evaluator: a numeric parse that tolerates
// currency/group punctuation, and a lenient calendar-date parse.
type ValueParser struct {
	stripper *strings.Replacer
}

// numericNoise is the punctuation stripped before a numeric parse, so that
// "$1,000", "1000" and "  1000  " all read as the same number. The percent
// sign is included so canonical percent output ("52.50%") parses back.
const numericNoise = "$,% \t"

func NewValueParser() *ValueParser {
	replaceOldNew := make([]string, 0, len(numericNoise)*2)
	for _, char := range strings.Split(numericNoise, "") {
		replaceOldNew = append(replaceOldNew, char, "")
	}

	return &ValueParser{
		stripper: strings.NewReplacer(replaceOldNew...),
	}
}

// Number parses a raw cell value as a numeric literal after stripping
// currency/group punctuation. Returns false for empty input and for
// anything that does not parse to a finite float.
func (p *ValueParser) Number(rawValue string) (float64, bool) {
	stripped := p.stripper.Replace(strings.TrimSpace(rawValue))
	if stripped == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(stripped, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}

// Date parses a raw cell value as a calendar date under a permissive,
// MDY-leaning parser ("2024-3-5", "3/5/2024", "March 5, 2024", ...).
func (p *ValueParser) Date(rawValue string) (time.Time, bool) {
	trimmed := strings.TrimSpace(rawValue)
	if trimmed == "" {
		return time.Time{}, false
	}

	parsed, err := dateparse.ParseAny(trimmed)
	if err != nil {
		return time.Time{}, false
	}

	return parsed, true
}
