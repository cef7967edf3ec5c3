package contract

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/typomatch/schema"
)

// Comfort label constants.
const (
	ExcellentValue = "Excellent" // Excellent comfort
	GoodValue      = "Good"      // Good comfort
	FairValue      = "Fair"      // Fair comfort
	PoorValue      = "Poor"      // Poor comfort
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold)
	GoodColor      = color.New(color.FgCyan, color.Bold)
	FairColor      = color.New(color.FgYellow)
	PoorColor      = color.New(color.FgRed)
)

// ComfortPercent maps a raw score onto 0-100. Non-negative tables are already
// percentages; signed tables such as Psychosophia's are centred on 50.
func ComfortPercent(score float64, table schema.ScoreTable) float64 {
	bound := 0.0
	signed := false
	for _, entry := range table {
		v := float64(entry.Score)
		if v < 0 {
			signed = true
		}
		bound = max(bound, math.Abs(v))
	}
	if !signed || bound == 0 {
		return max(0, min(100, score))
	}
	return max(0, min(100, (score+bound)/(2*bound)*100))
}

// GetPlainLabel returns a plain text comfort label for a 0-100 percentage.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(percent float64) string {
	switch {
	case percent >= 80:
		return ExcellentValue
	case percent >= 60:
		return GoodValue
	case percent >= 40:
		return FairValue
	default:
		return PoorValue
	}
}

// GetColorLabel returns a colored comfort label for console output.
func GetColorLabel(percent float64) string {
	text := GetPlainLabel(percent)

	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case GoodValue:
		return GoodColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default:
		return PoorColor.Sprint(text)
	}
}

// SelectOutputFile returns the file handle for output. An empty path selects os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateText shortens s to maxWidth runes with an ellipsis suffix.
// Requires maxWidth > 3 so the ellipsis leaves room for content.
func TruncateText(s string, maxWidth int) string {
	runes := []rune(s)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return s
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1", "on":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
