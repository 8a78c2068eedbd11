package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rgehrsitz/coastfi/internal/domain"
)

// Formatter renders a set of scenario results into bytes
type Formatter interface {
	Name() string
	Format(results *domain.ScenarioComparison) ([]byte, error)
}

// FormatterFunc adapts a plain function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(results *domain.ScenarioComparison) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return f.F(results)
}

// ReportPrefix is the file name prefix used by WriteFormatted
const ReportPrefix = "coastfi_report_"

// WriteFormatted formats results and writes them to a timestamped file in the
// working directory, returning the file name.
func WriteFormatted(f Formatter, results *domain.ScenarioComparison, ext string) (string, error) {
	data, err := f.Format(results)
	if err != nil {
		return "", fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	filename := fmt.Sprintf("%s%s.%s", ReportPrefix, time.Now().Format("20060102_150405"), strings.TrimPrefix(ext, "."))
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}

var formatters = map[string]Formatter{
	"console-lite": ConsoleFormatter{},
	"console":      ConsoleVerboseFormatter{},
	"csv":          CSVSummarizer{},
	"detailed-csv": ProjectionCSVFormatter{},
	"json":         JSONFormatter{},
	"yaml":         YAMLFormatter{},
	"html":         HTMLFormatter{},
}

var aliases = map[string]string{
	"verbose":         "console",
	"console-verbose": "console",
	"lite":            "console-lite",
	"yml":             "yaml",
	"projection-csv":  "detailed-csv",
}

// AvailableFormatterNames lists the canonical formatter names
func AvailableFormatterNames() []string {
	return []string{"console-lite", "console", "csv", "detailed-csv", "json", "yaml", "html"}
}

// AvailableFormatAliases lists the accepted alternative names, sorted
func AvailableFormatAliases() []string {
	names := make([]string, 0, len(aliases))
	for a := range aliases {
		names = append(names, a)
	}
	sort.Strings(names)
	return names
}

// GetFormatterByName resolves a formatter by name or alias (case-insensitive).
// Returns nil for unknown names.
func GetFormatterByName(name string) Formatter {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	return formatters[key]
}

// FileExtension returns the conventional file extension for a formatter name
func FileExtension(name string) string {
	switch f := GetFormatterByName(name); {
	case f == nil:
		return "txt"
	case f.Name() == "csv" || f.Name() == "detailed-csv":
		return "csv"
	case f.Name() == "json", f.Name() == "yaml", f.Name() == "html":
		return f.Name()
	default:
		return "txt"
	}
}
