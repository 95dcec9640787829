package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/homecalc/homeownership-calculator/internal/domain"
)

// ErrUnsupportedFormat is returned for a format name with no formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// nowFunc is swapped by tests for stable file names.
var nowFunc = time.Now

// DownloadFilename returns homeownership_<UTC yyyymmddThhmmssZ>.<ext>.
func DownloadFilename(t time.Time, ext string) string {
	return fmt.Sprintf("homeownership_%s.%s", t.UTC().Format("20060102T150405Z"), ext)
}

// reportFilename adds a scenario slug so several scenarios written in the
// same second do not collide.
func reportFilename(name string, t time.Time, ext string) string {
	slug := slugify(name)
	if slug == "" {
		return DownloadFilename(t, ext)
	}
	return fmt.Sprintf("homeownership_%s_%s.%s", slug, t.UTC().Format("20060102T150405Z"), ext)
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ResolveFormatter is GetFormatterByName with an error that lists the
// available names and aliases.
func ResolveFormatter(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
func WriteFormatted(f Formatter, p *domain.Projection, dir, ext string) (string, error) {
	data, err := f.Format(p)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", f.Name(), err)
	}
	filename := filepath.Join(dir, reportFilename(p.Name, nowFunc(), ext))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// GenerateReport resolves format through the registry and writes the report
// into dir, returning the file name.
func GenerateReport(p *domain.Projection, format, dir string) (string, error) {
	f, err := ResolveFormatter(format)
	if err != nil {
		return "", err
	}
	return WriteFormatted(f, p, dir, Extension(f.Name()))
}

// SaveConfiguration writes a scenario file as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
