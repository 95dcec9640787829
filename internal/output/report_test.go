package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homecalc/homeownership-calculator/internal/config"
	"github.com/homecalc/homeownership-calculator/internal/domain"
)

func fixNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return at }
	t.Cleanup(func() { nowFunc = prev })
}

func TestDownloadFilename(t *testing.T) {
	pst := time.FixedZone("PST", -8*3600)
	at := time.Date(2024, 3, 9, 16, 5, 7, 0, pst)
	assert.Equal(t, "homeownership_20240310T000507Z.csv", DownloadFilename(at, "csv"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "30-year-fixed", slugify("30-year fixed"))
	assert.Equal(t, "bay-area-condo", slugify("  Bay Area / Condo! "))
	assert.Equal(t, "", slugify("***"))
}

func TestGenerateReport_WritesTimestampedFile(t *testing.T) {
	fixNow(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	dir := t.TempDir()

	name, err := GenerateReport(buildTestProjection(t), "spreadsheet", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "homeownership_30-year-fixed_20250102T030405Z.csv"), name)

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1,618000.00,470788.19")
}

func TestGenerateReport_UnnamedProjection(t *testing.T) {
	fixNow(t, time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))
	p := buildTestProjection(t)
	p.Name = ""

	name, err := GenerateReport(p, "json", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "homeownership_20250102T030405Z.json", filepath.Base(name))
}

func TestWriteFormatted_MissingDir(t *testing.T) {
	_, err := WriteFormatted(ConsoleFormatter{}, buildTestProjection(t), filepath.Join(t.TempDir(), "nope"), "txt")
	assert.Error(t, err)
}

func TestSaveConfiguration(t *testing.T) {
	parser := config.NewInputParser()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, SaveConfiguration(parser.CreateExampleConfiguration(), path))

	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, loaded.Scenarios, 2)
	assert.Equal(t, "15-year fixed", loaded.Scenarios[1].Name)
}

func TestSaveConfiguration_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, SaveConfiguration(&domain.Configuration{}, path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
