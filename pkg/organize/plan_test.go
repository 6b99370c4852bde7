package organize

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brentnortham/photo-organize/pkg/exifdate"
)

func TestDateLabel(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		opts Options
		want string
	}{
		{
			"month-name default",
			time.Date(2021, 3, 15, 6, 10, 0, 0, time.UTC),
			Options{},
			filepath.Join("2021", "3 - March"),
		},
		{
			"month-name december",
			time.Date(2019, 12, 1, 23, 59, 59, 0, time.UTC),
			Options{},
			filepath.Join("2019", "12 - December"),
		},
		{
			"day buckets",
			time.Date(2021, 3, 15, 6, 10, 0, 0, time.UTC),
			Options{DayDirs: true},
			"2021_03_15",
		},
		{
			"day start shifts early shot to previous day",
			time.Date(2021, 3, 15, 2, 0, 0, 0, time.UTC),
			Options{DayDirs: true, DayStartHour: 5},
			"2021_03_14",
		},
		{
			"day start leaves later shot alone",
			time.Date(2021, 3, 15, 6, 10, 0, 0, time.UTC),
			Options{DayDirs: true, DayStartHour: 5},
			"2021_03_15",
		},
		{
			"day start crosses month and year",
			time.Date(2022, 1, 1, 1, 30, 0, 0, time.UTC),
			Options{DayStartHour: 5},
			filepath.Join("2021", "12 - December"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateLabel(tt.t, tt.opts))
		})
	}
}

func TestPlanPreservesBasename(t *testing.T) {
	outputRoot := t.TempDir()
	date := exifdate.ResolvedDate{
		Time:   time.Date(2021, 3, 15, 6, 10, 0, 0, time.UTC),
		Source: exifdate.SourceMetadata,
	}
	file := PhotoFile{Path: filepath.Join("some", "dir", "IMG_0001.jpg"), Ext: ".jpg"}

	d := Plan(file, date, outputRoot, Options{})
	assert.Equal(t, WouldCopy, d.Outcome)
	assert.Equal(t, "IMG_0001.jpg", filepath.Base(d.Dest))
	assert.Equal(t, filepath.Join(outputRoot, "2021", "3 - March", "IMG_0001.jpg"), d.Dest)
}

func TestPlanMoveOutcome(t *testing.T) {
	date := exifdate.ResolvedDate{Time: time.Date(2021, 3, 15, 6, 10, 0, 0, time.UTC)}
	d := Plan(PhotoFile{Path: "a.jpg", Ext: ".jpg"}, date, t.TempDir(), Options{Move: true})
	assert.Equal(t, WouldMove, d.Outcome)
}

func TestPlanDetectsCollision(t *testing.T) {
	outputRoot := t.TempDir()
	date := exifdate.ResolvedDate{Time: time.Date(2021, 3, 15, 6, 10, 0, 0, time.UTC)}

	destDir := filepath.Join(outputRoot, "2021", "3 - March")
	require.NoError(t, os.MkdirAll(destDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(destDir, "IMG_0001.jpg"), []byte("existing"), 0644))

	d := Plan(PhotoFile{Path: "IMG_0001.jpg", Ext: ".jpg"}, date, outputRoot, Options{})
	assert.Equal(t, SkippedCollision, d.Outcome)

	// Collision detection is read-only; the existing file stays as it was.
	content, err := os.ReadFile(filepath.Join(destDir, "IMG_0001.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "existing", string(content))
}
