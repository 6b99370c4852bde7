// Package exifdate resolves the best-known capture date for an image file.
// Embedded EXIF metadata is preferred; the file's last-modified timestamp
// is the fallback when no usable metadata exists.
package exifdate

import (
	"fmt"
	"os"
	"time"

	"github.com/djherbis/times"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
	"github.com/rwcarlsen/goexif/tiff"
)

// ErrNoDateTag is returned when EXIF data is present but carries no usable
// date tag.
var ErrNoDateTag = fmt.Errorf("no EXIF date tag found")

// exifLayout is the fixed EXIF timestamp format (colon-separated date,
// space, colon-separated time). No other layout is accepted from metadata.
const exifLayout = "2006:01:02 15:04:05"

func init() {
	exif.RegisterParsers(mknote.All...)
}

// Source identifies where a resolved date came from.
type Source int

const (
	// SourceMetadata means the date was read from embedded EXIF data.
	SourceMetadata Source = iota
	// SourceModTime means the file's last-modified timestamp was used.
	SourceModTime
)

func (s Source) String() string {
	switch s {
	case SourceMetadata:
		return "EXIF"
	case SourceModTime:
		return "FileModTime"
	default:
		return "Unknown"
	}
}

// ResolvedDate is the capture date for a file together with its origin.
// Once resolution completes the value is always usable; the mod-time
// fallback guarantees it.
type ResolvedDate struct {
	Time   time.Time
	Source Source
}

// readMetadataDate is swappable so tests can force either resolution path.
var readMetadataDate = metadataDate

// Resolve produces the best-known capture date for the file at path.
// Metadata-read errors are swallowed: a corrupt, absent or unparsable EXIF
// date silently degrades to the mod-time fallback. An error is returned
// only when even the fallback stat fails. Resolve is read-only.
func Resolve(path string) (ResolvedDate, error) {
	if t, err := readMetadataDate(path); err == nil {
		return ResolvedDate{Time: t, Source: SourceMetadata}, nil
	}

	ts, err := times.Stat(path)
	if err != nil {
		return ResolvedDate{}, fmt.Errorf("failed to stat %s for fallback date: %w", path, err)
	}
	return ResolvedDate{Time: ts.ModTime(), Source: SourceModTime}, nil
}

// metadataDate extracts the capture date from a file's EXIF data.
// DateTimeOriginal takes priority; the generic DateTime tag is consulted
// only when the former is absent.
func metadataDate(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to decode EXIF data from %s: %w", path, err)
	}

	if tag, err := x.Get(exif.DateTimeOriginal); err == nil {
		return parseTag(tag)
	}
	if tag, err := x.Get(exif.DateTime); err == nil {
		return parseTag(tag)
	}
	return time.Time{}, ErrNoDateTag
}

func parseTag(tag *tiff.Tag) (time.Time, error) {
	if tag == nil {
		return time.Time{}, fmt.Errorf("tag is nil")
	}
	dateStr, err := tag.StringVal()
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get string value from EXIF date tag: %w", err)
	}
	return parseDateString(dateStr)
}

func parseDateString(s string) (time.Time, error) {
	t, err := time.Parse(exifLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse EXIF date string %q with layout %q: %w", s, exifLayout, err)
	}
	return t, nil
}
