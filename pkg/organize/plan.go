// Package organize plans and performs the placement of photos into
// date-named destination directories. Each file is processed independently;
// the planner never mutates the filesystem and the executor touches only
// the single file it was handed.
package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/brentnortham/photo-organize/pkg/exifdate"
)

// Options carries everything a run needs. Functions receive it explicitly;
// there is no package-level state.
type Options struct {
	DryRun       bool // simulate only, no filesystem mutation
	Move         bool // relocate instead of copy
	Recursive    bool // include files in subdirectories of the input dir
	DayDirs      bool // flat YYYY_MM_DD buckets instead of year/month-name
	DayStartHour int  // shots before this hour bucket with the previous day
	Workers      int  // worker pool size; <=0 means runtime.NumCPU()
}

// PhotoFile is one candidate source file, built from a directory listing.
type PhotoFile struct {
	Path string // absolute or input-relative source path
	Ext  string // lowercased extension, including the dot
}

// Outcome classifies what happened (or would happen) to a file.
type Outcome int

const (
	WouldCopy Outcome = iota
	WouldMove
	Copied
	Moved
	SkippedCollision
	Failed
)

func (o Outcome) String() string {
	switch o {
	case WouldCopy:
		return "would copy"
	case WouldMove:
		return "would move"
	case Copied:
		return "copied"
	case Moved:
		return "moved"
	case SkippedCollision:
		return "skipped (collision)"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Decision records the planned and, after execution, actual placement of
// one file. Every processed file yields exactly one Decision.
type Decision struct {
	Source  string
	Dest    string
	Date    exifdate.ResolvedDate
	Outcome Outcome
	Err     error
}

// DateLabel derives the destination subdirectory for a resolved date.
// The default convention is <year>/<month-number> - <month-name>
// ("2021/3 - March"); DayDirs selects flat YYYY_MM_DD day buckets.
// DayStartHour shifts the bucketing boundary so that, for example, a 2am
// shot with DayStartHour 5 lands in the previous day's bucket.
func DateLabel(t time.Time, opts Options) string {
	if opts.DayStartHour > 0 {
		t = t.Add(-time.Duration(opts.DayStartHour) * time.Hour)
	}
	if opts.DayDirs {
		return t.Format("2006_01_02")
	}
	return filepath.Join(t.Format("2006"), fmt.Sprintf("%d - %s", int(t.Month()), t.Month()))
}

// Plan computes the destination path for file and checks it for a
// collision. The destination filename is always the unmodified source
// basename; only the containing directory varies. Plan never mutates the
// filesystem.
func Plan(file PhotoFile, date exifdate.ResolvedDate, outputRoot string, opts Options) Decision {
	dest := filepath.Join(outputRoot, DateLabel(date.Time, opts), filepath.Base(file.Path))
	d := Decision{Source: file.Path, Dest: dest, Date: date}

	if _, err := os.Stat(dest); err == nil {
		d.Outcome = SkippedCollision
		return d
	}

	if opts.Move {
		d.Outcome = WouldMove
	} else {
		d.Outcome = WouldCopy
	}
	return d
}
