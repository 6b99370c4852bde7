package organize

import (
	"os"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"

	"github.com/brentnortham/photo-organize/pkg/exifdate"
)

// Run scans inputDir and places every candidate image under outputRoot.
// Files are processed independently on a bounded worker pool; a failure on
// one file never aborts the rest. The returned Summary holds the per-
// outcome tally for the whole run.
func Run(inputDir, outputRoot string, opts Options) (*Summary, error) {
	files, err := ScanSourceDirectory(inputDir, opts)
	if err != nil {
		return nil, err
	}

	summary := NewSummary(len(files))
	if len(files) == 0 {
		logrus.Info("no image files found in source directory")
		return summary, nil
	}
	logrus.Infof("found %d image file(s) to process", len(files))

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(files) {
		workers = len(files)
	}

	// The per-file action lines go through logrus; the bar only tracks
	// throughput, and verbose runs skip it so debug output stays readable.
	var bar *progressbar.ProgressBar
	if !logrus.IsLevelEnabled(logrus.DebugLevel) && len(files) >= 50 {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("organizing"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	jobs := make(chan PhotoFile)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range jobs {
				summary.Record(processFile(f, outputRoot, opts))
				if bar != nil {
					_ = bar.Add(1)
				}
			}
		}()
	}

	for _, f := range files {
		jobs <- f
	}
	close(jobs)
	wg.Wait()

	return summary, nil
}

// processFile resolves one file's date, plans its placement and executes
// the plan. Every failure is contained to this file.
func processFile(f PhotoFile, outputRoot string, opts Options) Decision {
	date, err := exifdate.Resolve(f.Path)
	if err != nil {
		logrus.Errorf("%s: could not resolve a date: %v", f.Path, err)
		return Decision{Source: f.Path, Outcome: Failed, Err: err}
	}
	logrus.Debugf("%s: resolved date %s (%s)", f.Path, date.Time.Format("2006-01-02 15:04:05"), date.Source)

	d := Plan(f, date, outputRoot, opts)
	if d.Outcome == SkippedCollision {
		logrus.Warnf("%s: destination %s already exists, skipping", d.Source, d.Dest)
		return d
	}

	d = Execute(d, opts)
	switch d.Outcome {
	case WouldCopy, WouldMove:
		logrus.Infof("[dry-run] %s -> %s", d.Source, d.Dest)
	case Copied, Moved:
		logrus.Infof("%s -> %s", d.Source, d.Dest)
	case Failed:
		logrus.Errorf("%s -> %s: %v", d.Source, d.Dest, d.Err)
	}
	return d
}
