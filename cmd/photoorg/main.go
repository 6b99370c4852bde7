// Command photoorg copies or moves photos into destination subdirectories
// named after each photo's capture date.
//
// Usage:
//
//	photoorg [inputDir] [outputDir] [flags]
//
// inputDir defaults to the current directory and outputDir to "out".
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/brentnortham/photo-organize/pkg/organize"
)

func main() {
	dry := flag.Bool("dry", false, "simulate only, no filesystem mutation, print planned actions")
	move := flag.Bool("move", false, "move files instead of copying them")
	recursive := flag.Bool("recursive", false, "include files in subdirectories of inputDir")
	verbose := flag.Bool("verbose", false, "increase log verbosity")
	dayDirs := flag.Bool("day-dirs", false, "use flat YYYY_MM_DD day buckets instead of year/month-name directories")
	dayStart := flag.Int("day-start", 0, "day-boundary hour: shots before this hour bucket with the previous day")
	workers := flag.Int("workers", runtime.NumCPU(), "number of concurrent workers")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [inputDir] [outputDir] [flags]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  inputDir   directory to scan for photos (default \".\")\n")
		fmt.Fprintf(os.Stderr, "  outputDir  destination root (default \"out\")\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	inputDir, outputDir, err := resolvePaths(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(2)
	}

	if *dayStart < 0 || *dayStart > 23 {
		logrus.Fatalf("invalid --day-start %d: must be between 0 and 23", *dayStart)
	}

	info, err := os.Stat(inputDir)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.Fatalf("source directory '%s' does not exist", inputDir)
		}
		logrus.Fatalf("could not stat source directory '%s': %v", inputDir, err)
	}
	if !info.IsDir() {
		logrus.Fatalf("source path '%s' is not a directory", inputDir)
	}

	opts := organize.Options{
		DryRun:       *dry,
		Move:         *move,
		Recursive:    *recursive,
		DayDirs:      *dayDirs,
		DayStartHour: *dayStart,
		Workers:      *workers,
	}

	// Dry runs never create anything, not even the output root.
	if !opts.DryRun {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			logrus.Fatalf("failed to create output directory '%s': %v", outputDir, err)
		}
	}

	logrus.Infof("organizing photos: %s -> %s", inputDir, outputDir)
	summary, err := organize.Run(inputDir, outputDir, opts)
	if err != nil {
		logrus.Fatalf("run aborted: %v", err)
	}

	fmt.Print(summary.Render())
}

// resolvePaths applies the positional-argument defaults. More than two
// positional arguments is a configuration error.
func resolvePaths(args []string) (inputDir, outputDir string, err error) {
	inputDir, outputDir = ".", "out"
	switch len(args) {
	case 0:
	case 1:
		inputDir = args[0]
	case 2:
		inputDir, outputDir = args[0], args[1]
	default:
		return "", "", fmt.Errorf("expected at most 2 positional arguments, got %d", len(args))
	}
	return inputDir, outputDir, nil
}
