package organize

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Execute carries out a planned decision. Collision skips pass through
// untouched, and in dry-run mode no filesystem mutation happens at all.
// An I/O failure marks the decision Failed; it never aborts the run.
func Execute(d Decision, opts Options) Decision {
	switch d.Outcome {
	case WouldCopy, WouldMove:
		// Only these proceed.
	default:
		return d
	}
	if opts.DryRun {
		return d
	}

	destDir := filepath.Dir(d.Dest)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		d.Outcome = Failed
		d.Err = fmt.Errorf("failed to create destination directory %s: %w", destDir, err)
		return d
	}

	if d.Outcome == WouldMove {
		if err := MoveFile(d.Source, d.Dest); err != nil {
			d.Outcome = Failed
			d.Err = err
			return d
		}
		d.Outcome = Moved
		return d
	}

	if err := CopyFile(d.Source, d.Dest); err != nil {
		d.Outcome = Failed
		d.Err = err
		return d
	}
	d.Outcome = Copied
	return d
}

// CopyFile copies a file from srcPath to destPath. The destination is
// opened O_EXCL: an existing file is never overwritten, even when two
// workers race to the same destination.
func CopyFile(srcPath, destPath string) error {
	sourceFile, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcPath, err)
	}
	defer sourceFile.Close()

	destinationFile, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", destPath, err)
	}
	defer destinationFile.Close()

	if _, err = io.Copy(destinationFile, sourceFile); err != nil {
		return fmt.Errorf("failed to copy content from %s to %s: %w", srcPath, destPath, err)
	}

	if err = destinationFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync destination file %s: %w", destPath, err)
	}

	return nil
}

// MoveFile relocates a file from srcPath to destPath. Rename is tried
// first; when it fails (cross-device moves, most commonly) the file is
// copied and the source removed afterwards.
func MoveFile(srcPath, destPath string) error {
	if err := os.Rename(srcPath, destPath); err == nil {
		return nil
	}

	if err := CopyFile(srcPath, destPath); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", srcPath, destPath, err)
	}
	if err := os.Remove(srcPath); err != nil {
		return fmt.Errorf("moved %s to %s but failed to remove source: %w", srcPath, destPath, err)
	}
	return nil
}
