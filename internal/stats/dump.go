package stats

import (
	"fmt"
	"os"
	"path/filepath"
)

// Files written by Dump.
const (
	SummaryFile          = "stats.txt"
	HistogramFile        = "time-differences.png"
	TrimmedHistogramFile = "time-differences-trimmed.png"
)

// Dump writes the summary text and the raw and outlier-trimmed histograms
// into dir, creating it when missing.
func Dump(dir string, s *Statistics) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create stats directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, SummaryFile), []byte(s.Summary()+"\n"), 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	if err := writeHistogram(filepath.Join(dir, HistogramFile), s.TimeDifferences); err != nil {
		return err
	}

	trimmed, err := s.TimeDifferences.WithoutOutliers()
	if err != nil {
		return fmt.Errorf("remove outliers: %w", err)
	}
	return writeHistogram(filepath.Join(dir, TrimmedHistogramFile), trimmed)
}

func writeHistogram(path string, dist *Distribution) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create histogram file: %w", err)
	}
	if err := NewHistogram(dist).WritePNG(file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close histogram file: %w", err)
	}
	return nil
}
