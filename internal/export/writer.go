package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// ArtifactWriter owns the on-disk layout of the exported JSON files:
// one leaderboard summary at the tournament root and one scorecard per
// match under group_scorecard/<round>/. The transform core never
// touches the filesystem.
type ArtifactWriter struct {
	outputDir    string
	tournamentID string
	logger       *logrus.Logger
}

func NewArtifactWriter(outputDir, tournamentID string, logger *logrus.Logger) *ArtifactWriter {
	return &ArtifactWriter{
		outputDir:    outputDir,
		tournamentID: tournamentID,
		logger:       logger,
	}
}

// WriteLeaderboard writes the round-by-round summary artifact.
func (w *ArtifactWriter) WriteLeaderboard(data []byte) error {
	path := filepath.Join(w.outputDir, w.tournamentID, "round-play.json")
	if err := w.writeFile(path, data); err != nil {
		return fmt.Errorf("failed to write leaderboard artifact: %w", err)
	}
	w.logger.WithFields(logrus.Fields{
		"path":  path,
		"bytes": len(data),
	}).Info("Wrote leaderboard artifact")
	return nil
}

// WriteScorecard writes one match's scorecard artifact under the
// per-round directory.
func (w *ArtifactWriter) WriteScorecard(roundNumber, matchNum string, data []byte) error {
	path := filepath.Join(w.outputDir, w.tournamentID, "group_scorecard", roundNumber, fmt.Sprintf("%s.json", matchNum))
	if err := w.writeFile(path, data); err != nil {
		return fmt.Errorf("failed to write scorecard artifact r%s-m%s: %w", roundNumber, matchNum, err)
	}
	w.logger.WithFields(logrus.Fields{
		"round": roundNumber,
		"match": matchNum,
		"path":  path,
	}).Debug("Wrote scorecard artifact")
	return nil
}

// ScorecardPath returns where a match's artifact lives on disk.
func (w *ArtifactWriter) ScorecardPath(roundNumber, matchNum string) string {
	return filepath.Join(w.outputDir, w.tournamentID, "group_scorecard", roundNumber, fmt.Sprintf("%s.json", matchNum))
}

// LeaderboardPath returns where the summary artifact lives on disk.
func (w *ArtifactWriter) LeaderboardPath() string {
	return filepath.Join(w.outputDir, w.tournamentID, "round-play.json")
}

func (w *ArtifactWriter) writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	// Write to a temp file first so readers never see a partial artifact.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
