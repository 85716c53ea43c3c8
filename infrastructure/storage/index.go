package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"nexora.io/application/constants"
	"nexora.io/infrastructure/logger"
)

// ScanStorage manages the on-disk layout for scan sessions:
//
//	<base>/scans/<scanID>/media<ext>
//	<base>/scans/<scanID>/thumbnails/
//	<base>/scans/<scanID>/processed/
//
// processed/ holds intermediate frames and face crops and is wiped after every
// scan; thumbnails/ holds the retained evidence images.
type ScanStorage struct {
	BaseDir string
}

var Storage *ScanStorage

func InitialiseStorage() {
	baseDir := os.Getenv("STORAGE_DIR")
	if baseDir == "" {
		baseDir = "./storage"
	}
	Storage = &ScanStorage{BaseDir: baseDir}
	if err := os.MkdirAll(Storage.scansDir(), 0o755); err != nil {
		logger.Error("failed to create scan storage directory", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return
	}
	logger.Info("scan storage initialised", logger.LoggerOptions{
		Key:  "base_dir",
		Data: baseDir,
	})
}

func (s *ScanStorage) scansDir() string {
	return filepath.Join(s.BaseDir, "scans")
}

func (s *ScanStorage) ScanDir(scanID string) string {
	return filepath.Join(s.scansDir(), scanID)
}

func (s *ScanStorage) ThumbnailsDir(scanID string) string {
	return filepath.Join(s.ScanDir(scanID), "thumbnails")
}

func (s *ScanStorage) ProcessedDir(scanID string) string {
	return filepath.Join(s.ScanDir(scanID), "processed")
}

// CreateScanFolder creates the directory tree for a new scan.
func (s *ScanStorage) CreateScanFolder(scanID string) error {
	for _, dir := range []string{s.ScanDir(scanID), s.ThumbnailsDir(scanID), s.ProcessedDir(scanID)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create scan folder %s: %w", dir, err)
		}
	}
	return nil
}

// SaveMedia streams an uploaded file into the scan folder as media<ext> and
// returns the stored path.
func (s *ScanStorage) SaveMedia(scanID string, src io.Reader, extension string) (string, error) {
	mediaPath := filepath.Join(s.ScanDir(scanID), fmt.Sprintf("media%s", strings.ToLower(extension)))
	dst, err := os.Create(mediaPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(mediaPath)
		return "", err
	}
	return mediaPath, nil
}

// MediaPath resolves the stored media file for a scan by probing the allowed
// extensions.
func (s *ScanStorage) MediaPath(scanID string) (string, bool) {
	for ext := range constants.AllowedExtensions {
		mediaPath := filepath.Join(s.ScanDir(scanID), fmt.Sprintf("media%s", ext))
		if _, err := os.Stat(mediaPath); err == nil {
			return mediaPath, true
		}
	}
	return "", false
}

// ThumbnailPath resolves a retained evidence image. The file name is reduced to
// its base to keep lookups inside the scan folder.
func (s *ScanStorage) ThumbnailPath(scanID string, fileName string) (string, bool) {
	thumbPath := filepath.Join(s.ThumbnailsDir(scanID), filepath.Base(fileName))
	if _, err := os.Stat(thumbPath); err != nil {
		return "", false
	}
	return thumbPath, true
}

// CleanupProcessed removes the intermediate frame workspace for a scan.
func (s *ScanStorage) CleanupProcessed(scanID string) {
	if err := os.RemoveAll(s.ProcessedDir(scanID)); err != nil {
		logger.Warning("failed to clean up processed frames", logger.LoggerOptions{
			Key:  "scan_id",
			Data: scanID,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}
}

// DeleteScan removes a scan folder and everything in it.
func (s *ScanStorage) DeleteScan(scanID string) error {
	return os.RemoveAll(s.ScanDir(scanID))
}

// ListScanFolders enumerates the scan ids present on disk.
func (s *ScanStorage) ListScanFolders() ([]string, error) {
	entries, err := os.ReadDir(s.scansDir())
	if err != nil {
		return nil, err
	}
	ids := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			ids = append(ids, entry.Name())
		}
	}
	return ids, nil
}
