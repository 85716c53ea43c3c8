package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testStorage(t *testing.T) *ScanStorage {
	t.Helper()
	return &ScanStorage{BaseDir: t.TempDir()}
}

func TestCreateScanFolderLayout(t *testing.T) {
	s := testStorage(t)
	if err := s.CreateScanFolder("scan1"); err != nil {
		t.Fatalf("CreateScanFolder failed: %v", err)
	}
	for _, dir := range []string{s.ScanDir("scan1"), s.ThumbnailsDir("scan1"), s.ProcessedDir("scan1")} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory %s to exist", dir)
		}
	}
}

func TestSaveAndResolveMedia(t *testing.T) {
	s := testStorage(t)
	if err := s.CreateScanFolder("scan1"); err != nil {
		t.Fatalf("CreateScanFolder failed: %v", err)
	}

	storedPath, err := s.SaveMedia("scan1", strings.NewReader("fake video bytes"), ".MP4")
	if err != nil {
		t.Fatalf("SaveMedia failed: %v", err)
	}
	if filepath.Base(storedPath) != "media.mp4" {
		t.Errorf("stored file = %s, expected media.mp4", filepath.Base(storedPath))
	}

	resolved, found := s.MediaPath("scan1")
	if !found {
		t.Fatal("MediaPath did not find the stored media")
	}
	if resolved != storedPath {
		t.Errorf("MediaPath = %s, expected %s", resolved, storedPath)
	}

	if _, found := s.MediaPath("missing"); found {
		t.Error("MediaPath resolved a scan that was never created")
	}
}

func TestThumbnailPathStaysInsideScanFolder(t *testing.T) {
	s := testStorage(t)
	if err := s.CreateScanFolder("scan1"); err != nil {
		t.Fatalf("CreateScanFolder failed: %v", err)
	}
	thumbFile := filepath.Join(s.ThumbnailsDir("scan1"), "frame_000000.jpg")
	if err := os.WriteFile(thumbFile, []byte("jpg"), 0o644); err != nil {
		t.Fatalf("failed to seed thumbnail: %v", err)
	}

	resolved, found := s.ThumbnailPath("scan1", "../../scan1/thumbnails/frame_000000.jpg")
	if !found {
		t.Fatal("expected the base name to resolve")
	}
	if resolved != thumbFile {
		t.Errorf("ThumbnailPath = %s, expected %s", resolved, thumbFile)
	}

	if _, found := s.ThumbnailPath("scan1", "missing.jpg"); found {
		t.Error("ThumbnailPath resolved a file that does not exist")
	}
}

func TestCleanupProcessedRemovesOnlyWorkspace(t *testing.T) {
	s := testStorage(t)
	if err := s.CreateScanFolder("scan1"); err != nil {
		t.Fatalf("CreateScanFolder failed: %v", err)
	}
	if _, err := s.SaveMedia("scan1", strings.NewReader("bytes"), ".jpg"); err != nil {
		t.Fatalf("SaveMedia failed: %v", err)
	}

	s.CleanupProcessed("scan1")
	if _, err := os.Stat(s.ProcessedDir("scan1")); !os.IsNotExist(err) {
		t.Error("expected processed workspace to be removed")
	}
	if _, found := s.MediaPath("scan1"); !found {
		t.Error("cleanup must not touch the stored media")
	}
	if _, err := os.Stat(s.ThumbnailsDir("scan1")); err != nil {
		t.Error("cleanup must not touch the thumbnails folder")
	}
}

func TestListScanFolders(t *testing.T) {
	s := testStorage(t)
	for _, id := range []string{"scan1", "scan2"} {
		if err := s.CreateScanFolder(id); err != nil {
			t.Fatalf("CreateScanFolder failed: %v", err)
		}
	}
	ids, err := s.ListScanFolders()
	if err != nil {
		t.Fatalf("ListScanFolders failed: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("found %d scan folders, expected 2", len(ids))
	}
}

func TestDeleteScan(t *testing.T) {
	s := testStorage(t)
	if err := s.CreateScanFolder("scan1"); err != nil {
		t.Fatalf("CreateScanFolder failed: %v", err)
	}
	if err := s.DeleteScan("scan1"); err != nil {
		t.Fatalf("DeleteScan failed: %v", err)
	}
	if _, err := os.Stat(s.ScanDir("scan1")); !os.IsNotExist(err) {
		t.Error("expected scan folder to be removed")
	}
}
