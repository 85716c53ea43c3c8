package entities

// MediaItem describes a submitted file. It is created at submission time and
// never mutated; the pipeline task payload carries it to the worker.
type MediaItem struct {
	ScanID           string    `json:"scan_id"`
	MediaType        MediaType `json:"media_type"`
	OriginalFileName string    `json:"original_filename"`
	StoredPath       string    `json:"stored_path"`
}
