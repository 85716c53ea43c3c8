package dto

import "io"

type SubmitScanDTO struct {
	FileName string `validate:"required"`
	File     io.Reader
}

type FetchScanDTO struct {
	ScanID string `validate:"required"`
}

type FetchThumbnailDTO struct {
	ScanID   string `validate:"required"`
	FileName string `validate:"required"`
}
