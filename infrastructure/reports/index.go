package reports

import (
	"fmt"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"nexora.io/entities"
	"nexora.io/infrastructure/logger"
)

// RenderScanReport writes a printable forensic summary of a finished scan
// into the scan folder. It runs off the hot path; failures are logged and
// never affect the stored report.
func RenderScanReport(scanDir string, report entities.ScanReport) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 10, "NEXORA FORENSIC ANALYSIS REPORT", "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("Scan ID: %s", report.ScanID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("File: %s", report.FileName), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("Verdict: %s", report.Verdict), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("Confidence: %.2f%%", report.ConfidenceScore), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf("Frames analyzed: %d", report.TotalFramesAnalyzed), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Mathematical Evidence", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 10, fmt.Sprintf(
		"The frequency-domain engine measured a mean high-frequency noise score of %.2f. "+
			"Elevated values indicate non-biological pixel patterns typical of GAN-based face swaps.",
		meanAnomalyScore(report.FrameData)), "", "L", false)

	reportPath := filepath.Join(scanDir, "report.pdf")
	if err := pdf.OutputFileAndClose(reportPath); err != nil {
		logger.Error("failed to render scan report pdf", logger.LoggerOptions{
			Key:  "scan_id",
			Data: report.ScanID,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return
	}
	logger.Info("scan report pdf rendered", logger.LoggerOptions{
		Key:  "scan_id",
		Data: report.ScanID,
	}, logger.LoggerOptions{
		Key:  "report_path",
		Data: reportPath,
	})
}

func meanAnomalyScore(frameData []entities.FrameResult) float64 {
	if len(frameData) == 0 {
		return 0
	}
	sum := 0.0
	for _, result := range frameData {
		sum += result.FFTAnomalyScore
	}
	return sum / float64(len(frameData))
}
