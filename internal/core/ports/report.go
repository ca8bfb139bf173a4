package ports

import "context"

// DocumentRenderer is the opaque sequential-drawing target the report is
// written to. The position cursor is driven by the caller, top to bottom;
// the renderer only places text and produces the final document bytes.
type DocumentRenderer interface {
	SetFontSize(pt float64)
	SetBold(bold bool)
	Text(x, y float64, s string)
	Output() ([]byte, error)
}

// ReportResult is a fully rendered, downloadable order report.
type ReportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReportService produces the order report for the current roster state.
type ReportService interface {
	Generate(ctx context.Context) (*ReportResult, error)
}
