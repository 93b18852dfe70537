package service

import (
	"cereagis/entities"
	"cereagis/pkg/cerea"
)

// ImportResult pairs the created session with its validation report.
type ImportResult struct {
	Session *entities.ImportSession `json:"session"`
	Report  cerea.Report            `json:"report"`
}

// ValidationError aborts an import whose bundle failed validation; the
// report tells the user what is wrong.
type ValidationError struct {
	Report cerea.Report
}

func (e *ValidationError) Error() string {
	if len(e.Report.Issues) > 0 {
		return e.Report.Issues[0]
	}
	return "bundle failed validation"
}

type BundleService interface {
	Import(clientID, mode string, zipData []byte) (*ImportResult, error)
	Get(id, clientID string) (*entities.ImportSession, error)
	Delete(id, clientID string) error
	// ExportZip writes every field of the session as shapefiles and
	// returns the zipped result; clears dirty flags on success.
	ExportZip(id, clientID string) ([]byte, error)
	// ReportXLSX builds the export summary workbook.
	ReportXLSX(id, clientID string) ([]byte, error)
}
