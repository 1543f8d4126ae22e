package reporting

import "errors"

// Erros específicos para o contexto de relatórios
var (
	ErrTitleRequired  = errors.New("report title is required")
	ErrInvalidType    = errors.New("invalid report type")
	ErrInvalidPeriod  = errors.New("invalid report period")
	ErrReportNotFound = errors.New("report not found")
	ErrGenerateID     = errors.New("error generating report ID")
	ErrDatabase       = errors.New("database operation error")
)
