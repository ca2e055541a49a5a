package dto

// Export record types and formats.
const (
	ExportTemperatures = "temperatures"
	ExportChecklists   = "checklists"

	FormatPDF   = "pdf"
	FormatExcel = "xlsx"
)

// ExportRequest a date-range download of records at a location.
type ExportRequest struct {
	LocationID string `query:"location_id" validate:"required,uuid"`
	Type       string `query:"type" validate:"required,oneof=temperatures checklists"`
	Format     string `query:"format" validate:"required,oneof=pdf xlsx"`
	StartDate  string `query:"start_date" validate:"required"` // YYYY-MM-DD
	EndDate    string `query:"end_date" validate:"required"`   // YYYY-MM-DD
}

// ExportTable is the format-neutral table handed to the PDF/Excel renderers.
type ExportTable struct {
	Title    string
	Subtitle string
	Headers  []string
	Rows     [][]string
}

// ExportFile the rendered document.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
