package models

// ContentTypeMarkdown is the content type of every generated document.
const ContentTypeMarkdown = "Markdown"

// Document is one generated Markdown file.
type Document struct {
	// ID identifies the document within one conversion run.
	ID string `json:"id"`
	// Filename is the suggested file name, ending in ".md".
	Filename string `json:"filename"`
	// ContentType is always ContentTypeMarkdown.
	ContentType string `json:"content_type"`
	// Size is a human-readable size estimate such as "1.25 KB".
	Size string `json:"size"`
	// Content is the Markdown text.
	Content string `json:"content"`
	// Sheet is the source sheet name.
	Sheet string `json:"sheet"`
	// Version is the layout the source row was read with.
	Version TemplateVersion `json:"version"`
	// Row is the zero-based index of the source row among the data rows.
	Row int `json:"row"`
}

// SheetReport summarizes the conversion of one sheet.
type SheetReport struct {
	Name      string    `json:"name"`
	Detection Detection `json:"detection"`
	// Forced is true when the layout was chosen by the caller.
	Forced    bool `json:"forced,omitempty"`
	DataRows  int  `json:"data_rows"`
	Documents int  `json:"documents"`
	Skipped   int  `json:"skipped"`
}

// Conversion is the result of one conversion run.
type Conversion struct {
	// Documents in sheet-then-row order.
	Documents []Document `json:"documents"`
	// Sheets in selection order.
	Sheets []SheetReport `json:"sheets"`
}
