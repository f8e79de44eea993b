// Package svcdoc converts service documentation workbooks into Markdown.
package svcdoc

import (
	"log/slog"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
)

// TemplateAuto selects the layout of each sheet from its header row.
const TemplateAuto = "auto"

// Options configures conversion behavior.
type Options struct {
	// Template forces a layout ("v1" or "v2") for every sheet.
	// Empty or "auto" detects the layout per sheet.
	Template string
	// Concurrency is the number of sheets converted in parallel.
	// Values below 1 mean one sheet at a time.
	Concurrency int
	// Logger receives conversion diagnostics. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Template:    TemplateAuto,
		Concurrency: 1,
	}
}

// ForcedVersion returns the forced layout, if any.
func (o Options) ForcedVersion() (models.TemplateVersion, bool, error) {
	if o.Template == "" || o.Template == TemplateAuto {
		return "", false, nil
	}
	v, err := models.ParseTemplateVersion(o.Template)
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) concurrency() int {
	if o.Concurrency < 1 {
		return 1
	}
	return o.Concurrency
}
