package svcdoc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fedpa/svcdoc-go/pkg/svcdoc/models"
	"github.com/fedpa/svcdoc-go/pkg/svcdoc/parser"
	"github.com/fedpa/svcdoc-go/pkg/svcdoc/render"
	"golang.org/x/sync/errgroup"
)

// Convert renders one Markdown document per qualifying data row of the
// selected sheets. Documents keep sheet-then-row order.
func Convert(ctx context.Context, wb *models.Workbook, sheets []string, opts Options) (*models.Conversion, error) {
	if len(sheets) == 0 {
		return nil, &SelectionError{Err: ErrNoSheetsSelected}
	}
	selected := make([]*models.Sheet, len(sheets))
	for i, name := range sheets {
		sheet, ok := wb.Sheet(name)
		if !ok {
			return nil, &SelectionError{Sheet: name, Err: ErrSheetNotFound}
		}
		selected[i] = sheet
	}

	forced, isForced, err := opts.ForcedVersion()
	if err != nil {
		return nil, err
	}

	log := opts.logger().With("workbook", wb.Name)
	results := make([]sheetResult, len(selected))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())
	for i, sheet := range selected {
		g.Go(func() error {
			res, err := convertSheet(ctx, sheet, forced, isForced, log)
			if err != nil {
				return fmt.Errorf("convert sheet %q: %w", sheet.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	conv := &models.Conversion{}
	seen := make(map[string]int)
	for _, res := range results {
		for _, doc := range res.documents {
			doc.ID = uniqueID(seen, doc.ID)
			conv.Documents = append(conv.Documents, doc)
		}
		conv.Sheets = append(conv.Sheets, res.report)
	}

	log.Info("conversion finished",
		slog.Int("sheets", len(conv.Sheets)),
		slog.Int("documents", len(conv.Documents)),
	)
	return conv, nil
}

type sheetResult struct {
	report    models.SheetReport
	documents []models.Document
}

// convertSheet runs the matching row transformer over every data row.
func convertSheet(ctx context.Context, sheet *models.Sheet, forced models.TemplateVersion, isForced bool, log *slog.Logger) (sheetResult, error) {
	detection := parser.DetectVersion(sheet.Header())
	version := detection.Version
	if isForced {
		version = forced
	} else if detection.Weak() {
		log.Warn("header matches neither template strongly",
			slog.String("sheet", sheet.Name),
			slog.String("version", string(detection.Version)),
			slog.Int("v1_matches", detection.V1Matches),
			slog.Int("v2_matches", detection.V2Matches),
		)
	}

	dataRows := sheet.DataRows()
	res := sheetResult{
		report: models.SheetReport{
			Name:      sheet.Name,
			Detection: detection,
			Forced:    isForced,
			DataRows:  len(dataRows),
		},
	}
	res.report.Detection.Version = version

	for index, row := range dataRows {
		if err := ctx.Err(); err != nil {
			return sheetResult{}, err
		}
		doc, ok := transformRow(version, row, index, sheet.Name)
		if !ok {
			res.report.Skipped++
			continue
		}
		res.documents = append(res.documents, doc)
	}
	res.report.Documents = len(res.documents)

	log.Debug("sheet converted",
		slog.String("sheet", sheet.Name),
		slog.String("version", string(version)),
		slog.Int("documents", res.report.Documents),
		slog.Int("skipped", res.report.Skipped),
	)
	return res, nil
}

// transformRow renders row with the transformer of version; blank rows are
// skipped.
func transformRow(version models.TemplateVersion, row models.Row, index int, sheetName string) (models.Document, bool) {
	if row.IsBlank() {
		return models.Document{}, false
	}
	if version == models.V2 {
		return render.V2(row, index, sheetName)
	}
	return render.V1(row, index, sheetName), true
}

// uniqueID returns id, or id with a "-<n>" suffix when it was already used.
func uniqueID(seen map[string]int, id string) string {
	seen[id]++
	if seen[id] == 1 {
		return id
	}
	for {
		candidate := fmt.Sprintf("%s-%d", id, seen[id])
		if seen[candidate] == 0 {
			seen[candidate] = 1
			return candidate
		}
		seen[id]++
	}
}
