package notecards

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-notecards/internal/fileutil"
)

// File permissions for written output.
const (
	outputDirPerm  = 0o750
	outputFilePerm = 0o644
)

// Write creates outputDir if needed and writes every document as
// "<prefix>-<n>.html", overwriting existing files. With WithPDF, each page
// is also printed to "<prefix>-<n>.pdf" beside it.
// Files already written stay on disk when a later document fails.
func (g *Generator) Write(ctx context.Context, result *Result, outputDir string) ([]WrittenFile, error) {
	if result == nil {
		return nil, nil
	}
	if outputDir == "" {
		outputDir = "."
	}

	if err := fileutil.EnsureDir(outputDir, outputDirPerm); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}

	written := make([]WrittenFile, 0, len(result.Documents))
	for _, doc := range result.Documents {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		htmlPath := filepath.Join(outputDir, doc.Name)
		if err := fileutil.WriteFileAtomic(htmlPath, doc.HTML, outputFilePerm); err != nil {
			return written, fmt.Errorf("%w: %s: %v", ErrWriteDocument, htmlPath, err)
		}
		wf := WrittenFile{Document: doc, HTMLPath: htmlPath}

		if g.printer != nil {
			pdfPath, err := g.printPDF(ctx, htmlPath)
			if err != nil {
				return written, fmt.Errorf("printing %s: %w", htmlPath, err)
			}
			wf.PDFPath = pdfPath
		}
		written = append(written, wf)
	}
	return written, nil
}

// printPDF prints htmlPath and writes the PDF next to it.
func (g *Generator) printPDF(ctx context.Context, htmlPath string) (string, error) {
	pdf, err := g.printer.PrintFile(ctx, htmlPath)
	if err != nil {
		return "", err
	}
	pdfPath := strings.TrimSuffix(htmlPath, filepath.Ext(htmlPath)) + ".pdf"
	if err := fileutil.WriteFileAtomic(pdfPath, pdf, outputFilePerm); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrWriteDocument, pdfPath, err)
	}
	return pdfPath, nil
}
