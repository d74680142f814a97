package output

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"

	"github.com/nbrown30/Salesforce-XML-Package-Builder/internal/domain"
	"github.com/nbrown30/Salesforce-XML-Package-Builder/internal/manifest"
	"github.com/nbrown30/Salesforce-XML-Package-Builder/internal/utils"
)

// xmlHeader is the document declaration. No encoding attribute is emitted;
// the bytes are UTF-8 regardless.
const xmlHeader = `<?xml version="1.0"?>`

// Writer serializes a manifest to its destination file
type Writer struct {
	path   string
	dryRun bool
	log    *utils.Logger
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	// Path is the destination file, e.g. <root>/package.xml.
	Path string

	// DryRun renders without touching the filesystem.
	DryRun bool

	Logger *utils.Logger
}

// NewWriter creates a new manifest writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.Logger == nil {
		opts.Logger = utils.NewDefaultLogger()
	}
	return &Writer{
		path:   opts.Path,
		dryRun: opts.DryRun,
		log:    opts.Logger.WithComponent("writer"),
	}
}

// Render serializes a manifest to its on-disk byte form: tab-indented XML
// with CRLF line breaks, preceded by the declaration.
func Render(m *manifest.Manifest) ([]byte, error) {
	body, err := xml.MarshalIndent(m, "", "\t")
	if err != nil {
		return nil, err
	}

	doc := xmlHeader + "\r\n" + strings.ReplaceAll(string(body), "\n", "\r\n") + "\r\n"
	return []byte(doc), nil
}

// Write renders the manifest and replaces the destination file. The bytes
// go to a temp file in the destination directory first and are renamed into
// place, so a failed write never leaves a half-written manifest behind.
func (w *Writer) Write(m *manifest.Manifest) error {
	data, err := Render(m)
	if err != nil {
		return domain.NewWriteError(w.path, err)
	}

	if w.dryRun {
		w.log.Info().Str("path", w.path).Msg("dry run, not writing")
		return nil
	}

	dir := filepath.Dir(w.path)
	tmp, err := os.CreateTemp(dir, ".package-*.xml.tmp")
	if err != nil {
		return domain.NewWriteError(w.path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return domain.NewWriteError(w.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return domain.NewWriteError(w.path, err)
	}
	if err := os.Rename(tmpPath, w.path); err != nil {
		os.Remove(tmpPath)
		return domain.NewWriteError(w.path, err)
	}

	w.log.Info().
		Str("path", w.path).
		Int("types", len(m.Types)).
		Int("members", m.MemberCount()).
		Msg("manifest written")
	return nil
}

// Path returns the destination path
func (w *Writer) Path() string {
	return w.path
}
