package decoder

import (
	"context"
	"errors"
	"io"

	"github.com/kestrelgen/gedkit/bytesource"
	"github.com/kestrelgen/gedkit/charset"
	"github.com/kestrelgen/gedkit/gedcom"
	"github.com/kestrelgen/gedkit/gedtree"
	"github.com/kestrelgen/gedkit/lex"
	"github.com/kestrelgen/gedkit/version"
)

// Decode parses a GEDCOM file from an io.Reader using default options.
// Non-fatal problems are collected internally and discarded; callers who
// need to inspect them should use DecodeWithDiagnostics instead.
func Decode(r io.Reader) (*gedcom.Gedcom, error) {
	return DecodeWithOptions(r, DefaultOptions())
}

// DecodeWithOptions parses a GEDCOM file with custom options. The returned
// error is a *FatalError for any condition spec.md §7 classifies as fatal
// (unreadable stream, unrecognized declared encoding, missing HEAD/TRLR, an
// unparseable line, or strict mode rejecting error-severity diagnostics).
// Non-fatal diagnostics accumulated along the way are discarded; use
// DecodeWithDiagnostics to retrieve them.
func DecodeWithOptions(r io.Reader, opts *Options) (*gedcom.Gedcom, error) {
	doc, _, err := decodeInternal(r, opts)
	return doc, err
}

// DecodeResult carries both a decoded Gedcom and the diagnostics collected
// while decoding it. In lenient mode (the default) Document may hold a
// partial graph even when Diagnostics is non-empty.
type DecodeResult struct {
	Document    *gedcom.Gedcom
	Diagnostics Diagnostics
}

// DecodeWithDiagnostics parses a GEDCOM file and returns the decoded
// document together with every non-fatal Diagnostic accumulated while
// decoding it. A nil opts uses DefaultOptions.
func DecodeWithDiagnostics(r io.Reader, opts *Options) (*DecodeResult, error) {
	doc, diags, err := decodeInternal(r, opts)
	return &DecodeResult{Document: doc, Diagnostics: diags}, err
}

// decodeInternal runs the full decode pipeline: character-encoding
// detection, tokenization, tree assembly, entity hydration, and
// cross-reference resolution, against charset/lex/gedtree.
func decodeInternal(r io.Reader, opts *Options) (*gedcom.Gedcom, Diagnostics, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	collector := &diagnosticCollector{strictCustomTags: opts.StrictCustomTags}

	totalSize := int64(-1)
	if src, ok := r.(bytesource.Source); ok {
		totalSize = src.Size()
	}
	wrapped := newProgressReader(r, totalSize, opts.FileObservers)

	lines, err := tokenizeAll(wrapped, opts, collector)
	if err != nil {
		return nil, collector.diagnostics, err
	}

	if err := ctx.Err(); err != nil {
		return nil, collector.diagnostics, err
	}

	roots, buildErrs := gedtree.Build(lines)
	for _, be := range buildErrs {
		switch {
		case isFatalTreeError(be.Message):
			return nil, collector.diagnostics, newFatalError("structure", be.Message, collector.diagnostics, be)
		case be.Message == gedtree.TrailingContentMessage:
			collector.add(NewDiagnostic(be.LineNumber, SeverityWarning, CodeTrailingContent, be.Message, ""))
		default:
			collector.add(NewDiagnostic(be.LineNumber, SeverityError, CodeLevelSkipped, be.Message, ""))
		}
	}

	detectedVersion, _ := version.DetectVersion(lines)

	doc := gedcom.New()
	doc.Header = &gedcom.Header{Version: detectedVersion}

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, collector.diagnostics, err
		}

		switch root.Line.Tag {
		case "HEAD":
			buildHeader(doc, root, detectedVersion, opts, collector)
		case "TRLR":
			doc.Trailer = &gedcom.Trailer{LineNumber: root.Line.LineNumber}
		default:
			dispatchRecord(doc, root, opts, collector)
		}
	}

	if doc.Trailer == nil {
		doc.Trailer = &gedcom.Trailer{}
	}

	resolveReferences(doc, collector)

	if opts.StrictMode && collector.diagnostics.HasErrors() {
		return doc, collector.diagnostics, newFatalError(
			"strict_mode",
			"strict mode rejects a file with error-severity diagnostics",
			collector.diagnostics,
			nil,
		)
	}

	return doc, collector.diagnostics, nil
}

// isFatalTreeError reports whether a gedtree.BuildError represents one of
// the structural conditions spec.md §7 classifies as fatal rather than a
// recoverable per-line issue.
func isFatalTreeError(message string) bool {
	switch message {
	case "first record is not 0 HEAD", "last record is not 0 TRLR", "empty input: missing 0 HEAD and 0 TRLR":
		return true
	default:
		return false
	}
}

// tokenizeAll decodes the raw stream and splits it into tokenized lines.
// A stream-read failure, an unrecognized declared encoding, or an
// unparseable line are all fatal per spec.md §7.
func tokenizeAll(r io.Reader, opts *Options, collector *diagnosticCollector) ([]lex.Line, error) {
	result, decodable, err := charset.Detect(r)
	if err != nil {
		return nil, newFatalError("encoding", "could not determine character encoding", collector.diagnostics, err)
	}
	for _, w := range result.Warnings {
		collector.add(NewDiagnostic(0, SeverityWarning, CodeInvalidValue, w, ""))
	}

	decodedReader, pendingWarnings := charset.NewDecodedReader(decodable, result.Encoding)

	lr := charset.NewLineReader(decodedReader, charset.LineReaderOptions{
		NotificationRate: opts.ReadNotificationRate,
		CancelFlag:       opts.CancelFlag,
		Observers:        opts.ParseObservers,
	})

	tokenizer := lex.NewTokenizer()
	var lines []lex.Line
	for {
		raw, readErr := lr.Next()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if errors.Is(readErr, charset.ErrCancelled) {
			return nil, newFatalError("cancelled", "decode cancelled", collector.diagnostics, readErr)
		}
		if readErr != nil {
			return nil, newFatalError("io", "failed reading input stream", collector.diagnostics, readErr)
		}

		line, warnings, tokErr := tokenizer.Tokenize(raw)
		if len(warnings) > 0 && opts.StrictLineBreaks {
			for _, w := range warnings {
				collector.add(NewDiagnostic(0, SeverityWarning, CodeStrictLineBreak, w, raw))
			}
		}
		if tokErr != nil {
			return nil, newFatalError("syntax", "could not tokenize line", collector.diagnostics, tokErr)
		}
		lines = append(lines, *line)
	}

	for _, w := range pendingWarnings() {
		collector.add(NewDiagnostic(0, SeverityWarning, CodeReplacedByte, w.Message, ""))
	}

	return lines, nil
}

// buildHeader interprets the HEAD record's subtree into doc.Header.
func buildHeader(doc *gedcom.Gedcom, root *gedtree.Node, ver gedcom.Version, opts *Options, collector *diagnosticCollector) {
	tags := flattenRecord(root, opts.MaxNestingDepth, collector)
	header := &gedcom.Header{Version: ver}

	var leftover []*gedcom.Tag
	for i := 0; i < len(tags); i++ {
		tag := tags[i]
		if tag.Level != 1 {
			continue
		}

		switch tag.Tag {
		case "CHAR":
			header.Encoding = gedcom.Encoding(tag.Value)
		case "SOUR":
			header.SourceSystem = tag.Value
			header.AncestryTreeID = findSubordinateValue(tags, i, tag.Level, "_TREE")
		case "LANG":
			header.Language = tag.Value
		case "COPR":
			header.Copyright = tag.Value
		case "SUBM":
			header.SubmitterXRef = tag.Value
		case "GEDC", "DATE", "FILE", "DEST", "PLAC", "NOTE":
			// Known tags not carried as typed fields in this model.
		default:
			if collector.ignorableCustomTag(tag.Tag) {
				continue
			}
			collector.addUnknownTag(tag.LineNumber, tag.Tag, tag.Value)
			leftover = append(leftover, tag)
		}
	}
	header.CustomFacts = leftover
	header.Vendor = gedcom.DetectVendor(header.SourceSystem)

	doc.Header = header
}

// findSubordinateValue returns the value of the first child tag with the
// given name directly beneath the tag at index parentIdx, or "".
func findSubordinateValue(tags []*gedcom.Tag, parentIdx, parentLevel int, name string) string {
	for i := parentIdx + 1; i < len(tags); i++ {
		if tags[i].Level <= parentLevel {
			break
		}
		if tags[i].Level == parentLevel+1 && tags[i].Tag == name {
			return tags[i].Value
		}
	}
	return ""
}

// dispatchRecord flattens a top-level record's subtree and hands it to
// the handler registered for its tag, if any.
func dispatchRecord(doc *gedcom.Gedcom, root *gedtree.Node, opts *Options, collector *diagnosticCollector) {
	tags := flattenRecord(root, opts.MaxNestingDepth, collector)
	if len(tags) == 0 {
		return
	}

	checkXRef(root.Line.XRef, root.Line.LineNumber, collector)

	handler, ok := handlers[root.Line.Tag]
	if !ok {
		collector.add(NewDiagnostic(
			root.Line.LineNumber,
			SeverityWarning,
			CodeSkippedRecord,
			"unrecognized top-level record type, skipped",
			root.Line.Tag,
		))
		return
	}

	handler(doc, root.Line.XRef, tags[0].Value, tags[1:], collector)
}
