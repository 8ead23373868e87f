// Package encoder provides functionality to write GEDCOM documents to files.
//
// The encoder package converts a decoded gedcom.Gedcom back into the GEDCOM
// file format. It supports customizable line endings and ensures proper
// GEDCOM structure is maintained.
//
// Example usage:
//
//	g, err := decoder.Decode(r)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f, err := os.Create("output.ged")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	if err := encoder.Encode(f, g); err != nil {
//	    log.Fatal(err)
//	}
package encoder

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/kestrelgen/gedkit/gedcom"
)

// Encode writes a GEDCOM document to a writer using default options.
func Encode(w io.Writer, doc *gedcom.Gedcom) error {
	return EncodeWithOptions(w, doc, DefaultOptions())
}

// EncodeWithOptions writes a GEDCOM document with custom options. Records
// within each entity kind are written in ascending xref order so the output
// is deterministic regardless of map iteration order.
func EncodeWithOptions(w io.Writer, doc *gedcom.Gedcom, opts *EncodeOptions) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if doc == nil {
		return fmt.Errorf("encoder: cannot encode a nil document")
	}

	if err := writeHeader(w, doc.Header, opts); err != nil {
		return err
	}

	for _, subm := range sortedByXRef(doc.Submitters(), func(s *gedcom.Submitter) string { return s.XRef }) {
		if err := writeTopLevelRecord(w, subm.XRef, "SUBM", "", submitterToTags(subm, opts), opts); err != nil {
			return err
		}
	}

	for _, indi := range sortedByXRef(doc.Individuals(), func(i *gedcom.Individual) string { return i.XRef }) {
		if err := writeTopLevelRecord(w, indi.XRef, "INDI", "", individualToTags(indi, opts), opts); err != nil {
			return err
		}
	}

	for _, fam := range sortedByXRef(doc.Families(), func(f *gedcom.Family) string { return f.XRef }) {
		if err := writeTopLevelRecord(w, fam.XRef, "FAM", "", familyToTags(fam, opts), opts); err != nil {
			return err
		}
	}

	for _, src := range sortedByXRef(doc.Sources(), func(s *gedcom.Source) string { return s.XRef }) {
		if err := writeTopLevelRecord(w, src.XRef, "SOUR", "", sourceToTags(src, opts), opts); err != nil {
			return err
		}
	}

	for _, repo := range sortedByXRef(doc.Repositories(), func(r *gedcom.Repository) string { return r.XRef }) {
		if err := writeTopLevelRecord(w, repo.XRef, "REPO", "", repositoryToTags(repo, opts), opts); err != nil {
			return err
		}
	}

	for _, media := range sortedByXRef(doc.MultimediaObjects(), func(m *gedcom.MediaObject) string { return m.XRef }) {
		if err := writeTopLevelRecord(w, media.XRef, "OBJE", "", mediaObjectToTags(media, opts), opts); err != nil {
			return err
		}
	}

	for _, note := range sortedByXRef(doc.Notes(), func(n *gedcom.Note) string { return n.XRef }) {
		first, rest := noteContinuationTags(note, opts)
		rest = append(rest, note.CustomFacts...)
		if err := writeTopLevelRecord(w, note.XRef, "NOTE", first, rest, opts); err != nil {
			return err
		}
	}

	return writeTrailer(w, opts)
}

// sortedByXRef returns items sorted by the xref returned by key, leaving the
// input slice untouched.
func sortedByXRef[T any](items []T, key func(T) string) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool { return key(out[i]) < key(out[j]) })
	return out
}

func writeHeader(w io.Writer, header *gedcom.Header, opts *EncodeOptions) error {
	if _, err := fmt.Fprintf(w, "0 HEAD%s", opts.LineEnding); err != nil {
		return err
	}
	if header == nil {
		_, err := fmt.Fprintf(w, "1 CHAR %s%s", gedcom.EncodingUTF8, opts.LineEnding)
		return err
	}

	if header.SourceSystem != "" {
		if _, err := fmt.Fprintf(w, "1 SOUR %s%s", header.SourceSystem, opts.LineEnding); err != nil {
			return err
		}
	}

	if !header.Date.IsZero() {
		if _, err := fmt.Fprintf(w, "1 DATE %s%s", formatHeaderDate(header.Date), opts.LineEnding); err != nil {
			return err
		}
	}

	if header.SubmitterXRef != "" {
		if _, err := fmt.Fprintf(w, "1 SUBM %s%s", header.SubmitterXRef, opts.LineEnding); err != nil {
			return err
		}
	}

	if header.Copyright != "" {
		if _, err := fmt.Fprintf(w, "1 COPR %s%s", header.Copyright, opts.LineEnding); err != nil {
			return err
		}
	}

	if header.Version != "" {
		if _, err := fmt.Fprintf(w, "1 GEDC%s", opts.LineEnding); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "2 VERS %s%s", header.Version, opts.LineEnding); err != nil {
			return err
		}
	}

	encoding := header.Encoding
	if encoding == "" {
		encoding = gedcom.EncodingUTF8
	}
	if _, err := fmt.Fprintf(w, "1 CHAR %s%s", encoding, opts.LineEnding); err != nil {
		return err
	}

	if header.Language != "" {
		if _, err := fmt.Fprintf(w, "1 LANG %s%s", header.Language, opts.LineEnding); err != nil {
			return err
		}
	}

	for _, tag := range header.CustomFacts {
		if err := writeTag(w, tag, opts); err != nil {
			return err
		}
	}

	return nil
}

// formatHeaderDate renders a header creation date in GEDCOM's "DD MON YYYY" form.
func formatHeaderDate(t time.Time) string {
	return strings.ToUpper(t.Format("2 Jan 2006"))
}

// writeTopLevelRecord writes a "0 <xref> <tag> [value]" line followed by its
// subordinate tags.
func writeTopLevelRecord(w io.Writer, xref, tagName, value string, tags []*gedcom.Tag, opts *EncodeOptions) error {
	switch {
	case xref != "" && value != "":
		if _, err := fmt.Fprintf(w, "0 %s %s %s%s", xref, tagName, value, opts.LineEnding); err != nil {
			return err
		}
	case xref != "":
		if _, err := fmt.Fprintf(w, "0 %s %s%s", xref, tagName, opts.LineEnding); err != nil {
			return err
		}
	case value != "":
		if _, err := fmt.Fprintf(w, "0 %s %s%s", tagName, value, opts.LineEnding); err != nil {
			return err
		}
	default:
		if _, err := fmt.Fprintf(w, "0 %s%s", tagName, opts.LineEnding); err != nil {
			return err
		}
	}

	for _, tag := range tags {
		if err := writeTag(w, tag, opts); err != nil {
			return err
		}
	}

	return nil
}

func writeTag(w io.Writer, tag *gedcom.Tag, opts *EncodeOptions) error {
	if tag.Value != "" {
		if _, err := fmt.Fprintf(w, "%d %s %s%s", tag.Level, tag.Tag, tag.Value, opts.LineEnding); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "%d %s%s", tag.Level, tag.Tag, opts.LineEnding); err != nil {
			return err
		}
	}
	return nil
}

func writeTrailer(w io.Writer, opts *EncodeOptions) error {
	_, err := fmt.Fprintf(w, "0 TRLR%s", opts.LineEnding)
	return err
}
