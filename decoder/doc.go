// Package decoder provides high-level GEDCOM file decoding functionality.
//
// The decoder package turns a raw byte stream into a structured Gedcom
// graph. It detects and decodes the file's character encoding, tokenizes
// and tree-assembles its lines, interprets the tree into typed entities,
// and resolves cross-references between them, collecting diagnostics
// along the way instead of stopping at the first problem.
//
// Example usage:
//
//	f, err := os.Open("family.ged")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	doc, err := decoder.Decode(f)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Found %d individuals\n", len(doc.Individuals()))
package decoder
