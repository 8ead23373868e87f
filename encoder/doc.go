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
