// Package rdf provides the compact RDF model shared by the rdfpath packages.
//
// Copyright 2026 Geoknoesis LLC (www.geoknoesis.com)
//
// It covers:
//   - Terms: IRI, BlankNode, Literal, TripleTerm and the DefaultGraph marker,
//     with structural equality (Equal), canonical keys (Key) and textual values (Value).
//   - Quads: Quad with G == nil (or DefaultGraph) meaning the default graph.
//   - Vocabulary: RDFFirst, RDFRest and RDFNil for collections, and XSD datatypes.
//   - I/O: QuadReader and QuadWriter for N-Quads, and ParseTerm for single terms.
//   - Errors: sentinel errors with programmatic codes, see Code.
//
// Example (reading quads):
//
//	dec := rdf.NewQuadReader(strings.NewReader(input))
//	for {
//	    quad, err := dec.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        // handle error
//	    }
//	    // process quad.S, quad.P, quad.O, quad.G
//	}
package rdf
