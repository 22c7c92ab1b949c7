package rdf

// Namespace IRIs.
const (
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"
)

// RDF vocabulary terms used by collections and literals.
var (
	// RDFFirst links a collection node to its item.
	RDFFirst = IRI{Value: RDFNamespace + "first"}
	// RDFRest links a collection node to the remainder of the collection.
	RDFRest = IRI{Value: RDFNamespace + "rest"}
	// RDFNil is the canonical empty collection.
	RDFNil = IRI{Value: RDFNamespace + "nil"}
	// RDFType is rdf:type.
	RDFType = IRI{Value: RDFNamespace + "type"}
	// RDFLangString is the datatype of language-tagged literals.
	RDFLangString = IRI{Value: RDFNamespace + "langString"}
)

// XML Schema datatypes.
var (
	XSDString  = IRI{Value: XSDNamespace + "string"}
	XSDInteger = IRI{Value: XSDNamespace + "integer"}
	XSDDecimal = IRI{Value: XSDNamespace + "decimal"}
	XSDDouble  = IRI{Value: XSDNamespace + "double"}
	XSDBoolean = IRI{Value: XSDNamespace + "boolean"}
)
