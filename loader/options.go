package loader

import (
	"net/http"

	ld "github.com/piprate/json-gold/ld"
	"github.com/sirupsen/logrus"

	"github.com/geoknoesis/rdfpath/rdf"
)

// Option configures loading.
type Option func(*options)

type options struct {
	logger logrus.FieldLogger
	base   string
	reader []rdf.Option

	documents      ld.DocumentLoader
	processingMode string
	safeMode       bool
}

func defaultOptions() options {
	return options{logger: logrus.StandardLogger()}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// OptLogger sets the logger used for per-file reporting.
func OptLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// OptBase overrides the base IRI used to resolve relative IRIs in JSON-LD files.
// LoadFile defaults to the file:// IRI of the file itself.
func OptBase(base string) Option {
	return func(o *options) {
		o.base = base
	}
}

// OptReader passes options to the N-Quads reader.
func OptReader(opts ...rdf.Option) Option {
	return func(o *options) {
		o.reader = append(o.reader, opts...)
	}
}

// OptDocumentLoader resolves remote JSON-LD contexts through l.
func OptDocumentLoader(l ld.DocumentLoader) Option {
	return func(o *options) {
		o.documents = l
	}
}

// OptRemoteDocuments allows remote JSON-LD contexts to be fetched over HTTP with
// client, honouring Cache-Control headers. Reusing the returned Option shares
// its cache. A nil client means http.DefaultClient, which has no timeout.
func OptRemoteDocuments(client *http.Client) Option {
	docs := ld.NewRFC7324CachingDocumentLoader(client)
	return OptDocumentLoader(docs)
}

// OptProcessingMode selects the JSON-LD processing mode, "json-ld-1.0" or
// "json-ld-1.1" (the default).
func OptProcessingMode(mode string) Option {
	return func(o *options) {
		o.processingMode = mode
	}
}

// OptSafeMode makes JSON-LD processing fail on constructs that would
// otherwise be dropped silently.
func OptSafeMode(on bool) Option {
	return func(o *options) {
		o.safeMode = on
	}
}
