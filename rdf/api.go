package rdf

// Option configures reader behavior.
type Option func(*Options)

// Options configures the N-Quads reader.
type Options struct {
	// MaxLineBytes limits a single statement line; 0 means unlimited.
	MaxLineBytes int

	// StrictIRIValidation validates every IRI with ValidateIRI while reading.
	StrictIRIValidation bool
}

func defaultOptions() Options {
	return Options{
		MaxLineBytes: 1 << 20,
	}
}

// OptMaxLineBytes sets the maximum line size limit.
func OptMaxLineBytes(maxBytes int) Option {
	return func(opts *Options) {
		opts.MaxLineBytes = maxBytes
	}
}

// OptStrictIRIValidation enables IRI validation while reading.
// Invalid IRIs cause parse errors when this option is enabled.
func OptStrictIRIValidation() Option {
	return func(opts *Options) {
		opts.StrictIRIValidation = true
	}
}
