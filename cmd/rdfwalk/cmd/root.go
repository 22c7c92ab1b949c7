package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/geoknoesis/rdfpath/loader"
	"github.com/geoknoesis/rdfpath/store"
)

// Version is set at build time with -ldflags "-X github.com/geoknoesis/rdfpath/cmd/rdfwalk/cmd.Version=...".
var Version = "dev"

const envPrefix = "RDFWALK"

type rootOpts struct {
	cfgFile string
	v       *viper.Viper
}

var longRootCmdDescription = `rdfwalk loads RDF data (N-Quads, N-Triples or JSON-LD) into memory
and walks the graph along predicates, either from flags or from a YAML plan.

Every persistent flag can also be set in the --config file or through
RDFWALK_* environment variables, e.g. RDFWALK_DEBUG=true.
`

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "rdfwalk",
		Short:         "Walk RDF graphs from the command line.",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "YAML config file")
	flags.BoolP("debug", "d", false, "turn on debug logging")
	flags.StringSlice("data", nil, "data files to load (.nq, .nt, .jsonld, .json)")
	flags.Bool("metrics", false, "print store metrics after the command")
	flags.Bool("remote-contexts", false, "fetch remote JSON-LD contexts over HTTP")
	flags.Duration("remote-timeout", 30*time.Second, "timeout for each remote context fetch")
	for _, key := range []string{"debug", "data", "metrics", "remote-contexts", "remote-timeout"} {
		if err := opts.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			logrus.Errorf("failed to bind flag %s: %v", key, err)
			os.Exit(1)
		}
	}

	rootCmd.AddCommand(newWalkCmd(opts), newStatsCmd(opts), newVersionCmd())
	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		logrus.Errorf("rdfwalk-%s: %v", Version, err)
		stop()
		os.Exit(1)
	}
}

// initConfig reads the config file and environment.
func (o *rootOpts) initConfig() error {
	o.v.SetEnvPrefix(envPrefix)
	o.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	o.v.AutomaticEnv()
	if o.cfgFile != "" {
		o.v.SetConfigFile(o.cfgFile)
		o.v.SetConfigType("yaml")
		if err := o.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config %s", o.cfgFile)
		}
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if o.v.GetBool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	return nil
}

// session is the state shared by data commands: a store and its metrics registry.
type session struct {
	opts     *rootOpts
	registry *prometheus.Registry
	store    *store.Memory
}

func (o *rootOpts) newSession() *session {
	s := &session{opts: o}
	storeOpts := []store.Option{store.OptName("rdfwalk"), store.OptLogger(logrus.StandardLogger())}
	if o.v.GetBool("metrics") {
		s.registry = prometheus.NewRegistry()
		storeOpts = append(storeOpts, store.OptMetrics(s.registry))
	}
	s.store = store.New(storeOpts...)
	return s
}

func (s *session) load(ctx context.Context) error {
	paths := s.opts.v.GetStringSlice("data")
	if len(paths) == 0 {
		return errors.New("no data files given, use --data")
	}
	opts := []loader.Option{loader.OptLogger(logrus.StandardLogger())}
	if s.opts.v.GetBool("remote-contexts") {
		client := &http.Client{Timeout: s.opts.v.GetDuration("remote-timeout")}
		opts = append(opts, loader.OptRemoteDocuments(client))
	}
	_, err := loader.LoadFiles(ctx, s.store, paths, opts...)
	return err
}

// dumpMetrics prints every gathered sample when --metrics is on.
func (s *session) dumpMetrics(w io.Writer) error {
	if s.registry == nil {
		return nil
	}
	families, err := s.registry.Gather()
	if err != nil {
		return errors.Wrap(err, "failed to gather metrics")
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			value := m.GetCounter().GetValue()
			if g := m.GetGauge(); g != nil {
				value = g.GetValue()
			}
			fmt.Fprintf(w, "%s %g\n", mf.GetName(), value)
		}
	}
	return nil
}
