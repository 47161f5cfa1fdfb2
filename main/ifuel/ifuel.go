package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jd3nn1s/ifuel"
	"github.com/jd3nn1s/ifuel/forwarder"
	"github.com/jd3nn1s/ifuel/transport"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	url            = flag.String("url", transport.DefaultURL, "telemetry websocket url")
	optionsFile    = flag.String("options", "", "engine options TOML file, reloaded on change")
	udpConfig      = flag.String("udp-config", "", "UDP forwarder TOML file next to the binary")
	testMode       = flag.Bool("testmode", false, "generate test data")
	printSnapshots = flag.Bool("print-snapshots", false, "print snapshots to stdout")
	metricsAddr    = flag.String("metrics-addr", "", "address to serve prometheus metrics on")
	logLevel       = flag.String("log-level", "info", "log level")
)

func main() {
	flag.Parse()
	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal("invalid log level: ", err)
	}
	log.SetLevel(level)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store := ifuel.NewOptionsStore(ifuel.DefaultOptions())
	if *optionsFile != "" {
		opts, err := ifuel.LoadOptionsFile(*optionsFile)
		if err != nil {
			log.Fatal("unable to load options: ", err)
		}
		store.Store(opts)
		go func() {
			if err := ifuel.WatchOptionsFile(ctx, *optionsFile, store); err != nil && ctx.Err() == nil {
				log.WithField("err", err).Error("options watcher stopped")
			}
		}()
	}

	renderers := forwarder.Fanout{}
	if *udpConfig != "" {
		fwder, err := forwarder.NewUDPForwarder(*udpConfig)
		if err != nil {
			log.Fatal("unable to load UDP forwarder: ", err)
		}
		defer fwder.Close()
		renderers = append(renderers, fwder)
	}
	if *printSnapshots {
		renderers = append(renderers, forwarder.NewPrinter(os.Stdout))
	}

	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.WithField("err", err).Error("metrics server stopped")
			}
		}()
	}

	if *testMode {
		runTestMode(ctx, store, renderers)
		return
	}
	runTransport(ctx, store, renderers)
}

func runTestMode(ctx context.Context, store *ifuel.OptionsStore, renderer ifuel.Renderer) {
	samples := make(chan ifuel.RawSample, 1)
	sim := ifuel.NewSimulator(ifuel.DefaultSimulatorConfig())
	go sim.Run(ctx, samples)

	session := ifuel.NewSession(ctx, store, renderer)
	defer session.Close()
	for {
		select {
		case sample := <-samples:
			session.Process(sample)
		case <-ctx.Done():
			return
		}
	}
}

func runTransport(ctx context.Context, store *ifuel.OptionsStore, renderer ifuel.Renderer) {
	var session *ifuel.Session
	client := transport.NewClient(*url, transport.Callbacks{
		Connected: func() {
			session = ifuel.NewSession(ctx, store, renderer)
		},
		Sample: func(sample ifuel.RawSample) {
			session.Process(sample)
		},
		Disconnected: func(error) {
			session.Close()
			session = nil
		},
	})
	if err := ifuel.Retry(ctx, client); err != nil && ctx.Err() == nil {
		log.Errorf("telemetry done: %v", err)
	}
}
