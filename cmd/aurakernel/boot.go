package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/aurakernel/bridge"
	"github.com/joshuapare/aurakernel/internal/config"
	"github.com/joshuapare/aurakernel/internal/metrics"
	"github.com/joshuapare/aurakernel/kernel"
)

var (
	bootHold        time.Duration
	bootMetricsAddr string
)

func init() {
	cmd := newBootCmd()
	cmd.Flags().DurationVar(&bootHold, "hold", 2*time.Second, "How long the session stays up before shutdown")
	cmd.Flags().
		StringVar(&bootMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while the session is up")
	rootCmd.AddCommand(cmd)
}

func newBootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boot",
		Short: "Boot the kernel, report status and shut down",
		Long: `The boot command runs the full startup sequence: identity generation,
subsystem construction, the security module reservation and a demonstration
mask. The session is held open for --hold (or until interrupted) and then
shut down.

Example:
  aurakernel boot
  aurakernel boot --config aura.yaml --hold 0
  aurakernel boot --metrics-addr 127.0.0.1:9090 --hold 1m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBoot(cmd.Context())
		},
	}
}

// kernelConfig converts a validated file configuration to kernel settings.
func kernelConfig(cfg *config.Config) kernel.Config {
	return kernel.Config{
		Capacity:        cfg.Memory.Capacity,
		SecurityReserve: cfg.Memory.SecurityReserve,
		PrivacyLevel:    cfg.PrivacyLevel(),
		PowerMode:       cfg.PowerMode(),
	}
}

func runBoot(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}

	collector := metrics.NewCollector(metrics.Config{
		Enabled:   cfg.Metrics.Enabled || bootMetricsAddr != "",
		Namespace: cfg.Metrics.Namespace,
	}, nil)

	opts := []kernel.Option{kernel.WithLogger(log), kernel.WithRecorder(collector)}
	if cfg.Identity.Generator == config.GeneratorUUID {
		opts = append(opts, kernel.WithUUIDIdentity())
	}

	if bridge.Init(log) != bridge.InitOK {
		return errors.New("bridge initialization failed")
	}

	core, err := kernel.Boot(kernelConfig(cfg), opts...)
	if err != nil {
		return err
	}
	defer core.Shutdown()

	if err := printStatus(core.Status()); err != nil {
		return err
	}

	if bootMetricsAddr != "" {
		stop, err := serveMetrics(bootMetricsAddr, collector, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := stop(); err != nil {
				log.Warn("metrics server shutdown", "error", err)
			}
		}()
	}

	if bootHold > 0 {
		printVerbose("Holding session for %s\n", bootHold)
		timer := time.NewTimer(bootHold)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			log.Info("interrupted, ending session early")
		}
	}

	return nil
}

func printStatus(st kernel.Status) error {
	if jsonOut {
		return printJSON(st)
	}
	printInfo("Aura kernel %s\n", st.Version)
	printInfo("  Identity:  %s\n", st.Identity.ID)
	printInfo("  Privacy:   %s\n", st.PrivacyLevel)
	printInfo("  Power:     %s (x%.2f)\n", st.PowerMode, st.PowerFactor)
	printInfo("  Memory:    %d / %d bytes\n", st.Allocated, st.Capacity)
	return nil
}

// serveMetrics exposes the collector until the returned stop func is called.
// A server that fails while serving is logged when it happens; stop reports
// that failure together with any shutdown error.
func serveMetrics(addr string, c *metrics.Collector, log *slog.Logger) (func() error, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	serveErr := make(chan error, 1)
	go func() {
		defer close(serveErr)
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server stopped", "addr", ln.Addr().String(), "error", err)
			serveErr <- err
		}
	}()
	printVerbose("Serving metrics on http://%s/metrics\n", ln.Addr())

	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return errors.Join(fmt.Errorf("metrics shutdown: %w", err), <-serveErr)
		}
		if err := <-serveErr; err != nil {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	}, nil
}
