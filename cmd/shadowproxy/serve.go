package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/shadowproxy/internal/config"
	"github.com/yourusername/shadowproxy/internal/logging"
	"github.com/yourusername/shadowproxy/internal/metrics"
	"github.com/yourusername/shadowproxy/internal/proxy"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Run the shadow proxy",
	Example: "# shadowproxy serve --config shadowproxy.yaml",
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			os.Exit(1)
		}
		applyFlagOverrides(cmd, &settings)

		logging.SetOptions(logging.Options{
			Stdout:     settings.LogStdout,
			Filename:   settings.LogFilename,
			MaxSize:    settings.LogMaxSize,
			MaxAge:     settings.LogMaxAge,
			MaxBackups: 7,
		})

		if settings.MetricsAddr != "" {
			go func() {
				if err := metrics.Serve(settings.MetricsAddr); err != nil {
					logging.TimedMsg("metrics server exited: " + err.Error())
				}
			}()
		}

		origin := proxy.NewOriginClient(5*time.Second, settings.BufferSize)
		sink := proxy.SinkFunc(func(rec proxy.ComparisonRecord) {
			logging.TimedMsg("comparison " + rec.ID + " emitted")
		})
		pipeline := proxy.NewPipeline(settings.Shadow, origin, sink, settings.ChannelCapacity, settings.AnalyzerWorkers)
		server := proxy.NewServer(settings.Primary, settings.ServingWorkers, settings.BufferSize, origin, pipeline)

		ln, err := net.Listen("tcp", settings.Listen)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to listen on %s: %v\n", settings.Listen, err)
			os.Exit(1)
		}

		go pipeline.Run()

		serveErr := make(chan error, 1)
		go func() { serveErr <- server.Serve(ln) }()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-serveErr:
			if err != nil {
				logging.TimedMsg("serve exited: " + err.Error())
			}
		case <-sig:
			logging.TimedMsg("shutting down")
			server.Shutdown()
			pipeline.Stop()
		}
	},
}

func applyFlagOverrides(cmd *cobra.Command, settings *config.Settings) {
	if v, _ := cmd.Flags().GetString("primary"); v != "" {
		settings.Primary = v
	}
	if v, _ := cmd.Flags().GetString("shadow"); v != "" {
		settings.Shadow = v
	}
	if v, _ := cmd.Flags().GetString("listen"); v != "" {
		settings.Listen = v
	}
	if v, _ := cmd.Flags().GetString("metrics-addr"); v != "" {
		settings.MetricsAddr = v
	}
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "Configuration file path")
	serveCmd.Flags().String("primary", "", "Primary origin address (overrides config)")
	serveCmd.Flags().String("shadow", "", "Shadow origin address (overrides config)")
	serveCmd.Flags().String("listen", "", "Listen address (overrides config)")
	serveCmd.Flags().String("metrics-addr", "", "Prometheus metrics listen address (overrides config)")
}
