package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/freekieb7/grit/http"
	"github.com/freekieb7/grit/json"
)

const name = "github.com/freekieb7/grit"

func main() {
	os.Exit(run())
}

func run() int {
	serveAddr := flag.String("serve", "", "run the validation server on this address instead of reading stdin")
	flag.Parse()

	ctx := context.Background()

	shutdown, err := setupOTelSDK(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer shutdown(ctx)

	var logger *slog.Logger
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		logger = otelslog.NewLogger(name)
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	if *serveAddr != "" {
		return runServer(ctx, logger, *serveAddr)
	}

	return runStdin(logger)
}

// runStdin reads one whole document from standard input and prints the
// parsed tree, or the error kind with a non-zero exit.
func runStdin(logger *slog.Logger) int {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Error("reading stdin failed", "error", err)
		return 1
	}

	input = bytes.TrimSpace(input)
	if len(input) == 0 {
		fmt.Fprintln(os.Stderr, "empty input")
		return 1
	}

	skip, value, err := json.Parse(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if len(bytes.TrimSpace(input[skip:])) > 0 {
		value.Release()
		fmt.Fprintln(os.Stderr, json.ErrUnexpectedCharacter)
		return 1
	}

	os.Stdout.Write(json.Dump(value))
	fmt.Println()
	value.Release()
	return 0
}

func runServer(ctx context.Context, logger *slog.Logger, addr string) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	server := http.NewValidator(logger)

	logger.Info("listening and serving", "addr", addr)
	if err := server.ListenAndServe(ctx, addr); err != nil {
		logger.Error("server failed", "error", err)
		return 1
	}

	return 0
}

// setupOTelSDK registers OTLP-exporting providers for traces, metrics
// and logs. Without an endpoint configured the globals stay no-ops and
// telemetry goes nowhere.
func setupOTelSDK(ctx context.Context) (func(context.Context) error, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return func(context.Context) error { return nil }, nil
	}

	var shutdownFuncs []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var err error
		for _, fn := range shutdownFuncs {
			err = errors.Join(err, fn(ctx))
		}
		shutdownFuncs = nil
		return err
	}

	traceExporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, err
	}
	tracerProvider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(traceExporter))
	shutdownFuncs = append(shutdownFuncs, tracerProvider.Shutdown)
	otel.SetTracerProvider(tracerProvider)

	metricExporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return shutdown, errors.Join(err, shutdown(ctx))
	}
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)))
	shutdownFuncs = append(shutdownFuncs, meterProvider.Shutdown)
	otel.SetMeterProvider(meterProvider)

	logExporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return shutdown, errors.Join(err, shutdown(ctx))
	}
	loggerProvider := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(logExporter)))
	shutdownFuncs = append(shutdownFuncs, loggerProvider.Shutdown)
	global.SetLoggerProvider(loggerProvider)

	return shutdown, nil
}
