package telemetry

import (
	"context"
	"log/slog"
	"os"

	otelpyroscope "github.com/grafana/otel-profiling-go"
	"github.com/grafana/pyroscope-go"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type Config interface {
	GetAppName() string
	GetOtelRPCURI() string
	GetPyroscopeURI() string
}

type AppConfig struct {
	AppName      string
	OtelRPCURI   string
	PyroscopeURI string
}

func (a AppConfig) GetAppName() string      { return a.AppName }
func (a AppConfig) GetOtelRPCURI() string   { return a.OtelRPCURI }
func (a AppConfig) GetPyroscopeURI() string { return a.PyroscopeURI }

var pyroLogrus = func() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return l
}()

// Init sets up tracing and profiling. When no OTLP endpoint is configured,
// spans go to stdout instead so local runs still show trace output.
func Init(ctx context.Context, log *slog.Logger, cfg Config) func() {
	appName := cfg.GetAppName()

	if cfg.GetPyroscopeURI() != "" {
		_, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: appName,
			ServerAddress:   cfg.GetPyroscopeURI(),
			Logger:          pyroLogrus,
		})
		if err != nil {
			log.Error("Pyroscope failed to start", slog.String("error", err.Error()))
		} else {
			log.Info("Pyroscope started successfully")
		}
	}

	var exp trace.SpanExporter
	var err error
	if uri := cfg.GetOtelRPCURI(); uri != "" {
		exp, err = otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(uri),
			otlptracegrpc.WithCompressor("gzip"),
			otlptracegrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
		)
	} else {
		exp, err = stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	if err != nil {
		log.Error("Failed to create trace exporter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(appName),
			attribute.String("env", "production"),
		),
	)
	if err != nil {
		log.Error("Failed to create resource", slog.String("error", err.Error()))
		os.Exit(1)
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)

	// Tracer provider with pyroscope span profiles attached
	otel.SetTracerProvider(otelpyroscope.NewTracerProvider(tp))

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info("OpenTelemetry Tracer initialized")

	return func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Error("Error shutting down tracer provider", slog.String("error", err.Error()))
		}
	}
}
