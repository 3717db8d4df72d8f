package http

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/freekieb7/grit/json"
)

const scopeName = "github.com/freekieb7/grit/http"

var (
	tracer = otel.Tracer(scopeName)
	meter  = otel.Meter(scopeName)

	documentCnt metric.Int64Counter
)

func init() {
	var err error
	documentCnt, err = meter.Int64Counter("grit.documents",
		metric.WithDescription("The number of checked documents by outcome"),
		metric.WithUnit("{document}"))
	if err != nil {
		panic(err)
	}
}

// NewValidator builds a server exposing the parser over HTTP:
// POST /v1/validate answers with a verdict, POST /v1/dump with the
// rendered tree, GET /healthz for probes.
func NewValidator(logger *slog.Logger) *Server {
	s := NewServer("grit", logger)
	s.Router.POST("/v1/validate", ValidateHandler(logger), RecoverMiddleware(logger))
	s.Router.POST("/v1/dump", DumpHandler(logger), RecoverMiddleware(logger))
	s.Router.GET("/healthz", HealthHandler)
	return s
}

func HealthHandler(ctx *RequestCtx) {
	ctx.Response.WithText("ok")
}

func ValidateHandler(logger *slog.Logger) Handler {
	return func(ctx *RequestCtx) {
		spanCtx, span := tracer.Start(context.Background(), "validate")
		defer span.End()

		value, err := parseDocument(ctx.Request.Body)
		if err != nil {
			documentCnt.Add(spanCtx, 1, metric.WithAttributes(outcomeAttr(err)))
			logger.InfoContext(spanCtx, "document rejected",
				"request_id", ctx.ID,
				"error", err)

			ctx.Response.WithStatus(StatusUnprocessableEntity).
				WithJson(fmt.Appendf(nil, `{"valid":false,"error":%q}`, err.Error()))
			return
		}
		value.Release()

		documentCnt.Add(spanCtx, 1, metric.WithAttributes(attribute.String("outcome", "valid")))
		ctx.Response.WithJson([]byte(`{"valid":true}`))
	}
}

func DumpHandler(logger *slog.Logger) Handler {
	return func(ctx *RequestCtx) {
		spanCtx, span := tracer.Start(context.Background(), "dump")
		defer span.End()

		value, err := parseDocument(ctx.Request.Body)
		if err != nil {
			documentCnt.Add(spanCtx, 1, metric.WithAttributes(outcomeAttr(err)))
			logger.InfoContext(spanCtx, "document rejected",
				"request_id", ctx.ID,
				"error", err)

			ctx.Response.WithStatus(StatusUnprocessableEntity).WithText(err.Error())
			return
		}

		documentCnt.Add(spanCtx, 1, metric.WithAttributes(attribute.String("outcome", "valid")))
		ctx.Response.WithText(string(json.Dump(value)))
		value.Release()
	}
}

// parseDocument runs the parser over a whole request body. The parser
// itself only reports how far it got; whole-document semantics (no
// trailing garbage) are enforced here.
func parseDocument(body []byte) (*json.Value, error) {
	skip, value, err := json.Parse(body)
	if err != nil {
		return nil, err
	}

	for _, b := range body[skip:] {
		switch b {
		case ' ', '\t', '\r', '\n':
		default:
			value.Release()
			return nil, json.ErrUnexpectedCharacter
		}
	}

	return value, nil
}

func outcomeAttr(err error) attribute.KeyValue {
	return attribute.String("outcome", err.Error())
}
