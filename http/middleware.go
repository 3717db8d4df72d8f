package http

import "log/slog"

type Middleware func(next Handler) Handler

func RecoverMiddleware(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx *RequestCtx) {
			defer func() {
				if recovered := recover(); recovered != nil {
					logger.Error("handler panicked",
						"request_id", ctx.ID,
						"path", ctx.Request.Path,
						"panic", recovered)

					ctx.Response.WithStatus(StatusInternalServerError).WithText("something went wrong")
				}
			}()

			next(ctx)
		}
	}
}
