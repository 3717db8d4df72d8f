package http

import "net/http"

type Route struct {
	Methods []string
	Path    string
	Handler Handler
}

type Router struct {
	Routes []Route
}

func NewRouter() Router {
	return Router{
		Routes: make([]Route, 0),
	}
}

func (router *Router) GET(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{http.MethodGet}, path, handler, middleware...)
}

func (router *Router) POST(path string, handler Handler, middleware ...Middleware) {
	router.Any([]string{http.MethodPost}, path, handler, middleware...)
}

func (router *Router) Any(methods []string, path string, handler Handler, middleware ...Middleware) {
	for _, middleware := range middleware {
		handler = middleware(handler)
	}

	router.Routes = append(router.Routes, Route{
		Methods: methods,
		Path:    path,
		Handler: handler,
	})
}

func (router *Router) Handler() Handler {
	return func(ctx *RequestCtx) {
		handler := NotFoundHandler
		for _, route := range router.Routes {
			if route.Path != ctx.Request.Path {
				continue
			}

			for _, method := range route.Methods {
				if method != ctx.Request.Method {
					continue
				}

				handler = route.Handler
				break
			}
		}

		handler(ctx)
	}
}

func NotFoundHandler(ctx *RequestCtx) {
	ctx.Response.WithStatus(StatusNotFound).WithText("not found")
}
