package http

const (
	DefaultReadBufferSize  = 4096
	DefaultWriteBufferSize = 4096
	MaxBodySize            = 2 * 1024 * 1024 // 2MB
)

type Handler func(ctx *RequestCtx)
