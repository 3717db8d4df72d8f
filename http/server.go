package http

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/google/uuid"
)

type Server struct {
	Name   string
	Router Router
	Logger *slog.Logger
}

func NewServer(name string, logger *slog.Logger) *Server {
	return &Server{
		Name:   name,
		Router: NewRouter(),
		Logger: logger,
	}
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	return s.Serve(ctx, listener)
}

func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.Logger.Warn("accept failed", "error", err)
			continue
		}

		go s.ServeConn(conn)
	}
}

func (s *Server) ServeConn(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReaderSize(conn, DefaultReadBufferSize)
	writer := bufio.NewWriterSize(conn, DefaultWriteBufferSize)

	reqCtx := RequestCtx{
		Conn: conn,
	}

	handler := s.Router.Handler()

	for {
		if err := reqCtx.Request.Read(reader); err != nil {
			if err != io.EOF {
				s.Logger.Warn("request read failed", "error", err)
			}
			break
		}

		reqCtx.ID = uuid.New()
		reqCtx.Response.Reset()

		handler(&reqCtx)

		keepAlive := reqCtx.Request.KeepAlive()
		if keepAlive {
			reqCtx.Response.Headers["Connection"] = "keep-alive"
		} else {
			reqCtx.Response.Headers["Connection"] = "close"
		}

		if err := reqCtx.Response.Write(writer); err != nil {
			break
		}

		if !keepAlive {
			break
		}

		conn.SetDeadline(time.Now().Add(time.Second * 5))
	}
}
