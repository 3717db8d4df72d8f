package http

import (
	"net"

	"github.com/google/uuid"
)

type RequestCtx struct {
	Conn net.Conn
	ID   uuid.UUID

	Request  Request
	Response Response
}
