package http

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrBodyTooLarge = errors.New("http: request body exceeds limit")

type Request struct {
	Method   string
	Path     string
	Protocol string
	Headers  map[string]string
	Body     []byte
}

// Read parses one request off the wire: request line, headers, then a
// Content-Length delimited body. Header names are lowercased.
func (req *Request) Read(reader *bufio.Reader) error {
	requestLine, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	requestLine = strings.TrimSpace(requestLine)
	if requestLine == "" {
		return io.EOF
	}

	parts := strings.Split(requestLine, " ")
	if len(parts) < 3 {
		return fmt.Errorf("malformed request line: %s", requestLine)
	}

	req.Method = parts[0]
	req.Path = parts[1]
	req.Protocol = parts[2]
	req.Headers = make(map[string]string)
	req.Body = nil

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("header read error: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			break // end of headers
		}
		if i := strings.Index(line, ":"); i >= 0 {
			key := strings.TrimSpace(line[:i])
			value := strings.TrimSpace(line[i+1:])
			req.Headers[strings.ToLower(key)] = value
		}
	}

	if lengthValue, found := req.Headers["content-length"]; found {
		length, err := strconv.Atoi(lengthValue)
		if err != nil {
			return fmt.Errorf("bad content-length: %w", err)
		}
		if length > MaxBodySize {
			return ErrBodyTooLarge
		}
		if length > 0 {
			req.Body = make([]byte, length)
			if _, err := io.ReadFull(reader, req.Body); err != nil {
				return fmt.Errorf("body read error: %w", err)
			}
		}
	}

	return nil
}

// KeepAlive follows the HTTP/1.x defaults: 1.1 stays open unless told
// to close, 1.0 closes unless told to stay open.
func (req *Request) KeepAlive() bool {
	connection := strings.ToLower(req.Headers["connection"])

	switch req.Protocol {
	case "HTTP/1.1":
		return connection != "close"
	case "HTTP/1.0":
		return connection == "keep-alive"
	default:
		return false
	}
}
