package http

import (
	"bufio"
	"strconv"
)

type Response struct {
	Status  uint16
	Headers map[string]string
	Body    []byte
}

func (res *Response) Reset() {
	res.Status = StatusOK
	res.Headers = make(map[string]string)
	res.Body = res.Body[:0]
}

func (res *Response) WithStatus(status uint16) *Response {
	res.Status = status
	return res
}

func (res *Response) WithText(payload string) *Response {
	res.Headers["Content-Type"] = "text/plain"
	res.Body = append(res.Body[:0], payload...)
	return res
}

func (res *Response) WithJson(payload []byte) *Response {
	res.Headers["Content-Type"] = "application/json"
	res.Body = append(res.Body[:0], payload...)
	return res
}

func (res *Response) Write(writer *bufio.Writer) error {
	if _, err := writer.WriteString("HTTP/1.1 " + strconv.Itoa(int(res.Status)) + " " + StatusText(res.Status) + "\r\n"); err != nil {
		return err
	}

	for name, value := range res.Headers {
		if _, err := writer.WriteString(name + ": " + value + "\r\n"); err != nil {
			return err
		}
	}

	if _, err := writer.WriteString("Content-Length: " + strconv.Itoa(len(res.Body)) + "\r\n\r\n"); err != nil {
		return err
	}

	if _, err := writer.Write(res.Body); err != nil {
		return err
	}

	return writer.Flush()
}
