package http

const (
	StatusOK                    uint16 = 200
	StatusNoContent             uint16 = 204
	StatusBadRequest            uint16 = 400
	StatusNotFound              uint16 = 404
	StatusMethodNotAllowed      uint16 = 405
	StatusRequestEntityTooLarge uint16 = 413
	StatusUnprocessableEntity   uint16 = 422
	StatusInternalServerError   uint16 = 500
)

func StatusText(status uint16) string {
	switch status {
	case StatusOK:
		return "OK"
	case StatusNoContent:
		return "No Content"
	case StatusBadRequest:
		return "Bad Request"
	case StatusNotFound:
		return "Not Found"
	case StatusMethodNotAllowed:
		return "Method Not Allowed"
	case StatusRequestEntityTooLarge:
		return "Request Entity Too Large"
	case StatusUnprocessableEntity:
		return "Unprocessable Entity"
	case StatusInternalServerError:
		return "Internal Server Error"
	default:
		return "Unknown"
	}
}
