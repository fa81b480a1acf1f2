package vyos

import (
	"errors"
	"fmt"
)

var (
	ErrFetchConfig = errors.New("failed to fetch configuration")
	errEnvelope    = errors.New("unexpected response envelope")
)

const (
	msgTransport   = "Could not connect to the API server. Please check that the backend is running."
	msgApplication = "Could not load VyOS configuration"
)

// ErrorKind separates failures where no response arrived from those where the backend
// answered but signalled a failure.
type ErrorKind int

const (
	KindTransport ErrorKind = iota
	KindHTTP
	KindApplication
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTP:
		return "http"
	case KindApplication:
		return "application"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// APIError carries the best available human readable message for a failed fetch.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s error (%d): %s", e.Kind, e.StatusCode, e.Message)
	}

	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Notice is the user facing summary of a fetch outcome.
type Notice struct {
	Title       string
	Description string
	Destructive bool
}

// SuccessNotice is shown after the configuration has been replaced.
var SuccessNotice = Notice{
	Title:       "Configuration loaded",
	Description: "Successfully loaded VyOS configuration",
}

// NoticeFor maps a fetch error to its notification. Errors that are not an *APIError are
// reported like transport failures.
func NoticeFor(err error) Notice {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return Notice{Title: "Connection error", Description: msgTransport, Destructive: true}
	}

	switch apiErr.Kind {
	case KindHTTP:
		return Notice{Title: "Error connecting to VyOS router", Description: apiErr.Message, Destructive: true}
	case KindApplication:
		return Notice{Title: "Error loading VyOS configuration", Description: apiErr.Message, Destructive: true}
	case KindTransport:
		fallthrough
	default:
		return Notice{Title: "Connection error", Description: apiErr.Message, Destructive: true}
	}
}

// StatusLabel is the short reason kept alongside the disconnected indicator.
func StatusLabel(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Kind == KindApplication {
		return "API error"
	}

	return "Connection error"
}
