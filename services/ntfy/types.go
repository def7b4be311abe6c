package ntfy

import (
	"errors"
	"net/http"
)

var ErrRejected = errors.New("ntfy rejected the notification")

type Impl struct {
	url    string
	client *http.Client
}
