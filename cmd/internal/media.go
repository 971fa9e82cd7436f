package internal

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/sanLimbu/taskphotos/internal/envvar"
	"github.com/sanLimbu/taskphotos/internal/media"
)

// NewImageReader instantiates the reader used for loading photos before uploading them.
func NewImageReader(conf *envvar.Configuration) *media.Reader {
	quality := media.DefaultJPEGQuality

	if v, _ := conf.Get("IMAGE_JPEG_QUALITY"); v != "" {
		if q, err := strconv.Atoi(v); err == nil {
			quality = q
		}
	}

	client := resty.New().
		SetTransport(otelhttp.NewTransport(http.DefaultTransport)).
		SetTimeout(30 * time.Second).
		SetRetryCount(2)

	return media.NewReader(client, quality)
}
