package media

import (
	"bytes"
	"context"
	"net/url"
	"os"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/sanLimbu/taskphotos/internal"
)

const otelName = "github.com/sanLimbu/taskphotos/internal/media"

// DefaultJPEGQuality matches the compression applied by the picker.
const DefaultJPEGQuality = 70

// Reader loads image references and re-encodes them as JPEG.
type Reader struct {
	client  *resty.Client
	quality int
}

// NewReader instantiates the Reader, client is used for http(s) references.
func NewReader(client *resty.Client, quality int) *Reader {
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	return &Reader{
		client:  client,
		quality: quality,
	}
}

// Read returns the JPEG encoded bytes of ref.
func (r *Reader) Read(ctx context.Context, ref internal.ImageRef) ([]byte, error) {
	ctx, span := otel.Tracer(otelName).Start(ctx, "Reader.Read")
	defer span.End()

	raw, err := r.load(ctx, ref)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("image.source_bytes", len(raw)))

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "imaging.Decode")
	}

	var buf bytes.Buffer

	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(r.quality)); err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "imaging.Encode")
	}

	return buf.Bytes(), nil
}

func (r *Reader) load(ctx context.Context, ref internal.ImageRef) ([]byte, error) {
	u, err := url.Parse(string(ref))
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "url.Parse")
	}

	switch u.Scheme {
	case "http", "https":
		resp, err := r.client.R().SetContext(ctx).Get(u.String())
		if err != nil {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "client.Get")
		}

		if resp.IsError() {
			return nil, internal.NewErrorf(internal.ErrorCodeUnknown, "client.Get: %s", resp.Status())
		}

		return resp.Body(), nil
	case "file":
		return readFile(u.Path)
	case "":
		return readFile(string(ref))
	}

	return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "unsupported image reference %q", u.Scheme)
}

func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeNotFound, "os.ReadFile")
		}

		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "os.ReadFile")
	}

	return b, nil
}
