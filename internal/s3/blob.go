package s3

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/mercari/go-circuitbreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sanLimbu/taskphotos/internal"
)

const otelName = "github.com/sanLimbu/taskphotos/internal/s3"

// Blob represents the object storage used for task photos.
type Blob struct {
	client    s3iface.S3API
	bucket    string
	publicURL string
	presign   time.Duration
	cb        *circuitbreaker.CircuitBreaker
}

// Option configures how retrieval URLs are built.
type Option func(*Blob)

// WithPublicURL builds retrieval URLs by joining base and the object key, for buckets served
// publicly or through a CDN.
func WithPublicURL(base string) Option {
	return func(b *Blob) {
		b.publicURL = strings.TrimSuffix(base, "/")
	}
}

// WithPresign returns presigned GET URLs valid for ttl.
func WithPresign(ttl time.Duration) Option {
	return func(b *Blob) {
		b.presign = ttl
	}
}

// NewBlob instantiates the Blob store. Writes go through a circuit breaker that opens after
// consecutive failures.
func NewBlob(client s3iface.S3API, bucket string, opts ...Option) *Blob {
	b := &Blob{
		client: client,
		bucket: bucket,
		cb: circuitbreaker.New(
			circuitbreaker.WithTripFunc(circuitbreaker.NewTripFuncConsecutiveFailures(3)),
			circuitbreaker.WithOpenTimeout(10*time.Second),
		),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Put writes data under key.
func (b *Blob) Put(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, span := newOTELSpan(ctx, "Blob.Put", key)
	defer span.End()

	_, err := b.cb.Do(ctx, func() (interface{}, error) {
		return b.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(b.bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentType),
		})
	})
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "client.PutObject")
	}

	return nil
}

// URL returns the retrieval URL of key.
func (b *Blob) URL(ctx context.Context, key string) (string, error) {
	_, span := newOTELSpan(ctx, "Blob.URL", key)
	defer span.End()

	if b.publicURL != "" {
		return b.publicURL + "/" + key, nil
	}

	req, _ := b.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})

	if b.presign > 0 {
		url, err := req.Presign(b.presign)
		if err != nil {
			return "", internal.WrapErrorf(err, internal.ErrorCodeUnknown, "req.Presign")
		}

		return url, nil
	}

	if err := req.Build(); err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeUnknown, "req.Build")
	}

	return req.HTTPRequest.URL.String(), nil
}

// Delete removes key.
func (b *Blob) Delete(ctx context.Context, key string) error {
	ctx, span := newOTELSpan(ctx, "Blob.Delete", key)
	defer span.End()

	if _, err := b.client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "client.DeleteObject")
	}

	return nil
}

func newOTELSpan(ctx context.Context, name, key string) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(attribute.String("blob.key", key))

	return ctx, span
}
