package azblob

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sanLimbu/taskphotos/internal"
)

const otelName = "github.com/sanLimbu/taskphotos/internal/azblob"

// Blob stores task photos in an Azure Blob Storage container.
type Blob struct {
	client    *azblob.Client
	container string
}

// NewBlob instantiates the Blob store.
func NewBlob(client *azblob.Client, container string) *Blob {
	return &Blob{
		client:    client,
		container: container,
	}
}

// Put uploads data as a block blob.
func (b *Blob) Put(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, span := newOTELSpan(ctx, "Blob.Put", key)
	defer span.End()

	_, err := b.client.UploadBuffer(ctx, b.container, key, data, &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{
			BlobContentType: &contentType,
		},
	})
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "client.UploadBuffer")
	}

	return nil
}

// URL returns the blob URL, readable when the container allows public access.
func (b *Blob) URL(ctx context.Context, key string) (string, error) {
	_, span := newOTELSpan(ctx, "Blob.URL", key)
	defer span.End()

	return b.client.ServiceClient().NewContainerClient(b.container).NewBlobClient(key).URL(), nil
}

// Delete removes the blob.
func (b *Blob) Delete(ctx context.Context, key string) error {
	ctx, span := newOTELSpan(ctx, "Blob.Delete", key)
	defer span.End()

	if _, err := b.client.DeleteBlob(ctx, b.container, key, nil); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "client.DeleteBlob")
	}

	return nil
}

func newOTELSpan(ctx context.Context, name, key string) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(otelName).Start(ctx, name)

	span.SetAttributes(attribute.String("blob.key", key))

	return ctx, span
}
