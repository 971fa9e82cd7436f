package internal

import (
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	"github.com/sanLimbu/taskphotos/internal"
	blobstore "github.com/sanLimbu/taskphotos/internal/azblob"
	"github.com/sanLimbu/taskphotos/internal/envvar"
)

// NewAzureBlob instantiates the Azure Blob Storage store using configuration defined in environment variables.
func NewAzureBlob(conf *envvar.Configuration) (*blobstore.Blob, error) {
	get := func(key string) string {
		v, _ := conf.Get(key)
		return v
	}

	account, container := get("AZURE_STORAGE_ACCOUNT"), get("AZURE_STORAGE_CONTAINER")
	if account == "" || container == "" {
		return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "AZURE_STORAGE_ACCOUNT and AZURE_STORAGE_CONTAINER are required")
	}

	endpoint := get("AZURE_STORAGE_ENDPOINT")
	if endpoint == "" {
		endpoint = "https://" + account + ".blob.core.windows.net/"
	}

	var (
		client *azblob.Client
		err    error
	)

	if key := get("AZURE_STORAGE_KEY"); key != "" {
		var cred *azblob.SharedKeyCredential

		cred, err = azblob.NewSharedKeyCredential(account, key)
		if err != nil {
			return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "azblob.NewSharedKeyCredential")
		}

		client, err = azblob.NewClientWithSharedKeyCredential(endpoint, cred, nil)
	} else {
		// Anonymous access relies on a SAS token embedded in the endpoint.
		client, err = azblob.NewClientWithNoCredential(endpoint, nil)
	}

	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "azblob.NewClient")
	}

	return blobstore.NewBlob(client, container), nil
}
