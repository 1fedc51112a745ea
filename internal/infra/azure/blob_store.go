// Package azure accesses the Azure Blob Storage containers holding exercise videos and thumbnails.
package azure

import (
	"context"
	"fmt"
	"io"
	"time"

	"fitsaga/config"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/sas"
)

// sasClockSkew backdates SAS start times so freshly issued URLs work on servers with slow clocks.
const sasClockSkew = 5 * time.Minute

type blobStore struct {
	client     *azblob.Client
	credential *azblob.SharedKeyCredential
	now        func() time.Time
}

// NewBlobStore connects with the shared account key. It returns nil when Azure is not configured.
func NewBlobStore(cfg *config.Config) (service.BlobStore, error) {
	if cfg.Azure == nil || cfg.Azure.AccountName == "" || cfg.Azure.AccountKey == "" {
		return nil, nil
	}

	credential, err := azblob.NewSharedKeyCredential(cfg.Azure.AccountName, cfg.Azure.AccountKey)
	if err != nil {
		return nil, errors.Wrap(err, "invalid Azure storage credentials")
	}

	serviceURL := fmt.Sprintf("https://%s.blob.core.windows.net/", cfg.Azure.AccountName)
	client, err := azblob.NewClientWithSharedKeyCredential(serviceURL, credential, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Azure blob client")
	}

	return &blobStore{
		client:     client,
		credential: credential,
		now:        time.Now,
	}, nil
}

func (s *blobStore) SignedURL(container, blobName string, expiry time.Duration) (string, error) {
	now := s.now().UTC()

	params, err := sas.BlobSignatureValues{
		Protocol:      sas.ProtocolHTTPS,
		StartTime:     now.Add(-sasClockSkew),
		ExpiryTime:    now.Add(expiry),
		Permissions:   (&sas.BlobPermissions{Read: true}).String(),
		ContainerName: container,
		BlobName:      blobName,
	}.SignWithSharedKey(s.credential)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign SAS")
	}

	blobURL := s.client.ServiceClient().NewContainerClient(container).NewBlobClient(blobName).URL()

	return blobURL + "?" + params.Encode(), nil
}

func (s *blobStore) Download(ctx context.Context, container, blobName string) (*service.Blob, error) {
	resp, err := s.client.DownloadStream(ctx, container, blobName, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound, bloberror.ContainerNotFound) {
			return nil, errors.Join(service.ErrBlobNotFound, err)
		}

		return nil, errors.Wrapf(err, "failed to download %s/%s", container, blobName)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s/%s", container, blobName)
	}

	contentType := "application/octet-stream"
	if resp.ContentType != nil && *resp.ContentType != "" {
		contentType = *resp.ContentType
	}

	return &service.Blob{Data: data, ContentType: contentType}, nil
}

func (s *blobStore) Upload(ctx context.Context, container, blobName string, data []byte, contentType string) error {
	_, err := s.client.UploadBuffer(ctx, container, blobName, data, &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: to.Ptr(contentType)},
	})
	if err != nil {
		return errors.Wrapf(err, "failed to upload %s/%s", container, blobName)
	}

	return nil
}
