package filestorage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"page-control-backend/config"
	s3client "page-control-backend/s3"
)

type Provider interface {
	UploadProofImage(ctx context.Context, userID string, image string) (objectKey string, err error)
	UploadProfilePicture(ctx context.Context, userID string, image string) (objectKey string, err error)
	GetFile(ctx context.Context, objectKey string) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) UploadProofImage(ctx context.Context, userID string, image string) (string, error) {
	return i.upload(ctx, fmt.Sprintf("proofs/%v/%v", userID, uuid.NewString()), image)
}

func (i impl) UploadProfilePicture(ctx context.Context, userID string, image string) (string, error) {
	return i.upload(ctx, fmt.Sprintf("profiles/%v/%v", userID, uuid.NewString()), image)
}

func (i impl) GetFile(ctx context.Context, objectKey string) ([]byte, error) {
	obj, err := s3client.Client.GetObject(ctx, config.Conf.S3.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get object from storage")
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read object from storage")
	}
	return data, nil
}

func (i impl) upload(ctx context.Context, objectKey, image string) (string, error) {
	data, contentType, err := DecodeImage(image)
	if err != nil {
		return "", err
	}
	_, err = s3client.Client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to store image")
	}
	log.
		WithField("object_key", objectKey).
		Info("image stored")
	return objectKey, nil
}

// DecodeImage accepts either a data URI (data:image/png;base64,...) or a raw
// base64 payload and returns the decoded bytes with a content type.
func DecodeImage(image string) (data []byte, contentType string, err error) {
	contentType = "application/octet-stream"
	payload := image
	if strings.HasPrefix(image, "data:") {
		parts := strings.SplitN(image, ",", 2)
		if len(parts) != 2 {
			return nil, "", errors.New("malformed data URI")
		}
		meta := strings.TrimPrefix(parts[0], "data:")
		meta = strings.TrimSuffix(meta, ";base64")
		if meta != "" {
			contentType = meta
		}
		payload = parts[1]
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to decode image payload")
	}
	return data, contentType, nil
}
