package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// maxUploadSize caps media uploads at 10 MB.
const maxUploadSize = 10 << 20

var allowedMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var allowedFolders = map[string]bool{
	"blog":         true,
	"meta":         true,
	"projects":     true,
	"achievements": true,
}

// MediaUploader stores media bytes and returns a public URL. The returned
// URL is treated as opaque; reachability is never verified here.
type MediaUploader interface {
	Upload(ctx context.Context, data []byte, folder, mimeType string) (string, error)
}

// UploadResult is what the upload endpoint reports back to the editor.
type UploadResult struct {
	URL    string
	Width  int
	Height int
}

// MediaService validates uploads and delegates storage to the configured
// backend.
type MediaService struct {
	uploader MediaUploader
}

// NewMediaService creates a MediaService instance.
func NewMediaService(uploader MediaUploader) *MediaService {
	return &MediaService{uploader: uploader}
}

// Upload checks type, size, and folder, probes the image dimensions, and
// hands the bytes to the backend. Failures surface immediately; retry is
// the caller's decision.
func (s *MediaService) Upload(ctx context.Context, actor Actor, data []byte, folder, mimeType string) (*UploadResult, error) {
	if !actor.IsAdmin() {
		return nil, ErrUnauthorized
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrUploadRejected)
	}
	if len(data) > maxUploadSize {
		return nil, fmt.Errorf("%w: file exceeds 10 MB", ErrUploadRejected)
	}
	if _, ok := allowedMimeTypes[mimeType]; !ok {
		return nil, fmt.Errorf("%w: type %s not allowed", ErrUploadRejected, mimeType)
	}
	if !allowedFolders[folder] {
		folder = "blog"
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: not a decodable image", ErrUploadRejected)
	}

	url, err := s.uploader.Upload(ctx, data, folder, mimeType)
	if err != nil {
		return nil, fmt.Errorf("upload media: %w", err)
	}

	return &UploadResult{URL: url, Width: cfg.Width, Height: cfg.Height}, nil
}

// LocalUploader writes media files under a static directory served by the
// application itself.
type LocalUploader struct {
	dir     string
	urlPath string
}

// NewLocalUploader creates a LocalUploader rooted at dir, serving files
// under urlPath.
func NewLocalUploader(dir, urlPath string) *LocalUploader {
	return &LocalUploader{dir: dir, urlPath: strings.TrimRight(urlPath, "/")}
}

// Upload writes the file with a date-prefixed unique name.
func (u *LocalUploader) Upload(_ context.Context, data []byte, folder, mimeType string) (string, error) {
	targetDir := filepath.Join(u.dir, folder)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	name := uploadFileName(mimeType)
	if err := os.WriteFile(filepath.Join(targetDir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", u.urlPath, folder, name), nil
}

// S3Uploader stores media in an S3-compatible bucket (R2 in production).
type S3Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewS3Uploader builds the client for an S3-compatible endpoint with
// static credentials.
func NewS3Uploader(ctx context.Context, endpoint, accessKey, secretKey, region, bucket, publicURL string) (*S3Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = true
	})

	return &S3Uploader{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload puts the object under folder/ with a unique key.
func (u *S3Uploader) Upload(ctx context.Context, data []byte, folder, mimeType string) (string, error) {
	key := folder + "/" + uploadFileName(mimeType)

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return u.publicURL + "/" + key, nil
}

func uploadFileName(mimeType string) string {
	ext := allowedMimeTypes[mimeType]
	return fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
}
