package storage

import (
	"context"
	"fmt"
	"path"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"loco-backend/internal/config"
)

// S3Service 방 썸네일 업로드용 S3 래퍼
//
// 서버를 거치지 않고 클라이언트가 직접 올리도록 presigned PUT URL만 발급한다.
type S3Service struct {
	presign *s3.PresignClient
	bucket  string
	expiry  time.Duration
}

// PresignedUpload presigned 업로드 정보
type PresignedUpload struct {
	URL       string    `json:"upload_url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewS3Service S3 클라이언트 초기화
func NewS3Service(cfg *config.S3Config) (*S3Service, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &S3Service{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.BucketName,
		expiry:  cfg.PresignExpiry,
	}, nil
}

// GenerateThumbnailUploadURL 방 썸네일 업로드용 presigned PUT URL 생성
//
// 키는 업로더 기준으로 격리하고 uuid로 충돌을 막는다.
func (s *S3Service) GenerateThumbnailUploadURL(uploaderID int64, fileName, contentType string) (*PresignedUpload, error) {
	key := fmt.Sprintf("rooms/thumbnails/%d/%s%s", uploaderID, uuid.NewString(), path.Ext(fileName))

	req, err := s.presign.PresignPutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      awssdk.String(s.bucket),
		Key:         awssdk.String(key),
		ContentType: awssdk.String(contentType),
	}, s3.WithPresignExpires(s.expiry))
	if err != nil {
		return nil, fmt.Errorf("failed to presign PUT: %w", err)
	}

	return &PresignedUpload{
		URL:       req.URL,
		Key:       key,
		ExpiresAt: time.Now().Add(s.expiry),
	}, nil
}

// PublicURL 업로드 완료된 객체의 공개 URL
func (s *S3Service) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
