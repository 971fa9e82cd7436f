package internal

import (
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"

	"github.com/sanLimbu/taskphotos/internal"
	"github.com/sanLimbu/taskphotos/internal/envvar"
	"github.com/sanLimbu/taskphotos/internal/s3"
)

// NewS3 instantiates the S3 blob store using configuration defined in environment variables.
func NewS3(conf *envvar.Configuration) (*s3.Blob, error) {
	get := func(key, def string) string {
		v, _ := conf.GetDefault(key, def)
		return v
	}

	bucket := get("S3_BUCKET", "")
	if bucket == "" {
		return nil, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "S3_BUCKET is required")
	}

	cfg := aws.NewConfig().WithRegion(get("S3_REGION", "us-east-1"))

	if endpoint := get("S3_ENDPOINT", ""); endpoint != "" {
		cfg = cfg.WithEndpoint(endpoint)
	}

	if pathStyle, _ := strconv.ParseBool(get("S3_FORCE_PATH_STYLE", "false")); pathStyle {
		cfg = cfg.WithS3ForcePathStyle(true)
	}

	if id := get("S3_ACCESS_KEY_ID", ""); id != "" {
		cfg = cfg.WithCredentials(credentials.NewStaticCredentials(id, get("S3_SECRET_ACCESS_KEY", ""), ""))
	}

	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "session.NewSession")
	}

	var opts []s3.Option

	if base := get("S3_PUBLIC_URL", ""); base != "" {
		opts = append(opts, s3.WithPublicURL(base))
	}

	if ttl, err := time.ParseDuration(get("S3_PRESIGN_TTL", "0s")); err == nil && ttl > 0 {
		opts = append(opts, s3.WithPresign(ttl))
	}

	return s3.NewBlob(awss3.New(sess), bucket, opts...), nil
}
