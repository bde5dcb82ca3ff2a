package resolvers

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/envloom/envloom/pkg/clients"
	"github.com/envloom/envloom/pkg/config"
)

// readS3Source fetches the body of an s3://bucket/key source. The body is
// line-oriented source text just like a local file; it gets no special
// parsing treatment.
func readS3Source(source *config.Source) (string, error) {
	svc, err := clients.NewS3Client(source.URL)
	if err != nil {
		return "", err
	}

	res, err := svc.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(source.URL.Host),
		Key:    aws.String(source.URL.Path),
	})
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
