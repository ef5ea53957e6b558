package aws

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"todo-api/pkg/resource"
)

var Config aws.Config

func init() {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(resource.GetString("app.cloud.aws-region")),
	}

	// Custom credentials for LocalStack or CI; otherwise the default
	// credential chain (environment, IAM role) applies.
	if accessKey := resource.GetString("app.cloud.aws-access-key-id"); accessKey != "" {
		secretKey := resource.GetString("app.cloud.aws-secret-access-key")
		if secretKey != "" {
			opts = append(opts, awsconfig.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
			))
		}
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		log.Fatalf("Failed to load AWS configuration: %v", err)
	}

	Config = cfg
}
