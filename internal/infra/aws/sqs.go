package aws

import (
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"todo-api/pkg/resource"
)

// NewSqsClient creates an SQS client, pointing at a custom endpoint
// (LocalStack) when one is configured.
func NewSqsClient() *sqs.Client {
	endpoint := resource.GetString("app.cloud.aws-endpoint")
	return sqs.NewFromConfig(Config, func(o *sqs.Options) {
		if endpoint != "" {
			o.BaseEndpoint = &endpoint
		}
	})
}
