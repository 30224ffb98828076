package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// scanAll runs a Scan to completion, following LastEvaluatedKey across pages
// so results past the 1 MB page limit are not silently dropped.
func scanAll(ctx context.Context, client *dynamodb.Client, input *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		result, err := client.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		items = append(items, result.Items...)
		if len(result.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
}
