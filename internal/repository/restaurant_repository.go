package repository

import (
	"context"
	"fmt"

	"valefood-be/internal/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// RestaurantRepository defines the storage operations for the restaurants
// collection. Lookups return (nil, nil) when no document matches.
type RestaurantRepository interface {
	GetAll(ctx context.Context) ([]entities.Restaurant, error)
	GetByID(ctx context.Context, id string) (*entities.Restaurant, error)
	Save(ctx context.Context, restaurant entities.Restaurant) error
	Delete(ctx context.Context, id string) error
}

type dynamoRestaurantRepository struct {
	client *dynamodb.Client
	table  string
}

// NewDynamoRestaurantRepository creates a DynamoDB-backed restaurant repository
func NewDynamoRestaurantRepository(client *dynamodb.Client, table string) RestaurantRepository {
	return &dynamoRestaurantRepository{client: client, table: table}
}

func (r *dynamoRestaurantRepository) GetAll(ctx context.Context) ([]entities.Restaurant, error) {
	items, err := scanAll(ctx, r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, fmt.Errorf("scanning restaurants table: %w", err)
	}

	var restaurants []entities.Restaurant
	if err := attributevalue.UnmarshalListOfMaps(items, &restaurants); err != nil {
		return nil, fmt.Errorf("unmarshaling restaurants: %w", err)
	}
	return restaurants, nil
}

func (r *dynamoRestaurantRepository) GetByID(ctx context.Context, id string) (*entities.Restaurant, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("getting restaurant by id: %w", err)
	}
	if result.Item == nil {
		return nil, nil
	}

	var restaurant entities.Restaurant
	if err := attributevalue.UnmarshalMap(result.Item, &restaurant); err != nil {
		return nil, fmt.Errorf("unmarshaling restaurant: %w", err)
	}
	return &restaurant, nil
}

func (r *dynamoRestaurantRepository) Save(ctx context.Context, restaurant entities.Restaurant) error {
	item, err := attributevalue.MarshalMap(restaurant)
	if err != nil {
		return fmt.Errorf("marshaling restaurant: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("putting restaurant: %w", err)
	}
	return nil
}

func (r *dynamoRestaurantRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("deleting restaurant: %w", err)
	}
	return nil
}
