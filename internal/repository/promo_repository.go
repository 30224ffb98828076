package repository

import (
	"context"
	"fmt"
	"strings"

	"valefood-be/internal/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// PromoRepository defines the storage operations for the promos collection.
// Category lookups match case-insensitively; restaurant lookups match the id
// exactly. Lookups return (nil, nil) / empty slices when nothing matches.
type PromoRepository interface {
	GetAll(ctx context.Context) ([]entities.Promo, error)
	GetByID(ctx context.Context, id string) (*entities.Promo, error)
	GetByRestaurantID(ctx context.Context, restaurantID string) ([]entities.Promo, error)
	GetByCategory(ctx context.Context, category string) ([]entities.Promo, error)
	GetByCategories(ctx context.Context, categories []string) ([]entities.Promo, error)
	Save(ctx context.Context, promo entities.Promo) error
	Delete(ctx context.Context, id string) error
}

type dynamoPromoRepository struct {
	client *dynamodb.Client
	table  string
}

// NewDynamoPromoRepository creates a DynamoDB-backed promo repository
func NewDynamoPromoRepository(client *dynamodb.Client, table string) PromoRepository {
	return &dynamoPromoRepository{client: client, table: table}
}

func (r *dynamoPromoRepository) GetAll(ctx context.Context) ([]entities.Promo, error) {
	items, err := scanAll(ctx, r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, fmt.Errorf("scanning promos table: %w", err)
	}

	var promos []entities.Promo
	if err := attributevalue.UnmarshalListOfMaps(items, &promos); err != nil {
		return nil, fmt.Errorf("unmarshaling promos: %w", err)
	}
	return promos, nil
}

func (r *dynamoPromoRepository) GetByID(ctx context.Context, id string) (*entities.Promo, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("getting promo by id: %w", err)
	}
	if result.Item == nil {
		return nil, nil
	}

	var promo entities.Promo
	if err := attributevalue.UnmarshalMap(result.Item, &promo); err != nil {
		return nil, fmt.Errorf("unmarshaling promo: %w", err)
	}
	return &promo, nil
}

func (r *dynamoPromoRepository) GetByRestaurantID(ctx context.Context, restaurantID string) ([]entities.Promo, error) {
	items, err := scanAll(ctx, r.client, &dynamodb.ScanInput{
		TableName:        aws.String(r.table),
		FilterExpression: aws.String("restaurantId = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: restaurantID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scanning promos by restaurant id: %w", err)
	}

	var promos []entities.Promo
	if err := attributevalue.UnmarshalListOfMaps(items, &promos); err != nil {
		return nil, fmt.Errorf("unmarshaling promos: %w", err)
	}
	return promos, nil
}

func (r *dynamoPromoRepository) GetByCategory(ctx context.Context, category string) ([]entities.Promo, error) {
	// The store cannot compare case-insensitively, so filter client-side
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var promos []entities.Promo
	for _, promo := range all {
		if strings.EqualFold(promo.Category, category) {
			promos = append(promos, promo)
		}
	}
	return promos, nil
}

func (r *dynamoPromoRepository) GetByCategories(ctx context.Context, categories []string) ([]entities.Promo, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var promos []entities.Promo
	for _, promo := range all {
		for _, category := range categories {
			if strings.EqualFold(promo.Category, category) {
				promos = append(promos, promo)
				break
			}
		}
	}
	return promos, nil
}

func (r *dynamoPromoRepository) Save(ctx context.Context, promo entities.Promo) error {
	item, err := attributevalue.MarshalMap(promo)
	if err != nil {
		return fmt.Errorf("marshaling promo: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("putting promo: %w", err)
	}
	return nil
}

func (r *dynamoPromoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("deleting promo: %w", err)
	}
	return nil
}
