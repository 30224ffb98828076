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

// UserRepository defines the storage operations for the users collection.
// Lookups return (nil, nil) when no document matches; a non-nil error always
// means the store itself could not be reached or answered abnormally.
type UserRepository interface {
	GetAll(ctx context.Context) ([]entities.User, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Save(ctx context.Context, user entities.User) error
	Delete(ctx context.Context, id string) error
}

type dynamoUserRepository struct {
	client *dynamodb.Client
	table  string
}

// NewDynamoUserRepository creates a DynamoDB-backed user repository
func NewDynamoUserRepository(client *dynamodb.Client, table string) UserRepository {
	return &dynamoUserRepository{client: client, table: table}
}

func (r *dynamoUserRepository) GetAll(ctx context.Context) ([]entities.User, error) {
	items, err := scanAll(ctx, r.client, &dynamodb.ScanInput{
		TableName: aws.String(r.table),
	})
	if err != nil {
		return nil, fmt.Errorf("scanning users table: %w", err)
	}

	var users []entities.User
	if err := attributevalue.UnmarshalListOfMaps(items, &users); err != nil {
		return nil, fmt.Errorf("unmarshaling users: %w", err)
	}
	return users, nil
}

func (r *dynamoUserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("getting user by id: %w", err)
	}
	if result.Item == nil {
		return nil, nil
	}

	var user entities.User
	if err := attributevalue.UnmarshalMap(result.Item, &user); err != nil {
		return nil, fmt.Errorf("unmarshaling user: %w", err)
	}
	return &user, nil
}

func (r *dynamoUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	// Email comparison is exact and case-sensitive by contract
	items, err := scanAll(ctx, r.client, &dynamodb.ScanInput{
		TableName:        aws.String(r.table),
		FilterExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scanning users by email: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	var user entities.User
	if err := attributevalue.UnmarshalMap(items[0], &user); err != nil {
		return nil, fmt.Errorf("unmarshaling user: %w", err)
	}
	return &user, nil
}

func (r *dynamoUserRepository) Save(ctx context.Context, user entities.User) error {
	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return fmt.Errorf("marshaling user: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("putting user: %w", err)
	}
	return nil
}

func (r *dynamoUserRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}
