package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStubDynamoClient points a real DynamoDB client at a local test server
func newStubDynamoClient(t *testing.T, handler http.HandlerFunc) *dynamodb.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := aws.Config{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("test", "test", ""),
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		o.BaseEndpoint = aws.String(srv.URL)
	})
}

func TestDynamoUserGetAllFollowsPagination(t *testing.T) {
	var calls int
	var startKeys []bool
	client := newStubDynamoClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req struct {
			ExclusiveStartKey map[string]interface{}
		}
		require.NoError(t, json.Unmarshal(body, &req))
		startKeys = append(startKeys, len(req.ExclusiveStartKey) > 0)

		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		if calls == 1 {
			fmt.Fprint(w, `{
				"Items": [{"id":{"S":"u1"},"name":{"S":"Ana"},"email":{"S":"a@x.com"},"type":{"S":"REGULAR"}}],
				"LastEvaluatedKey": {"id":{"S":"u1"}}
			}`)
			return
		}
		fmt.Fprint(w, `{
			"Items": [{"id":{"S":"u2"},"name":{"S":"Bia"},"email":{"S":"b@x.com"},"type":{"S":"RESTAURANT"}}]
		}`)
	})

	repo := NewDynamoUserRepository(client, "valefood-users")
	users, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, calls, "expected a second Scan for the next page")
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID)
	assert.Equal(t, "u2", users[1].ID)
	// First page starts fresh, second page resumes from the returned key
	assert.Equal(t, []bool{false, true}, startKeys)
}

func TestDynamoPromoGetByRestaurantIDFollowsPagination(t *testing.T) {
	var calls int
	client := newStubDynamoClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/x-amz-json-1.0")
		if calls == 1 {
			fmt.Fprint(w, `{
				"Items": [{"id":{"S":"p1"},"title":{"S":"Family pizza"},"restaurantId":{"S":"r1"},"category":{"S":"pizza"},"price":{"N":"30"}}],
				"LastEvaluatedKey": {"id":{"S":"p1"}}
			}`)
			return
		}
		fmt.Fprint(w, `{
			"Items": [{"id":{"S":"p2"},"title":{"S":"Sushi combo"},"restaurantId":{"S":"r1"},"category":{"S":"sushi"},"price":{"N":"50"}}]
		}`)
	})

	repo := NewDynamoPromoRepository(client, "valefood-promos")
	promos, err := repo.GetByRestaurantID(context.Background(), "r1")
	require.NoError(t, err)

	require.Equal(t, 2, calls)
	require.Len(t, promos, 2)
	assert.Equal(t, "p1", promos[0].ID)
	assert.Equal(t, "p2", promos[1].ID)
	assert.Equal(t, 50.0, promos[1].Price)
}
