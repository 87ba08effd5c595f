/*
# Module: storage/dynamodb.go
DynamoDB session repository implementation.

## Linked Modules
- [storage/repository](./repository.go) - Repository interface
- [types/location](../types/location.go) - Location data structures

## Tags
storage, dynamodb, persistence, session

## Exports
SessionDynamoDBRepository, NewSessionDynamoDBRepository

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "storage/dynamodb.go" ;
    code:description "DynamoDB session repository implementation" ;
    code:linksTo [
        code:name "storage/repository" ;
        code:path "./repository.go" ;
        code:relationship "Repository interface"
    ], [
        code:name "types/location" ;
        code:path "../types/location.go" ;
        code:relationship "Location data structures"
    ] ;
    code:exports :SessionDynamoDBRepository, :NewSessionDynamoDBRepository ;
    code:tags "storage", "dynamodb", "persistence", "session" .
<!-- End LinkedDoc RDF -->
*/
package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"recreo/types"
)

type sessionItem struct {
	SessionID string `dynamodbav:"session_id"`
	types.LocationRecord
	ExpiresAt int64 `dynamodbav:"expires_at"`
}

// SessionDynamoDBRepository implements SessionRepository using DynamoDB.
// The table's partition key is session_id; expires_at drives the table's
// TTL, with an extra read-time check because TTL deletion is lazy.
type SessionDynamoDBRepository struct {
	client    *dynamodb.Client
	tableName string
	ttl       time.Duration
}

// NewSessionDynamoDBRepository creates a new DynamoDB session repository
func NewSessionDynamoDBRepository(client *dynamodb.Client, tableName string) *SessionDynamoDBRepository {
	return &SessionDynamoDBRepository{
		client:    client,
		tableName: tableName,
		ttl:       24 * time.Hour,
	}
}

// GetLocation returns the session's record, or nil if none is stored
func (r *SessionDynamoDBRepository) GetLocation(ctx context.Context, sessionID string) (*types.LocationRecord, error) {
	if r.client == nil {
		return nil, fmt.Errorf("DynamoDB client not initialized")
	}

	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]dynamodbtypes.AttributeValue{
			"session_id": &dynamodbtypes.AttributeValueMemberS{Value: sessionID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get session location: %w", err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var item sessionItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session location: %w", err)
	}

	if item.ExpiresAt > 0 && time.Now().Unix() > item.ExpiresAt {
		return nil, nil
	}

	return &item.LocationRecord, nil
}

// SaveLocation overwrites the session's record
func (r *SessionDynamoDBRepository) SaveLocation(ctx context.Context, sessionID string, record types.LocationRecord) error {
	if r.client == nil {
		return fmt.Errorf("DynamoDB client not initialized")
	}

	item, err := attributevalue.MarshalMap(sessionItem{
		SessionID:      sessionID,
		LocationRecord: record,
		ExpiresAt:      time.Now().Add(r.ttl).Unix(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal session location: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to save session location to DynamoDB: %w", err)
	}

	log.Printf("💾 Session location saved to DynamoDB: session=%s", sessionID)
	return nil
}
