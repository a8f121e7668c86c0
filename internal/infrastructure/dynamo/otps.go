package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/game-admin-api/internal/application/otp"
	"github.com/game-admin-api/internal/domain"
)

// OTPStore keeps one-time codes in DynamoDB.
// PK: otp_key. Expired rows are reaped by the table TTL on expires_at.
type OTPStore struct {
	client    API
	tableName string
}

func NewOTPStore(client API, tableName string) *OTPStore {
	return &OTPStore{client: client, tableName: tableName}
}

func (s *OTPStore) Put(ctx context.Context, key string, e otp.Entry) error {
	item, err := attributevalue.MarshalMap(domain.OTPRecord{
		Key:             key,
		Code:            e.Code,
		ExpiresAt:       e.ExpiresAt.Unix(),
		ExpiresAtMillis: e.ExpiresAt.UnixMilli(),
	})
	if err != nil {
		return fmt.Errorf("marshal otp: %w", err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	return err
}

// Consume deletes the row only if the code matches and the deadline has not
// passed; the condition makes the check and the delete one atomic step.
func (s *OTPStore) Consume(ctx context.Context, key, code string, now time.Time) (bool, error) {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.tableName),
		Key:                 strKey(attrOTPKey, key),
		ConditionExpression: aws.String("#c = :c AND #e > :now"),
		ExpressionAttributeNames: map[string]string{
			"#c": attrCode,
			"#e": attrExpiresAtMs,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":c":   str(code),
			":now": num(now.UnixMilli()),
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, fmt.Errorf("dynamo consume otp: %w", err)
	}
	return true, nil
}
