package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"trendsight/internal/clients"
	"trendsight/internal/models"
)

const USERS_TABLE_NAME = "Users"

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

var dbClient *dynamodb.Client

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

// CreateUser stores a new account keyed by case-folded email. Signing up
// an email that already exists fails with ErrUserExists.
func CreateUser(ctx context.Context, user models.User) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	user.Email = strings.ToLower(user.Email)

	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to marshal user: %w", err)
	}

	_, err = dbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(USERS_TABLE_NAME),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(email)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrUserExists
		}
		return fmt.Errorf("[DynamoDB] Failed to store user: %w", err)
	}

	slog.Info("[DynamoDB] User created",
		slog.String("email", user.Email),
		slog.String("plan", user.Plan))
	return nil
}

// GetUserByEmail looks up an account; missing accounts return
// ErrUserNotFound.
func GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	out, err := dbClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(USERS_TABLE_NAME),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: strings.ToLower(email)},
		},
	})
	if err != nil {
		return models.User{}, fmt.Errorf("[DynamoDB] Failed to get user: %w", err)
	}

	if out.Item == nil {
		return models.User{}, ErrUserNotFound
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(out.Item, &user); err != nil {
		return models.User{}, fmt.Errorf("[DynamoDB] Failed to unmarshal user: %w", err)
	}

	return user, nil
}

// UpsertUser writes an account unconditionally; used by the admin seeder.
func UpsertUser(ctx context.Context, user models.User) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	user.Email = strings.ToLower(user.Email)

	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to marshal user: %w", err)
	}

	_, err = dbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(USERS_TABLE_NAME),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to upsert user: %w", err)
	}

	slog.Info("[DynamoDB] User upserted", slog.String("email", user.Email))
	return nil
}
