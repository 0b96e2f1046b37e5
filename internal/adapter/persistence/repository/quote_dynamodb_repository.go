package repository

import (
	"context"
	"errors"
	"time"

	"freelance_hub/internal/domain/entities"
	"freelance_hub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesCustomerIDIndex  = "customer_id-index"
)

type quoteItem struct {
	ID                 string   `dynamodbav:"id"`
	QuoteNumber        string   `dynamodbav:"quote_number"`
	CustomerID         string   `dynamodbav:"customer_id"`
	CustomerName       string   `dynamodbav:"customer_name,omitempty"`
	CustomerEmail      string   `dynamodbav:"customer_email,omitempty"`
	Description        string   `dynamodbav:"description"`
	EstimatedCostCents int64    `dynamodbav:"estimated_cost_cents"`
	Status             string   `dynamodbav:"status"`
	Priority           string   `dynamodbav:"priority"`
	RushDelivery       string   `dynamodbav:"rush_delivery"`
	Timeline           string   `dynamodbav:"timeline,omitempty"`
	PackageName        string   `dynamodbav:"package_name,omitempty"`
	PackageFeatures    []string `dynamodbav:"package_features,omitempty"`
	CreatedAt          string   `dynamodbav:"created_at"`
	UpdatedAt          string   `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// All status writes are conditional on the current status, which is what
// makes the state machine safe against concurrent staff actions.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	var quotes []entities.Quote
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			quotes = append(quotes, fromQuoteItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return quotes, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *QuoteDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) UpdateStatusFrom(ctx context.Context, id string, to entities.QuoteStatus, allowedFrom []entities.QuoteStatus) (entities.Quote, error) {
	cond, condValues := statusInCondition(quoteStatusStrings(allowedFrom))
	now := time.Now().UTC().Format(time.RFC3339Nano)

	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	for k, v := range condValues {
		values[k] = v
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND " + cond),
		UpdateExpression:          aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) UpdateFields(ctx context.Context, id string, edit entities.QuoteEdit) (entities.Quote, error) {
	expr := "SET #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		":completed":  &types.AttributeValueMemberS{Value: string(entities.QuoteStatusCompleted)},
		":cancelled":  &types.AttributeValueMemberS{Value: string(entities.QuoteStatusCancelled)},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}

	if edit.CustomerName != nil {
		expr += ", #customer_name = :customer_name"
		names["#customer_name"] = "customer_name"
		values[":customer_name"] = &types.AttributeValueMemberS{Value: *edit.CustomerName}
	}
	if edit.CustomerEmail != nil {
		expr += ", #customer_email = :customer_email"
		names["#customer_email"] = "customer_email"
		values[":customer_email"] = &types.AttributeValueMemberS{Value: *edit.CustomerEmail}
	}
	if edit.Description != nil {
		expr += ", #description = :description"
		names["#description"] = "description"
		values[":description"] = &types.AttributeValueMemberS{Value: *edit.Description}
	}
	if edit.EstimatedCostCents != nil {
		expr += ", #estimated_cost_cents = :estimated_cost_cents"
		names["#estimated_cost_cents"] = "estimated_cost_cents"
		cost, err := attributevalue.Marshal(*edit.EstimatedCostCents)
		if err != nil {
			return entities.Quote{}, err
		}
		values[":estimated_cost_cents"] = cost
	}
	if edit.Timeline != nil {
		expr += ", #timeline = :timeline"
		names["#timeline"] = "timeline"
		values[":timeline"] = &types.AttributeValueMemberS{Value: *edit.Timeline}
	}
	if edit.Priority != nil {
		expr += ", #priority = :priority"
		names["#priority"] = "priority"
		values[":priority"] = &types.AttributeValueMemberS{Value: string(*edit.Priority)}
	}
	if edit.RushDelivery != nil {
		expr += ", #rush_delivery = :rush_delivery"
		names["#rush_delivery"] = "rush_delivery"
		values[":rush_delivery"] = &types.AttributeValueMemberS{Value: string(*edit.RushDelivery)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND NOT #status IN (:completed, :cancelled)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:                 q.ID,
		QuoteNumber:        q.QuoteNumber,
		CustomerID:         q.CustomerID,
		CustomerName:       q.CustomerName,
		CustomerEmail:      q.CustomerEmail,
		Description:        q.Description,
		EstimatedCostCents: q.EstimatedCostCents,
		Status:             string(q.Status),
		Priority:           string(q.Priority),
		RushDelivery:       string(q.RushDelivery),
		Timeline:           q.Timeline,
		CreatedAt:          q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.SelectedPackage != nil {
		it.PackageName = q.SelectedPackage.Name
		it.PackageFeatures = q.SelectedPackage.Features
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	q := entities.Quote{
		ID:                 it.ID,
		QuoteNumber:        it.QuoteNumber,
		CustomerID:         it.CustomerID,
		CustomerName:       it.CustomerName,
		CustomerEmail:      it.CustomerEmail,
		Description:        it.Description,
		EstimatedCostCents: it.EstimatedCostCents,
		Status:             entities.QuoteStatus(it.Status),
		Priority:           entities.QuotePriority(it.Priority),
		RushDelivery:       entities.RushDelivery(it.RushDelivery),
		Timeline:           it.Timeline,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
	if it.PackageName != "" {
		q.SelectedPackage = &entities.PackageSelection{Name: it.PackageName, Features: it.PackageFeatures}
	}
	return q
}
