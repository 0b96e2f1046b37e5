package repository

import (
	"context"
	"errors"

	"freelance_hub/internal/domain/entities"
	"freelance_hub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ApprovalDynamoStore commits a quote approval as a single DynamoDB
// transaction: the quote flips from under_review to approved, and the invoice
// and project items are written, all or nothing. A concurrent approval or
// cancellation loses the quote condition and the whole transaction rolls
// back, so no orphan invoice or project can ever exist.

type ApprovalDynamoStore struct {
	ddb           *dynamodb.Client
	quotesTable   string
	invoicesTable string
	projectsTable string
}

var _ interfaces.IApprovalStore = (*ApprovalDynamoStore)(nil)

func NewApprovalDynamoStore(ddb *dynamodb.Client) *ApprovalDynamoStore {
	return &ApprovalDynamoStore{
		ddb:           ddb,
		quotesTable:   getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
		invoicesTable: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
		projectsTable: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (s *ApprovalDynamoStore) CommitApproval(ctx context.Context, quoteID string, inv entities.Invoice, proj entities.Project) (bool, error) {
	invoiceAV, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return false, err
	}
	projectAV, err := attributevalue.MarshalMap(toProjectItem(proj))
	if err != nil {
		return false, err
	}

	_, err = s.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(s.quotesTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: quoteID},
					},
					ConditionExpression: aws.String("attribute_exists(#id) AND #status = :under_review"),
					UpdateExpression:    aws.String("SET #status = :approved, #updated_at = :updated_at"),
					ExpressionAttributeNames: map[string]string{
						"#id":         "id",
						"#status":     "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":under_review": &types.AttributeValueMemberS{Value: string(entities.QuoteStatusUnderReview)},
						":approved":     &types.AttributeValueMemberS{Value: string(entities.QuoteStatusApproved)},
						":updated_at":   &types.AttributeValueMemberS{Value: nowString()},
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(s.invoicesTable),
					Item:                invoiceAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(s.projectsTable),
					Item:                projectAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && canceledOnCondition(tce) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func canceledOnCondition(tce *types.TransactionCanceledException) bool {
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}
