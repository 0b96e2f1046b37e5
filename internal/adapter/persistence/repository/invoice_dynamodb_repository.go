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
	defaultInvoicesTableName = "invoices"
	invoicesQuoteIDIndex     = "quote_id-index"
	invoicesCustomerIDIndex  = "customer_id-index"
)

type lineItemRecord struct {
	Kind        string `dynamodbav:"kind"`
	Description string `dynamodbav:"description"`
	Quantity    int64  `dynamodbav:"quantity"`
	RateCents   int64  `dynamodbav:"rate_cents"`
	TotalCents  int64  `dynamodbav:"total_cents"`
}

type invoiceItem struct {
	ID                 string           `dynamodbav:"id"`
	QuoteID            string           `dynamodbav:"quote_id"`
	CustomerID         string           `dynamodbav:"customer_id"`
	AmountCents        int64            `dynamodbav:"amount_cents"`
	DepositRequired    bool             `dynamodbav:"deposit_required"`
	DepositAmountCents int64            `dynamodbav:"deposit_amount_cents"`
	DepositPaid        bool             `dynamodbav:"deposit_paid"`
	Status             string           `dynamodbav:"status"`
	DueDate            string           `dynamodbav:"due_date"`
	PaidDate           string           `dynamodbav:"paid_date,omitempty"`
	LineItems          []lineItemRecord `dynamodbav:"line_items,omitempty"`
	CreatedAt          string           `dynamodbav:"created_at"`
	UpdatedAt          string           `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
//   - GSI: customer_id-index (PK: customer_id)
//
// Payment markers are conditional so a replayed webhook or double-click can
// never pay the same phase twice.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Items) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) List(ctx context.Context) ([]entities.Invoice, error) {
	var invoices []entities.Invoice
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
			var it invoiceItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			invoices = append(invoices, fromInvoiceItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return invoices, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *InvoiceDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Invoice, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invoicesCustomerIDIndex),
		KeyConditionExpression: aws.String("customer_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(out.Items))
	for _, raw := range out.Items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		invoices = append(invoices, fromInvoiceItem(it))
	}
	return invoices, nil
}

func (r *InvoiceDynamoRepository) MarkDepositPaid(ctx context.Context, id string) (entities.Invoice, error) {
	return r.update(ctx, id,
		"SET #deposit_paid = :true, #updated_at = :updated_at",
		"attribute_exists(#id) AND #deposit_paid = :false AND #status IN (:pending, :overdue)",
		map[string]types.AttributeValue{
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":false":      &types.AttributeValueMemberBOOL{Value: false},
			":pending":    &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPending)},
			":overdue":    &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusOverdue)},
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
		map[string]string{
			"#deposit_paid": "deposit_paid",
			"#status":       "status",
			"#updated_at":   "updated_at",
		},
	)
}

func (r *InvoiceDynamoRepository) MarkPaid(ctx context.Context, id string, paidDate time.Time) (entities.Invoice, error) {
	return r.update(ctx, id,
		"SET #status = :paid, #paid_date = :paid_date, #deposit_paid = :true, #updated_at = :updated_at",
		"attribute_exists(#id) AND #status IN (:pending, :overdue)",
		map[string]types.AttributeValue{
			":paid":       &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPaid)},
			":paid_date":  &types.AttributeValueMemberS{Value: paidDate.UTC().Format(time.RFC3339Nano)},
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":pending":    &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPending)},
			":overdue":    &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusOverdue)},
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
		map[string]string{
			"#status":       "status",
			"#paid_date":    "paid_date",
			"#deposit_paid": "deposit_paid",
			"#updated_at":   "updated_at",
		},
	)
}

func (r *InvoiceDynamoRepository) UpdateAmount(ctx context.Context, id string, amountCents, depositCents int64) (entities.Invoice, error) {
	amount, err := attributevalue.Marshal(amountCents)
	if err != nil {
		return entities.Invoice{}, err
	}
	deposit, err := attributevalue.Marshal(depositCents)
	if err != nil {
		return entities.Invoice{}, err
	}

	return r.update(ctx, id,
		"SET #amount_cents = :amount, #deposit_amount_cents = :deposit, #updated_at = :updated_at",
		"attribute_exists(#id) AND #deposit_paid = :false AND #status = :pending",
		map[string]types.AttributeValue{
			":amount":     amount,
			":deposit":    deposit,
			":false":      &types.AttributeValueMemberBOOL{Value: false},
			":pending":    &types.AttributeValueMemberS{Value: string(entities.InvoiceStatusPending)},
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
		map[string]string{
			"#amount_cents":         "amount_cents",
			"#deposit_amount_cents": "deposit_amount_cents",
			"#deposit_paid":         "deposit_paid",
			"#status":               "status",
			"#updated_at":           "updated_at",
		},
	)
}

func (r *InvoiceDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	conditionExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Invoice, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(conditionExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func nowString() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	it := invoiceItem{
		ID:                 inv.ID,
		QuoteID:            inv.QuoteID,
		CustomerID:         inv.CustomerID,
		AmountCents:        inv.AmountCents,
		DepositRequired:    inv.DepositRequired,
		DepositAmountCents: inv.DepositAmountCents,
		DepositPaid:        inv.DepositPaid,
		Status:             string(inv.Status),
		DueDate:            inv.DueDate.UTC().Format(time.RFC3339Nano),
		CreatedAt:          inv.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:          inv.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if inv.PaidDate != nil {
		it.PaidDate = inv.PaidDate.UTC().Format(time.RFC3339Nano)
	}
	for _, li := range inv.LineItems {
		it.LineItems = append(it.LineItems, lineItemRecord{
			Kind:        string(li.Kind),
			Description: li.Description,
			Quantity:    li.Quantity,
			RateCents:   li.RateCents,
			TotalCents:  li.TotalCents,
		})
	}
	return it
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	inv := entities.Invoice{
		ID:                 it.ID,
		QuoteID:            it.QuoteID,
		CustomerID:         it.CustomerID,
		AmountCents:        it.AmountCents,
		DepositRequired:    it.DepositRequired,
		DepositAmountCents: it.DepositAmountCents,
		DepositPaid:        it.DepositPaid,
		Status:             entities.InvoiceStatus(it.Status),
		DueDate:            dueDate,
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}
	if it.PaidDate != "" {
		if pd, err := time.Parse(time.RFC3339Nano, it.PaidDate); err == nil {
			inv.PaidDate = &pd
		}
	}
	for _, li := range it.LineItems {
		inv.LineItems = append(inv.LineItems, entities.LineItem{
			Kind:        entities.LineItemKind(li.Kind),
			Description: li.Description,
			Quantity:    li.Quantity,
			RateCents:   li.RateCents,
			TotalCents:  li.TotalCents,
		})
	}
	return inv
}
