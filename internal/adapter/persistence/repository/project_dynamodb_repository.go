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
	defaultProjectsTableName = "projects"
	projectsQuoteIDIndex     = "quote_id-index"
)

type projectItem struct {
	ID           string   `dynamodbav:"id"`
	QuoteID      string   `dynamodbav:"quote_id"`
	CustomerID   string   `dynamodbav:"customer_id"`
	Status       string   `dynamodbav:"status"`
	Progress     int      `dynamodbav:"progress"`
	BudgetCents  int64    `dynamodbav:"budget_cents"`
	StartDate    string   `dynamodbav:"start_date"`
	EndDate      string   `dynamodbav:"end_date"`
	GithubURL    string   `dynamodbav:"github_url,omitempty"`
	PackageName  string   `dynamodbav:"package_name,omitempty"`
	Features     []string `dynamodbav:"features,omitempty"`
	RushDelivery string   `dynamodbav:"rush_delivery"`
	CreatedAt    string   `dynamodbav:"created_at"`
	UpdatedAt    string   `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	av, err := attributevalue.MarshalMap(toProjectItem(p))
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.Project, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(projectsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Items) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	var projects []entities.Project
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
			var it projectItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			projects = append(projects, fromProjectItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return projects, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *ProjectDynamoRepository) UpdateProgress(ctx context.Context, id string, progress int, status entities.ProjectStatus) (entities.Project, error) {
	progressAV, err := attributevalue.Marshal(progress)
	if err != nil {
		return entities.Project{}, err
	}

	return r.update(ctx, id,
		"SET #progress = :progress, #status = :status, #updated_at = :updated_at",
		"attribute_exists(#id)",
		map[string]types.AttributeValue{
			":progress":   progressAV,
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
		map[string]string{
			"#progress":   "progress",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
	)
}

func (r *ProjectDynamoRepository) UpdateStatus(ctx context.Context, id string, to entities.ProjectStatus, allowedFrom []entities.ProjectStatus) (entities.Project, error) {
	inExpr, inValues := statusInCondition(projectStatusStrings(allowedFrom))
	values := map[string]types.AttributeValue{
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: nowString()},
	}
	for k, v := range inValues {
		values[k] = v
	}

	return r.update(ctx, id,
		"SET #status = :to, #updated_at = :updated_at",
		"attribute_exists(#id) AND "+inExpr,
		values,
		map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		},
	)
}

func (r *ProjectDynamoRepository) SetGithubURL(ctx context.Context, id, url string) (entities.Project, error) {
	return r.update(ctx, id,
		"SET #github_url = :url, #updated_at = :updated_at",
		"attribute_exists(#id)",
		map[string]types.AttributeValue{
			":url":        &types.AttributeValueMemberS{Value: url},
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
		map[string]string{
			"#github_url": "github_url",
			"#updated_at": "updated_at",
		},
	)
}

func (r *ProjectDynamoRepository) update(
	ctx context.Context,
	id string,
	updateExpr string,
	conditionExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.Project, error) {
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
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:           p.ID,
		QuoteID:      p.QuoteID,
		CustomerID:   p.CustomerID,
		Status:       string(p.Status),
		Progress:     p.Progress,
		BudgetCents:  p.BudgetCents,
		StartDate:    p.StartDate.UTC().Format(time.RFC3339Nano),
		EndDate:      p.EndDate.UTC().Format(time.RFC3339Nano),
		GithubURL:    p.GithubURL,
		PackageName:  p.PackageName,
		Features:     p.Features,
		RushDelivery: string(p.RushDelivery),
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	startDate, _ := time.Parse(time.RFC3339Nano, it.StartDate)
	endDate, _ := time.Parse(time.RFC3339Nano, it.EndDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.Project{
		ID:           it.ID,
		QuoteID:      it.QuoteID,
		CustomerID:   it.CustomerID,
		Status:       entities.ProjectStatus(it.Status),
		Progress:     it.Progress,
		BudgetCents:  it.BudgetCents,
		StartDate:    startDate,
		EndDate:      endDate,
		GithubURL:    it.GithubURL,
		PackageName:  it.PackageName,
		Features:     it.Features,
		RushDelivery: entities.RushDelivery(it.RushDelivery),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
