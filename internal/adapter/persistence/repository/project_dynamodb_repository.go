package repository

import (
	"context"
	"encoding/json"
	"time"

	"bidworks/internal/domain/entities"
	"bidworks/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProjectsTableName = "projects"

type projectItem struct {
	ID              string `dynamodbav:"id"`
	ClientID        string `dynamodbav:"client_id,omitempty"`
	ClientName      string `dynamodbav:"client_name"`
	PropertyAddress string `dynamodbav:"property_address,omitempty"`
	PropertyData    string `dynamodbav:"property_data,omitempty"`
	Status          string `dynamodbav:"status"`
	Categories      string `dynamodbav:"categories"`
	Subtotal        string `dynamodbav:"subtotal"`
	Tax             string `dynamodbav:"tax"`
	Total           string `dynamodbav:"total"`
	Notes           string `dynamodbav:"notes,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Categories travel as one JSON document inside the item: the project is
// always read and written whole, and the totals invariants are maintained by
// the use case before Save, so per-attribute updates buy nothing here.

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

func (r *ProjectDynamoRepository) GetAll(ctx context.Context) ([]entities.Project, error) {
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
			p, err := fromProjectItem(it)
			if err != nil {
				return nil, err
			}
			projects = append(projects, p)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return projects, nil
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
	return fromProjectItem(it)
}

func (r *ProjectDynamoRepository) Save(ctx context.Context, p entities.Project) (entities.Project, error) {
	it, err := toProjectItem(p)
	if err != nil {
		return entities.Project{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toProjectItem(p entities.Project) (projectItem, error) {
	categories, err := json.Marshal(p.Categories)
	if err != nil {
		return projectItem{}, err
	}

	it := projectItem{
		ID:              p.ID,
		ClientID:        p.ClientID,
		ClientName:      p.ClientName,
		PropertyAddress: p.PropertyAddress,
		Status:          string(p.Status),
		Categories:      string(categories),
		Subtotal:        floatToString(p.Subtotal),
		Tax:             floatToString(p.Tax),
		Total:           floatToString(p.Total),
		Notes:           p.Notes,
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}

	if p.PropertyData != nil {
		propertyData, err := json.Marshal(p.PropertyData)
		if err != nil {
			return projectItem{}, err
		}
		it.PropertyData = string(propertyData)
	}
	return it, nil
}

func fromProjectItem(it projectItem) (entities.Project, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	p := entities.Project{
		ID:              it.ID,
		ClientID:        it.ClientID,
		ClientName:      it.ClientName,
		PropertyAddress: it.PropertyAddress,
		Status:          entities.ProjectStatus(it.Status),
		Subtotal:        stringToFloat(it.Subtotal),
		Tax:             stringToFloat(it.Tax),
		Total:           stringToFloat(it.Total),
		Notes:           it.Notes,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}

	if it.Categories != "" {
		if err := json.Unmarshal([]byte(it.Categories), &p.Categories); err != nil {
			return entities.Project{}, err
		}
	}
	if it.PropertyData != "" {
		var pd entities.PropertyData
		if err := json.Unmarshal([]byte(it.PropertyData), &pd); err != nil {
			return entities.Project{}, err
		}
		p.PropertyData = &pd
	}
	return p, nil
}
