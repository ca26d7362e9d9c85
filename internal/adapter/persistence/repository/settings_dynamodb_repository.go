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

const defaultSettingsTableName = "app_settings"

// Namespace keys within the settings table.
const (
	settingsKeyPricing = "pricing"
	settingsKeyCompany = "company_info"
	settingsKeyApp     = "app_settings"
)

type settingsItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SettingsDynamoRepository stores configuration singletons as one JSON
// document per namespace key.
//
// Table requirements:
//   - PK: key (string)

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) GetPricing(ctx context.Context) (entities.PricingTable, bool, error) {
	var p entities.PricingTable
	found, err := r.getValue(ctx, settingsKeyPricing, &p)
	return p, found, err
}

func (r *SettingsDynamoRepository) SavePricing(ctx context.Context, p entities.PricingTable) error {
	return r.putValue(ctx, settingsKeyPricing, p)
}

func (r *SettingsDynamoRepository) GetCompanyInfo(ctx context.Context) (entities.CompanyInfo, bool, error) {
	var info entities.CompanyInfo
	found, err := r.getValue(ctx, settingsKeyCompany, &info)
	return info, found, err
}

func (r *SettingsDynamoRepository) SaveCompanyInfo(ctx context.Context, info entities.CompanyInfo) error {
	return r.putValue(ctx, settingsKeyCompany, info)
}

func (r *SettingsDynamoRepository) GetSettings(ctx context.Context) (entities.AppSettings, bool, error) {
	var s entities.AppSettings
	found, err := r.getValue(ctx, settingsKeyApp, &s)
	return s, found, err
}

func (r *SettingsDynamoRepository) SaveSettings(ctx context.Context, s entities.AppSettings) error {
	return r.putValue(ctx, settingsKeyApp, s)
}

func (r *SettingsDynamoRepository) getValue(ctx context.Context, key string, dst any) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(it.Value), dst); err != nil {
		return false, err
	}
	return true, nil
}

func (r *SettingsDynamoRepository) putValue(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	av, err := attributevalue.MarshalMap(settingsItem{
		Key:       key,
		Value:     string(raw),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}
