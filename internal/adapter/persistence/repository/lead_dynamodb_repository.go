package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"dischley_intake/internal/domain/entities"
	"dischley_intake/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	Phone          string `dynamodbav:"phone"`
	Email          string `dynamodbav:"email"`
	Charge         string `dynamodbav:"charge"`
	CourtDate      string `dynamodbav:"court_date"`
	CourtTime      string `dynamodbav:"court_time"`
	Court          string `dynamodbav:"court"`
	Notes          string `dynamodbav:"notes"`
	Homework       string `dynamodbav:"homework"`
	SendRetainer   bool   `dynamodbav:"send_retainer"`
	RetainerAmount string `dynamodbav:"retainer_amount"`
	LVM            bool   `dynamodbav:"lvm"`
	NotPC          bool   `dynamodbav:"not_pc"`
	Quote          string `dynamodbav:"quote"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, ascending numeric issued by the counters table)
type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	seq       *sequence
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		seq:       newSequence(ddb),
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	id, err := r.seq.next(ctx, "leads")
	if err != nil {
		return entities.Lead{}, err
	}
	l.ID = id

	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) Update(ctx context.Context, id string, upd entities.LeadUpdate) (entities.Lead, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	b := newUpdateBuilder()
	b.setString("name", upd.Name)
	b.setString("phone", upd.Phone)
	b.setString("email", upd.Email)
	b.setString("charge", upd.Charge)
	b.setString("court_date", upd.CourtDate)
	b.setString("court_time", upd.CourtTime)
	b.setString("court", upd.Court)
	b.setString("notes", upd.Notes)
	b.setString("homework", upd.Homework)
	b.setBool("send_retainer", upd.SendRetainer)
	b.setString("retainer_amount", upd.RetainerAmount)
	b.setBool("lvm", upd.LVM)
	b.setBool("not_pc", upd.NotPC)
	b.setString("quote", upd.Quote)
	b.setString("updated_at", &now)
	updateExpr, vals, names := b.expression()

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) List(ctx context.Context) ([]entities.Lead, error) {
	leads := []entities.Lead{}

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []leadItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			leads = append(leads, fromLeadItem(it))
		}
	}

	sort.Slice(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
	return leads, nil
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:             l.ID,
		Name:           l.Name,
		Phone:          l.Phone,
		Email:          l.Email,
		Charge:         l.Charge,
		CourtDate:      l.CourtDate,
		CourtTime:      l.CourtTime,
		Court:          l.Court,
		Notes:          l.Notes,
		Homework:       l.Homework,
		SendRetainer:   l.SendRetainer,
		RetainerAmount: l.RetainerAmount,
		LVM:            l.LVM,
		NotPC:          l.NotPC,
		Quote:          l.Quote,
		CreatedAt:      l.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      l.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLeadItem(it leadItem) entities.Lead {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Lead{
		ID:             it.ID,
		Name:           it.Name,
		Phone:          it.Phone,
		Email:          it.Email,
		Charge:         it.Charge,
		CourtDate:      it.CourtDate,
		CourtTime:      it.CourtTime,
		Court:          it.Court,
		Notes:          it.Notes,
		Homework:       it.Homework,
		SendRetainer:   it.SendRetainer,
		RetainerAmount: it.RetainerAmount,
		LVM:            it.LVM,
		NotPC:          it.NotPC,
		Quote:          it.Quote,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
