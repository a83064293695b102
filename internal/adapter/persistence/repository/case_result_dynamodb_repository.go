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

const defaultCaseResultsTableName = "case_results"

type caseResultItem struct {
	ID                string `dynamodbav:"id"`
	DefendantName     string `dynamodbav:"defendant_name"`
	Offense           string `dynamodbav:"offense"`
	AmendedCharge     string `dynamodbav:"amended_charge"`
	Disposition       string `dynamodbav:"disposition"`
	OtherDisposition  string `dynamodbav:"other_disposition"`
	JailTimeImposed   string `dynamodbav:"jail_time_imposed"`
	JailTimeSuspended string `dynamodbav:"jail_time_suspended"`
	FineImposed       string `dynamodbav:"fine_imposed"`
	FineSuspended     string `dynamodbav:"fine_suspended"`
	LicenseSuspension string `dynamodbav:"license_suspension"`
	ASAPOrdered       string `dynamodbav:"asap_ordered"`
	ProbationType     string `dynamodbav:"probation_type"`
	WasContinued      string `dynamodbav:"was_continued"`
	ContinuationDate  string `dynamodbav:"continuation_date"`
	ClientEmail       string `dynamodbav:"client_email"`
	Notes             string `dynamodbav:"notes"`
	DateDisposition   string `dynamodbav:"date_disposition"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// CaseResultDynamoRepository persists CaseResult entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string, ascending numeric issued by the counters table)
type CaseResultDynamoRepository struct {
	ddb       *dynamodb.Client
	seq       *sequence
	tableName string
}

var _ interfaces.ICaseResultRepository = (*CaseResultDynamoRepository)(nil)

func NewCaseResultDynamoRepository(ddb *dynamodb.Client) *CaseResultDynamoRepository {
	return &CaseResultDynamoRepository{
		ddb:       ddb,
		seq:       newSequence(ddb),
		tableName: getenvDefault("CASE_RESULTS_TABLE", defaultCaseResultsTableName),
	}
}

func (r *CaseResultDynamoRepository) Create(ctx context.Context, cr entities.CaseResult) (entities.CaseResult, error) {
	id, err := r.seq.next(ctx, "case_results")
	if err != nil {
		return entities.CaseResult{}, err
	}
	cr.ID = id

	av, err := attributevalue.MarshalMap(toCaseResultItem(cr))
	if err != nil {
		return entities.CaseResult{}, err
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
		return entities.CaseResult{}, err
	}
	return cr, nil
}

func (r *CaseResultDynamoRepository) GetByID(ctx context.Context, id string) (entities.CaseResult, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CaseResult{}, err
	}
	if len(out.Item) == 0 {
		return entities.CaseResult{}, nil
	}

	var it caseResultItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CaseResult{}, err
	}
	return fromCaseResultItem(it), nil
}

func (r *CaseResultDynamoRepository) Update(ctx context.Context, id string, upd entities.CaseResultUpdate) (entities.CaseResult, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	b := newUpdateBuilder()
	b.setString("defendant_name", upd.DefendantName)
	b.setString("offense", upd.Offense)
	b.setString("amended_charge", upd.AmendedCharge)
	b.setString("disposition", upd.Disposition)
	b.setString("other_disposition", upd.OtherDisposition)
	b.setString("jail_time_imposed", upd.JailTimeImposed)
	b.setString("jail_time_suspended", upd.JailTimeSuspended)
	b.setString("fine_imposed", upd.FineImposed)
	b.setString("fine_suspended", upd.FineSuspended)
	b.setString("license_suspension", upd.LicenseSuspension)
	b.setString("asap_ordered", upd.ASAPOrdered)
	b.setString("probation_type", upd.ProbationType)
	b.setString("was_continued", upd.WasContinued)
	b.setString("continuation_date", upd.ContinuationDate)
	b.setString("client_email", upd.ClientEmail)
	b.setString("notes", upd.Notes)
	b.setString("date_disposition", upd.DateDisposition)
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
			return entities.CaseResult{}, nil
		}
		return entities.CaseResult{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.CaseResult{}, nil
	}

	var it caseResultItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CaseResult{}, err
	}
	return fromCaseResultItem(it), nil
}

func (r *CaseResultDynamoRepository) List(ctx context.Context) ([]entities.CaseResult, error) {
	results := []entities.CaseResult{}

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []caseResultItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			results = append(results, fromCaseResultItem(it))
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func toCaseResultItem(cr entities.CaseResult) caseResultItem {
	return caseResultItem{
		ID:                cr.ID,
		DefendantName:     cr.DefendantName,
		Offense:           cr.Offense,
		AmendedCharge:     cr.AmendedCharge,
		Disposition:       string(cr.Disposition),
		OtherDisposition:  cr.OtherDisposition,
		JailTimeImposed:   cr.JailTimeImposed,
		JailTimeSuspended: cr.JailTimeSuspended,
		FineImposed:       cr.FineImposed,
		FineSuspended:     cr.FineSuspended,
		LicenseSuspension: cr.LicenseSuspension,
		ASAPOrdered:       cr.ASAPOrdered,
		ProbationType:     cr.ProbationType,
		WasContinued:      cr.WasContinued,
		ContinuationDate:  cr.ContinuationDate,
		ClientEmail:       cr.ClientEmail,
		Notes:             cr.Notes,
		DateDisposition:   cr.DateDisposition,
		CreatedAt:         cr.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         cr.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCaseResultItem(it caseResultItem) entities.CaseResult {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.CaseResult{
		ID:                it.ID,
		DefendantName:     it.DefendantName,
		Offense:           it.Offense,
		AmendedCharge:     it.AmendedCharge,
		Disposition:       entities.Disposition(it.Disposition),
		OtherDisposition:  it.OtherDisposition,
		JailTimeImposed:   it.JailTimeImposed,
		JailTimeSuspended: it.JailTimeSuspended,
		FineImposed:       it.FineImposed,
		FineSuspended:     it.FineSuspended,
		LicenseSuspension: it.LicenseSuspension,
		ASAPOrdered:       it.ASAPOrdered,
		ProbationType:     it.ProbationType,
		WasContinued:      it.WasContinued,
		ContinuationDate:  it.ContinuationDate,
		ClientEmail:       it.ClientEmail,
		Notes:             it.Notes,
		DateDisposition:   it.DateDisposition,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
