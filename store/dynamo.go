package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

// DynamoStore implements Store on DynamoDB. Each collection is a table named
// TablePrefix+collection with a single "id" partition key; the document body
// is the rest of the item. Set fields are string sets, so ADD/DELETE update
// expressions give the atomic, idempotent membership semantics the services
// rely on.
type DynamoStore struct {
	Client      *dynamodb.Client
	TablePrefix string
}

// InitializeDynamoDBClient initializes the DynamoDB client
func InitializeDynamoDBClient(ctx context.Context, region string) (*dynamodb.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg), nil
}

func (ds *DynamoStore) table(collection string) string {
	return ds.TablePrefix + collection
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// Get retrieves a document by id
func (ds *DynamoStore) Get(ctx context.Context, collection, id string, out interface{}) error {
	table := ds.table(collection)
	output, err := ds.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key:       idKey(id),
	})
	if err != nil {
		return fmt.Errorf("failed to get item from table '%s': %w", table, err)
	}
	if len(output.Item) == 0 {
		return ErrNotFound
	}
	if err := attributevalue.UnmarshalMap(output.Item, out); err != nil {
		return fmt.Errorf("failed to unmarshal item from table '%s': %w", table, err)
	}
	return nil
}

// Put writes a full document under the given id, replacing any previous one
func (ds *DynamoStore) Put(ctx context.Context, collection, id string, doc interface{}) error {
	table := ds.table(collection)
	item, err := attributevalue.MarshalMap(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}
	item["id"] = &types.AttributeValueMemberS{Value: id}
	_, err = ds.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in table '%s': %w", table, err)
	}
	return nil
}

// Delete removes a document. Deleting a missing document is a no-op.
func (ds *DynamoStore) Delete(ctx context.Context, collection, id string) error {
	table := ds.table(collection)
	_, err := ds.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       idKey(id),
	})
	if err != nil {
		return fmt.Errorf("failed to delete item from table '%s': %w", table, err)
	}
	return nil
}

// AddToSet atomically adds value to a string-set field
func (ds *DynamoStore) AddToSet(ctx context.Context, collection, id, field, value string) error {
	return ds.setUpdate(ctx, collection, id, field, value, false)
}

// RemoveFromSet atomically removes value from a string-set field
func (ds *DynamoStore) RemoveFromSet(ctx context.Context, collection, id, field, value string) error {
	return ds.setUpdate(ctx, collection, id, field, value, true)
}

func (ds *DynamoStore) setUpdate(ctx context.Context, collection, id, field, value string, remove bool) error {
	table := ds.table(collection)
	expr := "ADD #f :v"
	if remove {
		expr = "DELETE #f :v"
	}
	_, err := ds.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(table),
		Key:              idKey(id),
		UpdateExpression: aws.String(expr),
		ExpressionAttributeNames: map[string]string{
			"#f": field,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberSS{Value: []string{value}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to update set field '%s' in table '%s': %w", field, table, err)
	}
	return nil
}

// ApplySetOps applies the given set mutations in a single transaction, so a
// two-document mutation such as a follow either lands on both sides or on
// neither.
func (ds *DynamoStore) ApplySetOps(ctx context.Context, ops ...SetOp) error {
	if len(ops) == 0 {
		return nil
	}
	items := make([]types.TransactWriteItem, 0, len(ops))
	for _, op := range ops {
		expr := "ADD #f :v"
		if op.Remove {
			expr = "DELETE #f :v"
		}
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName:        aws.String(ds.table(op.Collection)),
				Key:              idKey(op.ID),
				UpdateExpression: aws.String(expr),
				ExpressionAttributeNames: map[string]string{
					"#f": op.Field,
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":v": &types.AttributeValueMemberSS{Value: []string{op.Value}},
				},
			},
		})
	}
	_, err := ds.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		return fmt.Errorf("failed to apply %d set ops transactionally: %w", len(ops), err)
	}
	return nil
}

// AppendToList atomically appends value to a list field, creating the list
// when absent. Insertion order is preserved.
func (ds *DynamoStore) AppendToList(ctx context.Context, collection, id, field string, value interface{}) error {
	table := ds.table(collection)
	av, err := attributevalue.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal list element: %w", err)
	}
	_, err = ds.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(table),
		Key:              idKey(id),
		UpdateExpression: aws.String("SET #f = list_append(if_not_exists(#f, :empty), :v)"),
		ExpressionAttributeNames: map[string]string{
			"#f": field,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v":     &types.AttributeValueMemberL{Value: []types.AttributeValue{av}},
			":empty": &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to append to list field '%s' in table '%s': %w", field, table, err)
	}
	return nil
}

// UpdateFields sets the given scalar fields on a document
func (ds *DynamoStore) UpdateFields(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	table := ds.table(collection)

	parts := make([]string, 0, len(fields))
	names := make(map[string]string, len(fields))
	values := make(map[string]types.AttributeValue, len(fields))
	for k, v := range fields {
		av, err := attributevalue.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal field '%s': %w", k, err)
		}
		parts = append(parts, fmt.Sprintf("#%s = :%s", k, k))
		names["#"+k] = k
		values[":"+k] = av
	}

	_, err := ds.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(table),
		Key:                       idKey(id),
		UpdateExpression:          aws.String("SET " + strings.Join(parts, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return fmt.Errorf("failed to update fields in table '%s': %w", table, err)
	}
	return nil
}

// Query scans a collection with the query's predicates pushed down as a
// filter expression, then orders the result client-side. The tables are keyed
// by document id only, so ordering cannot come from the index.
func (ds *DynamoStore) Query(ctx context.Context, collection string, q Query, out interface{}) error {
	table := ds.table(collection)

	var exprs []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	i := 0
	for field, v := range q.Equals {
		ph := fmt.Sprintf("v%d", i)
		names["#"+ph] = field
		values[":"+ph] = &types.AttributeValueMemberS{Value: v}
		exprs = append(exprs, fmt.Sprintf("#%s = :%s", ph, ph))
		i++
	}
	for field, v := range q.Contains {
		ph := fmt.Sprintf("v%d", i)
		names["#"+ph] = field
		values[":"+ph] = &types.AttributeValueMemberS{Value: v}
		exprs = append(exprs, fmt.Sprintf("contains(#%s, :%s)", ph, ph))
		i++
	}
	if q.Range != nil {
		ph := fmt.Sprintf("v%d", i)
		names["#"+ph] = q.Range.Field
		values[":"+ph] = &types.AttributeValueMemberS{Value: q.Range.After}
		exprs = append(exprs, fmt.Sprintf("#%s > :%s", ph, ph))
	}

	input := &dynamodb.ScanInput{TableName: aws.String(table)}
	if len(exprs) > 0 {
		input.FilterExpression = aws.String(strings.Join(exprs, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var items []map[string]types.AttributeValue
	paginator := dynamodb.NewScanPaginator(ds.Client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("failed to scan table '%s': %w", table, err)
		}
		items = append(items, page.Items...)
	}

	if q.OrderBy != "" {
		sort.SliceStable(items, func(a, b int) bool {
			va, vb := stringAttr(items[a], q.OrderBy), stringAttr(items[b], q.OrderBy)
			if q.Descending {
				return va > vb
			}
			return va < vb
		})
	}
	if q.Limit > 0 && len(items) > q.Limit {
		items = items[:q.Limit]
	}

	log.Debug().Str("component", "store").Str("table", table).Int("items", len(items)).Msg("query complete")

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return fmt.Errorf("failed to unmarshal scan result: %w", err)
	}
	return nil
}

func stringAttr(item map[string]types.AttributeValue, field string) string {
	if attr, ok := item[field]; ok {
		if s, ok := attr.(*types.AttributeValueMemberS); ok {
			return s.Value
		}
	}
	return ""
}
