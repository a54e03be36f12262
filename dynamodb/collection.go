package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// document is one schema-less record of a collection. The "id" attribute is
// the table's partition key and is kept separate from the free-form fields.
type document struct {
	id     string
	fields map[string]interface{}
}

func listDocuments(ctx context.Context, client *dynamodb.Client, table string) ([]document, error) {
	if err := validateTable(table); err != nil {
		return nil, err
	}

	docs := make([]document, 0)
	paginator := dynamodb.NewScanPaginator(client, &dynamodb.ScanInput{
		TableName: &table,
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("dynamodb: scan %s: %w", table, err)
		}

		for _, item := range out.Items {
			var fields map[string]interface{}
			if err := attributevalue.UnmarshalMap(item, &fields); err != nil {
				return nil, fmt.Errorf("dynamodb: unmarshal %s item: %w", table, err)
			}
			id, _ := fields["id"].(string)
			delete(fields, "id")
			docs = append(docs, document{id: id, fields: fields})
		}
	}

	return docs, nil
}

// sortDocuments orders docs by the named field. A Scan cannot order
// server-side, so ordering happens here after retrieval. Documents missing
// the field sort last.
func sortDocuments(docs []document, field string, descending bool) {
	sort.SliceStable(docs, func(i, j int) bool {
		a, aok := docs[i].fields[field]
		b, bok := docs[j].fields[field]
		if aok != bok {
			return aok
		}
		if !aok {
			return false
		}
		if descending {
			return compareValues(a, b) > 0
		}
		return compareValues(a, b) < 0
	})
}

// compareValues orders two field values. Numbers compare numerically,
// everything else by string representation.
func compareValues(a, b interface{}) int {
	af, aIsNum := toFloat(a)
	bf, bIsNum := toFloat(b)
	if aIsNum && bIsNum {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func createDocument(ctx context.Context, client *dynamodb.Client, table string, fields map[string]interface{}) (string, error) {
	if err := validateTable(table); err != nil {
		return "", err
	}

	item, err := attributevalue.MarshalMap(fields)
	if err != nil {
		return "", fmt.Errorf("dynamodb: marshal %s item: %w", table, err)
	}

	id := uuid.NewString()
	item["id"] = &types.AttributeValueMemberS{Value: id}

	_, err = client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &table,
		Item:      item,
	})
	if err != nil {
		return "", fmt.Errorf("dynamodb: put %s item: %w", table, err)
	}

	return id, nil
}

// mergeDocument applies a partial update: only the supplied fields are
// written, everything else on the document is untouched. Like the upstream
// store's merge write, a missing document is created.
func mergeDocument(ctx context.Context, client *dynamodb.Client, table, id string, fields map[string]interface{}) error {
	if err := validateTable(table); err != nil {
		return err
	}

	expr, err := buildMergeExpression(fields)
	if err != nil {
		return err
	}
	if expr == nil {
		return nil
	}

	_, err = client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 &table,
		Key:                       documentKey(id),
		UpdateExpression:          aws.String(expr.update),
		ExpressionAttributeNames:  expr.names,
		ExpressionAttributeValues: expr.values,
	})
	if err != nil {
		return fmt.Errorf("dynamodb: update %s item: %w", table, err)
	}

	return nil
}

func deleteDocument(ctx context.Context, client *dynamodb.Client, table, id string) error {
	if err := validateTable(table); err != nil {
		return err
	}

	_, err := client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &table,
		Key:       documentKey(id),
	})
	if err != nil {
		return fmt.Errorf("dynamodb: delete %s item: %w", table, err)
	}

	return nil
}

func documentKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

type mergeExpression struct {
	update string
	names  map[string]string
	values map[string]types.AttributeValue
}

// buildMergeExpression turns a fields map into a SET update expression.
// The "id" attribute is the key and is never part of the expression. Returns
// nil when there is nothing to write.
func buildMergeExpression(fields map[string]interface{}) (*mergeExpression, error) {
	expr := &mergeExpression{
		names:  make(map[string]string, len(fields)),
		values: make(map[string]types.AttributeValue, len(fields)),
	}

	assignments := make([]string, 0, len(fields))
	i := 0
	for field, value := range fields {
		if field == "id" {
			continue
		}
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("dynamodb: marshal field %s: %w", field, err)
		}

		nameKey := fmt.Sprintf("#f%d", i)
		valueKey := fmt.Sprintf(":v%d", i)
		expr.names[nameKey] = field
		expr.values[valueKey] = av
		assignments = append(assignments, nameKey+" = "+valueKey)
		i++
	}

	if len(assignments) == 0 {
		return nil, nil
	}

	sort.Strings(assignments)
	expr.update = "SET " + strings.Join(assignments, ", ")
	return expr, nil
}
