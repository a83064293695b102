package repository

import (
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// updateBuilder accumulates a DynamoDB SET expression from the non-nil
// fields of a partial update.
type updateBuilder struct {
	sets  []string
	vals  map[string]types.AttributeValue
	names map[string]string
}

func newUpdateBuilder() *updateBuilder {
	return &updateBuilder{
		vals:  map[string]types.AttributeValue{},
		names: map[string]string{},
	}
}

func (b *updateBuilder) set(attr string, av types.AttributeValue) {
	b.sets = append(b.sets, "#"+attr+" = :"+attr)
	b.names["#"+attr] = attr
	b.vals[":"+attr] = av
}

func (b *updateBuilder) setString(attr string, v *string) {
	if v != nil {
		b.set(attr, &types.AttributeValueMemberS{Value: *v})
	}
}

func (b *updateBuilder) setBool(attr string, v *bool) {
	if v != nil {
		b.set(attr, &types.AttributeValueMemberBOOL{Value: *v})
	}
}

func (b *updateBuilder) expression() (string, map[string]types.AttributeValue, map[string]string) {
	return "SET " + strings.Join(b.sets, ", "), b.vals, b.names
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
