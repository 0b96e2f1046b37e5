package repository

import (
	"fmt"
	"os"
	"strings"

	"freelance_hub/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
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

// statusInCondition builds a "#status IN (:from0, :from1, ...)" fragment for
// compare-and-set status writes, returning the expression and its value
// bindings.
func statusInCondition(statuses []string) (string, map[string]types.AttributeValue) {
	placeholders := make([]string, 0, len(statuses))
	values := make(map[string]types.AttributeValue, len(statuses))
	for i, s := range statuses {
		ph := fmt.Sprintf(":from%d", i)
		placeholders = append(placeholders, ph)
		values[ph] = &types.AttributeValueMemberS{Value: s}
	}
	return fmt.Sprintf("#status IN (%s)", strings.Join(placeholders, ", ")), values
}

func quoteStatusStrings(in []entities.QuoteStatus) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}

func projectStatusStrings(in []entities.ProjectStatus) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}
