package table

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/go-gota/gota/dataframe"
)

// MatchRows evaluates a boolean predicate over column names (e.g.
// "age > 30") against every row and returns the matching rows, in order, as
// column→value mappings. Compilation and evaluation are expr's; a malformed
// predicate or an unknown column surfaces as the evaluator's own message.
func MatchRows(df dataframe.DataFrame, predicate string) ([]map[string]any, error) {
	program, err := expr.Compile(predicate, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid query: %v", err)
	}

	matched := []map[string]any{}
	for _, row := range df.Maps() {
		result, err := expr.Run(program, row)
		if err != nil {
			return nil, fmt.Errorf("query failed: %v", err)
		}
		// AsBool only enforces the result type when the environment is
		// typed at compile time; with row maps it is not.
		keep, ok := result.(bool)
		if !ok {
			return nil, fmt.Errorf("query must be a boolean predicate, got %T", result)
		}
		if keep {
			matched = append(matched, row)
		}
	}
	return matched, nil
}
