// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ProcessingResult is the predicate function for processingresult builders.
type ProcessingResult func(*sql.Selector)
