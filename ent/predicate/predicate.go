// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CompletionEvent is the predicate function for completionevent builders.
type CompletionEvent func(*sql.Selector)

// ProgressSnapshot is the predicate function for progresssnapshot builders.
type ProgressSnapshot func(*sql.Selector)
