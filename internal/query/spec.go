package query

import "fmt"

// Spec is a declarative read: which collection to read, the fields to
// project (including joined ones), the predicates to apply and the ordering.
// A Spec carries no connection and can be compiled for any backend that
// speaks Postgres SQL.
type Spec struct {
	From   string
	Alias  string
	Fields []Field
	Joins  []Join
	Counts []Count
	Where  []Predicate
	Order  []Order
	Limit  int
	Offset int
}

// Field projects a column reference ("alias.column") under a result name.
type Field struct {
	Ref string
	As  string
}

// Join is a LEFT JOIN of Table AS Alias ON Left = Right.
type Join struct {
	Table string
	Alias string
	Left  string
	Right string
}

// Count projects the number of rows in Table whose FK column equals Ref.
type Count struct {
	Table string
	FK    string
	Ref   string
	As    string
}

type Order struct {
	Ref  string
	Desc bool
}

type op int

const (
	opEq op = iota
	opNeq
	opIn
	opOr
)

// Predicate is one WHERE condition. Build them with Eq, Neq, In and Or.
type Predicate struct {
	op     op
	ref    string
	value  any
	values []any
	any    []Predicate
}

func Eq(ref string, v any) Predicate  { return Predicate{op: opEq, ref: ref, value: v} }
func Neq(ref string, v any) Predicate { return Predicate{op: opNeq, ref: ref, value: v} }

// In matches ref against a list of values. An empty list matches nothing.
func In[T any](ref string, vs []T) Predicate {
	values := make([]any, 0, len(vs))
	for _, v := range vs {
		values = append(values, v)
	}
	return Predicate{op: opIn, ref: ref, values: values}
}

// Or matches when at least one of ps matches.
func Or(ps ...Predicate) Predicate { return Predicate{op: opOr, any: ps} }

// Empty reports whether the spec can be answered without a round-trip
// because one of its top-level predicates is an IN over an empty list.
func (s Spec) Empty() bool {
	for _, p := range s.Where {
		if p.op == opIn && len(p.values) == 0 {
			return true
		}
	}
	return false
}

func (s Spec) String() string {
	sql, args := s.SQL()
	return fmt.Sprintf("%s %v", sql, args)
}
