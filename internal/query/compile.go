package query

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// SQL compiles the spec into a Postgres SELECT and its positional args.
func (s Spec) SQL() (string, []any) {
	var (
		b    strings.Builder
		args []any
	)

	cols := make([]string, 0, len(s.Fields)+len(s.Counts))
	for _, f := range s.Fields {
		col := quoteRef(f.Ref)
		if f.As != "" {
			col += " AS " + pq.QuoteIdentifier(f.As)
		}
		cols = append(cols, col)
	}
	for _, c := range s.Counts {
		cols = append(cols, fmt.Sprintf("(SELECT COUNT(*) FROM %s WHERE %s.%s = %s) AS %s",
			pq.QuoteIdentifier(c.Table),
			pq.QuoteIdentifier(c.Table), pq.QuoteIdentifier(c.FK),
			quoteRef(c.Ref),
			pq.QuoteIdentifier(c.As),
		))
	}
	if len(cols) == 0 {
		cols = append(cols, "*")
	}

	b.WriteString("SELECT ")
	b.WriteString(strings.Join(cols, ", "))
	s.writeFrom(&b, &args)

	if len(s.Order) > 0 {
		order := make([]string, 0, len(s.Order))
		for _, o := range s.Order {
			dir := "ASC"
			if o.Desc {
				dir = "DESC"
			}
			order = append(order, quoteRef(o.Ref)+" "+dir)
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(order, ", "))
	}

	if s.Limit > 0 {
		args = append(args, s.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}
	if s.Offset > 0 {
		args = append(args, s.Offset)
		fmt.Fprintf(&b, " OFFSET $%d", len(args))
	}

	return b.String(), args
}

// CountSQL compiles a COUNT(*) over the same source and predicates,
// ignoring projection, ordering and paging.
func (s Spec) CountSQL() (string, []any) {
	var (
		b    strings.Builder
		args []any
	)
	b.WriteString("SELECT COUNT(*)")
	s.writeFrom(&b, &args)
	return b.String(), args
}

func (s Spec) writeFrom(b *strings.Builder, args *[]any) {
	b.WriteString(" FROM ")
	b.WriteString(pq.QuoteIdentifier(s.From))
	if s.Alias != "" {
		b.WriteString(" AS ")
		b.WriteString(pq.QuoteIdentifier(s.Alias))
	}

	for _, j := range s.Joins {
		fmt.Fprintf(b, " LEFT JOIN %s AS %s ON %s = %s",
			pq.QuoteIdentifier(j.Table),
			pq.QuoteIdentifier(j.Alias),
			quoteRef(j.Left),
			quoteRef(j.Right),
		)
	}

	if len(s.Where) > 0 {
		where := make([]string, 0, len(s.Where))
		for _, p := range s.Where {
			where = append(where, p.compile(args))
		}
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
}

func (p Predicate) compile(args *[]any) string {
	switch p.op {
	case opEq:
		*args = append(*args, p.value)
		return fmt.Sprintf("%s = $%d", quoteRef(p.ref), len(*args))
	case opNeq:
		*args = append(*args, p.value)
		return fmt.Sprintf("%s <> $%d", quoteRef(p.ref), len(*args))
	case opIn:
		if len(p.values) == 0 {
			return "FALSE"
		}
		ph := make([]string, 0, len(p.values))
		for _, v := range p.values {
			*args = append(*args, v)
			ph = append(ph, fmt.Sprintf("$%d", len(*args)))
		}
		return fmt.Sprintf("%s IN (%s)", quoteRef(p.ref), strings.Join(ph, ", "))
	case opOr:
		if len(p.any) == 0 {
			return "FALSE"
		}
		parts := make([]string, 0, len(p.any))
		for _, sub := range p.any {
			parts = append(parts, sub.compile(args))
		}
		return "(" + strings.Join(parts, " OR ") + ")"
	}
	return "FALSE"
}

// quoteRef quotes a dotted reference part by part: e.title -> "e"."title".
func quoteRef(ref string) string {
	parts := strings.Split(ref, ".")
	for i, part := range parts {
		parts[i] = pq.QuoteIdentifier(part)
	}
	return strings.Join(parts, ".")
}
