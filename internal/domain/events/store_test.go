package events

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestByCreatorSpecOrdersSoonestFirst(t *testing.T) {
	t.Parallel()

	uid := uuid.New()
	sql, args := ByCreatorSpec(uid).SQL()

	if !strings.Contains(sql, `WHERE "e"."creator_id" = $1`) {
		t.Fatalf("missing creator predicate in %s", sql)
	}
	if !strings.HasSuffix(sql, `ORDER BY "e"."event_date" ASC`) {
		t.Fatalf("missing ascending date order in %s", sql)
	}
	if !strings.Contains(sql, `AS "applications"`) || !strings.Contains(sql, `AS "creator_email"`) {
		t.Fatalf("missing enrichment in %s", sql)
	}
	if len(args) != 1 || args[0] != uid {
		t.Fatalf("args = %v, want [%s]", args, uid)
	}
}

func TestOpportunitiesSpecExcludesViewerEvents(t *testing.T) {
	t.Parallel()

	uid := uuid.New()
	sql, args := OpportunitiesSpec(uid).SQL()

	want := `WHERE "e"."status" = $1 AND "e"."seeking_creators" = $2 AND "e"."creator_id" <> $3`
	if !strings.Contains(sql, want) {
		t.Fatalf("SQL() = %s, want it to contain %s", sql, want)
	}
	if len(args) != 3 || args[0] != StatusPublished || args[1] != true || args[2] != uid {
		t.Fatalf("args = %v", args)
	}
}
