package chats

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestForParticipantSpecMatchesEitherParty(t *testing.T) {
	t.Parallel()

	uid := uuid.New()
	sql, args := ForParticipantSpec(uid).SQL()

	if !strings.Contains(sql, `WHERE ("c"."host_id" = $1 OR "c"."creator_id" = $2)`) {
		t.Fatalf("missing party predicate in %s", sql)
	}
	if !strings.HasSuffix(sql, `ORDER BY "c"."last_message_at" DESC`) {
		t.Fatalf("missing recency order in %s", sql)
	}
	for _, join := range []string{`LEFT JOIN "events" AS "e"`, `LEFT JOIN "profiles" AS "h"`, `LEFT JOIN "profiles" AS "cr"`} {
		if !strings.Contains(sql, join) {
			t.Fatalf("missing %s in %s", join, sql)
		}
	}
	if len(args) != 2 || args[0] != uid || args[1] != uid {
		t.Fatalf("args = %v", args)
	}
}
