package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testConfig() TokenConfig {
	return TokenConfig{Secret: []byte("test-secret"), TTL: time.Hour}
}

func TestIssueAndParseToken(t *testing.T) {
	user := &User{ID: uuid.New(), Username: "casey", Roles: []string{"admin"}}

	token, err := IssueToken(testConfig(), user)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	parsed, err := ParseToken(testConfig(), token)
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if parsed.ID != user.ID || parsed.Username != user.Username {
		t.Fatalf("parsed user %+v does not match issued %+v", parsed, user)
	}
	if !parsed.InRole("ADMIN") {
		t.Fatalf("role check should be case-insensitive")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	user := &User{ID: uuid.New(), Username: "casey"}
	token, err := IssueToken(testConfig(), user)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if _, err := ParseToken(TokenConfig{Secret: []byte("other")}, token); err == nil {
		t.Fatalf("token signed with a different secret must not parse")
	}
}

func TestBearerToken(t *testing.T) {
	if token, ok := BearerToken("Bearer abc"); !ok || token != "abc" {
		t.Fatalf("BearerToken failed on valid header")
	}
	if _, ok := BearerToken(""); ok {
		t.Fatalf("empty header must not yield a token")
	}
	if _, ok := BearerToken("Basic abc"); ok {
		t.Fatalf("non-bearer scheme must not yield a token")
	}
}

func TestUserContextRoundTrip(t *testing.T) {
	user := &User{ID: uuid.New(), Username: "casey"}
	ctx := WithUser(context.Background(), user)

	accessor := ContextAccessor{}
	if !accessor.IsSignedIn(ctx) {
		t.Fatalf("user attached to context should read as signed in")
	}
	if id, ok := accessor.UserID(ctx); !ok || id != user.ID {
		t.Fatalf("UserID mismatch")
	}
	if accessor.IsSignedIn(context.Background()) {
		t.Fatalf("bare context should not read as signed in")
	}
}
