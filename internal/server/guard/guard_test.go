package guard

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/graphql-go/graphql"
)

// --- fakes ---

type fakeValidator struct {
	user *models.User
	err  error

	calls int
}

func (f *fakeValidator) ValidateCredentials(ctx context.Context, email, password string) (*models.User, error) {
	f.calls++
	return f.user, f.err
}

type fakeVerifier struct {
	user *models.User
	err  error

	calls int
}

func (f *fakeVerifier) VerifyToken(ctx context.Context, token string) (*models.User, error) {
	f.calls++
	return f.user, f.err
}

func params(ctx context.Context, args map[string]interface{}) graphql.ResolveParams {
	return graphql.ResolveParams{Context: ctx, Args: args}
}

// nextRecorder is the protected resolver body; it must only run after a
// successful guard transition.
type nextRecorder struct {
	ran  bool
	user *models.User
}

func (n *nextRecorder) fn(p graphql.ResolveParams) (interface{}, error) {
	n.ran = true
	n.user, _ = CurrentUser(p.Context)
	return "ok", nil
}

// --- ExtractBearer ---

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		ok     bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"case-insensitive schema", "bearer tok", "tok", true},
		{"empty header", "", "", false},
		{"wrong schema", "Basic abc", "", false},
		{"no token", "Bearer ", "", false},
		{"schema only", "Bearer", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractBearer(tt.header)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("ExtractBearer(%q) = (%q, %v), want (%q, %v)", tt.header, got, ok, tt.want, tt.ok)
			}
		})
	}
}

// --- CredentialGuard ---

func TestCredentialGuard_Authenticated(t *testing.T) {
	alice := &models.User{ID: 1, Email: "alice@x.com"}
	v := &fakeValidator{user: alice}
	rec := &nextRecorder{}

	resolve := NewCredentialGuard(v).Protect(rec.fn)
	out, err := resolve(params(context.Background(), map[string]interface{}{
		"email": "alice@x.com", "password": "pw123",
	}))
	if err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	if out != "ok" || !rec.ran {
		t.Fatalf("protected body did not run")
	}
	if rec.user == nil || rec.user.ID != 1 {
		t.Fatalf("identity not attached to context: %+v", rec.user)
	}
}

func TestCredentialGuard_RejectsInvalidOrMissingCredentials(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
		v    *fakeValidator
	}{
		{"wrong credentials", map[string]interface{}{"email": "a@x.com", "password": "bad"}, &fakeValidator{user: nil}},
		{"missing password", map[string]interface{}{"email": "a@x.com"}, &fakeValidator{}},
		{"missing both", map[string]interface{}{}, &fakeValidator{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &nextRecorder{}
			resolve := NewCredentialGuard(tt.v).Protect(rec.fn)

			_, err := resolve(params(context.Background(), tt.args))
			if !errors.Is(err, common.ErrInvalidCredentials) {
				t.Fatalf("want ErrInvalidCredentials, got %v", err)
			}
			if rec.ran {
				t.Fatalf("protected body ran after rejection")
			}
		})
	}
}

func TestCredentialGuard_PropagatesInternalError(t *testing.T) {
	v := &fakeValidator{err: common.ErrorInternal}
	rec := &nextRecorder{}

	resolve := NewCredentialGuard(v).Protect(rec.fn)
	_, err := resolve(params(context.Background(), map[string]interface{}{
		"email": "a@x.com", "password": "pw",
	}))
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("want ErrorInternal, got %v", err)
	}
	if rec.ran {
		t.Fatalf("protected body ran after failure")
	}
}

// --- TokenGuard ---

func TestTokenGuard_Authenticated(t *testing.T) {
	bob := &models.User{ID: 7, Email: "bob@x.com"}
	v := &fakeVerifier{user: bob}
	rec := &nextRecorder{}

	ctx := WithBearer(context.Background(), "sometoken")
	resolve := NewTokenGuard(v).Protect(rec.fn)

	out, err := resolve(params(ctx, nil))
	if err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	if out != "ok" || rec.user == nil || rec.user.ID != 7 {
		t.Fatalf("identity not attached: %+v", rec.user)
	}
}

func TestTokenGuard_MissingTokenShortCircuits(t *testing.T) {
	v := &fakeVerifier{}
	rec := &nextRecorder{}

	resolve := NewTokenGuard(v).Protect(rec.fn)
	_, err := resolve(params(context.Background(), nil))
	if !errors.Is(err, common.ErrUnauthenticated) {
		t.Fatalf("want ErrUnauthenticated, got %v", err)
	}
	if v.calls != 0 {
		t.Fatalf("verifier must not be consulted without a token")
	}
	if rec.ran {
		t.Fatalf("protected body ran after rejection")
	}
}

func TestTokenGuard_VerificationErrorsKeepTheirKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"invalid token", common.ErrInvalidToken},
		{"expired token", common.ErrTokenExpired},
		{"user gone", common.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &nextRecorder{}
			resolve := NewTokenGuard(&fakeVerifier{err: tt.err}).Protect(rec.fn)

			ctx := WithBearer(context.Background(), "tok")
			_, err := resolve(params(ctx, nil))
			if !errors.Is(err, tt.err) {
				t.Fatalf("want %v, got %v", tt.err, err)
			}
			if rec.ran {
				t.Fatalf("protected body ran after rejection")
			}
		})
	}
}

func TestCurrentUser_AbsentByDefault(t *testing.T) {
	if _, ok := CurrentUser(context.Background()); ok {
		t.Fatalf("expected no identity on a fresh context")
	}
}
