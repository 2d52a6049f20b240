package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"members-portal/internal/auth"
	"members-portal/internal/session"
	"members-portal/internal/user"
)

const testSigningSecret = "test-signing-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *user.MemoryStore, *session.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := user.NewMemoryStore()
	sessions := session.NewMemoryStore()
	svc := auth.NewService(users, time.Second)

	h := NewHandler(svc, sessions, time.Hour, testSigningSecret)

	r := gin.New()
	r.SetHTMLTemplate(Templates())
	h.RegisterRoutes(r)

	return r, users, sessions
}

func doGet(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func doPost(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func signupForm(name, email, password string) url.Values {
	return url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	}
}

// seedAdmin registers an account directly in the store and logs it in,
// returning the admin's session cookie.
func seedAdmin(t *testing.T, r *gin.Engine, users *user.MemoryStore, email string) *http.Cookie {
	t.Helper()

	hash, err := auth.HashPassword("admin-pass")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	err = users.Insert(context.Background(), &user.User{
		Email:        email,
		Name:         "Boss",
		PasswordHash: hash,
		Role:         user.RoleUser,
	})
	if err != nil {
		t.Fatalf("Insert error: %v", err)
	}
	if err := users.SetRole(context.Background(), email, user.RoleAdmin); err != nil {
		t.Fatalf("SetRole error: %v", err)
	}

	rec := doPost(r, "/login", url.Values{"email": {email}, "password": {"admin-pass"}})
	if rec.Code != http.StatusFound {
		t.Fatalf("admin login status %d, body %s", rec.Code, rec.Body.String())
	}
	return sessionCookie(t, rec)
}

func TestAnonymousMembersRedirectsToLogin(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doGet(r, "/members")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("redirect location = %q, want /login", loc)
	}
}

func TestAnonymousAdminRedirectsToLogin(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doGet(r, "/admin")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("redirect location = %q, want /login", loc)
	}
}

func TestUnmatchedPathIs404(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doGet(r, "/does-not-exist")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestSignupFlow(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doPost(r, "/signup", signupForm("Ann", "ann@x.com", "secret1"))
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/members" {
		t.Fatalf("redirect location = %q, want /members", loc)
	}

	cookie := sessionCookie(t, rec)
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be HTTP-only")
	}

	members := doGet(r, "/members", cookie)
	if members.Code != http.StatusOK {
		t.Fatalf("members status = %d", members.Code)
	}
	if body := members.Body.String(); !strings.Contains(body, "Ann") {
		t.Fatalf("members page missing name: %s", body)
	}
}

func TestSignupDuplicateRendersError(t *testing.T) {
	r, _, _ := newTestRouter(t)

	if rec := doPost(r, "/signup", signupForm("Ann", "ann@x.com", "secret1")); rec.Code != http.StatusFound {
		t.Fatalf("first signup status = %d", rec.Code)
	}

	rec := doPost(r, "/signup", signupForm("Ann Again", "ann@x.com", "secret2"))
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "already registered") {
		t.Fatalf("expected duplicate message, got %s", rec.Body.String())
	}
}

func TestSignupInvalidInputRendersGenericError(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doPost(r, "/signup", signupForm("Ann", "not-an-email", "secret1"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid input format.") {
		t.Fatalf("expected generic validation message, got %s", rec.Body.String())
	}
}

func TestLoginUnifiedErrorMessage(t *testing.T) {
	r, _, _ := newTestRouter(t)

	if rec := doPost(r, "/signup", signupForm("Ann", "ann@x.com", "secret1")); rec.Code != http.StatusFound {
		t.Fatalf("signup status = %d", rec.Code)
	}

	wrongPassword := doPost(r, "/login", url.Values{"email": {"ann@x.com"}, "password": {"not-it1"}})
	unknownEmail := doPost(r, "/login", url.Values{"email": {"ghost@x.com"}, "password": {"secret1"}})

	if wrongPassword.Code != http.StatusUnauthorized || unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("statuses = %d, %d, want 401", wrongPassword.Code, unknownEmail.Code)
	}
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Fatal("wrong-password and unknown-email responses must be identical")
	}
}

func TestTamperedCookieTreatedAsAnonymous(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doPost(r, "/signup", signupForm("Ann", "ann@x.com", "secret1"))
	cookie := sessionCookie(t, rec)
	cookie.Value = "x" + cookie.Value[1:]

	members := doGet(r, "/members", cookie)
	if members.Code != http.StatusFound {
		t.Fatalf("status = %d, want redirect for forged cookie", members.Code)
	}
}

func TestRegularUserCannotAccessAdmin(t *testing.T) {
	r, _, _ := newTestRouter(t)

	rec := doPost(r, "/signup", signupForm("Ann", "ann@x.com", "secret1"))
	cookie := sessionCookie(t, rec)

	admin := doGet(r, "/admin", cookie)
	if admin.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", admin.Code)
	}
	if loc := admin.Header().Get("Location"); loc != "/login" {
		t.Fatalf("redirect location = %q, want /login", loc)
	}
}

func TestPromoteLeavesOpenSessionStale(t *testing.T) {
	r, users, _ := newTestRouter(t)

	// Ann signs up and keeps her session open.
	annSignup := doPost(r, "/signup", signupForm("Ann", "ann@x.com", "secret1"))
	annCookie := sessionCookie(t, annSignup)

	adminCookie := seedAdmin(t, r, users, "boss@x.com")

	promote := doPost(r, "/promote", url.Values{"email": {"ann@x.com"}}, adminCookie)
	if promote.Code != http.StatusFound {
		t.Fatalf("promote status = %d, body %s", promote.Code, promote.Body.String())
	}
	if loc := promote.Header().Get("Location"); loc != "/admin" {
		t.Fatalf("promote redirect = %q, want /admin", loc)
	}

	// The listing reflects the new role immediately.
	listing := doGet(r, "/admin", adminCookie)
	if listing.Code != http.StatusOK {
		t.Fatalf("admin status = %d", listing.Code)
	}
	if !strings.Contains(listing.Body.String(), "admin") {
		t.Fatalf("listing missing promoted role: %s", listing.Body.String())
	}

	u, err := users.FindByEmail(context.Background(), "ann@x.com")
	if err != nil || u == nil {
		t.Fatalf("FindByEmail: %v %v", u, err)
	}
	if u.Role != user.RoleAdmin {
		t.Fatalf("stored role = %s, want admin", u.Role)
	}

	// Ann's already-open session still carries the role from signup time.
	members := doGet(r, "/members", annCookie)
	if members.Code != http.StatusOK {
		t.Fatalf("members status = %d", members.Code)
	}
	if !strings.Contains(members.Body.String(), "Role: user") {
		t.Fatalf("expected stale role user in open session: %s", members.Body.String())
	}
}

func TestDemoteSelfRendersError(t *testing.T) {
	r, users, _ := newTestRouter(t)

	adminCookie := seedAdmin(t, r, users, "boss@x.com")

	rec := doPost(r, "/demote", url.Values{"email": {"boss@x.com"}}, adminCookie)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "cannot demote your own account") {
		t.Fatalf("expected self-demotion message, got %s", rec.Body.String())
	}

	u, err := users.FindByEmail(context.Background(), "boss@x.com")
	if err != nil || u == nil {
		t.Fatalf("FindByEmail: %v %v", u, err)
	}
	if u.Role != user.RoleAdmin {
		t.Fatalf("role changed on rejected self-demotion: %s", u.Role)
	}
}

func TestDemoteOtherAdmin(t *testing.T) {
	r, users, _ := newTestRouter(t)

	adminCookie := seedAdmin(t, r, users, "boss@x.com")

	if rec := doPost(r, "/signup", signupForm("Ann", "ann@x.com", "secret1")); rec.Code != http.StatusFound {
		t.Fatalf("signup status = %d", rec.Code)
	}
	if rec := doPost(r, "/promote", url.Values{"email": {"ann@x.com"}}, adminCookie); rec.Code != http.StatusFound {
		t.Fatalf("promote status = %d", rec.Code)
	}

	rec := doPost(r, "/demote", url.Values{"email": {"ann@x.com"}}, adminCookie)
	if rec.Code != http.StatusFound {
		t.Fatalf("demote status = %d, body %s", rec.Code, rec.Body.String())
	}

	u, err := users.FindByEmail(context.Background(), "ann@x.com")
	if err != nil || u == nil {
		t.Fatalf("FindByEmail: %v %v", u, err)
	}
	if u.Role != user.RoleUser {
		t.Fatalf("role = %s, want user", u.Role)
	}
}

func TestLogoutDestroysSessionIdempotently(t *testing.T) {
	r, _, sessions := newTestRouter(t)

	rec := doPost(r, "/signup", signupForm("Ann", "ann@x.com", "secret1"))
	cookie := sessionCookie(t, rec)

	id, ok := session.Verify(cookie.Value, testSigningSecret)
	if !ok {
		t.Fatal("issued cookie failed verification")
	}

	for i := 0; i < 2; i++ {
		logout := doGet(r, "/logout", cookie)
		if logout.Code != http.StatusFound {
			t.Fatalf("logout #%d status = %d", i+1, logout.Code)
		}
		if loc := logout.Header().Get("Location"); loc != "/login" {
			t.Fatalf("logout redirect = %q, want /login", loc)
		}

		s, err := sessions.Get(context.Background(), id)
		if err != nil {
			t.Fatalf("Get error: %v", err)
		}
		if s != nil {
			t.Fatalf("session survived logout #%d", i+1)
		}
	}

	members := doGet(r, "/members", cookie)
	if members.Code != http.StatusFound {
		t.Fatalf("members after logout status = %d, want redirect", members.Code)
	}
}

func TestHomePageReflectsLoginState(t *testing.T) {
	r, _, _ := newTestRouter(t)

	anon := doGet(r, "/")
	if anon.Code != http.StatusOK {
		t.Fatalf("home status = %d", anon.Code)
	}
	if strings.Contains(anon.Body.String(), "Hello,") {
		t.Fatalf("anonymous home must not greet: %s", anon.Body.String())
	}

	rec := doPost(r, "/signup", signupForm("Ann", "ann@x.com", "secret1"))
	cookie := sessionCookie(t, rec)

	home := doGet(r, "/", cookie)
	if home.Code != http.StatusOK {
		t.Fatalf("home status = %d", home.Code)
	}
	if !strings.Contains(home.Body.String(), "Hello, Ann") {
		t.Fatalf("logged-in home missing greeting: %s", home.Body.String())
	}
}
