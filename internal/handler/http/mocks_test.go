package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/booknotes/internal/config"
	"github.com/MKhiriev/booknotes/internal/logger"
	"github.com/MKhiriev/booknotes/internal/service"
	"github.com/MKhiriev/booknotes/internal/store"
	"github.com/MKhiriev/booknotes/internal/utils"
	"github.com/MKhiriev/booknotes/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn      func(ctx context.Context, username, password string) (models.User, error)
	authenticateFn  func(ctx context.Context, username, password string) (models.User, error)
	getUserFn       func(ctx context.Context, userID string) (models.User, error)
	updateProfileFn func(ctx context.Context, userID, username, bio string) (models.User, error)
	issueSessionFn  func(user models.User) (string, error)
	parseSessionFn  func(tokenString string) (models.SessionUser, error)
}

func (m *mockAuthService) Register(ctx context.Context, username, password string) (models.User, error) {
	return m.registerFn(ctx, username, password)
}

func (m *mockAuthService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	return m.authenticateFn(ctx, username, password)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID string) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID, username, bio string) (models.User, error) {
	return m.updateProfileFn(ctx, userID, username, bio)
}

func (m *mockAuthService) IssueSession(user models.User) (string, error) {
	return m.issueSessionFn(user)
}

func (m *mockAuthService) ParseSession(tokenString string) (models.SessionUser, error) {
	return m.parseSessionFn(tokenString)
}

// mockBookService implements service.BookService for unit tests.
type mockBookService struct {
	addEntryFn        func(ctx context.Context, entry models.BookEntry) (models.BookEntry, error)
	getEntryFn        func(ctx context.Context, entryID string) (models.BookEntry, error)
	entryDetailFn     func(ctx context.Context, entryID string) (models.EntryWithUser, error)
	updateEntryFn     func(ctx context.Context, actorID string, entry models.BookEntry) (models.BookEntry, error)
	deleteEntryFn     func(ctx context.Context, actorID, entryID string) error
	listBooksFn       func(ctx context.Context, filter store.Filter, sortKey string) ([]models.AggregatedBook, error)
	topReviewsFn      func(ctx context.Context, search, sortKey string) ([]models.EntryWithUser, error)
	categoryReviewsFn func(ctx context.Context, category, search, sortKey string) ([]models.EntryWithUser, error)
	bookDetailFn      func(ctx context.Context, isbn, sortKey string) (models.AggregatedBook, []models.EntryWithUser, error)
	userEntriesFn     func(ctx context.Context, userID string) ([]models.BookEntry, error)
}

func (m *mockBookService) AddEntry(ctx context.Context, entry models.BookEntry) (models.BookEntry, error) {
	return m.addEntryFn(ctx, entry)
}

func (m *mockBookService) GetEntry(ctx context.Context, entryID string) (models.BookEntry, error) {
	return m.getEntryFn(ctx, entryID)
}

func (m *mockBookService) EntryDetail(ctx context.Context, entryID string) (models.EntryWithUser, error) {
	return m.entryDetailFn(ctx, entryID)
}

func (m *mockBookService) UpdateEntry(ctx context.Context, actorID string, entry models.BookEntry) (models.BookEntry, error) {
	return m.updateEntryFn(ctx, actorID, entry)
}

func (m *mockBookService) DeleteEntry(ctx context.Context, actorID, entryID string) error {
	return m.deleteEntryFn(ctx, actorID, entryID)
}

func (m *mockBookService) ListBooks(ctx context.Context, filter store.Filter, sortKey string) ([]models.AggregatedBook, error) {
	return m.listBooksFn(ctx, filter, sortKey)
}

func (m *mockBookService) TopReviews(ctx context.Context, search, sortKey string) ([]models.EntryWithUser, error) {
	return m.topReviewsFn(ctx, search, sortKey)
}

func (m *mockBookService) CategoryReviews(ctx context.Context, category, search, sortKey string) ([]models.EntryWithUser, error) {
	return m.categoryReviewsFn(ctx, category, search, sortKey)
}

func (m *mockBookService) BookDetail(ctx context.Context, isbn, sortKey string) (models.AggregatedBook, []models.EntryWithUser, error) {
	return m.bookDetailFn(ctx, isbn, sortKey)
}

func (m *mockBookService) UserEntries(ctx context.Context, userID string) ([]models.BookEntry, error) {
	return m.userEntriesFn(ctx, userID)
}

// mockMessageService implements service.MessageService for unit tests.
type mockMessageService struct {
	submitMessageFn func(ctx context.Context, fullName, email, body string) (models.Message, error)
}

func (m *mockMessageService) SubmitMessage(ctx context.Context, fullName, email, body string) (models.Message, error) {
	return m.submitMessageFn(ctx, fullName, email, body)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler wired with the given mocks. Nil mocks are
// fine for handlers that never touch the corresponding service.
func newTestHandler(t *testing.T, auth service.AuthService, books service.BookService, messages service.MessageService) *Handler {
	t.Helper()

	svcs := &service.Services{
		AuthService:    auth,
		BookService:    books,
		MessageService: messages,
	}

	h, err := NewHandler(svcs, config.Session{Duration: time.Hour}, logger.Nop())
	require.NoError(t, err)
	return h
}

// formRequest builds a POST request with a url-encoded form body.
func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// asUser attaches a session identity to the request context, the way
// loadSession does for a valid cookie.
func asUser(r *http.Request, su models.SessionUser) *http.Request {
	return r.WithContext(utils.WithSessionUser(r.Context(), su))
}

// testSession is a convenience session fixture used across multiple tests.
var testSession = models.SessionUser{
	UserID:   "user-1",
	Username: "alice",
}
