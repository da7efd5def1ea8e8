package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog-backend/internal/domains/book"
)

// stubService backs the handler tests without a database
type stubService struct {
	books map[uuid.UUID]*book.BookWithAuthor
}

func newStubService() *stubService {
	return &stubService{books: make(map[uuid.UUID]*book.BookWithAuthor)}
}

func (s *stubService) Create(_ context.Context, req *book.CreateBookRequest) (*book.BookWithAuthor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	bw := &book.BookWithAuthor{
		Book: book.Book{
			ID:              uuid.New(),
			Title:           req.Title,
			PublicationYear: req.PublicationYear,
			ISBN:            req.ISBN,
			AuthorID:        req.AuthorID,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		AuthorName: "Stub Author",
	}
	s.books[bw.ID] = bw
	return bw, nil
}

func (s *stubService) GetByID(_ context.Context, id uuid.UUID) (*book.BookWithAuthor, error) {
	bw, ok := s.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return bw, nil
}

func (s *stubService) List(_ context.Context, filter book.BookFilter) ([]book.BookWithAuthor, int64, error) {
	if _, err := book.BuildOrderClause(filter.Ordering); err != nil {
		return nil, 0, err
	}

	out := make([]book.BookWithAuthor, 0, len(s.books))
	for _, bw := range s.books {
		out = append(out, *bw)
	}
	return out, int64(len(out)), nil
}

func (s *stubService) Update(_ context.Context, id uuid.UUID, req *book.UpdateBookRequest) (*book.BookWithAuthor, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	bw, ok := s.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	req.ApplyToEntity(&bw.Book)
	return bw, nil
}

func (s *stubService) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(s.books, id)
	return nil
}

func (s *stubService) Count(_ context.Context) (int64, error) {
	return int64(len(s.books)), nil
}

func setupRouter(svc book.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookHandler(svc)

	r := gin.New()
	r.GET("/v1/books", h.List)
	r.GET("/v1/books/:id", h.GetByID)
	r.POST("/v1/books", h.Create)
	r.PUT("/v1/books/:id", h.Update)
	r.DELETE("/v1/books/:id", h.Delete)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *struct {
		Page  int `json:"page"`
		Limit int `json:"limit"`
		Total int `json:"total"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestBookHandler_Create(t *testing.T) {
	router := setupRouter(newStubService())

	body := fmt.Sprintf(`{"title":"Dune","publication_year":1965,"author_id":"%s"}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/v1/books", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	assert.True(t, env.Success)

	var resp book.BookResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "Dune", resp.Title)
	assert.Equal(t, 1965, resp.PublicationYear)
	assert.NotEqual(t, uuid.Nil, resp.ID)
}

func TestBookHandler_Create_FutureYear(t *testing.T) {
	router := setupRouter(newStubService())

	body := fmt.Sprintf(`{"title":"Tomorrow","publication_year":%d,"author_id":"%s"}`,
		time.Now().Year()+1, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/v1/books", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestBookHandler_List_InvalidOrdering(t *testing.T) {
	router := setupRouter(newStubService())

	req := httptest.NewRequest(http.MethodGet, "/v1/books?ordering=price", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_ORDERING", env.Error.Code)
}

func TestBookHandler_List_MetaReportsEffectivePagination(t *testing.T) {
	svc := newStubService()
	router := setupRouter(svc)

	_, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:           "Solo",
		PublicationYear: 2010,
		AuthorID:        uuid.New(),
	})
	require.NoError(t, err)

	// No limit given: the envelope reports the applied default, not zero
	req := httptest.NewRequest(http.MethodGet, "/v1/books", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 20, env.Meta.Limit)
	assert.Equal(t, 1, env.Meta.Page)
	assert.Equal(t, 1, env.Meta.Total)

	// Explicit paging: page is derived from offset/limit
	req = httptest.NewRequest(http.MethodGet, "/v1/books?limit=5&offset=10", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	env = decodeEnvelope(t, w)
	require.NotNil(t, env.Meta)
	assert.Equal(t, 5, env.Meta.Limit)
	assert.Equal(t, 3, env.Meta.Page)
}

func TestBookHandler_GetByID_NotFound(t *testing.T) {
	router := setupRouter(newStubService())

	req := httptest.NewRequest(http.MethodGet, "/v1/books/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	env := decodeEnvelope(t, w)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BOOK_NOT_FOUND", env.Error.Code)
}

func TestBookHandler_GetByID_InvalidUUID(t *testing.T) {
	router := setupRouter(newStubService())

	req := httptest.NewRequest(http.MethodGet, "/v1/books/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookHandler_Delete(t *testing.T) {
	svc := newStubService()
	router := setupRouter(svc)

	created, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:           "To Be Deleted",
		PublicationYear: 2001,
		AuthorID:        uuid.New(),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/v1/books/"+created.ID.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	// A second delete hits nothing
	req = httptest.NewRequest(http.MethodDelete, "/v1/books/"+created.ID.String(), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookHandler_Update(t *testing.T) {
	svc := newStubService()
	router := setupRouter(svc)

	created, err := svc.Create(context.Background(), &book.CreateBookRequest{
		Title:           "Original",
		PublicationYear: 1990,
		AuthorID:        uuid.New(),
	})
	require.NoError(t, err)

	body := `{"title":"Revised"}`
	req := httptest.NewRequest(http.MethodPut, "/v1/books/"+created.ID.String(), bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var resp book.BookResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "Revised", resp.Title)
	assert.Equal(t, 1990, resp.PublicationYear)
}
