package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pds/internal/common"
	"pds/internal/dbmysql"
	"pds/internal/logger"
)

type mockContentService struct {
	mock.Mock
}

func (m *mockContentService) Get(ctx context.Context, id uuid.UUID) (*dbmysql.Content, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*dbmysql.Content)
	return c, args.Error(1)
}

func (m *mockContentService) GetAll(ctx context.Context) ([]dbmysql.Content, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]dbmysql.Content)
	return c, args.Error(1)
}

func (m *mockContentService) GetAllOrderByReleaseDateDesc(ctx context.Context) ([]dbmysql.Content, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]dbmysql.Content)
	return c, args.Error(1)
}

func (m *mockContentService) Create(ctx context.Context, model *CreateContentModel) (uuid.UUID, error) {
	args := m.Called(ctx, model)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockContentService) Edit(ctx context.Context, model *EditContentModel) (uuid.UUID, error) {
	args := m.Called(ctx, model)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockContentService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockContentService) Archive(ctx context.Context, id uuid.UUID) (common.TransitionOutcome, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(common.TransitionOutcome), args.Error(1)
}

func (m *mockContentService) Unarchive(ctx context.Context, id uuid.UUID) (common.TransitionOutcome, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(common.TransitionOutcome), args.Error(1)
}

func (m *mockContentService) GetContentsForListByBrandID(ctx context.Context, brandID uuid.UUID) ([]ListItem, error) {
	args := m.Called(ctx, brandID)
	items, _ := args.Get(0).([]ListItem)
	return items, args.Error(1)
}

func (m *mockContentService) GetContentsForListByBrandIDWithSelectedValue(ctx context.Context, brandID uuid.UUID, selected *uuid.UUID) ([]ListItem, error) {
	args := m.Called(ctx, brandID, selected)
	items, _ := args.Get(0).([]ListItem)
	return items, args.Error(1)
}

func newTestRouter(svc ContentService) *mux.Router {
	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()
	NewHandler(svc, logger.NewNop()).RegisterRoutes(api)
	return router
}

func doRequest(router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Create(t *testing.T) {
	brandID := uuid.New()
	newID := uuid.New()

	t.Run("created", func(t *testing.T) {
		svc := new(mockContentService)
		svc.On("Create", mock.Anything, mock.MatchedBy(func(m *CreateContentModel) bool {
			return m.Title == "Launch" &&
				m.BrandID == brandID &&
				m.SocialMediaType == common.SocialMediaTelegram &&
				m.Bill != nil &&
				m.Bill.Value.Equal(decimal.RequireFromString("150.50")) &&
				m.ReleaseDate.Format(dateLayout) == "2024-08-01"
		})).Return(newID, nil).Once()

		rec := doRequest(newTestRouter(svc), http.MethodPost, "/api/v1/contents", map[string]interface{}{
			"title":           "Launch",
			"type":            "post",
			"socialMediaType": "Telegram",
			"releaseDate":     "2024-08-01",
			"brandId":         brandID.String(),
			"bill": map[string]interface{}{
				"value":   "150.50",
				"contact": "@launch",
			},
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		var resp idResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, newID, resp.ID)
		svc.AssertExpectations(t)
	})

	t.Run("validation failure never reaches the service", func(t *testing.T) {
		svc := new(mockContentService)

		rec := doRequest(newTestRouter(svc), http.MethodPost, "/api/v1/contents", map[string]interface{}{
			"type":        "post",
			"releaseDate": "01/08/2024",
			"brandId":     "not-a-uuid",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("malformed json", func(t *testing.T) {
		svc := new(mockContentService)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/contents", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		newTestRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_ErrorMapping(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", common.NewLifecycleError("delete", common.ErrNotFound, "content not found"), http.StatusNotFound},
		{"archived", common.NewLifecycleError("delete", common.ErrInvalidState, "archived"), http.StatusConflict},
		{"conflict", common.ErrConflict, http.StatusConflict},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockContentService)
			svc.On("Delete", mock.Anything, id).Return(tt.err).Once()

			rec := doRequest(newTestRouter(svc), http.MethodDelete, "/api/v1/contents/"+id.String(), nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	id := uuid.New()
	svc := new(mockContentService)
	svc.On("Delete", mock.Anything, id).Return(nil).Once()

	rec := doRequest(newTestRouter(svc), http.MethodDelete, "/api/v1/contents/"+id.String(), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandler_InvalidPathID(t *testing.T) {
	svc := new(mockContentService)
	rec := doRequest(newTestRouter(svc), http.MethodGet, "/api/v1/contents/42", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Edit(t *testing.T) {
	id := uuid.New()
	svc := new(mockContentService)
	svc.On("Edit", mock.Anything, mock.MatchedBy(func(m *EditContentModel) bool {
		return m.ID == id && m.Bill == nil && m.PersonID != nil && *m.PersonID == uuid.Nil
	})).Return(id, nil).Once()

	rec := doRequest(newTestRouter(svc), http.MethodPut, "/api/v1/contents/"+id.String(), map[string]interface{}{
		"title":           "Edited",
		"type":            "video",
		"socialMediaType": "youtube",
		"releaseDate":     "2024-09-01",
		"personId":        uuid.Nil.String(),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandler_ArchiveOutcome(t *testing.T) {
	id := uuid.New()
	svc := new(mockContentService)
	svc.On("Archive", mock.Anything, id).Return(common.TransitionIneligible, nil).Once()
	svc.On("Unarchive", mock.Anything, id).Return(common.TransitionSkipped, nil).Once()
	router := newTestRouter(svc)

	rec := doRequest(router, http.MethodPost, "/api/v1/contents/"+id.String()+"/archive", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp outcomeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ineligible", resp.Outcome)

	rec = doRequest(router, http.MethodPost, "/api/v1/contents/"+id.String()+"/unarchive", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "skipped", resp.Outcome)
	svc.AssertExpectations(t)
}

func TestHandler_ListByBrand(t *testing.T) {
	brandID := uuid.New()
	selected := uuid.New()
	items := []ListItem{{ID: selected, Title: "Picked"}, {ID: uuid.Nil}}

	svc := new(mockContentService)
	svc.On("GetContentsForListByBrandIDWithSelectedValue", mock.Anything, brandID, &selected).Return(items, nil).Once()
	svc.On("GetContentsForListByBrandIDWithSelectedValue", mock.Anything, brandID, (*uuid.UUID)(nil)).Return(items[1:], nil).Once()
	router := newTestRouter(svc)

	rec := doRequest(router, http.MethodGet, "/api/v1/brands/"+brandID.String()+"/contents?selected="+selected.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got []ListItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []uuid.UUID{selected, uuid.Nil}, itemIDs(got))

	rec = doRequest(router, http.MethodGet, "/api/v1/brands/"+brandID.String()+"/contents", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/v1/brands/"+brandID.String()+"/contents?selected=nope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandler_ListAll(t *testing.T) {
	svc := new(mockContentService)
	svc.On("GetAll", mock.Anything).Return([]dbmysql.Content{{ID: uuid.New(), Title: "A"}}, nil).Once()
	svc.On("GetAllOrderByReleaseDateDesc", mock.Anything).Return([]dbmysql.Content{}, nil).Once()
	router := newTestRouter(svc)

	rec := doRequest(router, http.MethodGet, "/api/v1/contents", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"A"`)

	rec = doRequest(router, http.MethodGet, "/api/v1/contents?order=release_date", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}
