package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	catalogapp "github.com/Mbewe2000/Metrilabs-metribooks/internal/application/catalog"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/catalog"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared/valueobject"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/interfaces/http/dto"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/testsupport"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// setupItemRouter wires an ItemHandler behind a router that injects the
// given owner as the authenticated user.
func setupItemRouter(repo *testsupport.MockItemRepository, ownerID uuid.UUID) *gin.Engine {
	h := NewItemHandler(catalogapp.NewItemService(repo))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		setAuthContext(c, ownerID)
		c.Next()
	})
	r.POST("/catalog/items", h.Create)
	r.GET("/catalog/items", h.List)
	r.GET("/catalog/items/:id", h.GetByID)
	r.POST("/catalog/items/:id/deactivate", h.Deactivate)
	return r
}

func TestItemHandlerCreate(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates a product", func(t *testing.T) {
		repo := new(testsupport.MockItemRepository)
		r := setupItemRouter(repo, ownerID)

		repo.On("ExistsByNameForOwner", mock.Anything, ownerID, catalog.ItemKindProduct, "Sugar 1kg").Return(false, nil)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Item")).Return(nil)

		body := `{"kind":"product","name":"Sugar 1kg","unit_price":"25.50"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/catalog/items", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "product", data["kind"])
		assert.Equal(t, "Sugar 1kg", data["name"])
		assert.NotEmpty(t, data["sku"])
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		repo := new(testsupport.MockItemRepository)
		r := setupItemRouter(repo, ownerID)

		body := `{"kind":"subscription","name":"Netflix"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/catalog/items", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects a duplicate name", func(t *testing.T) {
		repo := new(testsupport.MockItemRepository)
		r := setupItemRouter(repo, ownerID)

		repo.On("ExistsByNameForOwner", mock.Anything, ownerID, catalog.ItemKindProduct, "Sugar 1kg").Return(true, nil)

		body := `{"kind":"product","name":"Sugar 1kg"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/catalog/items", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeAlreadyExists, resp.Error.Code)
	})
}

func TestItemHandlerGetByID(t *testing.T) {
	ownerID := uuid.New()

	t.Run("returns not found for another owner's item", func(t *testing.T) {
		repo := new(testsupport.MockItemRepository)
		r := setupItemRouter(repo, ownerID)

		itemID := uuid.New()
		repo.On("FindByIDForOwner", mock.Anything, ownerID, itemID).Return(nil, shared.ErrNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/catalog/items/"+itemID.String(), nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("rejects a malformed ID", func(t *testing.T) {
		repo := new(testsupport.MockItemRepository)
		r := setupItemRouter(repo, ownerID)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/catalog/items/not-a-uuid", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestItemHandlerList(t *testing.T) {
	ownerID := uuid.New()
	repo := new(testsupport.MockItemRepository)
	r := setupItemRouter(repo, ownerID)

	price := valueobject.NewMoneyZMW(decimal.RequireFromString("25.50"))
	cost := valueobject.NewMoneyZMW(decimal.RequireFromString("20.00"))
	item, err := catalog.NewProduct(ownerID, "Sugar 1kg", "SUG-1", "pcs", price, cost)
	require.NoError(t, err)

	repo.On("FindAllForOwner", mock.Anything, ownerID, mock.AnythingOfType("shared.Filter")).
		Return([]catalog.Item{*item}, nil)
	repo.On("CountForOwner", mock.Anything, ownerID, mock.AnythingOfType("shared.Filter")).
		Return(int64(1), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/catalog/items?page=1&page_size=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(1), resp.Meta.Total)
	assert.Equal(t, 10, resp.Meta.PageSize)
}

func TestItemHandlerUnauthenticated(t *testing.T) {
	repo := new(testsupport.MockItemRepository)
	h := NewItemHandler(catalogapp.NewItemService(repo))

	r := gin.New()
	r.GET("/catalog/items", h.List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/catalog/items", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
