package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/avkarpov/itemvault/internal/store"
	"github.com/avkarpov/itemvault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl)

	env.items.EXPECT().CreateItem(gomock.Any(), models.Item{
		Title:       "desk",
		Description: "standing desk",
		OwnerID:     testRegularUser.ID,
	}).Return(models.Item{ID: 7, Title: "desk", Description: "standing desk", OwnerID: testRegularUser.ID}, nil)

	req := authedRequest(t, env, testRegularUser, http.MethodPost, "/api/v1/items/",
		`{"title":"desk","description":"standing desk"}`)
	resp := env.do(t, req)

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, testRegularUser.ID, created.OwnerID)
}

func TestCreateItem_EmptyTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl)

	req := authedRequest(t, env, testRegularUser, http.MethodPost, "/api/v1/items/",
		`{"title":"","description":"whatever"}`)
	resp := env.do(t, req)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateItem_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl)

	req, _ := http.NewRequest(http.MethodPost, env.server.URL+"/api/v1/items/", nil)
	resp := env.do(t, req)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestListItems_NoAuthRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl)

	env.items.EXPECT().ListItems(gomock.Any(), models.Pagination{Skip: 0, Limit: models.DefaultPageLimit}).
		Return([]models.Item{{ID: 1, Title: "desk", OwnerID: 1}}, nil)

	req, _ := http.NewRequest(http.MethodGet, env.server.URL+"/api/v1/items/", nil)
	resp := env.do(t, req)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []models.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	assert.Len(t, items, 1)
}

func TestGetItem_NoAuthRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl)

	env.items.EXPECT().FindItemByID(gomock.Any(), int64(7)).
		Return(models.Item{ID: 7, Title: "desk", OwnerID: 1}, nil)

	req, _ := http.NewRequest(http.MethodGet, env.server.URL+"/api/v1/items/7", nil)
	resp := env.do(t, req)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var item models.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
	assert.Equal(t, "desk", item.Title)
}

func TestGetItem_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl)

	env.items.EXPECT().FindItemByID(gomock.Any(), int64(404)).
		Return(models.Item{}, store.ErrItemNotFound)

	req, _ := http.NewRequest(http.MethodGet, env.server.URL+"/api/v1/items/404", nil)
	resp := env.do(t, req)

	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body404 models.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body404))
	assert.Equal(t, "item was not found", body404.Detail)
}

func TestGetItem_NonNumericID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl)

	req, _ := http.NewRequest(http.MethodGet, env.server.URL+"/api/v1/items/abc", nil)
	resp := env.do(t, req)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMyItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl)

	env.items.EXPECT().ListItemsByOwner(gomock.Any(), testRegularUser.ID,
		models.Pagination{Skip: 0, Limit: models.DefaultPageLimit}).
		Return([]models.Item{{ID: 1, Title: "desk", OwnerID: testRegularUser.ID}}, nil)

	req := authedRequest(t, env, testRegularUser, http.MethodGet, "/api/v1/items/my-items", "")
	resp := env.do(t, req)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []models.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, testRegularUser.ID, items[0].OwnerID)
}

func TestUpdateItem_Owner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl)

	existing := models.Item{ID: 7, Title: "desk", OwnerID: testRegularUser.ID}
	env.items.EXPECT().FindItemByID(gomock.Any(), existing.ID).Return(existing, nil)
	env.items.EXPECT().UpdateItem(gomock.Any(), existing.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, patch models.ItemPatch) (models.Item, error) {
			updated := existing
			updated.Title = *patch.Title
			return updated, nil
		})

	req := authedRequest(t, env, testRegularUser, http.MethodPut, "/api/v1/items/7",
		`{"title":"walnut desk"}`)
	resp := env.do(t, req)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	assert.Equal(t, "walnut desk", updated.Title)
}

func TestUpdateItem_StrangerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl)

	foreign := models.Item{ID: 7, Title: "desk", OwnerID: 99}
	env.items.EXPECT().FindItemByID(gomock.Any(), foreign.ID).Return(foreign, nil)

	req := authedRequest(t, env, testRegularUser, http.MethodPut, "/api/v1/items/7",
		`{"title":"mine now"}`)
	resp := env.do(t, req)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUpdateItem_Superuser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl)

	foreign := models.Item{ID: 7, Title: "desk", OwnerID: 99}
	env.items.EXPECT().FindItemByID(gomock.Any(), foreign.ID).Return(foreign, nil)
	env.items.EXPECT().UpdateItem(gomock.Any(), foreign.ID, gomock.Any()).Return(foreign, nil)

	req := authedRequest(t, env, testSuperuser, http.MethodPut, "/api/v1/items/7",
		`{"description":"confiscated"}`)
	resp := env.do(t, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpdateItem_UnknownIDBeforePolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl)

	env.items.EXPECT().FindItemByID(gomock.Any(), int64(404)).
		Return(models.Item{}, store.ErrItemNotFound)

	req := authedRequest(t, env, testRegularUser, http.MethodPut, "/api/v1/items/404",
		`{"title":"ghost"}`)
	resp := env.do(t, req)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteItem_Owner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl)

	existing := models.Item{ID: 7, Title: "desk", OwnerID: testRegularUser.ID}
	env.items.EXPECT().FindItemByID(gomock.Any(), existing.ID).Return(existing, nil)
	env.items.EXPECT().DeleteItem(gomock.Any(), existing.ID).Return(nil)

	req := authedRequest(t, env, testRegularUser, http.MethodDelete, "/api/v1/items/7", "")
	resp := env.do(t, req)

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestDeleteItem_StrangerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl)

	foreign := models.Item{ID: 7, Title: "desk", OwnerID: 99}
	env.items.EXPECT().FindItemByID(gomock.Any(), foreign.ID).Return(foreign, nil)

	req := authedRequest(t, env, testRegularUser, http.MethodDelete, "/api/v1/items/7", "")
	resp := env.do(t, req)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestDeleteItem_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	env := newTestEnv(t, ctrl)

	req, _ := http.NewRequest(http.MethodDelete, env.server.URL+"/api/v1/items/7", nil)
	resp := env.do(t, req)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
