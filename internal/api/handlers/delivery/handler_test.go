package delivery

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/Techhackontime999/LinkUp-sub000/internal/mocks/api/handlers/delivery"
	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockauditStore) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockauditStore(ctrl)
	return NewHandler(store), store
}

func get(target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestHandler_Failed_Success(t *testing.T) {
	handler, store := setupHandler(t)

	item := model.QueuedMessage{ID: uuid.New(), SenderID: 4, RecipientID: 9, RetryCount: 5, Status: model.QueueStatusAbandoned}
	store.EXPECT().ListFailedDeliveries(gomock.Any(), int64(4), 10).Return([]model.QueuedMessage{item}, nil)

	c, w := get("/api/deliveries/failed?sender_id=4&limit=10")
	handler.Failed(c)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Result []model.QueuedMessage `json:"result"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body.Result, 1)
	assert.Equal(t, item.ID, body.Result[0].ID)
	assert.Equal(t, model.QueueStatusAbandoned, body.Result[0].Status)
}

func TestHandler_Failed_BadQuery(t *testing.T) {
	handler, _ := setupHandler(t)

	for _, target := range []string{
		"/api/deliveries/failed",
		"/api/deliveries/failed?sender_id=abc",
		"/api/deliveries/failed?sender_id=4&limit=-3",
	} {
		c, w := get(target)
		handler.Failed(c)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestHandler_Failed_StoreError(t *testing.T) {
	handler, store := setupHandler(t)

	store.EXPECT().ListFailedDeliveries(gomock.Any(), int64(4), 0).Return(nil, errors.New("db down"))

	c, w := get("/api/deliveries/failed?sender_id=4")
	handler.Failed(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_Errors(t *testing.T) {
	handler, store := setupHandler(t)

	store.EXPECT().ListErrors(gomock.Any(), model.CategoryRoutingError, 0).Return(nil, nil)

	c, w := get("/api/errors?category=routing-error")
	handler.Errors(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"result":[]}`, w.Body.String())

	c, w = get("/api/errors?category=oops")
	handler.Errors(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
