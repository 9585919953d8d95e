package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bizcore/appctx"
	"bizcore/models"
	"bizcore/services"
	"bizcore/services/actionlog"
	"bizcore/usecases/commands"
)

func newTestHandler() (*CommandsHTTPHandler, *services.MockClassifierService, *services.MockQueriesService, *services.MockSynthesizerService) {
	classifier := &services.MockClassifierService{}
	queries := &services.MockQueriesService{}
	actions := &services.MockActionsService{}
	synthesizer := &services.MockSynthesizerService{}
	useCase := commands.NewCommandsUseCase(
		classifier, queries, actions, synthesizer, actionlog.NewInMemoryRecorder())
	return NewCommandsHTTPHandler(useCase), classifier, queries, synthesizer
}

func authedRequest(t *testing.T, body any) *http.Request {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/commands", bytes.NewReader(payload))
	ctx := appctx.SetCaller(req.Context(), &appctx.Caller{Name: "admin"})
	return req.WithContext(ctx)
}

func TestHandleProcessCommand(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, classifier, queries, synthesizer := newTestHandler()

		classifier.WithClassification(models.IntentMetrics, 0.9)
		queries.On("Metrics", mock.Anything, mock.Anything).
			Return(models.QueryResult{Data: models.MetricsSnapshot{NewLeads: 5}})
		synthesizer.WithSynthesizedText("5 new leads this month.")

		rec := httptest.NewRecorder()
		handler.HandleProcessCommand(rec, authedRequest(t, ProcessCommandRequest{Text: "how many leads?"}))

		require.Equal(t, http.StatusOK, rec.Code)

		var reply struct {
			Text           string        `json:"text"`
			Intent         models.Intent `json:"intent"`
			ActionExecuted bool          `json:"action_executed"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
		assert.Equal(t, models.IntentMetrics, reply.Intent)
		assert.Equal(t, "5 new leads this month.", reply.Text)
		assert.False(t, reply.ActionExecuted)
	})

	t.Run("EmptyTextRejectedBeforeProcessing", func(t *testing.T) {
		handler, classifier, _, _ := newTestHandler()

		rec := httptest.NewRecorder()
		handler.HandleProcessCommand(rec, authedRequest(t, ProcessCommandRequest{Text: "   "}))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
	})

	t.Run("UnauthenticatedRejected", func(t *testing.T) {
		handler, classifier, _, _ := newTestHandler()

		payload, _ := json.Marshal(ProcessCommandRequest{Text: "metrics"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/commands", bytes.NewReader(payload))
		rec := httptest.NewRecorder()
		handler.HandleProcessCommand(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		classifier.AssertNotCalled(t, "Classify", mock.Anything, mock.Anything)
	})

	t.Run("MethodNotAllowed", func(t *testing.T) {
		handler, _, _, _ := newTestHandler()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/commands", nil)
		rec := httptest.NewRecorder()
		handler.HandleProcessCommand(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHandleActionLog(t *testing.T) {
	handler, _, _, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/actionlog", nil)
	rec := httptest.NewRecorder()
	handler.HandleActionLog(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response ActionLogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Empty(t, response.Entries)
}
