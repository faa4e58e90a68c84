package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger implements the Logger interface for testing
type MockLogger struct {
	mu   sync.Mutex
	logs []LogEntry
}

type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

func (m *MockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs = append(m.logs, LogEntry{Level: level, Message: msg, Fields: fields})
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields map[string]interface{})  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields map[string]interface{})  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields map[string]interface{}) { m.record("ERROR", msg, fields) }

func TestRequestLoggingMiddleware_LogsRequestMethodAndPath(t *testing.T) {
	logger := &MockLogger{}
	middleware := RequestLoggingMiddleware(logger)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("PUT", "/favorites/52771?source=detail", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	// Should have 2 logs: request started and request completed
	require.Len(t, logger.logs, 2)

	startLog := logger.logs[0]
	assert.Equal(t, "INFO", startLog.Level)
	assert.Equal(t, "Request started", startLog.Message)
	assert.Equal(t, "PUT", startLog.Fields["method"])
	assert.Equal(t, "/favorites/52771", startLog.Fields["path"])
	assert.NotEmpty(t, startLog.Fields["request_id"])

	completeLog := logger.logs[1]
	assert.Equal(t, "INFO", completeLog.Level)
	assert.Equal(t, "Request completed", completeLog.Message)
	assert.Equal(t, "PUT", completeLog.Fields["method"])
	assert.Equal(t, "/favorites/52771", completeLog.Fields["path"])
	assert.Equal(t, "200 OK", completeLog.Fields["status_text"])
}

func TestRequestLoggingMiddleware_LogsResponseStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		responseStatus int
		expectedLogs   int
		expectError    bool
	}{
		{"200 OK", http.StatusOK, 2, false},
		{"404 Not Found", http.StatusNotFound, 2, false},
		{"500 Internal Server Error", http.StatusInternalServerError, 3, true},
		{"503 Service Unavailable", http.StatusServiceUnavailable, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &MockLogger{}
			middleware := RequestLoggingMiddleware(logger)

			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.responseStatus)
			}))

			req := httptest.NewRequest("GET", "/recipes/random", nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			require.Len(t, logger.logs, tt.expectedLogs)
			assert.Equal(t, tt.responseStatus, logger.logs[1].Fields["status"])

			if tt.expectError {
				errorLog := logger.logs[2]
				assert.Equal(t, "ERROR", errorLog.Level)
				assert.Contains(t, errorLog.Message, "server error")
			}
		})
	}
}

func TestRequestLoggingMiddleware_LogsRequestDuration(t *testing.T) {
	logger := &MockLogger{}
	middleware := RequestLoggingMiddleware(logger)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/categories", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	completeLog := logger.logs[1]
	assert.NotNil(t, completeLog.Fields["duration"])

	durationMs := completeLog.Fields["duration_ms"].(int64)
	assert.GreaterOrEqual(t, durationMs, int64(50))
}

func TestRequestLoggingMiddleware_IncludesRequestID(t *testing.T) {
	logger := &MockLogger{}
	middleware := RequestLoggingMiddleware(logger)

	var fromContext string
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		fromContext = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/favorites", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	requestID1 := logger.logs[0].Fields["request_id"].(string)
	requestID2 := logger.logs[1].Fields["request_id"].(string)

	assert.NotEmpty(t, requestID1)
	assert.Equal(t, requestID1, requestID2)
	assert.Len(t, requestID1, 36)
	assert.Equal(t, requestID1, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, requestID1, fromContext)
}

func TestRequestLoggingMiddleware_KeepsIncomingRequestID(t *testing.T) {
	logger := &MockLogger{}
	handler := RequestLoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "upstream-id", GetRequestID(r))
	}))

	req := httptest.NewRequest("GET", "/favorites", nil)
	req.Header.Set("X-Request-ID", "upstream-id")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "upstream-id", rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "upstream-id", logger.logs[0].Fields["request_id"])
}

func TestResponseWriter_CapturesStatusCode(t *testing.T) {
	rw := &responseWriter{
		ResponseWriter: httptest.NewRecorder(),
		statusCode:     http.StatusOK,
	}

	rw.WriteHeader(http.StatusCreated)
	assert.Equal(t, http.StatusCreated, rw.statusCode)
	assert.True(t, rw.written)

	// Subsequent calls should not change status
	rw.WriteHeader(http.StatusBadRequest)
	assert.Equal(t, http.StatusCreated, rw.statusCode)
}

func TestResponseWriter_DefaultsTo200(t *testing.T) {
	rw := &responseWriter{
		ResponseWriter: httptest.NewRecorder(),
		statusCode:     http.StatusOK,
	}

	rw.Write([]byte("test"))
	assert.Equal(t, http.StatusOK, rw.statusCode)
	assert.True(t, rw.written)
}

func TestGetRequestID(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "test-request-id")
	assert.Equal(t, "test-request-id", GetRequestID(req))

	req = req.WithContext(WithRequestID(req.Context(), "context-id"))
	assert.Equal(t, "context-id", GetRequestID(req))
}

func TestRequestLogFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/favorites?foo=bar", strings.NewReader("body"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("X-Request-ID", "req-123")
	req.RemoteAddr = "192.168.1.1:1234"

	fields := RequestLogFields(req)

	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/favorites", fields["path"])
	assert.Equal(t, "foo=bar", fields["query"])
	assert.Equal(t, "192.168.1.1:1234", fields["remote_ip"])
	assert.Equal(t, "test-agent", fields["user_agent"])
	assert.Equal(t, "req-123", fields["request_id"])
	assert.Equal(t, "application/json", fields["content_type"])
}

func TestResponseLogFields(t *testing.T) {
	duration := 123 * time.Millisecond
	fields := ResponseLogFields(http.StatusNotFound, duration)

	assert.Equal(t, http.StatusNotFound, fields["status"])
	assert.Equal(t, "123ms", fields["duration"])
	assert.Equal(t, int64(123), fields["duration_ms"])
	assert.Equal(t, "404 Not Found", fields["status_text"])
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.2:80", "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.4"}, "10.0.0.2:80", "198.51.100.4"},
		{"remote addr", nil, "192.0.2.9:5555", "192.0.2.9:5555"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, extractIP(req))
		})
	}
}

type stubTransport struct {
	resp *http.Response
	err  error
}

func (s stubTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return s.resp, s.err
}

func TestLoggingRoundTripper_LogsOutgoingRequest(t *testing.T) {
	logger := &MockLogger{}
	rt := NewLoggingRoundTripper(stubTransport{resp: &http.Response{StatusCode: http.StatusOK}}, logger)

	req := httptest.NewRequest("GET", "https://www.themealdb.com/api/json/v1/1/random.php", nil)
	req = req.WithContext(WithRequestID(req.Context(), "req-42"))

	resp, err := rt.RoundTrip(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, logger.logs, 2)
	assert.Equal(t, "Outgoing HTTP request", logger.logs[0].Message)
	assert.Equal(t, "req-42", logger.logs[0].Fields["request_id"])
	assert.Equal(t, "www.themealdb.com", logger.logs[0].Fields["host"])
	assert.Equal(t, http.StatusOK, logger.logs[1].Fields["status"])
}

func TestLoggingRoundTripper_LogsFailure(t *testing.T) {
	logger := &MockLogger{}
	rt := NewLoggingRoundTripper(stubTransport{err: errors.New("connection refused")}, logger)

	req := httptest.NewRequest("GET", "https://www.themealdb.com/api/json/v1/1/categories.php", nil)

	resp, err := rt.RoundTrip(req)

	assert.Error(t, err)
	assert.Nil(t, resp)
	last := logger.logs[len(logger.logs)-1]
	assert.Equal(t, "ERROR", last.Level)
	assert.Equal(t, "connection refused", last.Fields["error"])
}
