package validator

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/studyhq/studyplan-backend/internal/model"
)

func bindJSON(t *testing.T, body string, dst interface{}) map[string]string {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return Bind(c, dst)
}

func TestBindValidPayload(t *testing.T) {
	Setup()

	var req model.CreateTaskRequest
	fields := bindJSON(t, `{"title":"Final exam","type":"EXAM"}`, &req)
	if fields != nil {
		t.Fatalf("valid payload rejected: %v", fields)
	}
	if req.Title != "Final exam" || req.Type != model.TaskTypeExam {
		t.Errorf("unexpected binding result: %+v", req)
	}
}

func TestBindMissingRequiredField(t *testing.T) {
	Setup()

	var req model.CreateTaskRequest
	fields := bindJSON(t, `{"type":"EXAM"}`, &req)
	if fields == nil {
		t.Fatal("missing title must fail validation")
	}
	if _, ok := fields["title"]; !ok {
		t.Errorf("error map must key on the json field name, got %v", fields)
	}
}

func TestBindRejectsOpenEnumValue(t *testing.T) {
	Setup()

	var req model.CreateTaskRequest
	fields := bindJSON(t, `{"title":"Quiz","type":"INVALID"}`, &req)
	if fields == nil {
		t.Fatal("type outside the closed enumeration must fail validation")
	}
	if _, ok := fields["type"]; !ok {
		t.Errorf("error map must name the offending field, got %v", fields)
	}
}

func TestBindMalformedBody(t *testing.T) {
	Setup()

	var req model.CreateSubjectRequest
	fields := bindJSON(t, `{"name":`, &req)
	if fields == nil {
		t.Fatal("malformed JSON must fail")
	}
	if _, ok := fields["detail"]; !ok {
		t.Errorf("non-validation errors go under detail, got %v", fields)
	}
}
