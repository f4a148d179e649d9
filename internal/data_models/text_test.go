package dto

import (
	"encoding/json"
	"testing"
)

func TestText_UnmarshalJSON(t *testing.T) {
	var req CreateTaskRequest

	if err := json.Unmarshal([]byte(`{"title": "  padded  "}`), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Title.Ptr() == nil || req.Title.String() != "padded" {
		t.Errorf("expected trimmed title, got %q", req.Title.String())
	}

	req = CreateTaskRequest{}
	if err := json.Unmarshal([]byte(`{"title": null}`), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !req.Title.IsNull() || req.Title.Ptr() != nil {
		t.Errorf("expected null title, got %+v", req.Title)
	}

	req = CreateTaskRequest{}
	if err := json.Unmarshal([]byte(`{}`), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Title.IsNull() || req.Title.Ptr() != nil {
		t.Errorf("expected missing title, got %+v", req.Title)
	}

	req = CreateTaskRequest{}
	if err := json.Unmarshal([]byte(`{"title": "   "}`), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Title.Ptr() == nil || req.Title.String() != "" {
		t.Errorf("expected present blank title, got %+v", req.Title)
	}
}

func TestText_WrongTypeKeepsFieldName(t *testing.T) {
	var req CreateTaskRequest
	err := json.Unmarshal([]byte(`{"title": 42}`), &req)

	typeErr, ok := err.(*json.UnmarshalTypeError)
	if !ok {
		t.Fatalf("expected *json.UnmarshalTypeError, got %T (%v)", err, err)
	}
	if typeErr.Field != "title" {
		t.Errorf("expected field title, got %q", typeErr.Field)
	}
}
