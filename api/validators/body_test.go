package validators

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/Japhetmondragon/Mondragonpartyrental.com/pkg/errors"
)

type samplePayload struct {
	Email string `json:"email" validate:"required,email"`
	Qty   int    `json:"qty" validate:"required,min=1"`
}

func jsonRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestDecodeJSONBodyValid(t *testing.T) {
	var dest samplePayload
	err := DecodeJSONBody(jsonRequest(`{"email":"a@example.com","qty":3}`), &dest)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dest.Email != "a@example.com" || dest.Qty != 3 {
		t.Fatalf("unexpected payload %+v", dest)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	var dest samplePayload
	err := DecodeJSONBody(jsonRequest(`{"email":"a@example.com","qty":3,"extra":true}`), &dest)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for unknown field, got %v", err)
	}
}

func TestDecodeJSONBodyRejectsMalformedJSON(t *testing.T) {
	var dest samplePayload
	err := DecodeJSONBody(jsonRequest(`{"email":`), &dest)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for malformed body, got %v", err)
	}
}

func TestDecodeJSONBodyFieldErrorsUseJSONNames(t *testing.T) {
	var dest samplePayload
	err := DecodeJSONBody(jsonRequest(`{"email":"not-an-email","qty":0}`), &dest)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}

	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field error map, got %T", typed.Details())
	}
	if _, ok := details["email"]; !ok {
		t.Fatalf("expected email field error, got %v", details)
	}
	if _, ok := details["qty"]; !ok {
		t.Fatalf("expected qty field error, got %v", details)
	}
}

func TestParseQueryInt(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?page=3", nil)
	page, err := ParseQueryInt(req, "page", 1, 1, 100)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if page != 3 {
		t.Fatalf("expected 3, got %d", page)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	page, err = ParseQueryInt(req, "page", 1, 1, 100)
	if err != nil || page != 1 {
		t.Fatalf("expected default 1, got %d err=%v", page, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/?page=abc", nil)
	if _, err := ParseQueryInt(req, "page", 1, 1, 100); err == nil {
		t.Fatalf("expected error for non-numeric value")
	}

	req = httptest.NewRequest(http.MethodGet, "/?page=500", nil)
	if _, err := ParseQueryInt(req, "page", 1, 1, 100); err == nil {
		t.Fatalf("expected error for out-of-range value")
	}
}

func TestParseQueryDecimal(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?min=10.50", nil)
	value, err := ParseQueryDecimal(req, "min")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if value == nil || value.String() != "10.5" {
		t.Fatalf("unexpected value %v", value)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	value, err = ParseQueryDecimal(req, "min")
	if err != nil || value != nil {
		t.Fatalf("expected nil for absent param, got %v err=%v", value, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/?min=-4", nil)
	if _, err := ParseQueryDecimal(req, "min"); err == nil {
		t.Fatalf("expected error for negative value")
	}

	req = httptest.NewRequest(http.MethodGet, "/?min=cheap", nil)
	if _, err := ParseQueryDecimal(req, "min"); err == nil {
		t.Fatalf("expected error for non-numeric value")
	}
}
