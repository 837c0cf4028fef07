package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestJSONError(t *testing.T) {
	rr := httptest.NewRecorder()
	JSONError(rr, http.StatusNotFound, "unknown_design", map[string]string{"id": "x"})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %s", ct)
	}
	var body ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Error != "unknown_design" {
		t.Fatalf("unexpected error code %s", body.Error)
	}
}

func TestJSONNil(t *testing.T) {
	rr := httptest.NewRecorder()
	JSON(rr, http.StatusOK, nil)
	if rr.Body.String() != "null" {
		t.Fatalf("expected null body got %q", rr.Body.String())
	}
}

func TestDecode(t *testing.T) {
	var dst struct {
		Value string `json:"value"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"value":"12.5"}`))
	if err := Decode(r, &dst); err != nil || dst.Value != "12.5" {
		t.Fatalf("unexpected decode result %+v err=%v", dst, err)
	}

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	if err := Decode(r, &dst); err != nil {
		t.Fatalf("empty body should decode cleanly, got %v", err)
	}

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{oops"))
	if err := Decode(r, &dst); !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON got %v", err)
	}
}

func TestAttachment(t *testing.T) {
	rr := httptest.NewRecorder()
	Attachment(rr, "application/pdf", "invoice-INV-1.pdf", []byte("%PDF"))
	if cd := rr.Header().Get("Content-Disposition"); cd != `attachment; filename="invoice-INV-1.pdf"` {
		t.Fatalf("unexpected disposition %s", cd)
	}
	if rr.Header().Get("Content-Length") != "4" || rr.Body.String() != "%PDF" {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}
