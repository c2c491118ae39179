package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/ymatsuda/expertdesk/internal/domain"
)

type fakeService struct {
	resp *domain.ConsultResponse
	err  error

	CallCount int
	LastReq   *domain.ConsultRequest
}

func (f *fakeService) Ask(ctx context.Context, req *domain.ConsultRequest) (*domain.ConsultResponse, error) {
	f.CallCount++
	f.LastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func postForm(t *testing.T, handler http.Handler, values url.Values) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	resp := rec.Result()
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, string(body)
}

func TestServer_GetForm(t *testing.T) {
	handler := NewServer(&fakeService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d, want 200", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{"専門家の種類を選択", "入力テキスト", "旅行プランナー", "キャリアコーチ"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestServer_EmptyInputSkipsService(t *testing.T) {
	svc := &fakeService{}
	handler := NewServer(svc, zap.NewNop())

	resp, body := postForm(t, handler, url.Values{"role": {"A"}, "text": {"   \n "}})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(body, emptyInputWarning) {
		t.Error("warning not rendered for empty input")
	}
	if svc.CallCount != 0 {
		t.Errorf("service calls = %d, want 0 for empty input", svc.CallCount)
	}
}

func TestServer_Consult(t *testing.T) {
	svc := &fakeService{resp: &domain.ConsultResponse{Text: "案: 嵐山から始めましょう。"}}
	handler := NewServer(svc, zap.NewNop())

	_, body := postForm(t, handler, url.Values{"role": {"A"}, "text": {"  京都に2泊3日で行きたい  "}})

	if svc.CallCount != 1 {
		t.Fatalf("service calls = %d, want 1", svc.CallCount)
	}
	if svc.LastReq.Role != domain.ExpertTravel {
		t.Errorf("role = %q, want A", svc.LastReq.Role)
	}
	if svc.LastReq.Text != "京都に2泊3日で行きたい" {
		t.Errorf("text = %q, want trimmed input", svc.LastReq.Text)
	}
	if !strings.Contains(body, "案: 嵐山から始めましょう。") {
		t.Error("answer not rendered")
	}
}

func TestServer_ErrorRendered(t *testing.T) {
	svc := &fakeService{err: errors.New("request failed: status 500")}
	handler := NewServer(svc, zap.NewNop())

	_, body := postForm(t, handler, url.Values{"role": {"B"}, "text": {"相談です"}})

	if !strings.Contains(body, "エラーが発生しました") {
		t.Error("error banner not rendered")
	}
	if !strings.Contains(body, "request failed: status 500") {
		t.Error("raw error message not rendered")
	}
}

func TestServer_UnknownRolePassedThrough(t *testing.T) {
	// role validation belongs to the service; the handler forwards as-is
	svc := &fakeService{err: domain.ErrUnknownExpert}
	handler := NewServer(svc, zap.NewNop())

	_, body := postForm(t, handler, url.Values{"role": {"C"}, "text": {"相談です"}})

	if svc.CallCount != 1 {
		t.Fatalf("service calls = %d, want 1", svc.CallCount)
	}
	if !strings.Contains(body, domain.ErrUnknownExpert.Error()) {
		t.Error("invalid-argument message not rendered")
	}
}

func TestServer_NotFound(t *testing.T) {
	handler := NewServer(&fakeService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /nope status = %d, want 404", rec.Code)
	}
}

func TestServer_MethodNotAllowed(t *testing.T) {
	handler := NewServer(&fakeService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE / status = %d, want 405", rec.Code)
	}
}
