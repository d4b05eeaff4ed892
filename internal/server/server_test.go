package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bfctl/internal/bf"
)

func do(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	var out map[string]any
	if strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("bad json %q: %v", rec.Body.String(), err)
		}
	}
	return rec, out
}

func TestRun_ReverseWithZeroEOF(t *testing.T) {
	s := &Server{Quiet: true}
	rec, out := do(t, s, http.MethodPost, "/api/run", `{"source":",[>,]<[.<]","input":"AB","eof":"zero"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	if out["output"] != "BA" || out["display"] != "BA" {
		t.Fatalf("unexpected output %v", out)
	}
	// the final '<' materialises a[-1]
	want := map[float64]float64{-1: 0, 0: 'A', 1: 'B', 2: 0}
	tape := out["tape"].([]any)
	if len(tape) != len(want) {
		t.Fatalf("unexpected tape %v", tape)
	}
	for _, c := range tape {
		cell := c.(map[string]any)
		if v, ok := want[cell["address"].(float64)]; !ok || v != cell["value"].(float64) {
			t.Fatalf("unexpected cell %v in %v", cell, tape)
		}
	}
	if out["pointer"] != float64(-1) {
		t.Fatalf("unexpected pointer %v", out["pointer"])
	}
}

func TestRun_InputExhausted(t *testing.T) {
	s := &Server{Quiet: true}
	rec, out := do(t, s, http.MethodPost, "/api/run", `{"source":"+,","input":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	if out["kind"] != "input_exhausted" || out["index"] != float64(1) {
		t.Fatalf("unexpected error body %v", out)
	}
}

func TestRun_Unbalanced(t *testing.T) {
	s := &Server{Quiet: true}
	rec, out := do(t, s, http.MethodPost, "/api/run", `{"source":"+]"}`)
	if rec.Code != http.StatusBadRequest || out["kind"] != "unbalanced_loop" || out["index"] != float64(1) {
		t.Fatalf("unexpected response %d %v", rec.Code, out)
	}
}

func TestRun_StepBudget(t *testing.T) {
	s := &Server{Quiet: true, MaxSteps: 1000}
	rec, out := do(t, s, http.MethodPost, "/api/run", `{"source":"+[]"}`)
	if rec.Code != http.StatusUnprocessableEntity || out["error"] != "step budget exhausted" {
		t.Fatalf("unexpected response %d %v", rec.Code, out)
	}
	// a request can lower the budget but a finished run is never rejected
	rec, out = do(t, s, http.MethodPost, "/api/run", `{"source":"+++","max_steps":3}`)
	if rec.Code != http.StatusOK || out["steps"] != float64(3) {
		t.Fatalf("unexpected response %d %v", rec.Code, out)
	}
}

func TestRun_UnknownEOF(t *testing.T) {
	rec, _ := do(t, &Server{Quiet: true}, http.MethodPost, "/api/run", `{"source":",","eof":"prompt"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("prompt policy must be rejected over HTTP, got %d", rec.Code)
	}
}

func TestCheck(t *testing.T) {
	s := &Server{Quiet: true}
	_, out := do(t, s, http.MethodPost, "/api/check", `{"source":"a[b[-]]c"}`)
	if out["ok"] != true || out["commands"] != float64(5) || out["loops"] != float64(2) {
		t.Fatalf("unexpected check %v", out)
	}
	_, out = do(t, s, http.MethodPost, "/api/check", `{"source":"[["}`)
	if out["ok"] != false || out["index"] != float64(0) {
		t.Fatalf("unexpected check %v", out)
	}
}

func TestMeta(t *testing.T) {
	s := &Server{Quiet: true}
	if rec, out := do(t, s, http.MethodGet, "/api/health", ""); rec.Code != 200 || out["status"] != "ok" {
		t.Fatalf("health: %d %v", rec.Code, out)
	}
	rec, _ := do(t, s, http.MethodGet, "/api/examples", "")
	if rec.Code != 200 || !strings.Contains(rec.Body.String(), `"reverse"`) {
		t.Fatalf("examples: %d %s", rec.Code, rec.Body)
	}
	if rec, _ := do(t, s, http.MethodGet, "/nope", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestSchema(t *testing.T) {
	for _, name := range SchemaNames() {
		sch, err := Schema(name)
		if err != nil {
			t.Fatalf("Schema(%q): %v", name, err)
		}
		b, err := MarshalSchema(sch)
		if err != nil || !strings.Contains(string(b), `"properties"`) {
			t.Fatalf("schema %q not rendered: %v\n%s", name, err, b)
		}
	}
	if _, err := Schema("nope"); err == nil {
		t.Fatalf("expected error for unknown schema")
	}
}

func TestRun_EngineOptions(t *testing.T) {
	s := &Server{Quiet: true, Engine: []bf.Option{bf.WithTapeLimit(2)}}
	rec, out := do(t, s, http.MethodPost, "/api/run", `{"source":">>>"}`)
	if rec.Code != http.StatusBadRequest || out["kind"] != "tape_bounds" || out["address"] != float64(3) {
		t.Fatalf("unexpected response %d %v", rec.Code, out)
	}
	rec, _ = do(t, s, http.MethodPost, "/api/run", `{"source":">>"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("within the limit: %d %s", rec.Code, rec.Body.String())
	}
}
