package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/glint-ui/glint/el"
	"github.com/glint-ui/glint/pkg/dom"
	"github.com/glint-ui/glint/pkg/reactive"
)

func newTestServer(t *testing.T, root RootComponent) *httptest.Server {
	t.Helper()
	srv := New(root, &Config{PageTitle: "test"})
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func staticRoot() *dom.Node {
	return el.Div(el.ID("app"), el.P("static"))
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, staticRoot)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestIndexServesShell(t *testing.T) {
	ts := newTestServer(t, staticRoot)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	html := string(body)

	if !strings.Contains(html, "<title>test</title>") {
		t.Errorf("shell missing title: %s", html)
	}
	if !strings.Contains(html, `id="glint-root"`) {
		t.Error("shell missing mount container")
	}
	if !strings.Contains(html, "WebSocket") {
		t.Error("shell missing client bootstrap")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, staticRoot)

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func dialWS(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	var frame map[string]any
	if err := json.Unmarshal(msg, &frame); err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	return frame
}

func TestSessionHandshake(t *testing.T) {
	ts := newTestServer(t, staticRoot)
	conn := dialWS(t, ts)

	frame := readFrame(t, conn)
	if frame["type"] != "init" {
		t.Fatalf("first frame type = %v, want init", frame["type"])
	}
	html, _ := frame["html"].(string)
	if !strings.Contains(html, "static") {
		t.Errorf("init html missing component output: %q", html)
	}
	if !strings.Contains(html, "data-glint-id=") {
		t.Errorf("init html missing node ids: %q", html)
	}
}

var glintIDPattern = regexp.MustCompile(`<button[^>]*data-glint-id="(\d+)"`)

func TestSessionEventDispatchStreamsPatch(t *testing.T) {
	count := reactive.NewSignal(0)
	root := func() *dom.Node {
		return el.Button(
			el.OnClick(func(*dom.Event) {
				count.Update(func(c int) int { return c + 1 })
			}),
			el.Dyn(func() any { return count.Get() }),
		)
	}

	ts := newTestServer(t, root)
	conn := dialWS(t, ts)

	init := readFrame(t, conn)
	html, _ := init["html"].(string)

	m := glintIDPattern.FindStringSubmatch(html)
	if m == nil {
		t.Fatalf("no button id in init html: %q", html)
	}
	buttonID, _ := strconv.ParseUint(m[1], 10, 64)

	err := conn.WriteJSON(map[string]any{
		"type":  "event",
		"node":  buttonID,
		"event": "click",
	})
	if err != nil {
		t.Fatalf("send event: %v", err)
	}

	patch := readFrame(t, conn)
	if patch["type"] != "patch" {
		t.Fatalf("frame type = %v, want patch", patch["type"])
	}
	ops, _ := patch["ops"].([]any)
	if len(ops) == 0 {
		t.Fatal("patch frame has no ops")
	}
	op := ops[0].(map[string]any)
	if op["op"] != "sync" {
		t.Errorf("op = %v, want sync", op["op"])
	}
	if !strings.Contains(op["html"].(string), "1") {
		t.Errorf("sync html = %v, want updated count", op["html"])
	}
}

func TestSessionCountTracksConnections(t *testing.T) {
	srv := New(staticRoot, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	conn := dialWS(t, ts)
	readFrame(t, conn) // handshake

	if got := srv.SessionCount(); got != 1 {
		t.Errorf("SessionCount() = %d, want 1", got)
	}

	conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for srv.SessionCount() != 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if got := srv.SessionCount(); got != 0 {
		t.Errorf("SessionCount() after close = %d, want 0", got)
	}
}
