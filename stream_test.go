package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func TestStream(t *testing.T) {
	srv := httptest.NewServer(setupRouter())
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/stream", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	steps := []struct {
		req  Request
		want Response
	}{
		{Request{Episode: "s", Agent: "agent_0", Step: 0, Observations: conflictObservations()}, Response{Action: 4, Move: "up"}},
		{Request{Episode: "s", Agent: "agent_0", Step: 1, Observations: conflictObservations(), Target: int32Ptr(0)}, Response{Action: 2, Move: "right"}},
	}
	for _, s := range steps {
		if err := conn.WriteJSON(s.req); err != nil {
			t.Fatal(err)
		}
		var got Response
		if err := conn.ReadJSON(&got); err != nil {
			t.Fatal(err)
		}
		if got != s.want {
			t.Fatalf("step %d: got %+v, want %+v", s.req.Step, got, s.want)
		}
	}

	for _, bad := range []string{"{", `{"observations":[1,2]}`} {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(bad)); err != nil {
			t.Fatal(err)
		}
		var reply map[string]interface{}
		if err := conn.ReadJSON(&reply); err != nil {
			t.Fatal(err)
		}
		if reply["error"] == nil {
			t.Fatalf("%q: reply %v, want error", bad, reply)
		}
	}

	// session survives bad frames
	if err := conn.WriteJSON(steps[0].req); err != nil {
		t.Fatal(err)
	}
	var got Response
	if err := conn.ReadJSON(&got); err != nil || got != steps[0].want {
		t.Fatalf("after errors: %+v, %v", got, err)
	}
}

func TestStreamOrigins(t *testing.T) {
	srv := httptest.NewServer(setupRouter())
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/stream"

	AllowedOrigins = []string{"http://env.local"}
	defer func() { AllowedOrigins = nil }()

	tests := []struct {
		origin string
		ok     bool
	}{
		{"http://env.local", true},
		{"http://elsewhere.example", false},
		{"", true},
	}
	for _, tt := range tests {
		header := http.Header{}
		if tt.origin != "" {
			header.Set("Origin", tt.origin)
		}
		conn, resp, err := websocket.DefaultDialer.Dial(url, header)
		if tt.ok {
			if err != nil {
				t.Fatalf("origin %q: %v", tt.origin, err)
			}
			conn.Close()
			continue
		}
		if err == nil {
			conn.Close()
			t.Fatalf("origin %q accepted", tt.origin)
		}
		if resp == nil || resp.StatusCode != http.StatusForbidden {
			t.Fatalf("origin %q: resp %v, err %v", tt.origin, resp, err)
		}
	}
}
