package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nathoo/shmoopland/engine"
	"github.com/nathoo/shmoopland/loader"
	"github.com/nathoo/shmoopland/types"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serverTestStore() *loader.Store {
	return &loader.Store{
		Start: "home",
		Locations: map[string]types.Location{
			"home":   {ID: "home", Description: "A cozy cottage.", Exits: map[string]string{"north": "market"}},
			"market": {ID: "market", Description: "A bustling market.", Exits: map[string]string{"south": "home"}},
		},
		Items: map[string]types.Item{
			"string": {ID: "string", Description: "A bit of string.", Location: "home"},
		},
		NPCs: map[string]types.NPCDef{
			"merchant": {
				ID:           "merchant",
				Location:     "market",
				Greetings:    map[string][]string{"neutral": {"Hello."}},
				Responses:    map[string][]string{"neutral": {"Hmm."}},
				Friendliness: 0.6,
			},
		},
		Quests:    map[string]types.Quest{},
		Recipes:   map[string]types.Recipe{},
		Templates: map[string][]string{},
		Variables: map[string][]string{},
	}
}

func newTestServer() *httptest.Server {
	g := engine.New(serverTestStore(), 42, discard())
	return httptest.NewServer(New(g, discard()).Handler())
}

func postCommand(t *testing.T, ts *httptest.Server, body string) (*http.Response, commandResponse) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/command", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var cr commandResponse
	if resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
	}
	return resp, cr
}

func TestCommandEndpoint(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, cr := postCommand(t, ts, `{"command": "look"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if cr.GameOver {
		t.Error("look should not end the game")
	}
	out := strings.Join(cr.Output, "\n")
	if !strings.Contains(out, "A cozy cottage.") {
		t.Errorf("output = %q", out)
	}
	if cr.Message != out {
		t.Errorf("message = %q, want joined output %q", cr.Message, out)
	}
}

func TestCommandResponseCarriesState(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	_, cr := postCommand(t, ts, `{"command": "take string"}`)
	if cr.Location != "home" {
		t.Errorf("location = %q, want home", cr.Location)
	}
	if len(cr.Inventory) != 1 || cr.Inventory[0] != "string" {
		t.Errorf("inventory = %v, want [string]", cr.Inventory)
	}

	_, cr = postCommand(t, ts, `{"command": "go north"}`)
	if cr.Location != "market" {
		t.Errorf("location after move = %q, want market", cr.Location)
	}
	if len(cr.Inventory) != 1 || cr.Inventory[0] != "string" {
		t.Errorf("inventory after move = %v, want [string]", cr.Inventory)
	}
}

func TestCommandRejectsEmpty(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, _ := postCommand(t, ts, `{"command": ""}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCommandRejectsInvalidJSON(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, _ := postCommand(t, ts, `{"command": `)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestQuitEndsGameImmediately(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	_, cr := postCommand(t, ts, `{"command": "quit"}`)
	if !cr.GameOver {
		t.Error("quit over HTTP should end the game without confirmation")
	}
}

func TestConversationOverHTTP(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	postCommand(t, ts, `{"command": "go north"}`)
	postCommand(t, ts, `{"command": "talk to merchant"}`)

	_, cr := postCommand(t, ts, `{"command": "how are you?"}`)
	if len(cr.Output) != 1 || !strings.HasPrefix(cr.Output[0], "merchant: ") {
		t.Errorf("conversation reply = %v", cr.Output)
	}

	postCommand(t, ts, `{"command": "bye"}`)
	_, cr = postCommand(t, ts, `{"command": "look"}`)
	if !strings.Contains(strings.Join(cr.Output, "\n"), "A bustling market.") {
		t.Errorf("dispatcher not restored after farewell: %v", cr.Output)
	}
}

func TestStateEndpoint(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	postCommand(t, ts, `{"command": "take string"}`)

	resp, err := http.Get(ts.URL + "/api/state")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var snap types.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
	if snap.Location != "home" {
		t.Errorf("location = %q, want home", snap.Location)
	}
	if len(snap.Inventory) != 1 || snap.Inventory[0] != "string" {
		t.Errorf("inventory = %v", snap.Inventory)
	}
}
