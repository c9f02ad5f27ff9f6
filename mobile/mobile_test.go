package mobile

import (
	"io"
	"net/http"
	"testing"
)

func TestStartStopServer(t *testing.T) {
	addr, err := StartServer("", t.TempDir(), "0")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer StopServer()

	if _, err := StartServer("", "", "0"); err == nil {
		t.Fatal("second start should fail while running")
	}

	resp, err := http.Get("http://" + addr + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != "ok\n" {
		t.Fatalf("healthz = %d %q", resp.StatusCode, body)
	}

	resp, err = http.Post("http://"+addr+"/api/new_game", "application/json", nil)
	if err != nil {
		t.Fatalf("new_game: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("new_game status %d", resp.StatusCode)
	}

	StopServer()
	StopServer()
}
