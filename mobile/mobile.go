// Package mobile is the gomobile-bindable entry point: the host app starts
// the same local HTTP server the desktop binary runs and points a web view
// at it.
package mobile

import (
	"errors"
	"log"
	"net"
	"net/http"
	"sync"

	"circlechess/internal/engine"
	"circlechess/internal/server/game"
	httpserver "circlechess/internal/server/http"
	"circlechess/internal/storage"
)

var (
	mu      sync.Mutex
	srv     *http.Server
	dbStore *storage.Storage
)

// StartServer starts the local HTTP server and returns its address.
// webDir: physical path to the extracted web assets
// dataDir: where saved games live ("" keeps them in memory)
// port: port to listen on, e.g. "2888"; "0" picks a free one
func StartServer(webDir string, dataDir string, port string) (string, error) {
	mu.Lock()
	defer mu.Unlock()
	if srv != nil {
		return "", errors.New("server already running")
	}

	var store game.Store
	if dataDir != "" {
		st, err := storage.Open(dataDir)
		if err != nil {
			return "", err
		}
		dbStore, store = st, st
	}

	ln, err := net.Listen("tcp", "127.0.0.1:"+port)
	if err != nil {
		closeStore()
		return "", err
	}
	h := httpserver.NewHandler(game.NewManager(store), engine.NewEngine())
	srv = &http.Server{Handler: httpserver.NewRouter(h, webDir)}

	// Run in background so it doesn't block the Android UI thread
	go func(s *http.Server) {
		if err := s.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server Error: %v", err)
		}
	}(srv)
	return ln.Addr().String(), nil
}

// StopServer closes the listener and the store. Stopping a stopped server
// is a no-op.
func StopServer() {
	mu.Lock()
	defer mu.Unlock()
	if srv == nil {
		return
	}
	if err := srv.Close(); err != nil {
		log.Printf("Server Close: %v", err)
	}
	srv = nil
	closeStore()
}

func closeStore() {
	if dbStore != nil {
		if err := dbStore.Close(); err != nil {
			log.Printf("Storage Close: %v", err)
		}
		dbStore = nil
	}
}
