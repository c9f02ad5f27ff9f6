package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"circlechess/internal/engine"
	"circlechess/internal/server/game"
	httpserver "circlechess/internal/server/http"
	"circlechess/internal/storage"
)

func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default: // linux / bsd
		cmd = exec.Command("xdg-open", url)
	}

	_ = cmd.Start() // 无图形界面的服务器上会失败，忽略
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		// run has closed everything it opened
		log.Println(err)
		os.Exit(1)
	}
}

// run owns every resource it opens and releases them before returning, so
// main can exit without skipping deferred cleanup.
func run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("circlechess-local", flag.ContinueOnError)
	// Flags (env fallbacks)
	addr := fs.String("addr", getenv("CIRCLECHESS_ADDR", ":2888"), "listen address")
	webDir := fs.String("web", getenv("CIRCLECHESS_WEB", "./web"), "directory with index.html / js / svg (empty: API only)")
	dataDir := fs.String("data", getenv("CIRCLECHESS_DATA", ""), "badger directory for saved games (empty: keep games in memory)")
	forget := fs.String("forget", "", "delete the saved game with this id and exit")
	browser := fs.Bool("open", false, "open the default browser once listening")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var store game.Store
	if *dataDir != "" {
		st, err := storage.Open(*dataDir)
		if err != nil {
			return fmt.Errorf("storage: %w", err)
		}
		defer func() {
			if err := st.Close(); err != nil {
				log.Printf("storage close: %v", err)
			}
		}()

		if *forget != "" {
			if err := st.Delete(*forget); err != nil {
				return fmt.Errorf("delete %s: %w", *forget, err)
			}
			log.Printf("deleted game %s", *forget)
			return nil
		}
		recs, err := st.List()
		if err != nil {
			return fmt.Errorf("storage: %w", err)
		}
		log.Printf("storage %s: %d saved games", *dataDir, len(recs))
		store = st
	} else if *forget != "" {
		return errors.New("-forget needs -data")
	}

	h := httpserver.NewHandler(game.NewManager(store), engine.NewEngine())
	srv := &http.Server{
		Addr:              *addr,
		Handler:           httpserver.NewRouter(h, *webDir),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("listening on %s, serving static from %q", *addr, *webDir)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if *browser {
		go func() {
			// 等服务器起来再开浏览器
			time.Sleep(100 * time.Millisecond)
			openBrowser("http://127.0.0.1" + *addr)
		}()
	}

	return g.Wait()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
