package httpserver

import "net/http"

// NewRouter 把 /api/* 交给 Handler，其余路径走静态文件。
// webDir 为空时不挂静态文件，只剩 API 和健康检查。
func NewRouter(h *Handler, webDir string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/", h)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	if webDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(webDir)))
	}
	return mux
}
