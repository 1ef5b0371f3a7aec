package server

import (
	"context"
	"net/http"

	"oceanbistro/internal/handlers"
	applog "oceanbistro/internal/log"
)

func newRouter(staticDir string) http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")
	mux.HandleFunc("/healthz", handlers.Health)
	applog.Debug(context.Background(), "route registered", "path", "/healthz")
	mux.HandleFunc("/theme", handlers.CurrentTheme)
	applog.Debug(context.Background(), "route registered", "path", "/theme")
	mux.HandleFunc("/theme/toggle", handlers.ToggleTheme)
	applog.Debug(context.Background(), "route registered", "path", "/theme/toggle")
	mux.HandleFunc("/contact", handlers.Contact)
	applog.Debug(context.Background(), "route registered", "path", "/contact")
	mux.HandleFunc("/", handlers.Home)
	applog.Debug(context.Background(), "route registered", "path", "/")
	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(staticDir))))
	applog.Debug(context.Background(), "route registered", "path", "/assets/", "static", true, "dir", staticDir)
	return mux
}
