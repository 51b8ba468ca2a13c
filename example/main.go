package main

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pthm/livedom"
	"github.com/pthm/livedom/example/components"
)

//go:embed static
var staticFiles embed.FS

func main() {
	// Create store
	todos := NewStore()

	// Routes; the last one pushed is shown first
	app := livedom.NewApp()
	app.Push("counter", func() livedom.Component {
		return components.Layout(app, components.Counter())
	})
	app.Push("todos", func() livedom.Component {
		return components.Layout(app, components.TodoList(todos), components.Sidebar(todos))
	})
	if err := app.Render(); err != nil {
		log.Fatal(err)
	}

	// Serve the document (in production, use a real secret)
	key := []byte("example-key-must-be-32-bytes!!")
	host := livedom.NewHost(key,
		livedom.WithTitle("livedom todos"),
		livedom.WithHead(templ.Raw(`<script src="/static/client.js" defer></script>`)),
	)

	// Create router
	mux := http.NewServeMux()
	mux.Handle("/", host)

	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		log.Fatal(err)
	}
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Start server
	addr := ":8080"
	fmt.Printf("Starting server at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
