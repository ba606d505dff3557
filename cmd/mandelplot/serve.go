package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mandelplot/mandelplot"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a live preview of the configured render",
	Long: `Serve renders the image described by the configuration file and serves it
over HTTP. While the server runs the config file is watched; editing it
re-renders the image and connected browsers refresh themselves over a
websocket.

Configuration keys (with MANDELPLOT_* environment overrides):
  pixels       image size, e.g. 1000x750
  region       named landmark, e.g. seahorse
  upper_left   plane corner as RE,IM (used when region is unset)
  lower_right  plane corner as RE,IM
  iterations   escape iteration limit
  workers      parallel band count`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	serveCmd.Flags().IntP("port", "p", 8080, "port to serve on")
	serveCmd.Flags().String("host", "localhost", "host to bind to")
	viper.BindPFlag("serve.port", serveCmd.Flags().Lookup("port"))
	viper.BindPFlag("serve.host", serveCmd.Flags().Lookup("host"))
	rootCmd.AddCommand(serveCmd)
}

// serveConfig assembles a RenderConfig from viper's current state.
func serveConfig() (mandelplot.RenderConfig, error) {
	var cfg mandelplot.RenderConfig

	dims, err := parseDimensions(viper.GetString("pixels"))
	if err != nil {
		return cfg, err
	}

	var region mandelplot.PlaneRegion
	if name := viper.GetString("region"); name != "" {
		region, err = lookupLandmark(name)
	} else {
		region, err = parseRegion(viper.GetString("upper_left"), viper.GetString("lower_right"))
	}
	if err != nil {
		return cfg, err
	}

	cfg = mandelplot.RenderConfig{
		Dims:          dims,
		Region:        region,
		MaxIterations: viper.GetInt("iterations"),
		Workers:       viper.GetInt("workers"),
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runServe() error {
	viper.SetDefault("pixels", "1000x750")
	viper.SetDefault("region", "full")

	cfg, err := serveConfig()
	if err != nil {
		return err
	}

	preview := newPreviewServer()
	if err := preview.render(cfg); err != nil {
		return err
	}

	if file := viper.ConfigFileUsed(); file != "" {
		watcher, err := watchConfig(file, preview)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", preview.handleIndex)
	mux.HandleFunc("/image.png", preview.handleImage)
	mux.HandleFunc("/ws", preview.handleWebsocket)

	addr := fmt.Sprintf("%s:%d", viper.GetString("serve.host"), viper.GetInt("serve.port"))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://%s", addr)
	return srv.ListenAndServe()
}

// watchConfig re-renders the preview whenever the config file changes.
func watchConfig(file string, preview *previewServer) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	if err := watcher.Add(file); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %q: %w", file, err)
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				log.Printf("config changed: %s", event.Name)
				if err := viper.ReadInConfig(); err != nil {
					log.Printf("reload config: %v", err)
					continue
				}
				cfg, err := serveConfig()
				if err != nil {
					log.Printf("reload config: %v", err)
					continue
				}
				if err := preview.render(cfg); err != nil {
					log.Printf("re-render: %v", err)
					continue
				}
				preview.broadcastReload()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("watcher: %v", err)
			}
		}
	}()

	return watcher, nil
}

// previewServer holds the most recent successful render as an encoded PNG
// and the set of websocket subscribers waiting for reload notices.
type previewServer struct {
	mu   sync.Mutex
	png  []byte
	subs map[*websocket.Conn]struct{}
}

func newPreviewServer() *previewServer {
	return &previewServer{subs: make(map[*websocket.Conn]struct{})}
}

// render computes cfg and swaps in the new image. On failure the previous
// image stays served.
func (p *previewServer) render(cfg mandelplot.RenderConfig) error {
	start := time.Now()
	pixels, err := mandelplot.Render(context.Background(), cfg)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := mandelplot.EncodePNG(&buf, pixels, cfg.Dims); err != nil {
		return err
	}
	log.Printf("rendered %dx%d in %s", cfg.Dims.Width, cfg.Dims.Height, time.Since(start))

	p.mu.Lock()
	p.png = buf.Bytes()
	p.mu.Unlock()
	return nil
}

func (p *previewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

func (p *previewServer) handleImage(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	img := p.png
	p.mu.Unlock()

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(img)
}

func (p *previewServer) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}

	p.mu.Lock()
	p.subs[c] = struct{}{}
	p.mu.Unlock()

	// Block until the client goes away; we never expect inbound messages.
	ctx := r.Context()
	_, _, _ = c.Read(ctx)

	p.mu.Lock()
	delete(p.subs, c)
	p.mu.Unlock()
	c.Close(websocket.StatusNormalClosure, "")
}

// broadcastReload tells every connected browser to refetch the image.
func (p *previewServer) broadcastReload() {
	p.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(p.subs))
	for c := range p.subs {
		conns = append(conns, c)
	}
	p.mu.Unlock()

	for _, c := range conns {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := c.Write(ctx, websocket.MessageText, []byte("reload")); err != nil {
			log.Printf("notify client: %v", err)
		}
		cancel()
	}
}

const indexHTML = `<!doctype html>
<html>
<head><title>mandelplot</title></head>
<body style="margin:0;background:#111;text-align:center">
<img id="plot" src="/image.png" style="max-width:100%">
<script>
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = () => {
  document.getElementById("plot").src = "/image.png?t=" + Date.now();
};
</script>
</body>
</html>
`
