// Command preview serves an HTTP page that renders gradients and text with
// the imageutil engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/imageutil/internal/assets"
	"github.com/rook-computer/imageutil/internal/config"
	"github.com/rook-computer/imageutil/internal/logging"
	"github.com/rook-computer/imageutil/internal/web"
	"github.com/rook-computer/imageutil/resolve"
	"github.com/rook-computer/imageutil/text"
)

func main() {
	defaults, err := config.FromEnv(":8080")
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	listenAddr := flag.String("listen", defaults.ListenAddr, "http listen address; also configurable via "+config.EnvListenAddr)
	devMode := flag.Bool("dev", defaults.DevMode, "enable dev mode (permissive CORS); also configurable via "+config.EnvDevMode)
	staticDir := flag.String("static-dir", "", "serve static UI from this directory (optional); when empty, the embedded page is served")
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr to this file; also configurable via "+config.EnvStdioLog)
	flag.Parse()

	if err := logging.RedirectStdIO(*stdioLog); err != nil {
		fmt.Println("stdio log redirect error:", err)
	}
	logger := logging.NewFileLogger(os.Stderr)

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fonts, err := assets.DefaultFonts()
	if err != nil {
		fmt.Println("font load error:", err)
		os.Exit(1)
	}
	fonts.Logger = logger
	engine := text.NewEngine[[4]uint8](fonts)
	engine.Logger = logger

	var handler http.Handler = web.NewDefaultMux(*staticDir, web.APIV1Deps{
		Engine:   engine,
		Catalog:  resolve.NewCatalog(config.DefaultLanguage, assets.Messages),
		Language: defaults.Language,
		Logger:   logger,
	})
	if *devMode {
		handler = web.WithDevCORS(handler)
	}

	server := web.NewHTTPServer(*listenAddr, handler)
	server.Logger = logger
	if err := server.Start(processCtx); err != nil {
		fmt.Println("server start error:", err)
		os.Exit(1)
	}

	fmt.Println("imageutil preview listening on", server.ListenAddr())
	fmt.Println("API: http://" + trimLeadingColon(*listenAddr) + "/api/v1/")

	<-processCtx.Done()
	_ = server.Stop()
}

func trimLeadingColon(addr string) string {
	// Best-effort for display; don't attempt full URL parsing here.
	if len(addr) > 0 && addr[0] == ':' {
		return "127.0.0.1" + addr
	}
	if addr == "" {
		return "127.0.0.1:8080"
	}
	return addr
}
