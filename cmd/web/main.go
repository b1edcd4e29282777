package main

import (
	_ "embed"
	"html"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tomz197/drift/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

//go:embed index.html
var htmlPage string

func main() {
	logger, err := config.NewLogger(os.Stderr, "drift-web")
	if err != nil {
		logger.Fatal("bad log level", "err", err)
	}

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	sshPort := config.GetEnv("SSH_DISPLAY_PORT", "2222")

	page := renderPage(sshHost, sshPort)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("Starting web server", "addr", "http://"+srv.Addr, "ssh", sshHost)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// renderPage fills the HTML-escaped SSH endpoint into the landing page.
func renderPage(sshHost, sshPort string) string {
	command := "ssh -t " + sshHost
	if sshPort != "22" {
		command = "ssh -t -p " + sshPort + " " + sshHost
	}
	return strings.NewReplacer(
		"{{.SSHHost}}", html.EscapeString(sshHost),
		"{{.SSHCommand}}", html.EscapeString(command),
	).Replace(htmlPage)
}
