package main

import (
	"html/template"
	"net"
	"net/http"
	"os"

	"github.com/tomz197/xevious/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

var page = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>XEVIOUS over SSH</title>
<style>
body { background: #2b335f; color: #eeeeee; font-family: monospace; text-align: center; padding-top: 10vh; }
h1 { letter-spacing: 0.5em; }
h2 { color: #e9c35b; }
code { background: #000000; color: #70c6a9; padding: 0.5em 1em; display: inline-block; }
table { margin: 2em auto; text-align: left; }
td { padding: 0.2em 1em; }
</style>
</head>
<body>
<h1>XEVIOUS</h1>
<h2>FARDRAUT SAGA</h2>
<p>Play in your terminal:</p>
<p><code>ssh -t {{.SSHHost}} -p {{.SSHPort}}</code></p>
<table>
<tr><td>Arrows / WASD</td><td>move</td></tr>
<tr><td>Z</td><td>shoot</td></tr>
<tr><td>X</td><td>bomb</td></tr>
<tr><td>P</td><td>pause</td></tr>
<tr><td>Space</td><td>start</td></tr>
<tr><td>Q</td><td>quit</td></tr>
</table>
</body>
</html>
`))

func main() {
	logger := config.NewLogger(os.Stderr, "web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	data := struct{ SSHHost, SSHPort string }{
		SSHHost: config.GetEnv("SSH_DISPLAY_HOST", "your-server.com"),
		SSHPort: config.GetEnv("SSH_DISPLAY_PORT", "2222"),
	}

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := page.Execute(w, data); err != nil {
			logger.Error("render page", "err", err)
		}
	})

	addr := net.JoinHostPort(host, port)
	logger.Info("Starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
