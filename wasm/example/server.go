//go:build !js

// Demo server for the wasm panel: serves the static files and bridges a
// WebSocket to a local shell over a pty. Binary frames carry terminal
// bytes in both directions; text frames carry JSON control messages
// (currently only resize).
package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/creack/pty"
	"github.com/gorilla/websocket"
)

var (
	addr      = flag.String("addr", ":8080", "listen address")
	staticDir = flag.String("static", ".", "directory of static files to serve")
	shellPath = flag.String("shell", "", "shell to spawn (defaults to $SHELL or /bin/bash)")
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // demo only, accept any origin
	},
}

type controlMessage struct {
	Type string `json:"type"`
	Cols int    `json:"cols"`
	Rows int    `json:"rows"`
}

// session bundles one WebSocket connection with the pty it drives.
type session struct {
	conn *websocket.Conn
	ptmx *os.File
	cmd  *exec.Cmd
}

func newSession(conn *websocket.Conn, cols, rows int) (*session, error) {
	shell := *shellPath
	if shell == "" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/bash"
	}

	cmd := exec.Command(shell)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, err
	}

	log.Printf("session started: %s (%dx%d)", shell, cols, rows)
	return &session{conn: conn, ptmx: ptmx, cmd: cmd}, nil
}

func (s *session) close() {
	s.ptmx.Close()
	s.cmd.Process.Kill()
	s.cmd.Wait()
}

// pumpOutput copies pty output to the WebSocket as binary frames.
func (s *session) pumpOutput() {
	buf := make([]byte, 4096)
	for {
		n, err := s.ptmx.Read(buf)
		if err != nil {
			if err != io.EOF {
				log.Printf("pty read: %v", err)
			}
			s.conn.Close()
			return
		}
		if n > 0 {
			if err := s.conn.WriteMessage(websocket.BinaryMessage, buf[:n]); err != nil {
				log.Printf("websocket write: %v", err)
				return
			}
		}
	}
}

// pumpInput reads WebSocket frames until the connection drops. Binary
// frames go straight to the pty; text frames are parsed as control
// messages.
func (s *session) pumpInput() {
	for {
		msgType, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket read: %v", err)
			}
			return
		}

		switch msgType {
		case websocket.TextMessage:
			var msg controlMessage
			if err := json.Unmarshal(data, &msg); err != nil || msg.Type != "resize" {
				continue
			}
			if msg.Cols > 0 && msg.Rows > 0 {
				pty.Setsize(s.ptmx, &pty.Winsize{
					Rows: uint16(msg.Rows),
					Cols: uint16(msg.Cols),
				})
				log.Printf("resized to %dx%d", msg.Cols, msg.Rows)
			}
		case websocket.BinaryMessage:
			if _, err := s.ptmx.Write(data); err != nil {
				log.Printf("pty write: %v", err)
				return
			}
		}
	}
}

// dimFromQuery reads an integer query parameter, falling back when it
// is absent or out of range.
func dimFromQuery(r *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v <= 0 || v > 1000 {
		return fallback
	}
	return v
}

func handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	cols := dimFromQuery(r, "cols", 80)
	rows := dimFromQuery(r, "rows", 24)

	sess, err := newSession(conn, cols, rows)
	if err != nil {
		log.Printf("pty start: %v", err)
		conn.WriteMessage(websocket.TextMessage, []byte("error starting shell: "+err.Error()))
		return
	}
	defer sess.close()

	go sess.pumpOutput()
	sess.pumpInput()
}

func main() {
	flag.Parse()

	http.Handle("/", http.FileServer(http.Dir(*staticDir)))
	http.HandleFunc("/ws", handleWebSocket)

	go func() {
		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
		<-sigchan
		log.Println("shutting down")
		os.Exit(0)
	}()

	log.Printf("serving on http://localhost%s (websocket at /ws)", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
