/*
File    : monkey/cmd/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cmd

import (
	"net"
	"os"

	"github.com/akashmaji946/monkey/repl"
	"github.com/spf13/cobra"
)

var listenAddr string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive parse-and-print loop over stdin, or a TCP server with --listen",
	RunE: func(cmd *cobra.Command, args []string) error {
		if listenAddr != "" {
			startServer(listenAddr)
			return nil
		}

		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
		return nil
	},
}

func init() {
	replCmd.Flags().StringVar(&listenAddr, "listen", "", "serve the REPL over TCP on this address (e.g. :4000) instead of stdin/stdout")
}

// startServer listens on addr and hands each accepted connection its own
// REPL session, one goroutine per client.
func startServer(addr string) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to listen on %s: %v\n", addr, err)
		os.Exit(1)
	}
	defer listener.Close()
	cyanColor.Printf("monkey REPL server listening on %s\n", addr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] accept failed: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
