package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/cbodonnell/arena/pkg/client"
	"github.com/cbodonnell/arena/pkg/messages"
	"github.com/cbodonnell/arena/pkg/network"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8888", "TCP address of the server")
	name := flag.String("name", "", "Player name")
	role := flag.String("role", messages.RolePlayer, "player or viewer")
	quiet := flag.Bool("quiet", false, "Do not print game updates")
	flag.Parse()

	if *name == "" {
		fmt.Println("A -name is required")
		os.Exit(2)
	}

	netConn, err := net.Dial("tcp", *addr)
	if err != nil {
		fmt.Println("Error connecting to TCP server:", err)
		os.Exit(1)
	}
	conn := network.NewTCPConn(netConn)
	defer conn.Close()

	login, err := messages.NewMessage(messages.MessageTypeLogin, &messages.Login{Name: *name, Role: *role})
	if err != nil {
		fmt.Println("Error building login:", err)
		os.Exit(1)
	}
	if err := conn.WriteMessage(login); err != nil {
		fmt.Println("Error sending login:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		defer cancel()
		for {
			msg, err := conn.ReadMessage()
			if err != nil {
				if !network.IsConnectionClosed(err) {
					fmt.Println("Error reading from server:", err)
				}
				fmt.Println("Server disconnected.")
				return
			}
			if *quiet && msg.Type == messages.MessageTypeServerGameUpdate {
				continue
			}
			fmt.Println(client.Describe(msg))
			if msg.Type == messages.MessageTypeLoginFailure || msg.Type == messages.MessageTypeClosed {
				return
			}
		}
	}()

	go func() {
		fmt.Println(client.Usage)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			msg, err := client.ParseCommand(scanner.Text())
			if err != nil && !errors.Is(err, client.ErrQuit) {
				fmt.Println(err)
				continue
			}
			if werr := conn.WriteMessage(msg); werr != nil {
				fmt.Println("Error sending message:", werr)
				cancel()
				return
			}
			if errors.Is(err, client.ErrQuit) {
				cancel()
				return
			}
		}
	}()

	stopSignal := make(chan os.Signal, 1)
	signal.Notify(stopSignal, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stopSignal:
		fmt.Println("Received stop signal, exiting.")
	case <-ctx.Done():
	}
}
