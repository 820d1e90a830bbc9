package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"mantatail/irc"
)

var (
	listenAddr   = flag.String("serve", ":6667", "address to listen on for IRC connections")
	serverName   = flag.String("name", "mantatail", "server name sent to clients")
	motdPath     = flag.String("motd", "./resources/motd.json", "path to a JSON file with a top-level \"motd\" array of lines")
	pingInterval = flag.Duration("ping-interval", 300*time.Second, "idle time before a client is sent a liveness PING")
	pongGrace    = flag.Duration("pong-grace", 5*time.Second, "time allowed for a PONG response before disconnecting")
	rateLimit    = flag.Float64("rate-limit", 0, "max lines per second accepted per connection (0 disables flood control)")
	rateBurst    = flag.Int("rate-burst", 5, "burst size for -rate-limit")
)

func main() {
	flag.Parse()

	registry := irc.NewRegistry(*serverName)
	registry.MOTDLines = loadMOTD(*motdPath)

	server := irc.NewServer(registry)
	server.PingInterval = *pingInterval
	server.PongGrace = *pongGrace
	server.RateLimit = *rateLimit
	server.RateBurst = *rateBurst

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		s := <-sig
		log.Printf("received %s, shutting down", s)
		os.Exit(0)
	}()

	if err := server.ListenAndServe(*listenAddr); err != nil {
		log.Fatal(err)
	}
}

// loadMOTD reads the "motd" array out of a JSON file, matching
// original_source/server.py's get_motd_content_from_json. A missing file
// returns nil, which Registry treats as "no MOTD loaded" (ERR_NOMOTD).
func loadMOTD(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var doc struct {
		MOTD []string `json:"motd"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("could not parse motd file %s: %v", path, err)
		return nil
	}
	return doc.MOTD
}
