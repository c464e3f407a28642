package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"flag"
	mrand "math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Shake-N-Baker/ADyingWorld/internal/config"
	"github.com/Shake-N-Baker/ADyingWorld/internal/game"
	"github.com/Shake-N-Baker/ADyingWorld/internal/logger"
	"github.com/Shake-N-Baker/ADyingWorld/internal/server"
	"github.com/Shake-N-Baker/ADyingWorld/internal/world"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults apply when empty)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("Config error: %v", err)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid config: %v", err)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	// Generate host key if it doesn't exist
	if err := ensureHostKey(cfg.Server.HostKey, log); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	start := time.Now()
	w, err := world.New(cfg.WorldConfig(), mrand.New(mrand.NewSource(seed)))
	if err != nil {
		log.Fatalf("World generation failed: %v", err)
	}
	sx, sy := w.Spawn()
	log.WithFields(logrus.Fields{
		"seed":    seed,
		"size":    []int{w.Width(), w.Height()},
		"zones":   len(w.Zones()),
		"spawn":   []int{sx, sy},
		"elapsed": time.Since(start).Round(time.Millisecond).String(),
	}).Info("world generated")

	opts := game.Options{
		TickRate:          cfg.Game.TickRateHz,
		TurnsPerDay:       cfg.Game.TurnsPerDay,
		TurnInterval:      cfg.Game.TurnIntervalSec,
		AnimationInterval: cfg.Game.AnimationIntervalSec,
		Villagers:         cfg.Game.Villagers,
	}
	gameLoop := game.NewGameLoop(w, opts, mrand.New(mrand.NewSource(seed+1)), log.WithField("component", "loop"))

	// Start game loop in background
	go gameLoop.Run()
	defer gameLoop.Stop()

	// Start SSH server (blocks)
	sshServer := server.NewSSHServer(cfg.Server.Addr, cfg.Server.HostKey, gameLoop, log.WithField("component", "ssh"))
	log.Infof("Starting A Dying World, connect with: ssh -t -p <port> YourName@localhost (listening on %s)", cfg.Server.Addr)
	if err := sshServer.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

func ensureHostKey(path string, log logrus.FieldLogger) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	log.WithField("path", path).Info("generating new host key")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	pemBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, pemBlock)
}
