// Package netmon broadcasts fleet status over UDP so external monitors
// can watch a running simulation, and announces this node on the peer
// port. The simulation core never depends on it; it only reads
// snapshots.
package netmon

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/angrycompany16/Network-go/network/bcast"
	"github.com/angrycompany16/Network-go/network/localip"
	"github.com/angrycompany16/Network-go/network/peers"

	"elevatordispatch/elevator"
)

// Status is one fleet snapshot on the wire.
type Status struct {
	NodeID    string
	Seq       int
	Elevators []elevator.Elevator
	Backlog   int
}

// Source is anything that can be observed: a fleet snapshot plus the
// current request backlog.
type Source interface {
	Query() []elevator.Elevator
	Backlog() int
}

// Config carries the broadcast parameters.
type Config struct {
	NodeID     string
	StatusPort int
	PeerPort   int
	Interval   time.Duration
}

// Run transmits a Status every interval and logs peer arrivals and
// losses until ctx is cancelled.
func Run(ctx context.Context, src Source, cfg Config) {
	logger := log.New(os.Stderr, "[netmon] ", log.LstdFlags)

	id := cfg.NodeID
	if id == "" {
		ip, err := localip.LocalIP()
		if err != nil {
			ip = "DISCONNECTED"
		}
		id = fmt.Sprintf("dispatch-%s-%d", ip, os.Getpid())
	}

	statusTX := make(chan Status)
	peerTXEnable := make(chan bool)
	peerRX := make(chan peers.PeerUpdate)
	go bcast.Transmitter(cfg.StatusPort, statusTX)
	go peers.Transmitter(cfg.PeerPort, id, peerTXEnable)
	go peers.Receiver(cfg.PeerPort, peerRX)

	logger.Printf("broadcasting as %s on port %d every %v", id, cfg.StatusPort, cfg.Interval)

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()
	seq := 0
	for {
		select {
		case <-ctx.Done():
			return
		case p := <-peerRX:
			logger.Printf("peers: %q, new: %q, lost: %q", p.Peers, p.New, p.Lost)
		case <-ticker.C:
			seq++
			status := Status{
				NodeID:    id,
				Seq:       seq,
				Elevators: src.Query(),
				Backlog:   src.Backlog(),
			}
			select {
			case statusTX <- status:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Listen decodes Status broadcasts from port onto out until ctx is
// cancelled. Intended for external monitor processes.
func Listen(ctx context.Context, port int, out chan<- Status) {
	rx := make(chan Status)
	go bcast.Receiver(port, rx)
	for {
		select {
		case <-ctx.Done():
			return
		case status := <-rx:
			select {
			case out <- status:
			case <-ctx.Done():
				return
			}
		}
	}
}
