package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"elevatordispatch/config"
	"elevatordispatch/dispatch"
	"elevatordispatch/netmon"
	"elevatordispatch/system"
)

func main() {
	configPath := flag.String("config", "dispatch_config.yaml", "path to the settings file")
	elevators := flag.Int("elevators", 0, "fleet size, overrides the settings file")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading settings: %v", err)
	}
	if *elevators > 0 {
		settings.Elevators = *elevators
	}

	sys := system.New(settings.Elevators)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sys.Run(ctx, settings.StepPeriod())

	if settings.Broadcast {
		go netmon.Run(ctx, sys, netmon.Config{
			NodeID:     settings.NodeID,
			StatusPort: settings.StatusPort,
			PeerPort:   settings.PeerPort,
			Interval:   settings.BroadcastInterval(),
		})
	}

	fmt.Printf("dispatch simulation: %d elevators, one step every %v\n",
		settings.Elevators, settings.StepPeriod())
	fmt.Println("commands: pickup <from> <to> | status | backlog | quit")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "pickup":
			from, to, err := parsePickup(fields)
			if err != nil {
				fmt.Println(err)
				continue
			}
			if err := sys.Submit(dispatch.Request{From: from, To: to}); err != nil {
				fmt.Println("rejected:", err)
			}
		case "status":
			for i, e := range sys.Query() {
				fmt.Printf("elevator %d: %v\n", i, e)
			}
		case "backlog":
			fmt.Println(sys.Backlog())
		case "quit", "exit":
			return
		default:
			fmt.Println("commands: pickup <from> <to> | status | backlog | quit")
		}
	}
}

func parsePickup(fields []string) (from, to int, err error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("usage: pickup <from> <to>")
	}
	from, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("usage: pickup <from> <to>")
	}
	to, err = strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("usage: pickup <from> <to>")
	}
	if from < 0 || to < 0 {
		return 0, 0, fmt.Errorf("floors are non-negative")
	}
	return from, to, nil
}
