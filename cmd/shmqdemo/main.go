// Command shmqdemo stands in for the external party that maps a shared
// region and hands it to the host core: it creates a backing file, maps it
// with mmap-go, then drives a small Init/AddQueue/Post/Process loop
// against it.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/edsrzf/mmap-go"

	"github.com/ashgrove/shmq"
)

const regionSize = 1 << 20 // 1MB backing region

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	path := os.Getenv("SHMQ_DEMO_PATH")
	if path == "" {
		path = "/tmp/shmq-demo"
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0664)
	if err != nil {
		return fmt.Errorf("open backing file: %w", err)
	}
	defer f.Close()

	if err := f.Truncate(regionSize); err != nil {
		return fmt.Errorf("resize backing file: %w", err)
	}

	mem, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return fmt.Errorf("mmap backing file: %w", err)
	}
	defer mem.Unmap()

	host, err := shmq.Init(mem, shmq.SystemClock(), shmq.DefaultSessionRand())
	if err != nil {
		return fmt.Errorf("init host: %w", err)
	}
	defer host.Free()

	queue, err := host.AddQueue(1, 64)
	if err != nil {
		return fmt.Errorf("add queue: %w", err)
	}

	payload, err := host.MemAlloc(256)
	if err != nil {
		return fmt.Errorf("alloc payload: %w", err)
	}

	fmt.Printf("session=%d queue=%d capacity=%d\n", host.SessionID(), queue.QueueID(), queue.NumMessages()-1)

	ticker := time.NewTicker(5 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; i < 20; i++ {
		status, err := host.Post(queue, uint32(i), payload)
		if err != nil {
			return fmt.Errorf("post: %w", err)
		}
		if status == shmq.StatusQueueFull {
			fmt.Println("queue full, waiting for process to drain")
		}
		<-ticker.C
		if _, err := host.Process(); err != nil {
			return fmt.Errorf("process: %w", err)
		}
		fmt.Printf("heartbeat=%d count=%d\n", host.Heartbeat(), queue.Count())
	}

	return nil
}
