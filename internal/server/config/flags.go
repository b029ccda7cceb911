package config

import (
	"flag"
	"os"
	"time"

	"github.com/avoronov/itemkeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-w int      task queue worker count
//	-q int      task queue capacity
//	-i int      automatic full sync interval, minutes (0 disables)
//	-b int      bulk sync batch size
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - The sync interval flag is accepted as an integer in minutes and then
//     converted to a time.Duration value.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-w", "-q", "-i", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.WorkerCount, "w", config.WorkerCount, "task queue worker count")
	fs.IntVar(&config.QueueCapacity, "q", config.QueueCapacity, "task queue capacity")

	syncInterval := fs.Int("i", int(config.SyncInterval.Minutes()), "full sync interval (in minutes, 0 disables)")

	fs.IntVar(&config.SyncBatchSize, "b", config.SyncBatchSize, "bulk sync batch size")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SyncInterval = time.Duration(*syncInterval) * time.Minute
}
