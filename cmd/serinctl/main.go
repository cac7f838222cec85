package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	serin "github.com/SeleniaProject/serin-go"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// CLI flags
var (
	dsn        string
	timeout    time.Duration
	requireTLS bool
	verbosity  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "serinctl",
		Short: "Serinctl - SerinDB command line client",
		Long:  `Serinctl is a command line client for SerinDB, for connectivity checks and ad-hoc statements.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbosity)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&dsn, "dsn", "d", "", "SerinDB connection string (required, or set SERIN_DSN env var)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Timeout for the whole operation, including connect")
	rootCmd.PersistentFlags().BoolVar(&requireTLS, "require-tls", false, "Reject connection strings that permit plaintext")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v debug, -vv trace)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "ping",
		Short: "Verify connectivity to the server",
		RunE:  runPing,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "query <sql>",
		Short: "Run a query and print the result rows",
		Args:  cobra.ExactArgs(1),
		RunE:  runQuery,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "exec <sql>",
		Short: "Run a statement and print its command tag",
		Args:  cobra.ExactArgs(1),
		RunE:  runExec,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("serinctl %s (commit: %s, built: %s)\n", version, commit, date)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func connect(ctx context.Context) (*serin.Conn, error) {
	// Check for SERIN_DSN env var if flag not set
	if dsn == "" {
		dsn = os.Getenv("SERIN_DSN")
	}
	if dsn == "" {
		return nil, fmt.Errorf("--dsn flag or SERIN_DSN environment variable is required")
	}

	conn, err := serin.ConnectConfig(ctx, serin.Config{
		ConnectionString: dsn,
		RequireTLS:       requireTLS,
		ConnectTimeout:   timeout,
		RuntimeParams:    map[string]string{"application_name": "serinctl"},
	})
	if err != nil {
		return nil, err
	}

	log.Debug().Dur("timeout", timeout).Msg("Connected to SerinDB")
	return conn, nil
}

func runPing(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	conn, err := connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	start := time.Now()
	status, err := serin.HealthCheck(ctx, conn)
	if err != nil {
		return err
	}

	log.Info().
		Str("status", status.Status).
		Str("database", status.Database).
		Dur("rtt", time.Since(start)).
		Msg("Server is reachable")
	return nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	conn, err := connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, args[0])
	if err != nil {
		return err
	}
	defer rows.Close()

	fds := rows.FieldDescriptions()
	header := make([]string, len(fds))
	for i, fd := range fds {
		header[i] = fd.Name
	}
	fmt.Println(strings.Join(header, "\t"))

	var count int
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return err
		}
		cells := make([]string, len(vals))
		for i, v := range vals {
			cells[i] = fmt.Sprint(v)
		}
		fmt.Println(strings.Join(cells, "\t"))
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	log.Debug().Int("rows", count).Msg("Query complete")
	return nil
}

func runExec(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	conn, err := connect(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	tag, err := conn.Exec(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Println(tag.String())
	return nil
}

func setupLogging(verbosity int) {
	// Pretty console output
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}

	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default: // 2+
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}
