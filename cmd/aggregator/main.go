package main

import (
	"context"
	"flag"
	"log"
	"strings"
	"time"

	"jobdeck/internal/app"
	"jobdeck/internal/config"
	"jobdeck/internal/database/migration"
	"jobdeck/internal/domain/settings"
)

// One aggregation pass from the command line, useful for cron and for
// backfilling a fresh database without starting the API server.
func main() {
	query := flag.String("query", "", "job title or keyword to search for")
	location := flag.String("location", "", "location filter")
	boards := flag.String("boards", "", "comma-separated board names, empty means all")
	remote := flag.Bool("remote", false, "only remote postings")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall run timeout")
	flag.Parse()

	q := strings.TrimSpace(*query)
	if q == "" {
		log.Fatalf("provide -query")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	r := migration.Runner{Dir: "migrations"}
	if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	st := settings.SearchSettings{Titles: []string{q}, RemoteOnly: *remote}
	if loc := strings.TrimSpace(*location); loc != "" {
		st.Locations = []string{loc}
	}
	for _, b := range strings.Split(*boards, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			st.Boards = append(st.Boards, b)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	summary, err := c.Aggregator.Run(ctx, st)
	if err != nil {
		log.Fatalf("aggregation failed: %v", err)
	}

	for _, res := range summary.Boards {
		if res.Err != nil {
			log.Printf("board=%s error=%v", res.Board, res.Err)
			continue
		}
		log.Printf("board=%s inserted=%d", res.Board, res.Count)
	}
	for _, skipped := range summary.Skipped {
		log.Printf("board=%s skipped", skipped)
	}
	log.Printf("query=%q total=%d", summary.Query, summary.Total)
}
