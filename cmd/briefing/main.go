// Command briefing fetches the configured news feeds, filters and ranks
// the entries, and emails the result as a daily digest.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/abelbrown/briefing/internal/config"
	"github.com/abelbrown/briefing/internal/coord"
	"github.com/abelbrown/briefing/internal/digest"
	"github.com/abelbrown/briefing/internal/feed"
	"github.com/abelbrown/briefing/internal/fetch"
	"github.com/abelbrown/briefing/internal/logging"
	"github.com/abelbrown/briefing/internal/mailer"
	"github.com/abelbrown/briefing/internal/render"
)

const requestTimeout = 20 * time.Second

func main() {
	configPath := flag.String("config", "", "path to the config file (default config.yaml, or $CONFIG_PATH)")
	dryRun := flag.Bool("dry-run", false, "build the digest and print the HTML instead of sending it")
	flag.Parse()

	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load()

	path := config.Resolve(*configPath, os.Getenv("CONFIG_PATH"), "config.yaml")
	cfg, err := config.Load(path)
	if err != nil {
		logging.Fatal("could not load config", "path", path, "error", err)
	}

	// Resolve delivery settings up front so a missing credential fails
	// before any network work happens.
	var smtp config.SMTP
	if !*dryRun {
		smtp, err = cfg.SMTP()
		if err != nil {
			logging.Fatal("could not resolve delivery settings", "error", err)
		}
	}

	sectors := make([]feed.Sector, 0, len(cfg.Sectors))
	for _, s := range cfg.Sectors {
		sectors = append(sectors, feed.Sector{Name: s.Name, Queries: s.Queries})
	}
	plan := feed.BuildPlan(cfg.Regions, sectors, cfg.Queries)
	if len(plan) == 0 {
		logging.Fatal("config produced no feeds to fetch")
	}
	logging.Info("starting digest run",
		"feeds", len(plan), "regions", len(cfg.Regions), "sectors", len(sectors))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := coord.New(fetch.NewFetcher(requestTimeout), plan, coord.Options{
		Window:   time.Duration(cfg.DaysWindow) * 24 * time.Hour,
		Includes: cfg.KeywordsInclude,
		Excludes: cfg.KeywordsExclude,
		MaxItems: cfg.MaxItems,
	})
	items := c.Run(ctx)
	logging.Info("digest assembled", "items", len(items))

	d := digest.Digest{
		GeneratedAt: time.Now().UTC(),
		Items:       items,
		GroupBy:     cfg.GroupBy,
		Title:       cfg.Subject,
	}
	text, html, err := render.Email(d)
	if err != nil {
		logging.Fatal("could not render digest", "error", err)
	}

	if *dryRun {
		fmt.Println(html)
		return
	}

	subject := fmt.Sprintf("%s - %s", cfg.Subject, d.GeneratedAt.Format("2006-01-02"))
	if err := mailer.New(smtp).Send(ctx, subject, text, html); err != nil {
		logging.Fatal("could not send digest", "error", err)
	}
	logging.Info("digest sent", "to", smtp.To, "items", len(items))
}
