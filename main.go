package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"food-orders/bot"
	"food-orders/config"
	"food-orders/data"
	"food-orders/db"
	"food-orders/models"
	"food-orders/services"
)

// database is what the report needs from Postgres; *pgxpool.Pool satisfies it.
type database interface {
	services.Querier
	execer
}

// connectFunc opens the database and returns it with its close function.
type connectFunc func(ctx context.Context, cfg config.DBConfig) (database, func(), error)

// reportSink receives a copy of the report; Flush delivers it.
type reportSink interface {
	io.Writer
	Flush() error
}

type senderFunc func(cfg config.TelegramConfig) (reportSink, error)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		runMigrate(cfg)
		return
	}

	if err := run(context.Background(), cfg, os.Stdout, connectPostgres, newTelegramSender); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run prints the report for the configured bracket to out and, when Telegram is
// enabled, sends a copy through newSender.
func run(ctx context.Context, cfg *config.Config, out io.Writer, connect connectFunc, newSender senderFunc) error {
	bracket, err := models.ParseBracket(cfg.Report.Bracket)
	if err != nil {
		return fmt.Errorf("bracket: %w", err)
	}

	restaurants, err := loadRestaurants(ctx, cfg, connect)
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}

	filtered, err := services.FilterOrders(bracket, restaurants)
	if err != nil {
		return fmt.Errorf("filter: %w", err)
	}
	if err := services.PrintOrders(out, bracket, filtered); err != nil {
		return fmt.Errorf("print: %w", err)
	}

	if cfg.Telegram.Enabled() {
		sendReport(cfg.Telegram, newSender, bracket, filtered)
	}
	return nil
}

func loadRestaurants(ctx context.Context, cfg *config.Config, connect connectFunc) ([]models.Restaurant, error) {
	if cfg.Report.Source != config.SourcePostgres {
		return data.Restaurants(), nil
	}
	conn, closeDB, err := connect(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}
	defer closeDB()

	if cfg.DB.AutoMigrate {
		if err := applyMigrations(ctx, conn, false); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return services.LoadRestaurants(ctx, conn)
}

// sendReport delivers a copy of the report. Failures are logged only.
func sendReport(cfg config.TelegramConfig, newSender senderFunc, bracket models.PriceBracket, restaurants []models.Restaurant) {
	sender, err := newSender(cfg)
	if err != nil {
		log.Printf("telegram report: init: %v", err)
		return
	}
	if err := services.PrintOrders(sender, bracket, restaurants); err != nil {
		log.Printf("telegram report: render: %v", err)
		return
	}
	if err := sender.Flush(); err != nil {
		log.Printf("telegram report: chat_id=%d: %v", cfg.ReportChatID, err)
		return
	}
	log.Printf("telegram report sent: chat_id=%d bracket=%s restaurants=%d", cfg.ReportChatID, bracket, len(restaurants))
}

func connectPostgres(ctx context.Context, cfg config.DBConfig) (database, func(), error) {
	if err := db.Init(ctx, cfg); err != nil {
		return nil, nil, err
	}
	return db.Pool, db.Close, nil
}

func newTelegramSender(cfg config.TelegramConfig) (reportSink, error) {
	s, err := bot.NewReportSender(cfg)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func runMigrate(cfg *config.Config) {
	ctx := context.Background()
	if err := db.Init(ctx, cfg.DB); err != nil {
		fmt.Fprintln(os.Stderr, "db:", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := applyMigrations(ctx, db.Pool, true); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}
