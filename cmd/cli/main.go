package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/splita/splita-api/config"
	"github.com/splita/splita-api/domain/signup"
	"github.com/splita/splita-api/internal/log"
	"github.com/splita/splita-api/pkg/migrations"
	"github.com/splita/splita-api/pkg/utils"
	"gorm.io/gorm"
)

func main() {
	logger := log.NewLoggerWithJSONOutput()

	config.InitializeEnvFile(logger) // Load envs early for CLI consistency

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "migrate":
		runMigrations(logger)
		return

	case "submissions":
		db := mustOpenDatabase(logger)
		defer config.CloseDatabase(db, logger)
		showSubmissions(db)
		return

	case "clear":
		db := mustOpenDatabase(logger)
		defer config.CloseDatabase(db, logger)
		clearSubmissions(logger, db)
		return

	case "help", "-h", "--help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func mustOpenDatabase(logger *log.Logger) *gorm.DB {
	db, err := config.NewDatabase(logger, &config.DBConfig{})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err.Error())
		os.Exit(1)
	}
	return db
}

func runMigrations(logger *log.Logger) {
	db := mustOpenDatabase(logger)

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get SQL DB instance for migration", "error", err.Error())
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("Failed to close SQL DB after migration", "error", err.Error())
		}
	}()

	migrationsDir := utils.GetEnvTrimmedOrDefault("MIGRATIONS_DIR", "migrations")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := migrations.Up(ctx, sqlDB, migrations.Config{Dir: migrationsDir, Logger: logger}); err != nil {
		logger.Error("Database migration failed", "error", err.Error())
		os.Exit(1)
	}

	logger.Info("Database migrations completed")
}

func showSubmissions(db *gorm.DB) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := signup.NewSignupRepository(db)

	waitlist, err := repo.ListWaitlist(ctx, 0, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list waitlist entries: %v\n", err)
		os.Exit(1)
	}

	vendors, err := repo.ListVendors(ctx, 0, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list vendor entries: %v\n", err)
		os.Exit(1)
	}

	domains, err := repo.CountDistinctDomains(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to count email domains: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Waitlist (%d):\n", len(waitlist))
	for _, entry := range waitlist {
		vibe := entry.Vibe
		if vibe == "" {
			vibe = "-"
		}
		fmt.Printf("  %-40s %-12s %-16s %s\n", entry.Email, entry.UserType, vibe, entry.SubmittedAt)
	}

	fmt.Printf("\nVendors (%d):\n", len(vendors))
	for _, entry := range vendors {
		fmt.Printf("  %-40s %s\n", entry.Email, entry.SubmittedAt)
	}

	fmt.Printf("\nDistinct email domains: %d\n", domains)
}

func clearSubmissions(logger *log.Logger, db *gorm.DB) {
	fmt.Print("This permanently deletes ALL waitlist and vendor submissions. Type 'yes' to continue: ")

	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	if strings.TrimSpace(answer) != "yes" {
		fmt.Println("Aborted.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := signup.NewSignupRepository(db).ClearAll(ctx); err != nil {
		logger.Error("Failed to clear submissions", "error", err.Error())
		os.Exit(1)
	}

	fmt.Println("All submissions deleted.")
}

func printUsage() {
	fmt.Println("Usage: cli <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  migrate      Run database migrations and exit")
	fmt.Println("  submissions  Print all stored waitlist and vendor submissions")
	fmt.Println("  clear        Delete all stored submissions (asks for confirmation)")
}
