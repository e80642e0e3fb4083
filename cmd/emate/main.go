package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/emateapp/emate/internal/config"
	"github.com/emateapp/emate/internal/model"
	"github.com/emateapp/emate/internal/repository"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var verbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "emate",
	Short: "emate is the operations CLI for the eMate backend",
	Long:  `emate manages the eMate backend database: schema migration and seed data for prompt templates and tags.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Create or update all tables, indexes and constraints used by the API server.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDatabase()

		// Extensions and enums first; AutoMigrate cannot create these.
		statements := []string{
			`CREATE EXTENSION IF NOT EXISTS citext`,
			`DO $$ BEGIN
				CREATE TYPE user_role AS ENUM ('admin', 'manager', 'engineer');
			EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
			`DO $$ BEGIN
				CREATE TYPE subscription_status AS ENUM ('active', 'pending', 'inactive', 'cancelled');
			EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
			`DO $$ BEGIN
				CREATE TYPE project_status AS ENUM ('planning', 'in_progress', 'completed', 'pending_review', 'on_hold');
			EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
			`DO $$ BEGIN
				CREATE TYPE report_status AS ENUM ('draft', 'submitted', 'approved', 'rejected', 'published');
			EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
		}
		for _, stmt := range statements {
			if err := db.Exec(stmt).Error; err != nil {
				log.Fatalf("Failed to prepare schema: %v", err)
			}
		}

		err := db.AutoMigrate(
			&model.User{},
			&model.Organization{},
			&model.OrganizationUser{},
			&model.Project{},
			&model.ProjectMilestone{},
			&model.ProjectOutcome{},
			&model.Referee{},
			&model.RefereeProject{},
			&model.Report{},
			&model.ReportHistory{},
			&model.ReportFeedback{},
			&model.Tag{},
			&model.AIPromptTemplate{},
		)
		if err != nil {
			log.Fatalf("Failed to migrate schema: %v", err)
		}

		fmt.Println("Schema migrated successfully")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed prompt templates and tags",
	Long:  `Insert or update the built-in AI prompt templates and the default report tags. Safe to run repeatedly.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDatabase()
		prompts := repository.NewPromptRepository(db)

		ctx := cmd.Context()
		for _, tmpl := range seedTemplates {
			t := tmpl
			if err := prompts.Upsert(ctx, &t); err != nil {
				log.Fatalf("Failed to seed template %q: %v", t.Name, err)
			}
			if verbose {
				fmt.Printf("seeded template %s\n", t.Name)
			}
		}

		for _, name := range seedTags {
			tag := model.Tag{Name: name}
			err := db.WithContext(ctx).
				Where(model.Tag{Name: name}).
				FirstOrCreate(&tag).Error
			if err != nil {
				log.Fatalf("Failed to seed tag %q: %v", name, err)
			}
			if verbose {
				fmt.Printf("seeded tag %s\n", name)
			}
		}

		fmt.Printf("Seeded %d templates and %d tags\n", len(seedTemplates), len(seedTags))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("emate v0.1.0")
	},
}

func mustOpenDatabase() *gorm.DB {
	cfg := config.Load()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	logLevel := logger.Warn
	if verbose {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
