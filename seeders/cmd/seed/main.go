package main

import (
	"context"
	"flag"
	"log"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/migrations"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/config"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/database/postgresql"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/seeders"
)

func main() {
	runDemo := flag.Bool("demo-user", false, "ensure the fixed demo user (id 1) exists")
	runSample := flag.Bool("sample", false, "load the sample teams, equipment and requests")
	runAll := flag.Bool("all", false, "run every seeder")
	flag.Parse()

	if !*runDemo && !*runSample && !*runAll {
		log.Println("no seeder selected")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	if err := postgresql.RunMigrations(cfg.Postgres.DSN, migrations.FS); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	db := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer db.Close()

	ctx := context.Background()
	if *runAll || *runDemo {
		if err := seeders.EnsureDemoUser(ctx, db); err != nil {
			log.Fatalf("demo user seeder failed: %v", err)
		}
	}
	if *runAll || *runSample {
		if err := seeders.SeedSampleData(ctx, db); err != nil {
			log.Fatalf("sample data seeder failed: %v", err)
		}
	}
	log.Println("seeding complete")
}
