package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedSampleData loads a small demo data set: three maintenance teams, a
// handful of machines and a few requests in assorted states. Skips itself
// if any team already exists.
func SeedSampleData(ctx context.Context, db *pgxpool.Pool) error {
	var teamCount int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM teams").Scan(&teamCount); err != nil {
		return fmt.Errorf("count teams: %w", err)
	}
	if teamCount > 0 {
		log.Println("sample data already present, skipping")
		return nil
	}

	teams := []string{"Mechanics", "Electrical", "IT Support"}
	teamIDs := make(map[string]uint64, len(teams))
	for _, name := range teams {
		var id uint64
		if err := db.QueryRow(ctx, "INSERT INTO teams (name) VALUES ($1) RETURNING id", name).Scan(&id); err != nil {
			return fmt.Errorf("seed team %q: %w", name, err)
		}
		teamIDs[name] = id
	}

	equipment := []struct {
		name, category, location, team string
	}{
		{"CNC Lathe #2", "Machining", "Shop Floor A", "Mechanics"},
		{"Conveyor Belt 4", "Transport", "Shop Floor B", "Mechanics"},
		{"Main Compressor", "Pneumatics", "Utility Room", "Electrical"},
		{"Office Printer", "Office", "2nd Floor", "IT Support"},
	}
	equipmentIDs := make(map[string]uint64, len(equipment))
	for _, e := range equipment {
		var id uint64
		err := db.QueryRow(ctx, `
			INSERT INTO equipment (name, category, location, maintenance_team_id)
			VALUES ($1, $2, $3, $4) RETURNING id
		`, e.name, e.category, e.location, teamIDs[e.team]).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed equipment %q: %w", e.name, err)
		}
		equipmentIDs[e.name] = id
	}

	requests := []struct {
		equipment, reqType, status, title string
	}{
		{"CNC Lathe #2", "corrective", "new", "Spindle vibration above tolerance"},
		{"Conveyor Belt 4", "corrective", "in_progress", "Belt slipping under load"},
		{"Main Compressor", "preventive", "new", "Quarterly filter replacement"},
		{"Office Printer", "corrective", "repaired", "Paper feed jams"},
	}
	for _, r := range requests {
		_, err := db.Exec(ctx, `
			INSERT INTO requests (equipment_id, user_id, type, status, title)
			VALUES ($1, 1, $2, $3, $4)
		`, equipmentIDs[r.equipment], r.reqType, r.status, r.title)
		if err != nil {
			return fmt.Errorf("seed request %q: %w", r.title, err)
		}
	}

	log.Println("sample data seeded")
	return nil
}
