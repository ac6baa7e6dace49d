package repositories

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/dto"
	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/entities"
	apperrors "github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/pkg/errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPool *pgxpool.Pool

// TestMain connects to the database named by TEST_DATABASE_URL and applies
// the schema. Without the variable every test in this file skips.
func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn != "" {
		var err error
		testPool, err = pgxpool.New(context.Background(), dsn)
		if err != nil {
			log.Fatalf("failed to connect to test database: %v", err)
		}
		defer testPool.Close()
		applySchema(testPool)
	}
	os.Exit(m.Run())
}

func applySchema(pool *pgxpool.Pool) {
	path, _ := filepath.Abs("../../testdata/schema.sql")
	schema, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read schema.sql: %v", err)
	}
	if _, err := pool.Exec(context.Background(), string(schema)); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}
}

func requireDB(t *testing.T) {
	t.Helper()
	if testPool == nil {
		t.Skip("TEST_DATABASE_URL is not set")
	}
}

func cleanupTables(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE requests, equipment, users, teams RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func seedFixtures(t *testing.T) (teamID, userID, equipmentID uint64) {
	t.Helper()
	ctx := context.Background()

	err := testPool.QueryRow(ctx, `INSERT INTO teams (name) VALUES ('Mechanics') RETURNING id`).Scan(&teamID)
	require.NoError(t, err)

	err = testPool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, name, role, team_id)
		VALUES ('tech@example.com', 'x', 'Tech', 'technician', $1) RETURNING id
	`, teamID).Scan(&userID)
	require.NoError(t, err)

	err = testPool.QueryRow(ctx, `
		INSERT INTO equipment (name, category, maintenance_team_id)
		VALUES ('CNC Lathe', 'Machining', $1) RETURNING id
	`, teamID).Scan(&equipmentID)
	require.NoError(t, err)
	return
}

func TestCreateAndFindRequest(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	teamID, userID, equipmentID := seedFixtures(t)

	repo := NewRequestRepository(testPool)
	scheduled := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	start := "08:30"

	created, err := repo.CreateRequest(context.Background(), &entities.Request{
		EquipmentID:   equipmentID,
		TeamID:        &teamID,
		UserID:        &userID,
		Type:          "preventive",
		Status:        "new",
		Title:         "Quarterly lubrication",
		ScheduledDate: &scheduled,
		StartTime:     &start,
		DurationHours: 2.5,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Quarterly lubrication", created.Title)
	assert.Equal(t, 2.5, created.DurationHours)
	require.NotNil(t, created.EquipmentName)
	assert.Equal(t, "CNC Lathe", *created.EquipmentName)
	require.NotNil(t, created.ScheduledDate)
	assert.Equal(t, "2026-09-14", created.ScheduledDate.Format("2006-01-02"))
	require.NotNil(t, created.StartTime)
	assert.Equal(t, "08:30:00", *created.StartTime)

	found, err := repo.FindRequest(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindRequest(context.Background(), 9999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateRequestStatusBumpsUpdatedAt(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	_, userID, equipmentID := seedFixtures(t)

	repo := NewRequestRepository(testPool)
	created, err := repo.CreateRequest(context.Background(), &entities.Request{
		EquipmentID: equipmentID, UserID: &userID, Type: "corrective", Status: "new",
		Title: "Belt slipping", DurationHours: 1,
	})
	require.NoError(t, err)

	updated, err := repo.UpdateRequestStatus(context.Background(), created.ID, "in_progress")
	require.NoError(t, err)
	assert.Equal(t, "in_progress", updated.Status)
	assert.True(t, !updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestGetRequestsFilters(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	_, userID, equipmentID := seedFixtures(t)

	repo := NewRequestRepository(testPool)
	ctx := context.Background()

	for _, tc := range []struct {
		reqType, title string
	}{
		{"corrective", "Noise"},
		{"corrective", "Leak"},
		{"preventive", "Inspection"},
	} {
		_, err := repo.CreateRequest(ctx, &entities.Request{
			EquipmentID: equipmentID, UserID: &userID,
			Type: tc.reqType, Status: "new", Title: tc.title, DurationHours: 1,
		})
		require.NoError(t, err)
	}

	all, err := repo.GetRequests(ctx, dto.RequestFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	var leakID uint64
	for _, r := range all {
		if r.Title == "Leak" {
			leakID = r.ID
		}
	}
	_, err = repo.UpdateRequestStatus(ctx, leakID, "in_progress")
	require.NoError(t, err)

	byStatus, err := repo.GetRequests(ctx, dto.RequestFilter{Status: "in_progress"})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Leak", byStatus[0].Title)

	byType, err := repo.GetRequests(ctx, dto.RequestFilter{Type: "preventive"})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "Inspection", byType[0].Title)
}

func TestGetStatsCounts(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	_, userID, equipmentID := seedFixtures(t)

	repo := NewRequestRepository(testPool)
	ctx := context.Background()

	for _, tc := range []struct{ reqType, title string }{
		{"corrective", "A"}, {"corrective", "B"}, {"preventive", "C"},
	} {
		_, err := repo.CreateRequest(ctx, &entities.Request{
			EquipmentID: equipmentID, UserID: &userID,
			Type: tc.reqType, Status: "new", Title: tc.title, DurationHours: 1,
		})
		require.NoError(t, err)
	}

	stats, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalCount)
	assert.Equal(t, int64(3), stats.NewCount)
	assert.Equal(t, int64(2), stats.CorrectiveCount)
	assert.Equal(t, int64(1), stats.PreventiveCount)
	assert.Equal(t, stats.TotalCount,
		stats.NewCount+stats.InProgressCount+stats.RepairedCount+stats.ScrapCount)
	assert.Equal(t, stats.TotalCount, stats.CorrectiveCount+stats.PreventiveCount)
}

func TestCalendarRangeAndOrdering(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	_, userID, equipmentID := seedFixtures(t)

	repo := NewRequestRepository(testPool)
	ctx := context.Background()

	dates := map[string]string{
		"Late":       "2026-09-20",
		"Early":      "2026-09-10",
		"OutOfRange": "2026-10-05",
	}
	for title, d := range dates {
		day, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		_, err = repo.CreateRequest(ctx, &entities.Request{
			EquipmentID: equipmentID, UserID: &userID, Type: "preventive", Status: "new",
			Title: title, ScheduledDate: &day, DurationHours: 1,
		})
		require.NoError(t, err)
	}
	// One without a date must never appear on the calendar.
	_, err := repo.CreateRequest(ctx, &entities.Request{
		EquipmentID: equipmentID, UserID: &userID, Type: "corrective", Status: "new",
		Title: "Unscheduled", DurationHours: 1,
	})
	require.NoError(t, err)

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	events, err := repo.GetCalendar(ctx, dto.CalendarRange{Start: &start, End: &end})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Early", events[0].Title)
	assert.Equal(t, "Late", events[1].Title)
}

func TestEquipmentDeleteCascadesRequests(t *testing.T) {
	requireDB(t)
	cleanupTables(t)
	_, userID, equipmentID := seedFixtures(t)

	requestRepo := NewRequestRepository(testPool)
	equipmentRepo := NewEquipmentRepository(testPool)
	ctx := context.Background()

	created, err := requestRepo.CreateRequest(ctx, &entities.Request{
		EquipmentID: equipmentID, UserID: &userID, Type: "corrective", Status: "new",
		Title: "Doomed", DurationHours: 1,
	})
	require.NoError(t, err)

	require.NoError(t, equipmentRepo.DeleteEquipment(ctx, equipmentID))

	_, err = requestRepo.FindRequest(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
