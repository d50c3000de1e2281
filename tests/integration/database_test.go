package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestDatabase_ClientCRUD tests client database operations
func TestDatabase_ClientCRUD(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.DB == nil {
		t.Skip("Database not available")
	}

	SetupSchema(t, env.DB)
	CleanDatabase(t, env.DB)

	ctx := context.Background()
	clientID := uuid.New().String()

	t.Run("CreateClient", func(t *testing.T) {
		_, err := env.DB.ExecContext(ctx, `
			INSERT INTO clients (id, name, email, phone, city, state, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, clientID, "Maria Silva", "maria@example.com", "+55 11 99999-0000", "Sao Paulo", "SP", time.Now(), time.Now())

		if err != nil {
			t.Fatalf("Failed to create client: %v", err)
		}
	})

	t.Run("ReadClient", func(t *testing.T) {
		var name, email string
		err := env.DB.QueryRowContext(ctx, `
			SELECT name, email FROM clients WHERE id = $1
		`, clientID).Scan(&name, &email)

		if err != nil {
			t.Fatalf("Failed to read client: %v", err)
		}

		if name != "Maria Silva" {
			t.Errorf("Expected name 'Maria Silva', got '%s'", name)
		}
		if email != "maria@example.com" {
			t.Errorf("Expected email 'maria@example.com', got '%s'", email)
		}
	})

	t.Run("UpdateClient", func(t *testing.T) {
		_, err := env.DB.ExecContext(ctx, `
			UPDATE clients SET city = $1, updated_at = $2 WHERE id = $3
		`, "Campinas", time.Now(), clientID)

		if err != nil {
			t.Fatalf("Failed to update client: %v", err)
		}

		var city string
		env.DB.QueryRowContext(ctx, `SELECT city FROM clients WHERE id = $1`, clientID).Scan(&city)

		if city != "Campinas" {
			t.Errorf("Expected city 'Campinas', got '%s'", city)
		}
	})
}

// TestDatabase_ProjectPipeline tests project stage transitions at the storage level
func TestDatabase_ProjectPipeline(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.DB == nil {
		t.Skip("Database not available")
	}

	SetupSchema(t, env.DB)
	CleanDatabase(t, env.DB)

	ctx := context.Background()
	projectID := uuid.New().String()

	_, err := env.DB.ExecContext(ctx, `
		INSERT INTO projects (id, client_name, title, status, power_kwp, project_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, projectID, "Maria Silva", "Residencia Silva 8kWp", "lead", 8.0, 42000.00, time.Now(), time.Now())
	if err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	t.Run("TransitionToApproved", func(t *testing.T) {
		_, err := env.DB.ExecContext(ctx, `
			UPDATE projects SET status = $1, updated_at = $2 WHERE id = $3
		`, "approved", time.Now(), projectID)
		if err != nil {
			t.Fatalf("Failed to transition project: %v", err)
		}

		var status string
		env.DB.QueryRowContext(ctx, `SELECT status FROM projects WHERE id = $1`, projectID).Scan(&status)
		if status != "approved" {
			t.Errorf("Expected status 'approved', got '%s'", status)
		}
	})

	t.Run("CompletionDateSetOnce", func(t *testing.T) {
		completion := time.Now()
		_, err := env.DB.ExecContext(ctx, `
			UPDATE projects SET status = 'completed', completion_date = $1 WHERE id = $2 AND completion_date IS NULL
		`, completion, projectID)
		if err != nil {
			t.Fatalf("Failed to complete project: %v", err)
		}

		var got sql.NullTime
		env.DB.QueryRowContext(ctx, `SELECT completion_date FROM projects WHERE id = $1`, projectID).Scan(&got)
		if !got.Valid {
			t.Fatal("Expected completion_date to be set")
		}
	})
}

// TestDatabase_ProductionAggregation tests window aggregation queries over readings
func TestDatabase_ProductionAggregation(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.DB == nil {
		t.Skip("Database not available")
	}

	SetupSchema(t, env.DB)
	CleanDatabase(t, env.DB)

	ctx := context.Background()
	projectID := uuid.New().String()

	// Three readings inside a 7-day window, one outside.
	days := []int{-1, -2, -3, -20}
	for _, d := range days {
		_, err := env.DB.ExecContext(ctx, `
			INSERT INTO production_records (id, project_id, date, generation_kwh, consumption_kwh, savings_brl, system_status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, uuid.New().String(), projectID, time.Now().AddDate(0, 0, d), 40.0, 25.0, 30.0, "normal", time.Now())
		if err != nil {
			t.Fatalf("Failed to insert reading: %v", err)
		}
	}

	var count int
	var totalGeneration float64
	err := env.DB.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(generation_kwh), 0)
		FROM production_records
		WHERE project_id = $1 AND date >= $2
	`, projectID, time.Now().AddDate(0, 0, -7)).Scan(&count, &totalGeneration)
	if err != nil {
		t.Fatalf("Failed to aggregate readings: %v", err)
	}

	if count != 3 {
		t.Errorf("Expected 3 readings in window, got %d", count)
	}
	if totalGeneration != 120.0 {
		t.Errorf("Expected 120.0 kWh in window, got %f", totalGeneration)
	}
}

// TestDatabase_AlertResolution tests alert resolve semantics at the storage level
func TestDatabase_AlertResolution(t *testing.T) {
	env := SetupTestEnvironment(t)
	if env == nil || env.DB == nil {
		t.Skip("Database not available")
	}

	SetupSchema(t, env.DB)
	CleanDatabase(t, env.DB)

	ctx := context.Background()
	alertID := uuid.New().String()

	_, err := env.DB.ExecContext(ctx, `
		INSERT INTO alerts (id, project_id, type, severity, message, resolved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, alertID, uuid.New().String(), "low_generation", "medium", "Generation below expectation", false, time.Now())
	if err != nil {
		t.Fatalf("Failed to create alert: %v", err)
	}

	res, err := env.DB.ExecContext(ctx, `
		UPDATE alerts SET resolved = TRUE, resolved_at = $1 WHERE id = $2 AND resolved = FALSE
	`, time.Now(), alertID)
	if err != nil {
		t.Fatalf("Failed to resolve alert: %v", err)
	}
	if n, _ := res.RowsAffected(); n != 1 {
		t.Fatalf("Expected one row updated, got %d", n)
	}

	// Resolving again matches no rows.
	res, err = env.DB.ExecContext(ctx, `
		UPDATE alerts SET resolved_at = $1 WHERE id = $2 AND resolved = FALSE
	`, time.Now(), alertID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n, _ := res.RowsAffected(); n != 0 {
		t.Errorf("Expected no rows updated on second resolve, got %d", n)
	}
}
