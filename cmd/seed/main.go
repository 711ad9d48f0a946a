package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/empdesk/employee-api/config"
	"github.com/empdesk/employee-api/pkg/helpers"
)

// Seeds a local database with an admin login and a few employees.
// Development convenience only.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	username := "admin"
	password := "admin12345"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (username, password_hash, role)
		VALUES ($1, $2, 'admin')
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
		RETURNING id
	`, username, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s username=%s password=%s\n", id, username, password)

	employees := []struct {
		username, first, last, email, birth, status, group, description string
		salary                                                          float64
	}{
		{"jdoe", "John", "Doe", "jdoe@example.com", "1990-04-12", "active", "Engineering", "Backend engineer", 5200},
		{"asmith", "Alice", "Smith", "asmith@example.com", "1987-11-03", "active", "Finance", "Payroll analyst", 4800},
		{"bwayne", "Bruce", "Wayne", "bwayne@example.com", "1979-02-19", "inactive", "Operations", "Night shift supervisor", 6900},
	}
	for _, e := range employees {
		if _, err := db.Exec(`
			INSERT INTO employees (username, first_name, last_name, email, birth_date, basic_salary, status, group_name, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (username) DO NOTHING
		`, e.username, e.first, e.last, e.email, e.birth, e.salary, e.status, e.group, e.description); err != nil {
			log.Fatalf("failed to seed employee %s: %v", e.username, err)
		}
	}
	fmt.Printf("seeded %d employees\n", len(employees))
}
