package database

import (
	"fmt"
	"log"

	"zonosign/internal/signdata"
)

// SeedSignCatalog populates the sign catalog tables from the built-in
// dataset. Runs only when the catalog is empty, so redeploys are no-ops.
func (db *DB) SeedSignCatalog() error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM signs").Scan(&count); err != nil {
		return fmt.Errorf("failed to check sign count: %w", err)
	}

	if count > 0 {
		log.Printf("Sign catalog already populated with %d signs", count)
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range signdata.Categories {
		_, err := tx.Exec(`
			INSERT INTO sign_categories (id, title, description, position)
			VALUES (?, ?, ?, ?)
		`, c.ID, c.Title, c.Description, c.Position)
		if err != nil {
			return fmt.Errorf("failed to insert category %s: %w", c.ID, err)
		}
	}

	for _, s := range signdata.Signs {
		_, err := tx.Exec(`
			INSERT INTO signs (id, category_id, word, description, instructions, image_url, video_url, tag, difficulty, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, s.ID, s.CategoryID, s.Word, s.Description, s.Instructions, s.ImageURL, s.VideoURL, s.Tag, s.Difficulty, s.Position)
		if err != nil {
			return fmt.Errorf("failed to insert sign %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	log.Printf("Seeded sign catalog: %d categories, %d signs", len(signdata.Categories), len(signdata.Signs))
	return nil
}
