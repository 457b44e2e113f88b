package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"zonosign/internal/database"
	"zonosign/internal/models"
)

const signColumns = "id, category_id, word, description, instructions, image_url, video_url, tag, difficulty, position"

// SignRepository handles database operations for the sign catalog
type SignRepository struct {
	db *database.DB
}

// NewSignRepository creates a new sign repository
func NewSignRepository(db *database.DB) *SignRepository {
	return &SignRepository{db: db}
}

func scanSigns(rows *sql.Rows) ([]models.Sign, error) {
	defer rows.Close()

	var signs []models.Sign
	for rows.Next() {
		var s models.Sign
		err := rows.Scan(
			&s.ID,
			&s.CategoryID,
			&s.Word,
			&s.Description,
			&s.Instructions,
			&s.ImageURL,
			&s.VideoURL,
			&s.Tag,
			&s.Difficulty,
			&s.Position,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sign: %w", err)
		}
		signs = append(signs, s)
	}
	return signs, rows.Err()
}

// ListCategories returns all lesson categories in display order
func (r *SignRepository) ListCategories() ([]models.SignCategory, error) {
	rows, err := r.db.Query("SELECT id, title, description, position FROM sign_categories ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.SignCategory
	for rows.Next() {
		var c models.SignCategory
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Position); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategory returns one category, or nil when it does not exist
func (r *SignRepository) GetCategory(categoryID string) (*models.SignCategory, error) {
	var c models.SignCategory
	err := r.db.QueryRow("SELECT id, title, description, position FROM sign_categories WHERE id = ?", categoryID).
		Scan(&c.ID, &c.Title, &c.Description, &c.Position)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &c, nil
}

// CountCategories returns the number of lesson categories in the catalog
func (r *SignRepository) CountCategories() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM sign_categories").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}

// ListByCategory returns a category's signs in catalog order
func (r *SignRepository) ListByCategory(categoryID string) ([]models.Sign, error) {
	query := "SELECT " + signColumns + " FROM signs WHERE category_id = ? ORDER BY position"
	rows, err := r.db.Query(query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list signs: %w", err)
	}
	return scanSigns(rows)
}

// GetSign returns one sign by id, or nil when it does not exist
func (r *SignRepository) GetSign(signID string) (*models.Sign, error) {
	query := "SELECT " + signColumns + " FROM signs WHERE id = ?"
	rows, err := r.db.Query(query, signID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sign: %w", err)
	}
	signs, err := scanSigns(rows)
	if err != nil {
		return nil, err
	}
	if len(signs) == 0 {
		return nil, nil
	}
	return &signs[0], nil
}

// Search returns signs whose word, description or tag contains the query,
// case-insensitively, in catalog order.
func (r *SignRepository) Search(query string) ([]models.Sign, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, nil
	}

	pattern := "%" + strings.ToLower(q) + "%"
	sqlQuery := "SELECT " + signColumns + ` FROM signs
		WHERE LOWER(word) LIKE ? OR LOWER(description) LIKE ? OR LOWER(tag) LIKE ?
		ORDER BY category_id, position`
	rows, err := r.db.Query(sqlQuery, pattern, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search signs: %w", err)
	}
	return scanSigns(rows)
}
