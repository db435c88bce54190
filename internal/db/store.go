package db

import (
	"context"
	"fmt"

	"github.com/xmanojpx/SkillLens/internal/catalog"
	"github.com/xmanojpx/SkillLens/internal/types"
)

// ImportCatalog replaces the stored catalog with the given one inside a
// single transaction.
func (db *DB) ImportCatalog(ctx context.Context, cat *catalog.Catalog) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback(ctx)

	// Edge and role rows cascade from their skill and role parents.
	for _, table := range []string{"roles", "skills"} {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, skill := range cat.Graph().Skills() {
		_, err := tx.Exec(ctx,
			`INSERT INTO skills (name, category, tier) VALUES ($1, $2, $3)`,
			skill.Name, skill.Category, skill.Tier,
		)
		if err != nil {
			return fmt.Errorf("failed to insert skill %s: %w", skill.Name, err)
		}
	}

	for _, skill := range cat.Graph().Skills() {
		for _, edge := range cat.Graph().DirectPrerequisites(skill.Name) {
			_, err := tx.Exec(ctx,
				`INSERT INTO skill_edges (skill, prerequisite, importance) VALUES ($1, $2, $3)`,
				edge.Skill, edge.Prerequisite, string(edge.Importance),
			)
			if err != nil {
				return fmt.Errorf("failed to insert edge %s -> %s: %w", edge.Skill, edge.Prerequisite, err)
			}
		}
	}

	for _, role := range cat.Roles() {
		if _, err := tx.Exec(ctx, `INSERT INTO roles (title) VALUES ($1)`, role.Title); err != nil {
			return fmt.Errorf("failed to insert role %s: %w", role.Title, err)
		}
		for _, ws := range role.Skills {
			_, err := tx.Exec(ctx,
				`INSERT INTO role_skills (role_title, skill, weight) VALUES ($1, $2, $3)`,
				role.Title, ws.Name, ws.Weight,
			)
			if err != nil {
				return fmt.Errorf("failed to insert role skill %s/%s: %w", role.Title, ws.Name, err)
			}
		}
		for _, tool := range role.Tools {
			_, err := tx.Exec(ctx,
				`INSERT INTO role_tools (role_title, tool) VALUES ($1, $2)`,
				role.Title, tool,
			)
			if err != nil {
				return fmt.Errorf("failed to insert role tool %s/%s: %w", role.Title, tool, err)
			}
		}
	}

	for skill, weeks := range cat.Durations() {
		_, err := tx.Exec(ctx,
			`INSERT INTO skill_durations (skill, weeks) VALUES ($1, $2)`,
			skill, weeks,
		)
		if err != nil {
			return fmt.Errorf("failed to insert duration for %s: %w", skill, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}
	return nil
}

// LoadCatalog reads the stored catalog and rebuilds it in memory. Graph
// invariants are re-checked during the build, so a hand-edited database that
// introduced a cycle fails here rather than at query time.
func (db *DB) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	doc := &catalog.Document{Durations: map[string]int{}}

	rows, err := db.pool.Query(ctx, `SELECT name, category, tier FROM skills ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}
	for rows.Next() {
		var s types.Skill
		if err := rows.Scan(&s.Name, &s.Category, &s.Tier); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		doc.Skills = append(doc.Skills, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}

	rows, err = db.pool.Query(ctx,
		`SELECT skill, prerequisite, importance FROM skill_edges ORDER BY skill, prerequisite`)
	if err != nil {
		return nil, fmt.Errorf("failed to load skill edges: %w", err)
	}
	for rows.Next() {
		var e types.PrerequisiteEdge
		if err := rows.Scan(&e.Skill, &e.Prerequisite, &e.Importance); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan skill edge: %w", err)
		}
		doc.Prerequisites = append(doc.Prerequisites, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load skill edges: %w", err)
	}

	roleIndex := map[string]int{}
	rows, err = db.pool.Query(ctx, `SELECT title FROM roles ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roleIndex[title] = len(doc.Roles)
		doc.Roles = append(doc.Roles, types.RoleRequirement{Title: title})
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}

	rows, err = db.pool.Query(ctx,
		`SELECT role_title, skill, weight FROM role_skills ORDER BY role_title, skill`)
	if err != nil {
		return nil, fmt.Errorf("failed to load role skills: %w", err)
	}
	for rows.Next() {
		var title string
		var ws types.WeightedSkill
		if err := rows.Scan(&title, &ws.Name, &ws.Weight); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan role skill: %w", err)
		}
		if i, ok := roleIndex[title]; ok {
			doc.Roles[i].Skills = append(doc.Roles[i].Skills, ws)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load role skills: %w", err)
	}

	rows, err = db.pool.Query(ctx,
		`SELECT role_title, tool FROM role_tools ORDER BY role_title, tool`)
	if err != nil {
		return nil, fmt.Errorf("failed to load role tools: %w", err)
	}
	for rows.Next() {
		var title, tool string
		if err := rows.Scan(&title, &tool); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan role tool: %w", err)
		}
		if i, ok := roleIndex[title]; ok {
			doc.Roles[i].Tools = append(doc.Roles[i].Tools, tool)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load role tools: %w", err)
	}

	rows, err = db.pool.Query(ctx, `SELECT skill, weeks FROM skill_durations`)
	if err != nil {
		return nil, fmt.Errorf("failed to load durations: %w", err)
	}
	for rows.Next() {
		var skill string
		var weeks int
		if err := rows.Scan(&skill, &weeks); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan duration: %w", err)
		}
		doc.Durations[skill] = weeks
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load durations: %w", err)
	}

	return catalog.FromDocument(doc)
}

// IsEmpty reports whether the store holds no skills yet.
func (db *DB) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM skills`).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count skills: %w", err)
	}
	return count == 0, nil
}
