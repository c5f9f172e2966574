package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
)

type KosRepository struct {
	db *sql.DB
}

func NewKosRepository(db *sql.DB) *KosRepository {
	return &KosRepository{db: db}
}

// Create inserts the kos together with any attached image and facility rows
// in one transaction.
func (r *KosRepository) Create(ctx context.Context, kos *domain.Kos) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	queryHeader := `
	INSERT INTO kos (id, user_id, name, address, price_per_month, gender, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = tx.ExecContext(ctx, queryHeader,
		kos.ID, kos.OwnerID, kos.Name, kos.Address, kos.PricePerMonth, kos.Gender, kos.CreatedAt, kos.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert kos: %w", err)
	}

	if len(kos.Images) > 0 {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO kos_images (id, kos_id, file_url) VALUES ($1, $2, $3)`)
		if err != nil {
			return fmt.Errorf("failed to prepare image statement: %w", err)
		}

		defer stmt.Close()

		for _, img := range kos.Images {
			if _, err := stmt.ExecContext(ctx, img.ID, kos.ID, img.FileURL); err != nil {
				return fmt.Errorf("failed to insert kos image: %w", err)
			}
		}
	}

	if len(kos.Facilities) > 0 {
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO kos_facilities (id, kos_id, facility) VALUES ($1, $2, $3)`)
		if err != nil {
			return fmt.Errorf("failed to prepare facility statement: %w", err)
		}

		defer stmt.Close()

		for _, f := range kos.Facilities {
			if _, err := stmt.ExecContext(ctx, f.ID, kos.ID, f.Facility); err != nil {
				return fmt.Errorf("failed to insert kos facility: %w", err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *KosRepository) GetByID(ctx context.Context, kosID uuid.UUID) (*domain.Kos, error) {
	query := `
	SELECT k.id, k.user_id, k.name, k.address, k.price_per_month, k.gender, k.created_at, k.updated_at,
		u.id, u.name, u.email, u.phone, u.role
	FROM kos k
	JOIN users u ON u.id = k.user_id
	WHERE k.id = $1
	`

	var kos domain.Kos
	var owner domain.User

	err := r.db.QueryRowContext(ctx, query, kosID).Scan(
		&kos.ID,
		&kos.OwnerID,
		&kos.Name,
		&kos.Address,
		&kos.PricePerMonth,
		&kos.Gender,
		&kos.CreatedAt,
		&kos.UpdatedAt,
		&owner.ID,
		&owner.Name,
		&owner.Email,
		&owner.Phone,
		&owner.Role,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrKosNotFound
		}
		return nil, fmt.Errorf("get kos by id: %w", err)
	}

	kos.Owner = &owner

	list := []domain.Kos{kos}
	if err := r.attachChildren(ctx, list); err != nil {
		return nil, err
	}

	return &list[0], nil
}

func (r *KosRepository) GetAll(ctx context.Context, gender domain.Gender) ([]domain.Kos, error) {
	query := kosListQuery
	var args []interface{}

	if gender != "" {
		query += ` WHERE k.gender = $1`
		args = append(args, gender)
	}

	return r.queryKos(ctx, query, args...)
}

func (r *KosRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]domain.Kos, error) {
	return r.queryKos(ctx, kosListQuery+` WHERE k.user_id = $1`, ownerID)
}

func (r *KosRepository) Update(ctx context.Context, kos *domain.Kos) error {
	query := `
	UPDATE kos
	SET name = $1, address = $2, price_per_month = $3, gender = $4, updated_at = $5
	WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		kos.Name, kos.Address, kos.PricePerMonth, kos.Gender, kos.UpdatedAt, kos.ID)
	if err != nil {
		return fmt.Errorf("update kos: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update kos: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrKosNotFound
	}

	return nil
}

func (r *KosRepository) Delete(ctx context.Context, kosID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	for _, stmt := range []string{
		`DELETE FROM kos_images WHERE kos_id = $1`,
		`DELETE FROM kos_facilities WHERE kos_id = $1`,
		`DELETE FROM reviews WHERE kos_id = $1`,
		`DELETE FROM kos WHERE id = $1`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, kosID); err != nil {
			return fmt.Errorf("delete kos: %w", err)
		}
	}

	return tx.Commit()
}

func (r *KosRepository) AddImage(ctx context.Context, image *domain.KosImage) error {
	query := `INSERT INTO kos_images (id, kos_id, file_url) VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(ctx, query, image.ID, image.KosID, image.FileURL); err != nil {
		return fmt.Errorf("add kos image: %w", err)
	}
	return nil
}

func (r *KosRepository) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM kos_images WHERE id = $1`, imageID)
	if err != nil {
		return fmt.Errorf("delete kos image: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete kos image: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrKosNotFound
	}

	return nil
}

func (r *KosRepository) GetFacilities(ctx context.Context, kosID uuid.UUID) ([]domain.KosFacility, error) {
	query := `SELECT id, kos_id, facility FROM kos_facilities WHERE kos_id = $1`

	rows, err := r.db.QueryContext(ctx, query, kosID)
	if err != nil {
		return nil, fmt.Errorf("query kos facilities: %w", err)
	}

	defer rows.Close()

	var facilities []domain.KosFacility
	for rows.Next() {
		var f domain.KosFacility
		if err := rows.Scan(&f.ID, &f.KosID, &f.Facility); err != nil {
			return nil, fmt.Errorf("scan kos facility: %w", err)
		}
		facilities = append(facilities, f)
	}

	return facilities, rows.Err()
}

func (r *KosRepository) AddFacility(ctx context.Context, facility *domain.KosFacility) error {
	query := `INSERT INTO kos_facilities (id, kos_id, facility) VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(ctx, query, facility.ID, facility.KosID, facility.Facility); err != nil {
		return fmt.Errorf("add kos facility: %w", err)
	}
	return nil
}

func (r *KosRepository) UpdateFacility(ctx context.Context, facility *domain.KosFacility) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE kos_facilities SET facility = $1 WHERE id = $2 AND kos_id = $3`,
		facility.Facility, facility.ID, facility.KosID)
	if err != nil {
		return fmt.Errorf("update kos facility: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update kos facility: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrKosNotFound
	}

	return nil
}

func (r *KosRepository) DeleteFacility(ctx context.Context, facilityID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM kos_facilities WHERE id = $1`, facilityID)
	if err != nil {
		return fmt.Errorf("delete kos facility: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete kos facility: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrKosNotFound
	}

	return nil
}

const kosListQuery = `
	SELECT k.id, k.user_id, k.name, k.address, k.price_per_month, k.gender, k.created_at, k.updated_at,
		u.id, u.name, u.email, u.phone, u.role
	FROM kos k
	JOIN users u ON u.id = k.user_id`

func (r *KosRepository) queryKos(ctx context.Context, query string, args ...interface{}) ([]domain.Kos, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query kos: %w", err)
	}

	defer rows.Close()

	var list []domain.Kos
	for rows.Next() {
		var kos domain.Kos
		var owner domain.User

		if err := rows.Scan(
			&kos.ID,
			&kos.OwnerID,
			&kos.Name,
			&kos.Address,
			&kos.PricePerMonth,
			&kos.Gender,
			&kos.CreatedAt,
			&kos.UpdatedAt,
			&owner.ID,
			&owner.Name,
			&owner.Email,
			&owner.Phone,
			&owner.Role,
		); err != nil {
			return nil, fmt.Errorf("scan kos: %w", err)
		}

		kos.Owner = &owner
		list = append(list, kos)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kos: %w", err)
	}

	if err := r.attachChildren(ctx, list); err != nil {
		return nil, err
	}

	return list, nil
}

// attachChildren loads image and facility rows for every kos in the list with
// one query per child table.
func (r *KosRepository) attachChildren(ctx context.Context, list []domain.Kos) error {
	if len(list) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(list))
	for i, k := range list {
		ids[i] = k.ID
	}

	imgRows, err := r.db.QueryContext(ctx,
		`SELECT id, kos_id, file_url FROM kos_images WHERE kos_id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("query kos images: %w", err)
	}

	defer imgRows.Close()

	imagesByKos := make(map[uuid.UUID][]domain.KosImage)
	for imgRows.Next() {
		var img domain.KosImage
		if err := imgRows.Scan(&img.ID, &img.KosID, &img.FileURL); err != nil {
			return fmt.Errorf("scan kos image: %w", err)
		}
		imagesByKos[img.KosID] = append(imagesByKos[img.KosID], img)
	}

	if err := imgRows.Err(); err != nil {
		return fmt.Errorf("iterate kos images: %w", err)
	}

	facRows, err := r.db.QueryContext(ctx,
		`SELECT id, kos_id, facility FROM kos_facilities WHERE kos_id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("query kos facilities: %w", err)
	}

	defer facRows.Close()

	facilitiesByKos := make(map[uuid.UUID][]domain.KosFacility)
	for facRows.Next() {
		var f domain.KosFacility
		if err := facRows.Scan(&f.ID, &f.KosID, &f.Facility); err != nil {
			return fmt.Errorf("scan kos facility: %w", err)
		}
		facilitiesByKos[f.KosID] = append(facilitiesByKos[f.KosID], f)
	}

	if err := facRows.Err(); err != nil {
		return fmt.Errorf("iterate kos facilities: %w", err)
	}

	for i := range list {
		list[i].Images = imagesByKos[list[i].ID]
		list[i].Facilities = facilitiesByKos[list[i].ID]
	}

	return nil
}
