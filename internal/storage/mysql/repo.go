// Package mysql is the durable listing store, satisfying the same
// domain.ListingRepository contract as the in-memory driver.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/domain"
)

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// Migrate creates the listings table if it is missing.
func (r *Repo) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createListingsTableSQL)
	return err
}

func (r *Repo) Create(ctx context.Context, l domain.Listing) (domain.Listing, error) {
	if err := l.Validate(); err != nil {
		return domain.Listing{}, err
	}
	l.ID = uuid.NewString()

	amen, _ := json.Marshal(l.Amenities)
	imgs, _ := json.Marshal(l.Images)
	rules, _ := json.Marshal(l.Rules)
	_, err := r.db.ExecContext(ctx, insertListingSQL,
		l.ID,
		l.OwnerID,
		l.Name,
		l.Address,
		l.Description,
		valStr(l.CollegeName),
		valF64(l.DistanceToCollege),
		l.Price,
		string(l.Type),
		string(amen),
		string(imgs),
		l.Contact.Name,
		valStr(l.Contact.Phone),
		valStr(l.Contact.Email),
		valF64(l.Rating),
		valInt(l.ReviewsCount),
		string(l.Availability),
		valStr(string(l.Gender)),
		string(rules),
	)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("insert listing: %w", err)
	}
	return l, nil
}

// Update replaces the mutable fields in a single statement; the WHERE-by-id
// write is atomic, so concurrent updates resolve as last writer wins.
func (r *Repo) Update(ctx context.Context, id string, patch domain.Listing) (domain.Listing, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return domain.Listing{}, err
	}
	patch.ID = current.ID
	patch.OwnerID = current.OwnerID
	if err := patch.Validate(); err != nil {
		return domain.Listing{}, err
	}

	amen, _ := json.Marshal(patch.Amenities)
	imgs, _ := json.Marshal(patch.Images)
	rules, _ := json.Marshal(patch.Rules)
	res, err := r.db.ExecContext(ctx, updateListingSQL,
		patch.Name,
		patch.Address,
		patch.Description,
		valStr(patch.CollegeName),
		valF64(patch.DistanceToCollege),
		patch.Price,
		string(patch.Type),
		string(amen),
		string(imgs),
		patch.Contact.Name,
		valStr(patch.Contact.Phone),
		valStr(patch.Contact.Email),
		valF64(patch.Rating),
		valInt(patch.ReviewsCount),
		string(patch.Availability),
		valStr(string(patch.Gender)),
		string(rules),
		id,
	)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("update listing: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Deleted between the read and the write.
		if _, gerr := r.GetByID(ctx, id); gerr != nil {
			return domain.Listing{}, gerr
		}
	}
	return patch, nil
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteListingSQL, id)
	if err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("delete %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (domain.Listing, error) {
	row := r.db.QueryRowContext(ctx, getListingSQL, id)
	l, err := scanListing(row)
	if err == sql.ErrNoRows {
		return domain.Listing{}, domain.ErrNotFound
	}
	return l, err
}

func (r *Repo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Listing, error) {
	return r.queryListings(ctx, listByOwnerSQL, ownerID)
}

func (r *Repo) ListAll(ctx context.Context) ([]domain.Listing, error) {
	return r.queryListings(ctx, listAllSQL)
}

func (r *Repo) queryListings(ctx context.Context, query string, args ...any) ([]domain.Listing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dst ...any) error
}

func scanListing(s scanner) (domain.Listing, error) {
	var l domain.Listing
	var (
		college       sql.NullString
		distance      sql.NullFloat64
		amenitiesJSON []byte
		imagesJSON    []byte
		phone, email  sql.NullString
		rating        sql.NullFloat64
		reviews       sql.NullInt64
		gender        sql.NullString
		rulesJSON     []byte
		typ, avail    string
	)
	if err := s.Scan(
		&l.ID,
		&l.OwnerID,
		&l.Name,
		&l.Address,
		&l.Description,
		&college,
		&distance,
		&l.Price,
		&typ,
		&amenitiesJSON,
		&imagesJSON,
		&l.Contact.Name,
		&phone,
		&email,
		&rating,
		&reviews,
		&avail,
		&gender,
		&rulesJSON,
	); err != nil {
		return domain.Listing{}, err
	}

	l.Type = domain.ListingType(typ)
	l.Availability = domain.Availability(avail)
	if college.Valid {
		l.CollegeName = college.String
	}
	if distance.Valid {
		d := distance.Float64
		l.DistanceToCollege = &d
	}
	if phone.Valid {
		l.Contact.Phone = phone.String
	}
	if email.Valid {
		l.Contact.Email = email.String
	}
	if rating.Valid {
		f := rating.Float64
		l.Rating = &f
	}
	if reviews.Valid {
		n := int(reviews.Int64)
		l.ReviewsCount = &n
	}
	if gender.Valid {
		l.Gender = domain.Gender(gender.String)
	}
	_ = json.Unmarshal(amenitiesJSON, &l.Amenities)
	_ = json.Unmarshal(imagesJSON, &l.Images)
	if len(rulesJSON) > 0 {
		_ = json.Unmarshal(rulesJSON, &l.Rules)
	}
	return l, nil
}
