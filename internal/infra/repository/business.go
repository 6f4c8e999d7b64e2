package repository

import (
	"context"
	"errors"

	"request-market/internal/domain/business"
	"request-market/internal/infra"
	"request-market/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BusinessDirectoryRepository assembles profile snapshots from the business
// subsystem's tables. The arrays are aggregated in SQL so one row per profile
// comes back regardless of how many types or categories it carries.
type BusinessDirectoryRepository struct {
	db db.DBTX
}

func NewBusinessDirectoryRepository(dbtx db.DBTX) *BusinessDirectoryRepository {
	return &BusinessDirectoryRepository{db: dbtx}
}

const businessProfileQuery = `
	SELECT
		bp.id,
		bp.owner_id,
		bp.name,
		bp.country_code,
		bp.verified,
		bp.subscribed,
		COALESCE(bp.legacy_tag, ''),
		COALESCE((SELECT array_agg(bt.name) FROM business_profile_types bpt
			JOIN business_types bt ON bt.id = bpt.type_id
			WHERE bpt.profile_id = bp.id), '{}'),
		COALESCE((SELECT array_agg(bpc.category_id) FROM business_profile_categories bpc
			WHERE bpc.profile_id = bp.id), '{}'),
		COALESCE((SELECT array_agg(bps.subcategory_id) FROM business_profile_subcategories bps
			WHERE bps.profile_id = bp.id), '{}')
	FROM business_profiles bp`

func (r *BusinessDirectoryRepository) FindEligibleByCountry(ctx context.Context, countryCode string) ([]business.Profile, error) {
	rows, err := r.db.Query(ctx, businessProfileQuery+`
		WHERE bp.country_code = $1 AND bp.verified AND bp.subscribed`, countryCode)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query business profiles", err)
	}
	defer rows.Close()

	var profiles []business.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan business profile", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read business profiles", err)
	}

	if err := r.attachCountryRecords(ctx, profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *BusinessDirectoryRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) (*business.Profile, error) {
	row := r.db.QueryRow(ctx, businessProfileQuery+` WHERE bp.owner_id = $1`, ownerID)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find business profile by owner", err)
	}

	profiles := []business.Profile{p}
	if err := r.attachCountryRecords(ctx, profiles); err != nil {
		return nil, err
	}
	return &profiles[0], nil
}

func scanProfile(row pgx.Row) (business.Profile, error) {
	var (
		p       business.Profile
		ownerID uuid.UUID
	)
	err := row.Scan(
		&p.ID,
		&ownerID,
		&p.Name,
		&p.CountryCode,
		&p.Verified,
		&p.Subscribed,
		&p.LegacyTag,
		&p.TypeNames,
		&p.CategoryIDs,
		&p.SubcategoryIDs,
	)
	return p, err
}

func (r *BusinessDirectoryRepository) attachCountryRecords(ctx context.Context, profiles []business.Profile) error {
	if len(profiles) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(profiles))
	index := make(map[uuid.UUID]int, len(profiles))
	for i, p := range profiles {
		ids[i] = p.ID
		index[p.ID] = i
	}

	rows, err := r.db.Query(ctx, `
		SELECT profile_id, country_code,
			cap_item, cap_service, cap_rent, cap_delivery, cap_ride,
			cap_tours, cap_events, cap_construction, cap_education, cap_hiring
		FROM business_country_records
		WHERE profile_id = ANY($1)`, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to query country records", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			profileID uuid.UUID
			rec       business.CountryRecord
		)
		err := rows.Scan(
			&profileID,
			&rec.CountryCode,
			&rec.Capabilities.Item,
			&rec.Capabilities.Service,
			&rec.Capabilities.Rent,
			&rec.Capabilities.Delivery,
			&rec.Capabilities.Ride,
			&rec.Capabilities.Tours,
			&rec.Capabilities.Events,
			&rec.Capabilities.Construction,
			&rec.Capabilities.Education,
			&rec.Capabilities.Hiring,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to scan country record", err)
		}
		if i, ok := index[profileID]; ok {
			profiles[i].CountryRecords = append(profiles[i].CountryRecords, rec)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read country records", err)
	}
	return nil
}
