package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/sunday-school-service/internal/domain"
)

// MemberRepository defines persistence access for member accounts.
// Password hashes are written only by Create and UpdatePassword; no other
// method can touch them.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	GetActiveByEmail(ctx context.Context, email string) (*domain.Member, error)
	List(ctx context.Context) ([]*domain.Member, error)
	UpdateProfile(ctx context.Context, member *domain.Member) error
	Update(ctx context.Context, member *domain.Member) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type memberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository returns a Postgres-backed implementation.
func NewMemberRepository(pool *pgxpool.Pool) MemberRepository {
	return &memberRepository{pool: pool}
}

const memberColumns = `
	id, student_id, email, password_hash, role,
	first_name, middle_name, last_name, sex, phone_number,
	disability, disability_type,
	date_of_birth, national_id, occupation, marriage_status,
	country, region, zone, woreda, church,
	parent_status, parent_full_name, parent_email, parent_phone_number,
	avatar, join_date, status, last_login, created_at, updated_at`

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	if err := row.Scan(
		&m.ID, &m.StudentID, &m.Email, &m.PasswordHash, &m.Role,
		&m.FirstName, &m.MiddleName, &m.LastName, &m.Sex, &m.PhoneNumber,
		&m.Disability, &m.DisabilityType,
		&m.DateOfBirth, &m.NationalID, &m.Occupation, &m.MarriageStatus,
		&m.Country, &m.Region, &m.Zone, &m.Woreda, &m.Church,
		&m.ParentStatus, &m.ParentFullName, &m.ParentEmail, &m.ParentPhoneNumber,
		&m.Avatar, &m.JoinDate, &m.Status, &m.LastLogin, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	const query = `
        INSERT INTO members (
            student_id, email, password_hash, role,
            first_name, middle_name, last_name, sex, phone_number,
            disability, disability_type,
            date_of_birth, national_id, occupation, marriage_status,
            country, region, zone, woreda, church,
            parent_status, parent_full_name, parent_email, parent_phone_number,
            avatar, status
        ) VALUES (
            $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,
            $16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26
        )
        RETURNING id, join_date, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		member.StudentID, member.Email, member.PasswordHash, member.Role,
		member.FirstName, member.MiddleName, member.LastName, member.Sex, member.PhoneNumber,
		member.Disability, member.DisabilityType,
		member.DateOfBirth, member.NationalID, member.Occupation, member.MarriageStatus,
		member.Country, member.Region, member.Zone, member.Woreda, member.Church,
		member.ParentStatus, member.ParentFullName, member.ParentEmail, member.ParentPhoneNumber,
		member.Avatar, member.Status,
	).Scan(&member.ID, &member.JoinDate, &member.CreatedAt, &member.UpdatedAt)
	return translate(err)
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	query := `SELECT` + memberColumns + ` FROM members WHERE id=$1`
	return scanMember(r.pool.QueryRow(ctx, query, id))
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	query := `SELECT` + memberColumns + ` FROM members WHERE email=$1`
	return scanMember(r.pool.QueryRow(ctx, query, email))
}

// GetActiveByEmail backs the login lookup: an inactive account and a
// missing account are indistinguishable to the caller.
func (r *memberRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.Member, error) {
	query := `SELECT` + memberColumns + ` FROM members WHERE email=$1 AND status='active'`
	return scanMember(r.pool.QueryRow(ctx, query, email))
}

func (r *memberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	query := `SELECT` + memberColumns + ` FROM members ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var members []*domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, translate(rows.Err())
}

// UpdateProfile writes only profile columns. Identity fields, role and
// the password hash are not part of the statement at all.
func (r *memberRepository) UpdateProfile(ctx context.Context, member *domain.Member) error {
	const query = `
        UPDATE members SET
            first_name=$1, middle_name=$2, last_name=$3, sex=$4, phone_number=$5,
            disability=$6, disability_type=$7,
            date_of_birth=$8, occupation=$9, marriage_status=$10,
            country=$11, region=$12, zone=$13, woreda=$14, church=$15,
            parent_status=$16, parent_full_name=$17, parent_email=$18, parent_phone_number=$19,
            avatar=$20, updated_at=NOW()
        WHERE id=$21`

	cmd, err := r.pool.Exec(ctx, query,
		member.FirstName, member.MiddleName, member.LastName, member.Sex, member.PhoneNumber,
		member.Disability, member.DisabilityType,
		member.DateOfBirth, member.Occupation, member.MarriageStatus,
		member.Country, member.Region, member.Zone, member.Woreda, member.Church,
		member.ParentStatus, member.ParentFullName, member.ParentEmail, member.ParentPhoneNumber,
		member.Avatar, member.ID,
	)
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Update is the admin-facing write: it may move identity fields, role and
// status, but still never the password hash.
func (r *memberRepository) Update(ctx context.Context, member *domain.Member) error {
	const query = `
        UPDATE members SET
            student_id=$1, email=$2, national_id=$3, role=$4, status=$5,
            first_name=$6, middle_name=$7, last_name=$8, sex=$9, phone_number=$10,
            disability=$11, disability_type=$12,
            date_of_birth=$13, occupation=$14, marriage_status=$15,
            country=$16, region=$17, zone=$18, woreda=$19, church=$20,
            parent_status=$21, parent_full_name=$22, parent_email=$23, parent_phone_number=$24,
            avatar=$25, updated_at=NOW()
        WHERE id=$26`

	cmd, err := r.pool.Exec(ctx, query,
		member.StudentID, member.Email, member.NationalID, member.Role, member.Status,
		member.FirstName, member.MiddleName, member.LastName, member.Sex, member.PhoneNumber,
		member.Disability, member.DisabilityType,
		member.DateOfBirth, member.Occupation, member.MarriageStatus,
		member.Country, member.Region, member.Zone, member.Woreda, member.Church,
		member.ParentStatus, member.ParentFullName, member.ParentEmail, member.ParentPhoneNumber,
		member.Avatar, member.ID,
	)
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *memberRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	const query = `UPDATE members SET password_hash=$1, updated_at=NOW() WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *memberRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	const query = `UPDATE members SET last_login=$1 WHERE id=$2`
	cmd, err := r.pool.Exec(ctx, query, at, id)
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM members WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
