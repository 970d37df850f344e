package repofakes

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/spec-kit/sunday-school-service/internal/domain"
	"github.com/spec-kit/sunday-school-service/internal/repository"
)

// FakeMemberRepo is an in-memory MemberRepository for tests. It enforces
// the same uniqueness rules as the Postgres schema and returns the same
// typed errors.
type FakeMemberRepo struct {
	mu      sync.Mutex
	seq     int
	members map[string]domain.Member
}

// NewFakeMemberRepo builds an empty fake.
func NewFakeMemberRepo() *FakeMemberRepo {
	return &FakeMemberRepo{members: make(map[string]domain.Member)}
}

func (f *FakeMemberRepo) Create(_ context.Context, member *domain.Member) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.members {
		if existing.StudentID == member.StudentID {
			return &repository.UniqueViolationError{Field: "studentId"}
		}
		if existing.Email == member.Email {
			return &repository.UniqueViolationError{Field: "email"}
		}
		if existing.NationalID == member.NationalID {
			return &repository.UniqueViolationError{Field: "nationalId"}
		}
	}

	f.seq++
	now := time.Now()
	member.ID = fmt.Sprintf("member-%d", f.seq)
	member.JoinDate = now
	member.CreatedAt = now
	member.UpdatedAt = now
	f.members[member.ID] = *member
	return nil
}

func (f *FakeMemberRepo) GetByID(_ context.Context, id string) (*domain.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	member, ok := f.members[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &member, nil
}

func (f *FakeMemberRepo) GetByEmail(_ context.Context, email string) (*domain.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, member := range f.members {
		if member.Email == email {
			m := member
			return &m, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *FakeMemberRepo) GetActiveByEmail(_ context.Context, email string) (*domain.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, member := range f.members {
		if member.Email == email && member.Status == domain.MemberStatusActive {
			m := member
			return &m, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *FakeMemberRepo) List(_ context.Context) ([]*domain.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	members := make([]*domain.Member, 0, len(f.members))
	for _, member := range f.members {
		m := member
		members = append(members, &m)
	}
	return members, nil
}

func (f *FakeMemberRepo) UpdateProfile(_ context.Context, member *domain.Member) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.members[member.ID]
	if !ok {
		return repository.ErrNotFound
	}

	updated := *member
	// profile updates never move identity, role or credentials
	updated.StudentID = existing.StudentID
	updated.Email = existing.Email
	updated.NationalID = existing.NationalID
	updated.Role = existing.Role
	updated.Status = existing.Status
	updated.PasswordHash = existing.PasswordHash
	updated.UpdatedAt = time.Now()
	f.members[member.ID] = updated
	return nil
}

func (f *FakeMemberRepo) Update(_ context.Context, member *domain.Member) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	existing, ok := f.members[member.ID]
	if !ok {
		return repository.ErrNotFound
	}

	updated := *member
	updated.PasswordHash = existing.PasswordHash
	updated.UpdatedAt = time.Now()
	f.members[member.ID] = updated
	return nil
}

func (f *FakeMemberRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	member, ok := f.members[id]
	if !ok {
		return repository.ErrNotFound
	}
	member.PasswordHash = passwordHash
	member.UpdatedAt = time.Now()
	f.members[id] = member
	return nil
}

func (f *FakeMemberRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	member, ok := f.members[id]
	if !ok {
		return repository.ErrNotFound
	}
	member.LastLogin = &at
	f.members[id] = member
	return nil
}

func (f *FakeMemberRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.members[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.members, id)
	return nil
}

var _ repository.MemberRepository = (*FakeMemberRepo)(nil)
