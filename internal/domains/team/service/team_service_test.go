package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kuai-backend/internal/domains/team"
	"kuai-backend/internal/shared/apperror"
	"kuai-backend/pkg/clock"
)

type memoryRepo struct {
	team.Repository
	roles   []*team.Role
	members []*team.Member
}

func (m *memoryRepo) ListActiveRoles(ctx context.Context) ([]*team.Role, error) {
	var out []*team.Role
	for _, r := range m.roles {
		if r.IsActive {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memoryRepo) ListActiveMembers(ctx context.Context) ([]*team.Member, error) {
	var out []*team.Member
	for _, mem := range m.members {
		if mem.IsActive {
			out = append(out, mem)
		}
	}
	return out, nil
}

func (m *memoryRepo) InsertMember(ctx context.Context, mem *team.Member) error {
	mem.ID = uuid.New()
	m.members = append(m.members, mem)
	return nil
}

func (m *memoryRepo) GetMemberByID(ctx context.Context, id uuid.UUID, activeOnly bool) (*team.Member, error) {
	for _, mem := range m.members {
		if mem.ID == id && (!activeOnly || mem.IsActive) {
			cp := *mem
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("Team member not found.")
}

var now = time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC)

func TestByRole_SkipsEmptyAndInactive(t *testing.T) {
	president := &team.Role{ID: uuid.New(), Name: "President", IsActive: true}
	secretary := &team.Role{ID: uuid.New(), Name: "Secretary", IsActive: true}
	retired := &team.Role{ID: uuid.New(), Name: "Patron", IsActive: false}

	repo := &memoryRepo{
		roles: []*team.Role{president, secretary, retired},
		members: []*team.Member{
			{ID: uuid.New(), Name: "Amina", RoleID: &president.ID, IsActive: true},
			{ID: uuid.New(), Name: "Brian", RoleID: &retired.ID, IsActive: true},
			{ID: uuid.New(), Name: "Carol", RoleID: &secretary.ID, IsActive: false},
			{ID: uuid.New(), Name: "Dan", IsActive: true},
		},
	}
	svc := NewTeamService(repo, clock.Fixed(now))

	groups, err := svc.ByRole(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "President", groups[0].Role.Name)
	require.Len(t, groups[0].Members, 1)
	assert.Equal(t, "Amina", groups[0].Members[0].Name)
}

func TestCreateMember_DefaultsStartYear(t *testing.T) {
	svc := NewTeamService(&memoryRepo{}, clock.Fixed(now))

	m, err := svc.CreateMember(context.Background(), &team.MemberRequest{Name: "Esther"})
	require.NoError(t, err)
	assert.Equal(t, 2025, m.StartYear)
	assert.Nil(t, m.EndYear)
	assert.True(t, m.IsActive)
	assert.True(t, m.Term().IsCurrent(now))
}

func TestCreateMember_Validation(t *testing.T) {
	svc := NewTeamService(&memoryRepo{}, clock.Fixed(now))

	_, err := svc.CreateMember(context.Background(), &team.MemberRequest{Name: "F", Email: "not-an-email"})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	_, err = svc.CreateMember(context.Background(), &team.MemberRequest{})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestGetMember_HidesInactive(t *testing.T) {
	hidden := &team.Member{ID: uuid.New(), Name: "Ghost", IsActive: false}
	svc := NewTeamService(&memoryRepo{members: []*team.Member{hidden}}, clock.Fixed(now))

	_, err := svc.GetMember(context.Background(), hidden.ID)
	assert.True(t, apperror.IsNotFound(err))
}
