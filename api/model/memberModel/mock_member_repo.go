package membermodel

import "github.com/sunthewhat/koa-member-api/type/shared/model"

// IMemberRepository defines the interface for member repository operations
type IMemberRepository interface {
	GetByKoalm(koalm string) (*model.Member, error)
	Create(member *model.Member) error
	Upsert(member *model.Member) error
	UpdateProfile(koalm string, changes map[string]any) error
	ListActive() ([]*model.Member, error)
}

// Ensure MemberRepository implements IMemberRepository
var _ IMemberRepository = (*MemberRepository)(nil)

// MockMemberRepository is a mock implementation for testing
type MockMemberRepository struct {
	GetByKoalmFunc    func(koalm string) (*model.Member, error)
	CreateFunc        func(member *model.Member) error
	UpsertFunc        func(member *model.Member) error
	UpdateProfileFunc func(koalm string, changes map[string]any) error
	ListActiveFunc    func() ([]*model.Member, error)
}

// Ensure MockMemberRepository implements IMemberRepository
var _ IMemberRepository = (*MockMemberRepository)(nil)

// NewMockMemberRepository creates a new mock repository
func NewMockMemberRepository() *MockMemberRepository {
	return &MockMemberRepository{}
}

func (m *MockMemberRepository) GetByKoalm(koalm string) (*model.Member, error) {
	if m.GetByKoalmFunc != nil {
		return m.GetByKoalmFunc(koalm)
	}
	return nil, nil
}

func (m *MockMemberRepository) Create(member *model.Member) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(member)
	}
	return nil
}

func (m *MockMemberRepository) Upsert(member *model.Member) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(member)
	}
	return nil
}

func (m *MockMemberRepository) UpdateProfile(koalm string, changes map[string]any) error {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(koalm, changes)
	}
	return nil
}

func (m *MockMemberRepository) ListActive() ([]*model.Member, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc()
	}
	return nil, nil
}
