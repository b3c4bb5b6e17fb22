package activitymodel

import "github.com/sunthewhat/koa-member-api/type/shared/model"

// IActivityRepository defines the interface for badge activity operations
type IActivityRepository interface {
	Record(activity *model.BadgeActivity) error
	ListByMember(koalm string, limit int64) ([]*model.BadgeActivity, error)
}

// Ensure ActivityRepository implements IActivityRepository
var _ IActivityRepository = (*ActivityRepository)(nil)

// MockActivityRepository is a mock implementation for testing
type MockActivityRepository struct {
	RecordFunc       func(activity *model.BadgeActivity) error
	ListByMemberFunc func(koalm string, limit int64) ([]*model.BadgeActivity, error)

	Recorded []*model.BadgeActivity
}

// Ensure MockActivityRepository implements IActivityRepository
var _ IActivityRepository = (*MockActivityRepository)(nil)

// NewMockActivityRepository creates a new mock repository
func NewMockActivityRepository() *MockActivityRepository {
	return &MockActivityRepository{}
}

func (m *MockActivityRepository) Record(activity *model.BadgeActivity) error {
	m.Recorded = append(m.Recorded, activity)
	if m.RecordFunc != nil {
		return m.RecordFunc(activity)
	}
	return nil
}

func (m *MockActivityRepository) ListByMember(koalm string, limit int64) ([]*model.BadgeActivity, error) {
	if m.ListByMemberFunc != nil {
		return m.ListByMemberFunc(koalm, limit)
	}
	return []*model.BadgeActivity{}, nil
}
