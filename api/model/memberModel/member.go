package membermodel

import (
	"errors"
	"log/slog"

	"github.com/sunthewhat/koa-member-api/type/shared/model"
	"github.com/sunthewhat/koa-member-api/type/shared/query"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MemberRepository handles member database operations
type MemberRepository struct {
	q *query.Query
}

// NewMemberRepository creates a new member repository with dependency injection
func NewMemberRepository(q *query.Query) *MemberRepository {
	return &MemberRepository{q: q}
}

func (r *MemberRepository) GetByKoalm(koalm string) (*model.Member, error) {
	m := r.q.Member
	member, queryErr := m.Where(m.KoalmNumber.Eq(koalm)).First()

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Member GetByKoalm", "error", queryErr, "koalm", koalm)
		return nil, queryErr
	}

	return member, nil
}

func (r *MemberRepository) Create(member *model.Member) error {
	if createErr := r.q.Member.Create(member); createErr != nil {
		slog.Error("Member Create", "error", createErr, "koalm", member.KoalmNumber)
		return createErr
	}
	return nil
}

// Upsert inserts the member or overwrites the directory fields of an existing
// one. Photo, date of birth and the admin flag are kept, since the directory
// export does not carry them.
func (r *MemberRepository) Upsert(member *model.Member) error {
	upsertErr := r.q.Member.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "koalm_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name",
			"email",
			"communication_address",
			"address",
			"district",
			"pincode",
			"state",
			"district_club_name",
			"mobile_number",
			"is_active",
			"updated_at",
		}),
	}).Create(member)

	if upsertErr != nil {
		slog.Error("Member Upsert", "error", upsertErr, "koalm", member.KoalmNumber)
		return upsertErr
	}
	return nil
}

// UpdateProfile applies a partial update keyed by column name. The KOALM
// number is the key and is never part of the update.
func (r *MemberRepository) UpdateProfile(koalm string, changes map[string]any) error {
	delete(changes, "koalm_number")
	if len(changes) == 0 {
		return nil
	}

	m := r.q.Member
	if _, updateErr := m.Where(m.KoalmNumber.Eq(koalm)).Updates(changes); updateErr != nil {
		slog.Error("Member UpdateProfile", "error", updateErr, "koalm", koalm)
		return updateErr
	}
	return nil
}

func (r *MemberRepository) ListActive() ([]*model.Member, error) {
	m := r.q.Member
	members, queryErr := m.Where(m.IsActive.Is(true)).Order(m.KoalmNumber).Find()

	if queryErr != nil {
		slog.Error("Member ListActive", "error", queryErr)
		return nil, queryErr
	}

	return members, nil
}
