package membermodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	membermodel "github.com/sunthewhat/koa-member-api/api/model/memberModel"
	"github.com/sunthewhat/koa-member-api/test/helpers"
	"github.com/sunthewhat/koa-member-api/type/shared/model"
	"github.com/sunthewhat/koa-member-api/type/shared/query"
)

func TestMemberRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping container test in short mode")
	}

	container := helpers.SetupTestDatabase(t)

	t.Run("GetByKoalm", func(t *testing.T) {
		db := helpers.GetTestDB(t, container)
		helpers.SeedTestData(t, db)
		repo := membermodel.NewMemberRepository(query.Use(db))

		member, err := repo.GetByKoalm("KOA-1001")
		require.NoError(t, err)
		require.NotNil(t, member)
		assert.Equal(t, "Dr. A. Kumar", member.Name)
		assert.True(t, member.IsActive)

		missing, err := repo.GetByKoalm("KOA-4040")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("ListActive", func(t *testing.T) {
		db := helpers.GetTestDB(t, container)
		helpers.SeedTestData(t, db)
		repo := membermodel.NewMemberRepository(query.Use(db))

		members, err := repo.ListActive()
		require.NoError(t, err)
		require.Len(t, members, 2)
		assert.Equal(t, "KOA-1001", members[0].KoalmNumber)
		assert.Equal(t, "KOA-1002", members[1].KoalmNumber)
	})

	t.Run("Upsert keeps photo", func(t *testing.T) {
		db := helpers.GetTestDB(t, container)
		repo := membermodel.NewMemberRepository(query.Use(db))

		require.NoError(t, repo.Create(&model.Member{
			KoalmNumber: "KOA-2001",
			Name:        "Dr. Old Name",
			Photo:       "iVBORw0KGgo=",
			IsActive:    true,
		}))

		require.NoError(t, repo.Upsert(&model.Member{
			KoalmNumber: "KOA-2001",
			Name:        "Dr. New Name",
			District:    "Kozhikode",
			IsActive:    true,
		}))

		member, err := repo.GetByKoalm("KOA-2001")
		require.NoError(t, err)
		require.NotNil(t, member)
		assert.Equal(t, "Dr. New Name", member.Name)
		assert.Equal(t, "Kozhikode", member.District)
		assert.Equal(t, "iVBORw0KGgo=", member.Photo)
		helpers.AssertRecordExists(t, db, &model.Member{}, "koalm_number = ?", "KOA-2001")
	})

	t.Run("Upsert inserts new member", func(t *testing.T) {
		db := helpers.GetTestDB(t, container)
		repo := membermodel.NewMemberRepository(query.Use(db))

		helpers.AssertRecordNotExists(t, db, &model.Member{}, "koalm_number = ?", "KOA-3001")
		require.NoError(t, repo.Upsert(&model.Member{KoalmNumber: "KOA-3001", Name: "Dr. D. Pillai", IsActive: true}))
		helpers.AssertRecordExists(t, db, &model.Member{}, "koalm_number = ?", "KOA-3001")
	})

	t.Run("UpdateProfile sets photo and keeps KOALM", func(t *testing.T) {
		db := helpers.GetTestDB(t, container)
		helpers.SeedTestData(t, db)
		repo := membermodel.NewMemberRepository(query.Use(db))

		require.NoError(t, repo.UpdateProfile("KOA-1001", map[string]any{
			"photo":         "iVBORw0KGgo=",
			"blood_group":   "O+",
			"date_of_birth": "1975-04-12",
			"koalm_number":  "KOA-9999",
		}))

		member, err := repo.GetByKoalm("KOA-1001")
		require.NoError(t, err)
		require.NotNil(t, member)
		assert.Equal(t, "iVBORw0KGgo=", member.Photo)
		assert.Equal(t, "O+", member.BloodGroup)
		require.NotNil(t, member.DateOfBirth)
		assert.Equal(t, "1975-04-12", member.DateOfBirth.Format("2006-01-02"))
		assert.Equal(t, "Dr. A. Kumar", member.Name)
		helpers.AssertRecordNotExists(t, db, &model.Member{}, "koalm_number = ?", "KOA-9999")
	})

	t.Run("UpdateProfile without changes is a no-op", func(t *testing.T) {
		db := helpers.GetTestDB(t, container)
		repo := membermodel.NewMemberRepository(query.Use(db))

		assert.NoError(t, repo.UpdateProfile("KOA-4040", map[string]any{}))
	})
}
