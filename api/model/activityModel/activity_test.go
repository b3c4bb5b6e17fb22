package activitymodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sunthewhat/koa-member-api/internal/badge"
)

func TestFromRender(t *testing.T) {
	t.Run("successful render", func(t *testing.T) {
		rendered := &badge.RenderedBadge{
			Content: []byte("%PDF-1.3"),
			States:  []badge.State{badge.StateStart, badge.StateTemplateLoaded, badge.StatePortraitReady, badge.StateOverlayBuilt, badge.StateMerged, badge.StateDone},
		}

		activity := FromRender("KOA-1001", ActionDownload, "KOA-1001", rendered, nil)

		assert.Equal(t, "KOA-1001", activity.KoalmNumber)
		assert.Equal(t, ActionDownload, activity.Action)
		assert.Equal(t, "done", activity.Outcome)
		assert.Equal(t, 8, activity.Size)
		assert.Equal(t, []string{"start", "template_loaded", "portrait_ready", "overlay_built", "merged", "done"}, activity.States)
		assert.Empty(t, activity.Error)
	})

	t.Run("failed render", func(t *testing.T) {
		activity := FromRender("KOA-1001", ActionMail, "KOA-0001", nil, badge.ErrTemplateNotFound)

		assert.Equal(t, "error", activity.Outcome)
		assert.Equal(t, badge.ErrTemplateNotFound.Error(), activity.Error)
		assert.Equal(t, "KOA-0001", activity.RequestedBy)
		assert.Zero(t, activity.Size)
		assert.Nil(t, activity.States)
	})
}

func TestMockActivityRepository_RecordsEntries(t *testing.T) {
	mock := NewMockActivityRepository()
	assert.NoError(t, mock.Record(FromRender("KOA-1001", ActionCLI, "cli", nil, badge.ErrMerge)))
	assert.Len(t, mock.Recorded, 1)
}
