package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/opener/pkg/domain/model"
)

func TestPresetActions(t *testing.T) {
	presets := model.PresetActions()
	gt.Equal(t, len(presets), 4)

	ids := map[string]bool{}
	for _, p := range presets {
		gt.True(t, p.Preset)
		gt.True(t, model.ValidateAction(p.Action))
		ids[p.ID] = true
	}
	gt.True(t, ids["opener.openXcode"])
	gt.True(t, ids["opener.openAndroidStudio"])
	gt.True(t, ids["opener.openCurrentWindow"])
	gt.True(t, ids["opener.openNewWindow"])
}

func TestCustomActionID(t *testing.T) {
	gt.Equal(t, model.CustomActionID(0), "opener.custom.0")
	gt.Equal(t, model.CustomActionID(12), "opener.custom.12")
}
