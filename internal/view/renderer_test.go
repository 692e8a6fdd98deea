package view

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narwhalmedia/cinedex/internal/favorites"
)

func TestJSONRenderer_Envelope(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)

	v := &ErrorView{
		Frame:   Frame{Page: PageHome, Nav: "home", Theme: favorites.ThemeLight},
		Message: LoadErrorMessage,
	}
	require.NoError(t, r.Render(context.Background(), v))

	var got struct {
		Kind string         `json:"kind"`
		View map[string]any `json:"view"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "home", got.Kind)
	assert.Equal(t, "light", got.View["theme"])
	assert.Equal(t, LoadErrorMessage, got.View["message"])
}

func TestRecordingRenderer(t *testing.T) {
	r := &RecordingRenderer{}
	assert.Nil(t, r.Last())

	ctx := context.Background()
	require.NoError(t, r.Render(ctx, &YearsView{Frame: Frame{Page: PageYears}}))
	require.NoError(t, r.Render(ctx, &NotFoundView{Frame: Frame{Page: PageDetails}}))

	views := r.Views()
	require.Len(t, views, 2)
	assert.Equal(t, PageYears, views[0].Kind())
	assert.Equal(t, PageDetails, r.Last().Kind())
}
