package activity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"cms_archiver/internal/domain"
	"cms_archiver/internal/service/mocks"
)

func TestFanout_DeliversToAllSinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	entry := domain.Activity{EventID: "e1", ContentID: 1}

	first := mocks.NewMockActivityNotifier(ctrl)
	second := mocks.NewMockActivityNotifier(ctrl)
	first.EXPECT().Log(ctx, entry).Return(nil)
	second.EXPECT().Log(ctx, entry).Return(nil)

	f := NewFanout().Add("db", first).Add("amqp", second)

	assert.Equal(t, 2, f.Len())
	assert.NoError(t, f.Log(ctx, entry))
}

func TestFanout_ContinuesAfterFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	entry := domain.Activity{EventID: "e2", ContentID: 2}

	failing := mocks.NewMockActivityNotifier(ctrl)
	healthy := mocks.NewMockActivityNotifier(ctrl)
	failing.EXPECT().Log(ctx, entry).Return(errors.New("channel closed"))
	healthy.EXPECT().Log(ctx, entry).Return(nil)

	f := NewFanout().Add("amqp", failing).Add("db", healthy)

	err := f.Log(ctx, entry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amqp: channel closed")
}

func TestFanout_IgnoresNilSink(t *testing.T) {
	f := NewFanout().Add("none", nil)

	assert.Equal(t, 0, f.Len())
	assert.NoError(t, f.Log(context.Background(), domain.Activity{}))
}
