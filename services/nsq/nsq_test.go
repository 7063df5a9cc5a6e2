package nsq

import (
	"context"
	"testing"
	"time"

	"github.com/roysitumorang/storefront/helper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	helper.SetLogger(zap.NewNop())
}

func TestNewConfig(t *testing.T) {
	config := NewConfig()
	require.NoError(t, config.Validate())
	assert.Equal(t, 1, config.MaxInFlight)
	assert.Equal(t, uint16(maxAttempts), config.MaxAttempts)
	assert.Equal(t, 2*time.Second, config.DefaultRequeueDelay)
}

func TestPublishWithoutConnecting(t *testing.T) {
	ctx := context.Background()
	producer, err := NewProducer(ctx, "127.0.0.1:4150", NewConfig())
	require.NoError(t, err)
	defer producer.Stop()

	assert.NoError(t, producer.Publish(ctx, "storefront-product"))
	assert.Error(t, producer.Publish(ctx, "storefront-product", make(chan int)), "unencodable messages never reach nsqd")
}
