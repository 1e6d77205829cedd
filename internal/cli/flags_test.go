package cli

import (
	"testing"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumFlag(t *testing.T) {
	var speed domain.DeliverySpeed
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	enumFlag(fs, &speed, domain.DeliverySpeeds, "speed", "speed", "Delivery speed")

	require.NoError(t, fs.Parse([]string{"--speed", "PRIORITY"}))
	assert.Equal(t, domain.SpeedPriority, speed)

	err := fs.Parse([]string{"--speed", "warp"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "standard|faster|priority")

	assert.Contains(t, fs.Lookup("speed").Usage, "(standard|faster|priority)")
}
