package app

import (
	"testing"

	"github.com/CSE237SP25/chaching/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppSeedsBootstrapAdmin(t *testing.T) {
	application, err := NewApp(config.NewDefault())
	require.NoError(t, err)

	owner, err := application.Service.Auth.Login("owner", "verysecurePassword43")
	require.NoError(t, err)
	assert.True(t, owner.IsAdmin())
}

func TestNewAppAdminOverride(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Admin.Username = "root"
	cfg.Admin.Password = "hunter2"

	application, err := NewApp(cfg)
	require.NoError(t, err)

	admin, err := application.Service.Auth.Login("root", "hunter2")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	_, err = application.Service.Auth.Login("owner", "verysecurePassword43")
	require.Error(t, err)
}
