//go:build unit

package cmd

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"golang-ipv4cfg/internal/adapter/infrastructure/file"
	"golang-ipv4cfg/internal/mock"
	"golang-ipv4cfg/internal/pkg/config"
	"golang-ipv4cfg/internal/pkg/logging"
	"golang-ipv4cfg/internal/pkg/profile"
	"golang-ipv4cfg/internal/types"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func resetFlags(t *testing.T) {
	t.Cleanup(func() {
		adaptersJSON = false
		showJSON, showSave, showOverwrite = false, "", false
		applyFlags = types.Ipv4Configuration{}
		applyProfile, applyFile = "", ""
		for _, name := range []string{"adapter", "ip", "netmask", "gateway", "dns1", "dns2", "profile", "file"} {
			if f := applyCmd.Flags().Lookup(name); f != nil {
				f.Changed = false
			}
		}
	})
}

func TestRunAdapters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resetFlags(t)

	manager := mock.NewMockAdapterConfigurationManager(ctrl)
	adapters := []types.AdapterSummary{
		{ID: "Ethernet", DisplayLabel: "Ethernet (Up)"},
		{ID: "Wi-Fi", DisplayLabel: "Wi-Fi (Disconnected)"},
	}

	t.Run("Table", func(t *testing.T) {
		manager.EXPECT().ListAdapters(gomock.Any()).Return(adapters, nil)

		var out bytes.Buffer
		require.NoError(t, runAdapters(testCommand(), manager, &out))
		assert.Equal(t, "ID        ADAPTER\nEthernet  Ethernet (Up)\nWi-Fi     Wi-Fi (Disconnected)\n", out.String())
	})

	t.Run("JSON", func(t *testing.T) {
		adaptersJSON = true
		defer func() { adaptersJSON = false }()
		manager.EXPECT().ListAdapters(gomock.Any()).Return(adapters[:1], nil)

		var out bytes.Buffer
		require.NoError(t, runAdapters(testCommand(), manager, &out))
		assert.JSONEq(t, `[{"id":"Ethernet","display_label":"Ethernet (Up)"}]`, out.String())
	})

	t.Run("Error", func(t *testing.T) {
		manager.EXPECT().ListAdapters(gomock.Any()).Return(nil, types.ErrUnparseableOutput)

		var out bytes.Buffer
		err := runAdapters(testCommand(), manager, &out)
		assert.ErrorIs(t, err, types.ErrUnparseableOutput)
		assert.Empty(t, out.String())
	})
}

func TestRunShow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	resetFlags(t)

	manager := mock.NewMockAdapterConfigurationManager(ctrl)
	store := profile.NewStore(file.NewManagerAdapter())
	current := &types.Ipv4Configuration{
		Adapter: "Ethernet",
		Address: "192.168.1.100",
		Mask:    "255.255.255.0",
		Gateway: "192.168.1.1",
		DNS1:    "8.8.8.8",
	}

	t.Run("Table", func(t *testing.T) {
		manager.EXPECT().ReadConfig(gomock.Any(), "Ethernet").Return(current, nil)

		var out bytes.Buffer
		require.NoError(t, runShow(testCommand(), manager, store, "Ethernet", &out))
		assert.Equal(t, "Adapter:        Ethernet\n"+
			"IP address:     192.168.1.100\n"+
			"Subnet mask:    255.255.255.0\n"+
			"Gateway:        192.168.1.1\n"+
			"Primary DNS:    8.8.8.8\n"+
			"Secondary DNS:  -\n", out.String())
	})

	t.Run("SaveAndReload", func(t *testing.T) {
		showSave = filepath.Join(t.TempDir(), "ethernet.yml")
		defer func() { showSave = "" }()
		manager.EXPECT().ReadConfig(gomock.Any(), "Ethernet").Return(current, nil)

		var out bytes.Buffer
		require.NoError(t, runShow(testCommand(), manager, store, "Ethernet", &out))

		saved, err := store.Load(showSave)
		require.NoError(t, err)
		assert.Equal(t, *current, saved)
	})

	t.Run("Error", func(t *testing.T) {
		manager.EXPECT().ReadConfig(gomock.Any(), "").Return(nil, types.ErrMissingAdapter)

		err := runShow(testCommand(), manager, store, "", &bytes.Buffer{})
		assert.ErrorIs(t, err, types.ErrMissingAdapter)
	})
}

func TestDesiredConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Profiles = map[string]config.ProfileConfig{
		"office": {Adapter: "Ethernet", IP: "192.168.1.100", Netmask: "255.255.255.0", Gateway: "192.168.1.1"},
	}
	store := profile.NewStore(file.NewManagerAdapter())

	t.Run("Flags", func(t *testing.T) {
		resetFlags(t)
		require.NoError(t, applyCmd.Flags().Parse([]string{"--adapter", "Eth0", "--ip", "10.0.0.5", "--netmask", "255.255.255.0", "--dns1", "8.8.8.8"}))

		desired, err := desiredConfig(applyCmd.Flags(), cfg, store)
		require.NoError(t, err)
		assert.Equal(t, types.Ipv4Configuration{
			Adapter: "Eth0",
			Address: "10.0.0.5",
			Mask:    "255.255.255.0",
			DNS1:    "8.8.8.8",
		}, desired)
	})

	t.Run("ProfileWithOverride", func(t *testing.T) {
		resetFlags(t)
		require.NoError(t, applyCmd.Flags().Parse([]string{"--profile", "office", "--gateway", ""}))

		desired, err := desiredConfig(applyCmd.Flags(), cfg, store)
		require.NoError(t, err)
		assert.Equal(t, types.Ipv4Configuration{
			Adapter: "Ethernet",
			Address: "192.168.1.100",
			Mask:    "255.255.255.0",
		}, desired)
	})

	t.Run("UnknownProfile", func(t *testing.T) {
		resetFlags(t)
		require.NoError(t, applyCmd.Flags().Parse([]string{"--profile", "missing"}))

		_, err := desiredConfig(applyCmd.Flags(), cfg, store)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "profile missing not found")
	})

	t.Run("File", func(t *testing.T) {
		resetFlags(t)
		path := filepath.Join(t.TempDir(), "lab.yml")
		require.NoError(t, store.Save(path, types.Ipv4Configuration{Adapter: "Lab", Address: "10.1.0.2", Mask: "255.255.0.0"}, false))
		require.NoError(t, applyCmd.Flags().Parse([]string{"--file", path}))

		desired, err := desiredConfig(applyCmd.Flags(), cfg, store)
		require.NoError(t, err)
		assert.Equal(t, "Lab", desired.Adapter)
		assert.Equal(t, "10.1.0.2", desired.Address)
	})
}

func TestRunApply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	manager := mock.NewMockAdapterConfigurationManager(ctrl)
	desired := types.Ipv4Configuration{Adapter: "Eth0", Address: "10.0.0.5", Mask: "255.255.255.0"}

	t.Run("Success", func(t *testing.T) {
		manager.EXPECT().ApplyConfig(gomock.Any(), desired).Return(&types.Confirmation{
			Adapter: "Eth0",
			Steps:   []types.ApplyStep{types.StepAddress},
			Message: "IPv4 configuration applied",
		}, nil)

		var out bytes.Buffer
		require.NoError(t, runApply(testCommand(), manager, desired, &out))
		assert.Equal(t, "IPv4 configuration applied to Eth0 (1 steps)\n", out.String())
	})

	t.Run("StepFailure", func(t *testing.T) {
		var logs bytes.Buffer
		logging.InitLogger(logging.LogConfig{Level: "debug", Format: "simple"})
		logging.GetLogger().SetOutput(&logs)
		defer func() { logging.Logger = nil }()

		command := "& netsh interface ip set address 'name=Eth0' static '10.0.0.5' '255.255.255.0'; exit $LASTEXITCODE"
		stepErr := &types.ApplyStepError{Step: types.StepAddress, Command: command, Detail: "denied", Err: types.ErrGatewayNonZeroExit}
		manager.EXPECT().ApplyConfig(gomock.Any(), desired).Return(nil, stepErr)

		var out bytes.Buffer
		err := runApply(testCommand(), manager, desired, &out)

		var got *types.ApplyStepError
		require.True(t, errors.As(err, &got))
		assert.Equal(t, types.StepAddress, got.Step)
		assert.Empty(t, out.String())

		assert.Contains(t, logs.String(), "Failed to apply IPv4 configuration")
		assert.Contains(t, logs.String(), "step=Address")
		assert.Contains(t, logs.String(), "detail=denied")
		assert.NotContains(t, logs.String(), "netsh")
		assert.NotContains(t, logs.String(), "command:")
	})
}
