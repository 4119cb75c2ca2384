//go:build unit

package profile

import (
	"errors"
	"testing"

	"golang-ipv4cfg/internal/mock"
	"golang-ipv4cfg/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStore_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	files := mock.NewMockFileManager(ctrl)
	store := NewStore(files)

	cfg := types.Ipv4Configuration{
		Adapter: "Ethernet",
		Address: "192.168.1.100",
		Mask:    "255.255.255.0",
		Gateway: "192.168.1.1",
		DNS1:    "8.8.8.8",
	}

	t.Run("NewFile", func(t *testing.T) {
		files.EXPECT().FileExists("office.yml").Return(false)
		files.EXPECT().
			WriteFile("office.yml", gomock.Any(), 0644).
			DoAndReturn(func(_ string, data []byte, _ int) error {
				assert.Equal(t, "# IPv4 configuration profile\n"+
					"adapter: Ethernet\n"+
					"ip: 192.168.1.100\n"+
					"netmask: 255.255.255.0\n"+
					"gateway: 192.168.1.1\n"+
					"dns1: 8.8.8.8\n"+
					"dns2: \"\"\n", string(data))
				return nil
			})

		require.NoError(t, store.Save("office.yml", cfg, false))
	})

	t.Run("RefusesOverwrite", func(t *testing.T) {
		files.EXPECT().FileExists("office.yml").Return(true)

		err := store.Save("office.yml", cfg, false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("Overwrite", func(t *testing.T) {
		files.EXPECT().WriteFile("office.yml", gomock.Any(), 0644).Return(nil)
		assert.NoError(t, store.Save("office.yml", cfg, true))
	})

	t.Run("WriteFailure", func(t *testing.T) {
		files.EXPECT().WriteFile("office.yml", gomock.Any(), 0644).Return(errors.New("disk full"))

		err := store.Save("office.yml", cfg, true)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save profile")
	})
}

func TestStore_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	files := mock.NewMockFileManager(ctrl)
	store := NewStore(files)

	t.Run("Valid", func(t *testing.T) {
		files.EXPECT().ReadFile("lab.yml").Return([]byte("adapter: Ethernet 2\nip: 10.0.0.5\nnetmask: 255.0.0.0\ndns1: 1.1.1.1\n"), nil)

		cfg, err := store.Load("lab.yml")
		require.NoError(t, err)
		assert.Equal(t, types.Ipv4Configuration{
			Adapter: "Ethernet 2",
			Address: "10.0.0.5",
			Mask:    "255.0.0.0",
			DNS1:    "1.1.1.1",
		}, cfg)
	})

	t.Run("ReadFailure", func(t *testing.T) {
		files.EXPECT().ReadFile("missing.yml").Return(nil, errors.New("no such file"))

		_, err := store.Load("missing.yml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load profile")
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		files.EXPECT().ReadFile("bad.yml").Return([]byte("adapter: [unterminated"), nil)

		_, err := store.Load("bad.yml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse profile")
	})
}
