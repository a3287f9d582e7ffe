package config_test

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/simmer/internal/config"
	"github.com/ayoisaiah/simmer/internal/testutil"
)

const modifiedConfig = `cooking:
    tick_interval: 250ms
    stop_cooldown: 1s
display:
    24hr_clock: true
    accent_color: '#12EAEA'
    dark_theme: false
list:
    sort: title
notifications:
    cmd: notify-send done
    enabled: false
    sound: true
`

func TestViperWriteConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "simmer", "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, config.Default(), cfg)

	_, err = os.Stat(configPath)
	assert.NoError(t, err, "default config was not written")

	again, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "modified.yml")
	configPath := filepath.Join(tmpDir, "config.yml")

	err := os.WriteFile(src, []byte(modifiedConfig), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	err = testutil.CopyFile(src, configPath)
	if err != nil {
		t.Fatal(err)
	}

	want := &config.Config{
		Cooking: config.CookingConfig{
			TickInterval: 250 * time.Millisecond,
			StopCooldown: time.Second,
		},
		Notifications: config.NotificationConfig{
			Enabled: false,
			Sound:   true,
			Cmd:     "notify-send done",
		},
		Display: config.DisplayConfig{
			AccentColor:    "#12EAEA",
			DarkTheme:      false,
			TwentyFourHour: true,
		},
		List: config.ListConfig{
			Sort: "title",
		},
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, want, cfg)
	assert.Equal(t, "15:04", cfg.TimeFormat())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		modify  func(c *config.Config)
		name    string
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			modify: func(*config.Config) {},
		},
		{
			name:    "tick interval too short",
			modify:  func(c *config.Config) { c.Cooking.TickInterval = 10 * time.Millisecond },
			wantErr: true,
		},
		{
			name:    "tick interval too long",
			modify:  func(c *config.Config) { c.Cooking.TickInterval = time.Minute },
			wantErr: true,
		},
		{
			name:   "stop cooldown may be disabled",
			modify: func(c *config.Config) { c.Cooking.StopCooldown = 0 },
		},
		{
			name:    "negative stop cooldown",
			modify:  func(c *config.Config) { c.Cooking.StopCooldown = -time.Second },
			wantErr: true,
		},
		{
			name:    "bad accent color",
			modify:  func(c *config.Config) { c.Display.AccentColor = "green" },
			wantErr: true,
		},
		{
			name:    "unknown sort order",
			modify:  func(c *config.Config) { c.List.Sort = "spiciest" },
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.modify(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInvalidConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(
		configPath,
		[]byte("cooking:\n    tick_interval: 1h\n"),
		0o600,
	)
	if err != nil {
		t.Fatal(err)
	}

	_, err = config.New(config.WithViperConfig(configPath))
	assert.Error(t, err)
}

func TestCLIConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	set := flag.NewFlagSet("simmer", flag.ContinueOnError)
	_ = set.Bool("disable-notification", false, "")
	_ = set.Bool("mute", false, "")
	_ = set.String("cmd", "", "")
	_ = set.String("sort", "", "")

	err := set.Parse([]string{"--mute", "--cmd", "say ready", "--sort", "duration"})
	if err != nil {
		t.Fatal(err)
	}

	ctx := cli.NewContext(cli.NewApp(), set, nil)

	cfg, err := config.New(
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.True(t, cfg.Notifications.Enabled)
	assert.False(t, cfg.Notifications.Sound)
	assert.Equal(t, "say ready", cfg.Notifications.Cmd)
	assert.Equal(t, "duration", cfg.List.Sort)

	err = set.Set("sort", "hottest")
	if err != nil {
		t.Fatal(err)
	}

	_, err = config.New(
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	assert.Error(t, err)
}
